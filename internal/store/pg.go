package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/logger"
	"github.com/orderguard/risk-api/internal/store/schema"
)

const (
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 100
	defaultConnMaxLifetime = time.Hour
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL-backed Store
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// newID generates a lexicographically sortable identifier for new rows
func newID() string {
	return ulid.Make().String()
}

func (s *pgStore) GetProfilesWithOrdersByEmail(ctx context.Context, email string) ([]schema.UserProfile, error) {
	var profiles []schema.UserProfile
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("email = ?", email).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by email: %w", err)
	}

	return profiles, nil
}

func (s *pgStore) GetAddressesWithOrders(ctx context.Context, street, city, postalCode string) ([]schema.Address, error) {
	var addresses []schema.Address
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Orders.UserProfile").
		Where("street = ? AND city = ? AND postal_code = ?", street, city, postalCode).
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses: %w", err)
	}

	return addresses, nil
}

func (s *pgStore) GetProfilesByEmailExcludingUser(ctx context.Context, email, userID string) ([]schema.UserProfile, error) {
	var profiles []schema.UserProfile
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND user_id <> ?", email, userID).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by email excluding user: %w", err)
	}

	return profiles, nil
}

func (s *pgStore) GetProfilesByPhoneExcludingEmail(ctx context.Context, phone, email string) ([]schema.UserProfile, error) {
	var profiles []schema.UserProfile
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("phone = ? AND email <> ?", phone, email).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by phone excluding email: %w", err)
	}

	return profiles, nil
}

func (s *pgStore) CreateOrderRecords(ctx context.Context, input CreateOrderInput) (*CreatedOrder, error) {
	var created CreatedOrder

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile schema.UserProfile
		err := tx.Where("user_id = ?", input.Profile.UserID).First(&profile).Error
		switch {
		case err == nil:
			// known user, link the order to the existing profile
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = schema.UserProfile{
				ID:        newID(),
				UserID:    input.Profile.UserID,
				FullName:  input.Profile.FullName,
				Email:     input.Profile.Email,
				Phone:     input.Profile.Phone,
				Country:   input.Profile.Country,
				CreatedAt: input.Profile.CreatedAt,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create user profile: %w", err)
			}
			created.ProfileCreated = true
		default:
			return fmt.Errorf("failed to look up user profile: %w", err)
		}

		address := schema.Address{
			ID:         newID(),
			Street:     input.Address.Street,
			City:       input.Address.City,
			State:      input.Address.State,
			PostalCode: input.Address.PostalCode,
			Country:    input.Address.Country,
		}
		if err := tx.Create(&address).Error; err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}

		ipInfo := schema.IPInfo{
			ID:        newID(),
			IPAddress: input.IPInfo.IPAddress,
			IPCountry: input.IPInfo.IPCountry,
			IPRegion:  input.IPInfo.IPRegion,
			IPCity:    input.IPInfo.IPCity,
			Latitude:  input.IPInfo.Latitude,
			Longitude: input.IPInfo.Longitude,
		}
		if err := tx.Create(&ipInfo).Error; err != nil {
			return fmt.Errorf("failed to create ip info: %w", err)
		}

		order := schema.Order{
			ID:            newID(),
			OrderRef:      input.Order.OrderRef,
			TotalAmount:   input.Order.TotalAmount,
			ItemCount:     input.Order.ItemCount,
			Method:        input.Order.Method,
			CreatedAt:     input.Order.CreatedAt,
			UserProfileID: profile.ID,
			AddressID:     address.ID,
			IPInfoID:      ipInfo.ID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		assessment := schema.RiskAssessment{
			ID:                      newID(),
			OrderID:                 order.ID,
			RiskScore:               input.Assessment.RiskScore,
			RecommendedAction:       input.Assessment.RecommendedAction,
			VerificationSuggestions: datatypes.JSONSlice[string](input.Assessment.VerificationSuggestions),
			Summary:                 input.Assessment.Summary,
		}
		if err := tx.Create(&assessment).Error; err != nil {
			return fmt.Errorf("failed to create risk assessment: %w", err)
		}

		if len(input.Flags) > 0 {
			flags := make([]schema.RiskFlag, 0, len(input.Flags))
			for i, f := range input.Flags {
				flags = append(flags, schema.RiskFlag{
					ID:               newID(),
					RiskAssessmentID: assessment.ID,
					RuleID:           f.RuleID,
					RuleName:         f.RuleName,
					Triggered:        f.Triggered,
					Confidence:       f.Confidence,
					Explanation:      f.Explanation,
					Position:         i,
				})
			}
			if err := tx.Create(&flags).Error; err != nil {
				return fmt.Errorf("failed to create risk flags: %w", err)
			}
		}

		created.OrderID = order.ID
		created.ProfileID = profile.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *pgStore) ListOrders(ctx context.Context) ([]schema.Order, error) {
	var orders []schema.Order
	err := s.db.WithContext(ctx).
		Preload("UserProfile").
		Preload("Address").
		Preload("IPInfo").
		Preload("RiskAssessment").
		Preload("RiskAssessment.RiskFlags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *pgStore) GetCustomerHistory(ctx context.Context, email string) (*CustomerHistory, error) {
	var profiles []schema.UserProfile
	err := s.db.WithContext(ctx).
		Preload("Orders.Address").
		Preload("Orders.RiskAssessment").
		Preload("Orders.RiskAssessment.RiskFlags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("email = ?", email).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get customer history: %w", err)
	}

	history := CustomerHistory{Email: email}
	for i := range profiles {
		for j := range profiles[i].Orders {
			order := profiles[i].Orders[j]
			order.UserProfile = &profiles[i]
			history.Orders = append(history.Orders, order)
			history.TotalSpent += order.TotalAmount
		}
	}
	sort.Slice(history.Orders, func(i, j int) bool {
		return history.Orders[i].CreatedAt.After(history.Orders[j].CreatedAt)
	})
	history.TotalOrders = len(history.Orders)

	return &history, nil
}

func (s *pgStore) DeleteOrder(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order schema.Order
		err := tx.Where("id = ?", id).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to look up order: %w", err)
		}

		var assessment schema.RiskAssessment
		err = tx.Where("order_id = ?", order.ID).First(&assessment).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up risk assessment: %w", err)
		}
		if err == nil {
			if err := tx.Where("risk_assessment_id = ?", assessment.ID).
				Delete(&schema.RiskFlag{}).Error; err != nil {
				return fmt.Errorf("failed to delete risk flags: %w", err)
			}
			if err := tx.Delete(&assessment).Error; err != nil {
				return fmt.Errorf("failed to delete risk assessment: %w", err)
			}
		}

		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		if err := tx.Where("id = ?", order.AddressID).
			Delete(&schema.Address{}).Error; err != nil {
			return fmt.Errorf("failed to delete address: %w", err)
		}
		if err := tx.Where("id = ?", order.IPInfoID).
			Delete(&schema.IPInfo{}).Error; err != nil {
			return fmt.Errorf("failed to delete ip info: %w", err)
		}

		return nil
	})
}

// ConnectionPoolSettings holds the connection pool knobs for the underlying
// sql.DB
type ConnectionPoolSettings struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// NormalizeConnectionPoolSettings fills zero values with sane defaults
func NormalizeConnectionPoolSettings(settings ConnectionPoolSettings) ConnectionPoolSettings {
	if settings.MaxIdleConns <= 0 {
		settings.MaxIdleConns = defaultMaxIdleConns
	}
	if settings.MaxOpenConns <= 0 {
		settings.MaxOpenConns = defaultMaxOpenConns
	}
	if settings.ConnMaxLifetime <= 0 {
		settings.ConnMaxLifetime = defaultConnMaxLifetime
	}

	return settings
}

// ConfigureConnectionPool applies pool settings to the gorm connection
func ConfigureConnectionPool(db *gorm.DB, settings ConnectionPoolSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	settings = NormalizeConnectionPoolSettings(settings)
	sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
	sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)

	logger.Default().Info("configured database connection pool",
		zap.Int("maxIdleConns", settings.MaxIdleConns),
		zap.Int("maxOpenConns", settings.MaxOpenConns),
		zap.Duration("connMaxLifetime", settings.ConnMaxLifetime))

	return nil
}
