package schema

import (
	"time"
)

// UserProfile represents the user_profiles table - one row per distinct caller
// user id. A profile is created lazily on first sighting of a user_id and is
// never updated by subsequent orders; many orders reference one profile.
type UserProfile struct {
	// ID is the internal ULID primary key
	ID string `gorm:"column:id;primaryKey;type:char(26)"`
	// UserID is the caller-asserted user identifier (lookup key, unique)
	UserID string `gorm:"column:user_id;not null;uniqueIndex;type:text"`
	// FullName is the customer's asserted full name (may be empty)
	FullName string `gorm:"column:full_name;not null;default:'';type:text"`
	// Email is the customer's email; the primary "same person" signal
	Email string `gorm:"column:email;not null;type:text;index:idx_user_profiles_email"`
	// Phone is the customer's phone number
	Phone string `gorm:"column:phone;not null;type:text;index:idx_user_profiles_phone"`
	// Country is the customer's asserted country
	Country string `gorm:"column:country;not null;type:text"`
	// CreatedAt is the caller-asserted account creation time
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`

	// Associations
	Orders []Order `gorm:"foreignKey:UserProfileID"`
}

// TableName specifies the table name for the UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}
