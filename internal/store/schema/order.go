package schema

import (
	"time"
)

// Order represents the orders table - one row per accepted submission. Each
// order exclusively owns one address row and one ip_info row; many orders
// share a user profile.
type Order struct {
	// ID is the internal ULID primary key; this is the identifier returned to
	// callers, not the caller-supplied order id
	ID string `gorm:"column:id;primaryKey;type:char(26)"`
	// OrderRef is the caller-supplied order id string. Duplicates are allowed.
	OrderRef string `gorm:"column:order_ref;not null;type:text;index:idx_orders_order_ref"`
	// TotalAmount is the order total
	TotalAmount float64 `gorm:"column:total_amount;not null"`
	// ItemCount is the number of items in the order
	ItemCount int `gorm:"column:item_count;not null"`
	// Method is the payment/fulfillment method
	Method string `gorm:"column:method;not null;default:'';type:text"`
	// CreatedAt is the processing time, not the caller's claimed creation time
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_orders_created_at"`
	// UserProfileID references the owning profile
	UserProfileID string `gorm:"column:user_profile_id;not null;type:char(26);index:idx_orders_user_profile_id"`
	// AddressID references the delivery address created for this order
	AddressID string `gorm:"column:address_id;not null;type:char(26)"`
	// IPInfoID references the IP snapshot created for this order
	IPInfoID string `gorm:"column:ip_info_id;not null;type:char(26)"`

	// Associations
	UserProfile    *UserProfile    `gorm:"foreignKey:UserProfileID"`
	Address        *Address        `gorm:"foreignKey:AddressID"`
	IPInfo         *IPInfo         `gorm:"foreignKey:IPInfoID"`
	RiskAssessment *RiskAssessment `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
