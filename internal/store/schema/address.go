package schema

// Address represents the addresses table - one fresh row per order, never
// deduplicated against existing rows. The composite index backs the
// same-address history lookup.
type Address struct {
	// ID is the internal ULID primary key
	ID string `gorm:"column:id;primaryKey;type:char(26)"`
	// Street is the delivery street line
	Street string `gorm:"column:street;not null;type:text;index:idx_addresses_street_city_postal,priority:1"`
	// City is the delivery city
	City string `gorm:"column:city;not null;type:text;index:idx_addresses_street_city_postal,priority:2"`
	// State is the delivery state or province (may be empty)
	State string `gorm:"column:state;not null;default:'';type:text"`
	// PostalCode is the delivery postal code
	PostalCode string `gorm:"column:postal_code;not null;type:text;index:idx_addresses_street_city_postal,priority:3"`
	// Country is the delivery country
	Country string `gorm:"column:country;not null;type:text"`

	// Associations
	Orders []Order `gorm:"foreignKey:AddressID"`
}

// TableName specifies the table name for the Address model
func (Address) TableName() string {
	return "addresses"
}
