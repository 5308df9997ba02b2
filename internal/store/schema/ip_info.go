package schema

// IPInfo represents the ip_infos table - an IP metadata snapshot taken at
// submission time, one row per order.
type IPInfo struct {
	// ID is the internal ULID primary key
	ID string `gorm:"column:id;primaryKey;type:char(26)"`
	// IPAddress is the submitting client's IP address
	IPAddress string `gorm:"column:ip_address;not null;type:text"`
	// IPCountry is the geolocated country of the IP
	IPCountry string `gorm:"column:ip_country;not null;default:'';type:text"`
	// IPRegion is the geolocated region of the IP
	IPRegion string `gorm:"column:ip_region;not null;default:'';type:text"`
	// IPCity is the geolocated city of the IP
	IPCity string `gorm:"column:ip_city;not null;default:'';type:text"`
	// Latitude is the geolocated latitude of the IP
	Latitude float64 `gorm:"column:latitude;not null;default:0"`
	// Longitude is the geolocated longitude of the IP
	Longitude float64 `gorm:"column:longitude;not null;default:0"`
}

// TableName specifies the table name for the IPInfo model
func (IPInfo) TableName() string {
	return "ip_infos"
}
