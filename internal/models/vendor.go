package models

// Vendor is not tenant scoped: the same supplier serves many companies.
type Vendor struct {
	Base
	Name         string `gorm:"size:255;not null" json:"name"`
	ContactName  string `gorm:"size:255" json:"contact_name"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	ContactPhone string `gorm:"size:50" json:"contact_phone"`
	Website      string `gorm:"size:255" json:"website"`
	Notes        string `gorm:"type:text" json:"notes"`
}
