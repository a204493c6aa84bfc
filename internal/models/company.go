package models

// Company is the tenant boundary: every scoped record points back to one.
type Company struct {
	Base
	Name         string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Code         string `gorm:"size:20" json:"code"`
	Industry     string `gorm:"size:100" json:"industry"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	ContactPhone string `gorm:"size:50" json:"contact_phone"`
	Address      string `gorm:"size:255" json:"address"`
	Notes        string `gorm:"type:text" json:"notes"`

	Locations []Location `json:"locations,omitempty"`
	Employees []Employee `json:"employees,omitempty"`
}
