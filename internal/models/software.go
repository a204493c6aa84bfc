package models

import (
	"time"

	"github.com/google/uuid"
)

// Software is one purchased license, possibly covering multiple seats.
type Software struct {
	Base
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   *Company   `json:"company,omitempty"`
	VendorID  *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Vendor    *Vendor    `json:"vendor,omitempty"`

	Name         string     `gorm:"size:255;not null" json:"name"`
	Version      string     `gorm:"size:50" json:"version"`
	LicenseKey   string     `gorm:"size:255" json:"license_key"`
	Seats        int        `gorm:"not null;default:1" json:"seats"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes"`
}
