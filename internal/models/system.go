package models

import (
	"time"

	"github.com/google/uuid"
)

type SystemType string

const (
	SystemServer  SystemType = "server"
	SystemDesktop SystemType = "desktop"
	SystemLaptop  SystemType = "laptop"
	SystemNetwork SystemType = "network"
	SystemPrinter SystemType = "printer"
	SystemOther   SystemType = "other"
)

// AssetStatus is shared by hardware systems and mobile devices.
type AssetStatus string

const (
	StatusInService AssetStatus = "in_service"
	StatusInRepair  AssetStatus = "in_repair"
	StatusInStorage AssetStatus = "in_storage"
	StatusRetired   AssetStatus = "retired"
)

type System struct {
	Base
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Company    *Company   `json:"company,omitempty"`
	LocationID *uuid.UUID `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location   *Location  `json:"location,omitempty"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	Employee   *Employee  `json:"employee,omitempty"`
	VendorID   *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Vendor     *Vendor    `json:"vendor,omitempty"`

	Name           string      `gorm:"size:255;not null" json:"name"`
	SystemType     SystemType  `gorm:"type:varchar(50);not null" json:"system_type"`
	Manufacturer   string      `gorm:"size:100" json:"manufacturer"`
	ModelName      string      `gorm:"size:100" json:"model_name"`
	SerialNumber   string      `gorm:"size:100;not null;uniqueIndex" json:"serial_number"`
	PurchaseDate   *time.Time  `json:"purchase_date,omitempty"`
	WarrantyExpiry *time.Time  `json:"warranty_expiry,omitempty"`
	Status         AssetStatus `gorm:"type:varchar(20);not null;default:in_service" json:"status"`
	Notes          string      `gorm:"type:text" json:"notes"`
}
