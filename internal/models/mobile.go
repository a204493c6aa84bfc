package models

import "github.com/google/uuid"

type MobileType string

const (
	MobilePhone   MobileType = "phone"
	MobileTablet  MobileType = "tablet"
	MobileHotspot MobileType = "hotspot"
)

type Mobile struct {
	Base
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Company    *Company   `json:"company,omitempty"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	Employee   *Employee  `json:"employee,omitempty"`
	VendorID   *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Vendor     *Vendor    `json:"vendor,omitempty"`

	DeviceType   MobileType  `gorm:"type:varchar(20);not null" json:"device_type"`
	Manufacturer string      `gorm:"size:100" json:"manufacturer"`
	ModelName    string      `gorm:"size:100" json:"model_name"`
	SerialNumber string      `gorm:"size:100" json:"serial_number"`
	IMEI         string      `gorm:"size:20" json:"imei"`
	PhoneNumber  string      `gorm:"size:30" json:"phone_number"`
	Status       AssetStatus `gorm:"type:varchar(20);not null;default:in_service" json:"status"`
}
