package models

import "github.com/google/uuid"

type Location struct {
	Base
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   *Company  `json:"company,omitempty"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	Country string `gorm:"size:100" json:"country"`
	Phone   string `gorm:"size:50" json:"phone"`
}
