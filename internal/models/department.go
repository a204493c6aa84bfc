package models

import "github.com/google/uuid"

type Department struct {
	Base
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Company    *Company   `json:"company,omitempty"`
	LocationID *uuid.UUID `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location   *Location  `json:"location,omitempty"`

	Name        string `gorm:"size:255;not null" json:"name"`
	CostCenter  string `gorm:"size:50" json:"cost_center"`
	Description string `gorm:"type:text" json:"description"`
}
