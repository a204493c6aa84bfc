package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditRecord is one immutable row of the change journal. There is no
// update or delete path for it anywhere in the application.
type AuditRecord struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Action     AuditAction `gorm:"type:varchar(20);not null;index" json:"action"`
	EntityType string      `gorm:"size:50;not null;index" json:"entity_type"`
	EntityID   string      `gorm:"size:64;not null;index" json:"entity_id"`

	// Changed-field maps; always present, {} when a side has nothing.
	OldValues datatypes.JSONMap `json:"old_values"`
	NewValues datatypes.JSONMap `json:"new_values"`

	PerformedBy string     `gorm:"size:100;not null" json:"performed_by"`
	CompanyID   *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Company     *Company   `json:"company,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (r *AuditRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
