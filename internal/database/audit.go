package database

import (
	"log"
	"time"

	"asset-inventory/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordChange appends one row to the audit journal. The journal is
// best-effort: a failed insert is logged and swallowed so the business
// write that triggered it is never rolled back or failed.
func RecordChange(action models.AuditAction, entityType, entityID string, oldValues, newValues map[string]any, performedBy string, companyID *uuid.UUID) {
	if DB == nil {
		return
	}
	if performedBy == "" {
		performedBy = "Admin"
	}

	record := models.AuditRecord{
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		OldValues:   toJSONMap(oldValues),
		NewValues:   toJSONMap(newValues),
		PerformedBy: performedBy,
		CompanyID:   companyID,
	}

	if err := DB.Create(&record).Error; err != nil {
		log.Printf("audit: failed to record %s %s/%s: %v", action, entityType, entityID, err)
	}
}

// Empty sides are stored as an explicit {} rather than NULL, so "nothing
// changed" is distinguishable from "side never captured".
func toJSONMap(values map[string]any) datatypes.JSONMap {
	if values == nil {
		return datatypes.JSONMap{}
	}
	return datatypes.JSONMap(values)
}

type AuditFilter struct {
	EntityType string
	EntityID   string
	Action     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

type AuditPage struct {
	Data       []models.AuditRecord `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

// ListAuditRecords returns one page of the journal, newest first, with the
// owning company preloaded for tenant-scoped records.
func ListAuditRecords(filter AuditFilter) (*AuditPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	q := DB.Model(&models.AuditRecord{})

	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		q = q.Where("entity_id = ?", filter.EntityID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.StartDate != nil {
		q = q.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var records []models.AuditRecord
	err := q.
		Preload("Company").
		Order("created_at desc").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &AuditPage{
		Data:       records,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}
