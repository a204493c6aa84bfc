package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestKind string
type RequestStatus string
type RequestPriority string

const (
	RequestChange  RequestKind = "change"
	RequestService RequestKind = "service"

	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestResolved   RequestStatus = "resolved"
	RequestClosed     RequestStatus = "closed"

	PriorityLow      RequestPriority = "low"
	PriorityMedium   RequestPriority = "medium"
	PriorityHigh     RequestPriority = "high"
	PriorityCritical RequestPriority = "critical"
)

type Request struct {
	Base
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Company    *Company   `json:"company,omitempty"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	Employee   *Employee  `json:"employee,omitempty"`
	SystemID   *uuid.UUID `gorm:"type:uuid;index" json:"system_id,omitempty"`
	System     *System    `json:"system,omitempty"`

	Kind        RequestKind     `gorm:"type:varchar(20);not null" json:"kind"`
	Subject     string          `gorm:"size:255;not null" json:"subject"`
	Description string          `gorm:"type:text" json:"description"`
	Status      RequestStatus   `gorm:"type:varchar(20);not null;default:open" json:"status"`
	Priority    RequestPriority `gorm:"type:varchar(20);not null;default:medium" json:"priority"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
}
