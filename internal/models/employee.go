package models

import "github.com/google/uuid"

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

type Employee struct {
	Base
	CompanyID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"company_id"`
	Company      *Company    `json:"company,omitempty"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Department   *Department `json:"department,omitempty"`
	LocationID   *uuid.UUID  `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location     *Location   `json:"location,omitempty"`

	FirstName string         `gorm:"size:100;not null" json:"first_name"`
	LastName  string         `gorm:"size:100;not null" json:"last_name"`
	Email     string         `gorm:"size:255" json:"email"`
	Phone     string         `gorm:"size:50" json:"phone"`
	JobTitle  string         `gorm:"size:100" json:"job_title"`
	Status    EmployeeStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
}
