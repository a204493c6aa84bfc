package handlers

import (
	"net/http"
	"strings"

	"asset-inventory/internal/audit"
	"asset-inventory/internal/database"
	"asset-inventory/internal/middleware"
	"asset-inventory/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type employeeInput struct {
	CompanyID    uuid.UUID  `json:"company_id" binding:"required"`
	DepartmentID *uuid.UUID `json:"department_id"`
	LocationID   *uuid.UUID `json:"location_id"`
	FirstName    string     `json:"first_name" binding:"required"`
	LastName     string     `json:"last_name" binding:"required"`
	Email        string     `json:"email" binding:"omitempty,email"`
	Phone        string     `json:"phone"`
	JobTitle     string     `json:"job_title"`
	Status       string     `json:"status" binding:"omitempty,oneof=active inactive"`
}

func ListEmployees(c *gin.Context) {
	q := database.DB.Preload("Company").Preload("Department").Order("last_name asc, first_name asc")
	if cid := c.Query("company_id"); cid != "" {
		q = q.Where("company_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}

	var employees []models.Employee
	if err := q.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employees})
}

func GetEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var employee models.Employee
	err := database.DB.Preload("Company").Preload("Department").Preload("Location").
		First(&employee, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

func CreateEmployee(c *gin.Context) {
	var in employeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}
	if in.DepartmentID != nil && !refExists(&models.Department{}, *in.DepartmentID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department not found"})
		return
	}
	if in.LocationID != nil && !refExists(&models.Location{}, *in.LocationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location not found"})
		return
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		var count int64
		database.DB.Model(&models.Employee{}).
			Where("LOWER(email) = LOWER(?) AND company_id = ?", email, in.CompanyID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "employee with this email already exists"})
			return
		}
	}

	status := models.EmployeeStatus(in.Status)
	if status == "" {
		status = models.EmployeeActive
	}

	employee := models.Employee{
		CompanyID:    in.CompanyID,
		DepartmentID: in.DepartmentID,
		LocationID:   in.LocationID,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		Phone:        in.Phone,
		JobTitle:     in.JobTitle,
		Status:       status,
	}

	if err := database.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save employee"})
		return
	}

	database.RecordChange(models.AuditCreate, "Employee", employee.ID.String(),
		nil, audit.Snapshot(employee), middleware.ActorFrom(c), &employee.CompanyID)

	c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	var in employeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}
	if in.DepartmentID != nil && !refExists(&models.Department{}, *in.DepartmentID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department not found"})
		return
	}
	if in.LocationID != nil && !refExists(&models.Location{}, *in.LocationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location not found"})
		return
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !strings.EqualFold(email, employee.Email) {
		var count int64
		database.DB.Model(&models.Employee{}).
			Where("LOWER(email) = LOWER(?) AND company_id = ? AND id <> ?", email, in.CompanyID, employee.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "employee with this email already exists"})
			return
		}
	}

	oldSnap := audit.Snapshot(employee)

	employee.CompanyID = in.CompanyID
	employee.DepartmentID = in.DepartmentID
	employee.LocationID = in.LocationID
	employee.FirstName = strings.TrimSpace(in.FirstName)
	employee.LastName = strings.TrimSpace(in.LastName)
	employee.Email = email
	employee.Phone = in.Phone
	employee.JobTitle = in.JobTitle
	if in.Status != "" {
		employee.Status = models.EmployeeStatus(in.Status)
	}

	if err := database.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save employee"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(employee))
	database.RecordChange(models.AuditUpdate, "Employee", employee.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &employee.CompanyID)

	c.JSON(http.StatusOK, employee)
}

func DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	oldSnap := audit.Snapshot(employee)

	if err := database.DB.Delete(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete employee"})
		return
	}

	database.RecordChange(models.AuditDelete, "Employee", employee.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &employee.CompanyID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
