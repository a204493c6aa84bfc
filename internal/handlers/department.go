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

type departmentInput struct {
	CompanyID   uuid.UUID  `json:"company_id" binding:"required"`
	LocationID  *uuid.UUID `json:"location_id"`
	Name        string     `json:"name" binding:"required,min=2"`
	CostCenter  string     `json:"cost_center"`
	Description string     `json:"description"`
}

func ListDepartments(c *gin.Context) {
	q := database.DB.Preload("Company").Preload("Location").Order("name asc")
	if cid := c.Query("company_id"); cid != "" {
		q = q.Where("company_id = ?", cid)
	}

	var departments []models.Department
	if err := q.Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load departments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": departments})
}

func GetDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var department models.Department
	if err := database.DB.Preload("Company").Preload("Location").First(&department, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}
	c.JSON(http.StatusOK, department)
}

func CreateDepartment(c *gin.Context) {
	var in departmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}
	if in.LocationID != nil && !refExists(&models.Location{}, *in.LocationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location not found"})
		return
	}

	department := models.Department{
		CompanyID:   in.CompanyID,
		LocationID:  in.LocationID,
		Name:        strings.TrimSpace(in.Name),
		CostCenter:  in.CostCenter,
		Description: in.Description,
	}

	if err := database.DB.Create(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save department"})
		return
	}

	database.RecordChange(models.AuditCreate, "Department", department.ID.String(),
		nil, audit.Snapshot(department), middleware.ActorFrom(c), &department.CompanyID)

	c.JSON(http.StatusCreated, department)
}

func UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var department models.Department
	if err := database.DB.First(&department, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}

	var in departmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}
	if in.LocationID != nil && !refExists(&models.Location{}, *in.LocationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location not found"})
		return
	}

	oldSnap := audit.Snapshot(department)

	department.CompanyID = in.CompanyID
	department.LocationID = in.LocationID
	department.Name = strings.TrimSpace(in.Name)
	department.CostCenter = in.CostCenter
	department.Description = in.Description

	if err := database.DB.Save(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save department"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(department))
	database.RecordChange(models.AuditUpdate, "Department", department.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &department.CompanyID)

	c.JSON(http.StatusOK, department)
}

func DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var department models.Department
	if err := database.DB.First(&department, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}

	oldSnap := audit.Snapshot(department)

	if err := database.DB.Delete(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete department"})
		return
	}

	database.RecordChange(models.AuditDelete, "Department", department.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &department.CompanyID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
