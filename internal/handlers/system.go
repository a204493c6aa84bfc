package handlers

import (
	"net/http"
	"strings"
	"time"

	"asset-inventory/internal/audit"
	"asset-inventory/internal/database"
	"asset-inventory/internal/middleware"
	"asset-inventory/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type systemInput struct {
	CompanyID      uuid.UUID  `json:"company_id" binding:"required"`
	LocationID     *uuid.UUID `json:"location_id"`
	EmployeeID     *uuid.UUID `json:"employee_id"`
	VendorID       *uuid.UUID `json:"vendor_id"`
	Name           string     `json:"name" binding:"required,min=2"`
	SystemType     string     `json:"system_type" binding:"required,oneof=server desktop laptop network printer other"`
	Manufacturer   string     `json:"manufacturer"`
	ModelName      string     `json:"model_name"`
	SerialNumber   string     `json:"serial_number" binding:"required"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	Status         string     `json:"status" binding:"omitempty,oneof=in_service in_repair in_storage retired"`
	Notes          string     `json:"notes"`
}

func (in *systemInput) validateRefs(c *gin.Context) bool {
	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return false
	}
	if in.LocationID != nil && !refExists(&models.Location{}, *in.LocationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location not found"})
		return false
	}
	if in.EmployeeID != nil && !refExists(&models.Employee{}, *in.EmployeeID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee not found"})
		return false
	}
	if in.VendorID != nil && !refExists(&models.Vendor{}, *in.VendorID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor not found"})
		return false
	}
	return true
}

func ListSystems(c *gin.Context) {
	q := database.DB.Preload("Company").Preload("Location").Preload("Employee").
		Order("name asc")
	if cid := c.Query("company_id"); cid != "" {
		q = q.Where("company_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}
	if tp := c.Query("system_type"); tp != "" {
		q = q.Where("system_type = ?", tp)
	}

	var systems []models.System
	if err := q.Find(&systems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load systems"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": systems})
}

func GetSystem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var system models.System
	err := database.DB.Preload("Company").Preload("Location").Preload("Employee").Preload("Vendor").
		First(&system, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "system not found"})
		return
	}
	c.JSON(http.StatusOK, system)
}

func CreateSystem(c *gin.Context) {
	var in systemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !in.validateRefs(c) {
		return
	}

	status := models.AssetStatus(in.Status)
	if status == "" {
		status = models.StatusInService
	}

	system := models.System{
		CompanyID:      in.CompanyID,
		LocationID:     in.LocationID,
		EmployeeID:     in.EmployeeID,
		VendorID:       in.VendorID,
		Name:           strings.TrimSpace(in.Name),
		SystemType:     models.SystemType(in.SystemType),
		Manufacturer:   in.Manufacturer,
		ModelName:      in.ModelName,
		SerialNumber:   strings.TrimSpace(in.SerialNumber),
		PurchaseDate:   in.PurchaseDate,
		WarrantyExpiry: in.WarrantyExpiry,
		Status:         status,
		Notes:          in.Notes,
	}

	if err := database.DB.Create(&system).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "system with this serial number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save system"})
		return
	}

	database.RecordChange(models.AuditCreate, "System", system.ID.String(),
		nil, audit.Snapshot(system), middleware.ActorFrom(c), &system.CompanyID)

	c.JSON(http.StatusCreated, system)
}

func UpdateSystem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var system models.System
	if err := database.DB.First(&system, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "system not found"})
		return
	}

	var in systemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !in.validateRefs(c) {
		return
	}

	oldSnap := audit.Snapshot(system)

	system.CompanyID = in.CompanyID
	system.LocationID = in.LocationID
	system.EmployeeID = in.EmployeeID
	system.VendorID = in.VendorID
	system.Name = strings.TrimSpace(in.Name)
	system.SystemType = models.SystemType(in.SystemType)
	system.Manufacturer = in.Manufacturer
	system.ModelName = in.ModelName
	system.SerialNumber = strings.TrimSpace(in.SerialNumber)
	system.PurchaseDate = in.PurchaseDate
	system.WarrantyExpiry = in.WarrantyExpiry
	if in.Status != "" {
		system.Status = models.AssetStatus(in.Status)
	}
	system.Notes = in.Notes

	if err := database.DB.Save(&system).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "system with this serial number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save system"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(system))
	database.RecordChange(models.AuditUpdate, "System", system.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &system.CompanyID)

	c.JSON(http.StatusOK, system)
}

func DeleteSystem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var system models.System
	if err := database.DB.First(&system, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "system not found"})
		return
	}

	oldSnap := audit.Snapshot(system)

	if err := database.DB.Delete(&system).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete system"})
		return
	}

	database.RecordChange(models.AuditDelete, "System", system.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &system.CompanyID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
