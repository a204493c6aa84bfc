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

type mobileInput struct {
	CompanyID    uuid.UUID  `json:"company_id" binding:"required"`
	EmployeeID   *uuid.UUID `json:"employee_id"`
	VendorID     *uuid.UUID `json:"vendor_id"`
	DeviceType   string     `json:"device_type" binding:"required,oneof=phone tablet hotspot"`
	Manufacturer string     `json:"manufacturer"`
	ModelName    string     `json:"model_name"`
	SerialNumber string     `json:"serial_number"`
	IMEI         string     `json:"imei"`
	PhoneNumber  string     `json:"phone_number"`
	Status       string     `json:"status" binding:"omitempty,oneof=in_service in_repair in_storage retired"`
}

func (in *mobileInput) validateRefs(c *gin.Context) bool {
	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
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

func ListMobiles(c *gin.Context) {
	q := database.DB.Preload("Company").Preload("Employee").Order("created_at desc")
	if cid := c.Query("company_id"); cid != "" {
		q = q.Where("company_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}

	var mobiles []models.Mobile
	if err := q.Find(&mobiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load mobiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": mobiles})
}

func GetMobile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var mobile models.Mobile
	err := database.DB.Preload("Company").Preload("Employee").Preload("Vendor").
		First(&mobile, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "mobile not found"})
		return
	}
	c.JSON(http.StatusOK, mobile)
}

func CreateMobile(c *gin.Context) {
	var in mobileInput
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

	mobile := models.Mobile{
		CompanyID:    in.CompanyID,
		EmployeeID:   in.EmployeeID,
		VendorID:     in.VendorID,
		DeviceType:   models.MobileType(in.DeviceType),
		Manufacturer: in.Manufacturer,
		ModelName:    in.ModelName,
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		IMEI:         strings.TrimSpace(in.IMEI),
		PhoneNumber:  in.PhoneNumber,
		Status:       status,
	}

	if err := database.DB.Create(&mobile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save mobile"})
		return
	}

	database.RecordChange(models.AuditCreate, "Mobile", mobile.ID.String(),
		nil, audit.Snapshot(mobile), middleware.ActorFrom(c), &mobile.CompanyID)

	c.JSON(http.StatusCreated, mobile)
}

func UpdateMobile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var mobile models.Mobile
	if err := database.DB.First(&mobile, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "mobile not found"})
		return
	}

	var in mobileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !in.validateRefs(c) {
		return
	}

	oldSnap := audit.Snapshot(mobile)

	mobile.CompanyID = in.CompanyID
	mobile.EmployeeID = in.EmployeeID
	mobile.VendorID = in.VendorID
	mobile.DeviceType = models.MobileType(in.DeviceType)
	mobile.Manufacturer = in.Manufacturer
	mobile.ModelName = in.ModelName
	mobile.SerialNumber = strings.TrimSpace(in.SerialNumber)
	mobile.IMEI = strings.TrimSpace(in.IMEI)
	mobile.PhoneNumber = in.PhoneNumber
	if in.Status != "" {
		mobile.Status = models.AssetStatus(in.Status)
	}

	if err := database.DB.Save(&mobile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save mobile"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(mobile))
	database.RecordChange(models.AuditUpdate, "Mobile", mobile.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &mobile.CompanyID)

	c.JSON(http.StatusOK, mobile)
}

func DeleteMobile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var mobile models.Mobile
	if err := database.DB.First(&mobile, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "mobile not found"})
		return
	}

	oldSnap := audit.Snapshot(mobile)

	if err := database.DB.Delete(&mobile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete mobile"})
		return
	}

	database.RecordChange(models.AuditDelete, "Mobile", mobile.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &mobile.CompanyID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
