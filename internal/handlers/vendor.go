package handlers

import (
	"net/http"
	"strings"

	"asset-inventory/internal/audit"
	"asset-inventory/internal/database"
	"asset-inventory/internal/middleware"
	"asset-inventory/internal/models"

	"github.com/gin-gonic/gin"
)

type vendorInput struct {
	Name         string `json:"name" binding:"required,min=2"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Website      string `json:"website"`
	Notes        string `json:"notes"`
}

func ListVendors(c *gin.Context) {
	var vendors []models.Vendor
	if err := database.DB.Order("name asc").Find(&vendors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vendors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vendors})
}

func GetVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var vendor models.Vendor
	if err := database.DB.First(&vendor, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vendor not found"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func CreateVendor(c *gin.Context) {
	var in vendorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor := models.Vendor{
		Name:         strings.TrimSpace(in.Name),
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Website:      in.Website,
		Notes:        in.Notes,
	}

	if err := database.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save vendor"})
		return
	}

	// vendors are global, no tenant scope on the audit row
	database.RecordChange(models.AuditCreate, "Vendor", vendor.ID.String(),
		nil, audit.Snapshot(vendor), middleware.ActorFrom(c), nil)

	c.JSON(http.StatusCreated, vendor)
}

func UpdateVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var vendor models.Vendor
	if err := database.DB.First(&vendor, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vendor not found"})
		return
	}

	var in vendorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldSnap := audit.Snapshot(vendor)

	vendor.Name = strings.TrimSpace(in.Name)
	vendor.ContactName = in.ContactName
	vendor.ContactEmail = in.ContactEmail
	vendor.ContactPhone = in.ContactPhone
	vendor.Website = in.Website
	vendor.Notes = in.Notes

	if err := database.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save vendor"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(vendor))
	database.RecordChange(models.AuditUpdate, "Vendor", vendor.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), nil)

	c.JSON(http.StatusOK, vendor)
}

func DeleteVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var vendor models.Vendor
	if err := database.DB.First(&vendor, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vendor not found"})
		return
	}

	oldSnap := audit.Snapshot(vendor)

	if err := database.DB.Delete(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vendor"})
		return
	}

	database.RecordChange(models.AuditDelete, "Vendor", vendor.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), nil)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
