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

type softwareInput struct {
	CompanyID    uuid.UUID  `json:"company_id" binding:"required"`
	VendorID     *uuid.UUID `json:"vendor_id"`
	Name         string     `json:"name" binding:"required,min=2"`
	Version      string     `json:"version"`
	LicenseKey   string     `json:"license_key"`
	Seats        int        `json:"seats" binding:"omitempty,min=1"`
	PurchaseDate *time.Time `json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Notes        string     `json:"notes"`
}

func ListSoftware(c *gin.Context) {
	q := database.DB.Preload("Company").Preload("Vendor").Order("name asc")
	if cid := c.Query("company_id"); cid != "" {
		q = q.Where("company_id = ?", cid)
	}

	var licenses []models.Software
	if err := q.Find(&licenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load software"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": licenses})
}

func GetSoftware(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var license models.Software
	err := database.DB.Preload("Company").Preload("Vendor").First(&license, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "software not found"})
		return
	}
	c.JSON(http.StatusOK, license)
}

func CreateSoftware(c *gin.Context) {
	var in softwareInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}
	if in.VendorID != nil && !refExists(&models.Vendor{}, *in.VendorID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor not found"})
		return
	}

	seats := in.Seats
	if seats == 0 {
		seats = 1
	}

	license := models.Software{
		CompanyID:    in.CompanyID,
		VendorID:     in.VendorID,
		Name:         strings.TrimSpace(in.Name),
		Version:      in.Version,
		LicenseKey:   in.LicenseKey,
		Seats:        seats,
		PurchaseDate: in.PurchaseDate,
		ExpiryDate:   in.ExpiryDate,
		Notes:        in.Notes,
	}

	if err := database.DB.Create(&license).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save software"})
		return
	}

	database.RecordChange(models.AuditCreate, "Software", license.ID.String(),
		nil, audit.Snapshot(license), middleware.ActorFrom(c), &license.CompanyID)

	c.JSON(http.StatusCreated, license)
}

func UpdateSoftware(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var license models.Software
	if err := database.DB.First(&license, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "software not found"})
		return
	}

	var in softwareInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}
	if in.VendorID != nil && !refExists(&models.Vendor{}, *in.VendorID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor not found"})
		return
	}

	oldSnap := audit.Snapshot(license)

	license.CompanyID = in.CompanyID
	license.VendorID = in.VendorID
	license.Name = strings.TrimSpace(in.Name)
	license.Version = in.Version
	license.LicenseKey = in.LicenseKey
	if in.Seats > 0 {
		license.Seats = in.Seats
	}
	license.PurchaseDate = in.PurchaseDate
	license.ExpiryDate = in.ExpiryDate
	license.Notes = in.Notes

	if err := database.DB.Save(&license).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save software"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(license))
	database.RecordChange(models.AuditUpdate, "Software", license.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &license.CompanyID)

	c.JSON(http.StatusOK, license)
}

func DeleteSoftware(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var license models.Software
	if err := database.DB.First(&license, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "software not found"})
		return
	}

	oldSnap := audit.Snapshot(license)

	if err := database.DB.Delete(&license).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete software"})
		return
	}

	database.RecordChange(models.AuditDelete, "Software", license.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &license.CompanyID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
