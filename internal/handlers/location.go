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

type locationInput struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	Name      string    `json:"name" binding:"required,min=2"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
}

func ListLocations(c *gin.Context) {
	q := database.DB.Preload("Company").Order("name asc")
	if cid := c.Query("company_id"); cid != "" {
		q = q.Where("company_id = ?", cid)
	}

	var locations []models.Location
	if err := q.Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load locations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": locations})
}

func GetLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var location models.Location
	if err := database.DB.Preload("Company").First(&location, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	c.JSON(http.StatusOK, location)
}

func CreateLocation(c *gin.Context) {
	var in locationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}

	location := models.Location{
		CompanyID: in.CompanyID,
		Name:      strings.TrimSpace(in.Name),
		Address:   in.Address,
		City:      in.City,
		Country:   in.Country,
		Phone:     in.Phone,
	}

	if err := database.DB.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location"})
		return
	}

	database.RecordChange(models.AuditCreate, "Location", location.ID.String(),
		nil, audit.Snapshot(location), middleware.ActorFrom(c), &location.CompanyID)

	c.JSON(http.StatusCreated, location)
}

func UpdateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var location models.Location
	if err := database.DB.First(&location, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}

	var in locationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return
	}

	oldSnap := audit.Snapshot(location)

	location.CompanyID = in.CompanyID
	location.Name = strings.TrimSpace(in.Name)
	location.Address = in.Address
	location.City = in.City
	location.Country = in.Country
	location.Phone = in.Phone

	if err := database.DB.Save(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(location))
	database.RecordChange(models.AuditUpdate, "Location", location.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &location.CompanyID)

	c.JSON(http.StatusOK, location)
}

func DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var location models.Location
	if err := database.DB.First(&location, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}

	oldSnap := audit.Snapshot(location)

	if err := database.DB.Delete(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete location"})
		return
	}

	database.RecordChange(models.AuditDelete, "Location", location.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &location.CompanyID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
