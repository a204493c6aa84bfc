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

type companyInput struct {
	Name         string `json:"name" binding:"required,min=3"`
	Code         string `json:"code"`
	Industry     string `json:"industry"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

func ListCompanies(c *gin.Context) {
	var companies []models.Company
	if err := database.DB.Order("name asc").Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load companies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": companies})
}

func GetCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var company models.Company
	if err := database.DB.Preload("Locations").First(&company, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	c.JSON(http.StatusOK, company)
}

func CreateCompany(c *gin.Context) {
	var in companyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(in.Name)

	var count int64
	database.DB.Model(&models.Company{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "company with this name already exists"})
		return
	}

	company := models.Company{
		Name:         name,
		Code:         strings.TrimSpace(in.Code),
		Industry:     in.Industry,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		Notes:        in.Notes,
	}

	if err := database.DB.Create(&company).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "company with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save company"})
		return
	}

	database.RecordChange(models.AuditCreate, "Company", company.ID.String(),
		nil, audit.Snapshot(company), middleware.ActorFrom(c), &company.ID)

	c.JSON(http.StatusCreated, company)
}

func UpdateCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var company models.Company
	if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	var in companyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(in.Name)
	if !strings.EqualFold(name, company.Name) {
		var count int64
		database.DB.Model(&models.Company{}).
			Where("LOWER(name) = LOWER(?) AND id <> ?", name, company.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "company with this name already exists"})
			return
		}
	}

	oldSnap := audit.Snapshot(company)

	company.Name = name
	company.Code = strings.TrimSpace(in.Code)
	company.Industry = in.Industry
	company.ContactEmail = in.ContactEmail
	company.ContactPhone = in.ContactPhone
	company.Address = in.Address
	company.Notes = in.Notes

	if err := database.DB.Save(&company).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "company with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save company"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(company))
	database.RecordChange(models.AuditUpdate, "Company", company.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &company.ID)

	c.JSON(http.StatusOK, company)
}

func DeleteCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var company models.Company
	if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	oldSnap := audit.Snapshot(company)

	if err := database.DB.Delete(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete company"})
		return
	}

	database.RecordChange(models.AuditDelete, "Company", company.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &company.ID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
