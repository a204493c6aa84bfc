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

type requestInput struct {
	CompanyID   uuid.UUID  `json:"company_id" binding:"required"`
	EmployeeID  *uuid.UUID `json:"employee_id"`
	SystemID    *uuid.UUID `json:"system_id"`
	Kind        string     `json:"kind" binding:"required,oneof=change service"`
	Subject     string     `json:"subject" binding:"required,min=3"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high critical"`
}

func (in *requestInput) validateRefs(c *gin.Context) bool {
	if !refExists(&models.Company{}, in.CompanyID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company not found"})
		return false
	}
	if in.EmployeeID != nil && !refExists(&models.Employee{}, *in.EmployeeID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee not found"})
		return false
	}
	if in.SystemID != nil && !refExists(&models.System{}, *in.SystemID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "system not found"})
		return false
	}
	return true
}

func ListRequests(c *gin.Context) {
	q := database.DB.Preload("Company").Preload("Employee").Preload("System").
		Order("created_at desc")
	if cid := c.Query("company_id"); cid != "" {
		q = q.Where("company_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}
	if k := c.Query("kind"); k != "" {
		q = q.Where("kind = ?", k)
	}
	if p := c.Query("priority"); p != "" {
		q = q.Where("priority = ?", p)
	}

	var requests []models.Request
	if err := q.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": requests})
}

func GetRequest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var request models.Request
	err := database.DB.Preload("Company").Preload("Employee").Preload("System").
		First(&request, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, request)
}

func CreateRequest(c *gin.Context) {
	var in requestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !in.validateRefs(c) {
		return
	}

	status := models.RequestStatus(in.Status)
	if status == "" {
		status = models.RequestOpen
	}
	priority := models.RequestPriority(in.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	request := models.Request{
		CompanyID:   in.CompanyID,
		EmployeeID:  in.EmployeeID,
		SystemID:    in.SystemID,
		Kind:        models.RequestKind(in.Kind),
		Subject:     strings.TrimSpace(in.Subject),
		Description: in.Description,
		Status:      status,
		Priority:    priority,
	}
	if status == models.RequestResolved || status == models.RequestClosed {
		now := time.Now()
		request.ResolvedAt = &now
	}

	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save request"})
		return
	}

	database.RecordChange(models.AuditCreate, "Request", request.ID.String(),
		nil, audit.Snapshot(request), middleware.ActorFrom(c), &request.CompanyID)

	c.JSON(http.StatusCreated, request)
}

func UpdateRequest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var request models.Request
	if err := database.DB.First(&request, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	var in requestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !in.validateRefs(c) {
		return
	}

	oldSnap := audit.Snapshot(request)

	request.CompanyID = in.CompanyID
	request.EmployeeID = in.EmployeeID
	request.SystemID = in.SystemID
	request.Kind = models.RequestKind(in.Kind)
	request.Subject = strings.TrimSpace(in.Subject)
	request.Description = in.Description
	if in.Priority != "" {
		request.Priority = models.RequestPriority(in.Priority)
	}

	if in.Status != "" {
		status := models.RequestStatus(in.Status)
		// stamp the resolution time on the transition, clear it on reopen
		switch status {
		case models.RequestResolved, models.RequestClosed:
			if request.ResolvedAt == nil {
				now := time.Now()
				request.ResolvedAt = &now
			}
		case models.RequestOpen, models.RequestInProgress:
			request.ResolvedAt = nil
		}
		request.Status = status
	}

	if err := database.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save request"})
		return
	}

	oldValues, newValues := audit.DiffSnapshots(oldSnap, audit.Snapshot(request))
	database.RecordChange(models.AuditUpdate, "Request", request.ID.String(),
		oldValues, newValues, middleware.ActorFrom(c), &request.CompanyID)

	c.JSON(http.StatusOK, request)
}

func DeleteRequest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var request models.Request
	if err := database.DB.First(&request, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	oldSnap := audit.Snapshot(request)

	if err := database.DB.Delete(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete request"})
		return
	}

	database.RecordChange(models.AuditDelete, "Request", request.ID.String(),
		oldSnap, nil, middleware.ActorFrom(c), &request.CompanyID)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
