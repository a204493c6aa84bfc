package handlers

import (
	"net/http"
	"strconv"
	"time"

	"asset-inventory/internal/database"
	"asset-inventory/internal/models"

	"github.com/gin-gonic/gin"
)

// accepts plain dates or full RFC3339 timestamps
func parseFilterDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func ListAuditLogs(c *gin.Context) {
	filter := database.AuditFilter{
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
		Action:     c.Query("action"),
	}

	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			filter.Page = n
		}
	}
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			filter.Limit = n
		}
	}

	if s := c.Query("start_date"); s != "" {
		t, err := parseFilterDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		filter.StartDate = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := parseFilterDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		// a bare date means "through the end of that day"
		if len(s) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &t
	}

	page, err := database.ListAuditRecords(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit records"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func GetAuditLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var record models.AuditRecord
	if err := database.DB.Preload("Company").First(&record, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "audit record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}
