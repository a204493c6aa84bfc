package handlers

import (
	"net/http"
	"time"

	"asset-inventory/internal/database"
	"asset-inventory/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// summary counts are cheap but hit every dashboard load, so they sit in a
// short-lived in-memory cache
var reportCache = cache.New(30*time.Second, time.Minute)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func countRows(model any) int64 {
	var n int64
	database.DB.Model(model).Count(&n)
	return n
}

func countByStatus(model any) []statusCount {
	var rows []statusCount
	database.DB.Model(model).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows)
	return rows
}

func SummaryReport(c *gin.Context) {
	if cached, ok := reportCache.Get("summary"); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	summary := gin.H{
		"companies":   countRows(&models.Company{}),
		"locations":   countRows(&models.Location{}),
		"departments": countRows(&models.Department{}),
		"employees":   countRows(&models.Employee{}),
		"vendors":     countRows(&models.Vendor{}),
		"systems":     countRows(&models.System{}),
		"mobiles":     countRows(&models.Mobile{}),
		"software":    countRows(&models.Software{}),
		"requests":    countRows(&models.Request{}),

		"systems_by_status":  countByStatus(&models.System{}),
		"requests_by_status": countByStatus(&models.Request{}),
	}

	reportCache.Set("summary", summary, cache.DefaultExpiration)
	c.JSON(http.StatusOK, summary)
}
