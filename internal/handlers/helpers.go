package handlers

import (
	"net/http"

	"asset-inventory/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseID pulls the :id path param; responds 400 itself on garbage input.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// refExists checks that a referenced row is present before we point at it.
func refExists(model any, id uuid.UUID) bool {
	var count int64
	database.DB.Model(model).Where("id = ?", id).Count(&count)
	return count > 0
}
