package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platehub/backend/internal/database"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db *database.HealthDB
}

func NewHealthHandler(db *database.HealthDB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "degraded",
				"database": err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
