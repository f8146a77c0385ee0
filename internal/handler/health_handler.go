package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Check godoc
// @Summary  Liveness and dependency health
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{"status": "healthy", "database": "up", "redis": "up"}

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		body["status"] = "degraded"
		body["database"] = "down"
		status = http.StatusServiceUnavailable
	}
	if h.rdb != nil {
		if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
			body["status"] = "degraded"
			body["redis"] = "down"
		}
	}
	c.JSON(status, body)
}
