package handlers

import (
	"net/http"

	"statutesync/utils"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler reports the last health check. Storage being down yields 503.
func NewHealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.Status()
		if status.CheckedAt.IsZero() {
			status = monitor.Check(c.Request.Context())
		}
		code := http.StatusOK
		state := "ok"
		if !status.Storage {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{"status": state, "message": "Hi, I'm StatuteSync", "health": status})
	}
}
