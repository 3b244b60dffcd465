package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasmonteiro/portfolio-api/internal/config"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
)

// Maintenance closes public scheduling while the owner is not taking
// appointments. Content endpoints stay up; only the guarded group is
// affected.
func Maintenance(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MaintenanceMode {
			httperr.Unavailable(c, "scheduling_paused", "Scheduling is temporarily paused. Please check back later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
