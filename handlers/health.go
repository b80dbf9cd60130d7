// File: handlers/health.go
package handlers

import (
	"net/http"

	"windward/utils"

	"github.com/gin-gonic/gin"
)

// Health reports liveness plus the latest dependency health snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
