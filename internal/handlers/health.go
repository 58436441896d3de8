package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Liveness is the plaintext root probe consumed by deployment platforms.
func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "SynergySphere API is running")
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"message":   "SynergySphere is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
