package handlers

import (
	"net/http"

	"vigovia/internal/domain"

	"github.com/gin-gonic/gin"
)

// Health is the liveness endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Options returns the form vocabulary so the form collaborator and the
// engine agree on time slots, categories, and airline names.
func Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timeSlots":           domain.TimeSlots(),
		"activityTypes":       domain.ActivityTypes(),
		"airlines":            domain.Airlines(),
		"popularDestinations": domain.PopularDestinations(),
	})
}
