package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehlab1/Turf-Booking-POC/internal/service"
)

func GetAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := app.Bookings().BookingStats(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to compute analytics")
			return
		}
		c.JSON(http.StatusOK, service.BuildAnalytics(stats))
	}
}

func GetTeams(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		teams, err := app.Teams().ListTeams(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to list teams")
			return
		}
		c.JSON(http.StatusOK, teams)
	}
}

func GetPricing(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.BuildPricing())
	}
}
