package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehlab1/Turf-Booking-POC/internal/service"
)

func PostAssistant(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.AssistantQuery
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateAssistantQuery(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"reply": service.AssistantReply(*req.Query)})
	}
}
