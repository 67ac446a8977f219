package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetGrounds(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		grounds, err := app.Grounds().ListGrounds(c.Request.Context(), c.Query("city"), c.Query("sport"))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to list grounds")
			return
		}
		c.JSON(http.StatusOK, grounds)
	}
}

func GetSlots(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		groundID, err := strconv.Atoi(c.Param("ground_id"))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "ground_id must be an integer")
			return
		}

		slots, err := app.Slots().ListSlots(c.Request.Context(), groundID, c.Query("date"))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to list slots")
			return
		}
		c.JSON(http.StatusOK, slots)
	}
}

func GetForecast(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := app.Forecasts().GetForecast(c.Request.Context(), c.Param("date"))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch forecast")
			return
		}
		c.JSON(http.StatusOK, days)
	}
}
