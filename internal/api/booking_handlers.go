package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehlab1/Turf-Booking-POC/internal/service"
)

func PostBooking(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateBookingRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		booking, err := service.CreateBooking(c.Request.Context(), app.Bookings(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to create booking")
			return
		}

		app.Logger().Infof("booking %d confirmed for ground %d at %s %s", booking.ID, booking.GroundID, booking.Date, booking.Time)
		c.JSON(http.StatusOK, booking)
	}
}

func GetBookings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := app.Bookings().ListBookings(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to list bookings")
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}
