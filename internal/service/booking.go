package service

import (
	"context"
	"time"

	"github.com/mehlab1/Turf-Booking-POC/internal"
	"github.com/mehlab1/Turf-Booking-POC/internal/storage"
)

// BookingRequest uses pointers for the required fields: the boundary only
// rejects a field that is absent or ill-typed. Zero and negative values
// are recorded as sent; no value checks happen anywhere.
type BookingRequest struct {
	GroundID          *int     `json:"ground_id" validate:"required"`
	Date              *string  `json:"date" validate:"required"`
	Time              *string  `json:"time" validate:"required"`
	Duration          *string  `json:"duration" validate:"required"`
	LoyaltyPointsUsed int      `json:"loyalty_points_used"`
	TotalPrice        *float64 `json:"total_price" validate:"required"`
}

func ValidateBookingRequest(req *BookingRequest) error {
	return validate.Struct(req)
}

// CreateBooking records the booking as confirmed. The slot is not checked
// for existence or availability; any well-typed request succeeds.
func CreateBooking(ctx context.Context, bookings storage.BookingRepository, req *BookingRequest) (*internal.Booking, error) {
	booking := &internal.Booking{
		GroundID:          *req.GroundID,
		Date:              *req.Date,
		Time:              *req.Time,
		Duration:          *req.Duration,
		LoyaltyPointsUsed: req.LoyaltyPointsUsed,
		TotalPrice:        *req.TotalPrice,
		Status:            internal.BookingStatusConfirmed,
		CreatedAt:         time.Now(),
	}
	if err := bookings.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
