package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mehlab1/Turf-Booking-POC/internal"
	"github.com/mehlab1/Turf-Booking-POC/internal/service"
	"github.com/mehlab1/Turf-Booking-POC/internal/storage"
)

func bookingReq(groundID int, date, slot, duration string, totalPrice float64) *service.BookingRequest {
	return &service.BookingRequest{
		GroundID:   ptr(groundID),
		Date:       ptr(date),
		Time:       ptr(slot),
		Duration:   ptr(duration),
		TotalPrice: ptr(totalPrice),
	}
}

func TestCreateBooking(t *testing.T) {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	store := storage.NewMemoryStore(logger)
	store.LoadSeed(storage.DefaultSeed())
	ctx := context.Background()

	booking, err := service.CreateBooking(ctx, store, bookingReq(1, "2025-01-21", "18:00", "2 hours", 2600))
	assert.NoError(t, err)
	assert.Equal(t, 1, booking.ID)
	assert.Equal(t, internal.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 0, booking.LoyaltyPointsUsed)
	assert.WithinDuration(t, time.Now(), booking.CreatedAt, time.Second)

	// bookings are never validated against the slot table
	ghost, err := service.CreateBooking(ctx, store, bookingReq(42, "2099-01-01", "03:00", "1 hour", 1))
	assert.NoError(t, err)
	assert.Equal(t, 2, ghost.ID)
}

func TestValidateBookingRequest(t *testing.T) {
	assert.NoError(t, service.ValidateBookingRequest(bookingReq(1, "2025-01-21", "08:00", "1h", 2400)))

	// explicit zero and negative values are well-typed and pass through
	assert.NoError(t, service.ValidateBookingRequest(bookingReq(0, "2025-01-21", "08:00", "1h", 100)))
	assert.NoError(t, service.ValidateBookingRequest(bookingReq(1, "2025-01-21", "08:00", "1h", -50)))
	assert.NoError(t, service.ValidateBookingRequest(bookingReq(1, "2025-01-21", "08:00", "1h", 0)))

	// absent fields are rejected at the boundary
	missingTime := &service.BookingRequest{GroundID: ptr(1), Date: ptr("2025-01-21"), Duration: ptr("1h"), TotalPrice: ptr(100.0)}
	assert.Error(t, service.ValidateBookingRequest(missingTime))

	missingPrice := &service.BookingRequest{GroundID: ptr(1), Date: ptr("2025-01-21"), Time: ptr("08:00"), Duration: ptr("1h")}
	assert.Error(t, service.ValidateBookingRequest(missingPrice))
}

func TestCreateBookingKeepsValuesAsSent(t *testing.T) {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	store := storage.NewMemoryStore(logger)
	store.LoadSeed(storage.DefaultSeed())
	ctx := context.Background()

	booking, err := service.CreateBooking(ctx, store, bookingReq(0, "2025-01-21", "08:00", "1h", -50))
	assert.NoError(t, err)
	assert.Equal(t, 0, booking.GroundID)
	assert.InDelta(t, -50.0, booking.TotalPrice, 0.001)
	assert.Equal(t, internal.BookingStatusConfirmed, booking.Status)
}
