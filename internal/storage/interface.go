package storage

import (
	"context"
	"errors"

	"github.com/mehlab1/Turf-Booking-POC/internal"
)

var (
	ErrInvalidCredentials = errors.New("storage: invalid credentials")
	ErrEmailExists        = errors.New("storage: email already exists")
	ErrUserNotFound       = errors.New("storage: user not found")
)

type UserRepository interface {
	GetByCredentials(ctx context.Context, email, password string) (*internal.User, error)
	GetByID(ctx context.Context, id int) (*internal.User, error)
	CreateUser(ctx context.Context, user *internal.User) error
}

type GroundRepository interface {
	ListGrounds(ctx context.Context, city, sport string) ([]internal.Ground, error)
}

type SlotRepository interface {
	ListSlots(ctx context.Context, groundID int, date string) ([]internal.Slot, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *internal.Booking) error
	ListBookings(ctx context.Context) ([]internal.Booking, error)
	BookingStats(ctx context.Context) (BookingStats, error)
}

type TeamRepository interface {
	ListTeams(ctx context.Context) ([]internal.Team, error)
}

type ForecastRepository interface {
	GetForecast(ctx context.Context, date string) ([]internal.ForecastDay, error)
}

// BookingStats is the derived part of the analytics payload.
type BookingStats struct {
	Total   int
	Revenue float64
}
