package storage

import "github.com/mehlab1/Turf-Booking-POC/internal"

// Repositories groups the per-table interfaces the API layer consumes.
type Repositories struct {
	Users     UserRepository
	Grounds   GroundRepository
	Slots     SlotRepository
	Bookings  BookingRepository
	Teams     TeamRepository
	Forecasts ForecastRepository
}

// NewMemoryRepositories builds a seeded in-memory store and hands it back
// as one repository set backed by the same tables.
func NewMemoryRepositories(seed SeedData, logger internal.Logger) Repositories {
	store := NewMemoryStore(logger)
	store.LoadSeed(seed)
	return Repositories{
		Users:     store,
		Grounds:   store,
		Slots:     store,
		Bookings:  store,
		Teams:     store,
		Forecasts: store,
	}
}
