package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/mehlab1/Turf-Booking-POC/internal"
)

// MemoryStore holds every table in process memory. All access goes through
// the mutex so concurrent gin handlers cannot interleave id assignment.
type MemoryStore struct {
	mu        sync.RWMutex
	grounds   []internal.Ground
	slots     []internal.Slot
	bookings  []internal.Booking
	users     []*internal.User
	byEmail   map[string]*internal.User
	teams     []internal.Team
	forecasts map[string][]internal.ForecastDay

	// Monotonic counters, deliberately decoupled from slice length so a
	// future delete cannot recycle ids.
	nextUserID    int
	nextBookingID int

	logger internal.Logger
}

func NewMemoryStore(logger internal.Logger) *MemoryStore {
	return &MemoryStore{
		byEmail:       make(map[string]*internal.User),
		forecasts:     make(map[string][]internal.ForecastDay),
		nextUserID:    1,
		nextBookingID: 1,
		logger:        logger,
	}
}

// LoadSeed replaces the store contents with the given seed tables and
// resets the id counters past the seeded records.
func (s *MemoryStore) LoadSeed(seed SeedData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grounds = append([]internal.Ground(nil), seed.Grounds...)
	s.slots = append([]internal.Slot(nil), seed.Slots...)
	s.teams = append([]internal.Team(nil), seed.Teams...)
	s.bookings = nil

	s.users = nil
	s.byEmail = make(map[string]*internal.User, len(seed.Users))
	maxUserID := 0
	for i := range seed.Users {
		u := seed.Users[i]
		s.users = append(s.users, &u)
		s.byEmail[u.Email] = s.users[len(s.users)-1]
		if u.ID > maxUserID {
			maxUserID = u.ID
		}
	}
	s.nextUserID = maxUserID + 1
	s.nextBookingID = 1

	s.forecasts = make(map[string][]internal.ForecastDay, len(seed.Forecasts))
	for date, days := range seed.Forecasts {
		s.forecasts[date] = append([]internal.ForecastDay(nil), days...)
	}

	s.logger.Debugf("seed loaded: %d grounds, %d slots, %d users, %d teams",
		len(s.grounds), len(s.slots), len(s.users), len(s.teams))
}

func (s *MemoryStore) GetByCredentials(ctx context.Context, email, password string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Both fields compare case-sensitively, exact match only.
	u, ok := s.byEmail[email]
	if !ok || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	copied := *u
	return &copied, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser assigns the next user id and appends. The duplicate check and
// the append happen under one lock so two racing signups cannot both win.
func (s *MemoryStore) CreateUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return ErrEmailExists
	}
	user.ID = s.nextUserID
	s.nextUserID++

	copied := *user
	s.users = append(s.users, &copied)
	s.byEmail[copied.Email] = &copied
	return nil
}

func (s *MemoryStore) ListGrounds(ctx context.Context, city, sport string) ([]internal.Ground, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]internal.Ground, 0, len(s.grounds))
	for _, g := range s.grounds {
		if city != "" && !strings.EqualFold(g.City, city) {
			continue
		}
		if sport != "" && !strings.EqualFold(g.Sport, sport) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (s *MemoryStore) ListSlots(ctx context.Context, groundID int, date string) ([]internal.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]internal.Slot, 0, len(s.slots))
	for _, sl := range s.slots {
		if sl.GroundID != groundID {
			continue
		}
		if date != "" && sl.Date != date {
			continue
		}
		out = append(out, sl)
	}
	return out, nil
}

func (s *MemoryStore) CreateBooking(ctx context.Context, booking *internal.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextBookingID
	s.nextBookingID++
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *MemoryStore) ListBookings(ctx context.Context) ([]internal.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]internal.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemoryStore) BookingStats(ctx context.Context) (BookingStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := BookingStats{Total: len(s.bookings)}
	for _, b := range s.bookings {
		stats.Revenue += b.TotalPrice
	}
	return stats, nil
}

func (s *MemoryStore) ListTeams(ctx context.Context) ([]internal.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]internal.Team, len(s.teams))
	copy(out, s.teams)
	return out, nil
}

func (s *MemoryStore) GetForecast(ctx context.Context, date string) ([]internal.ForecastDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days, ok := s.forecasts[date]
	if !ok {
		return []internal.ForecastDay{DefaultForecast}, nil
	}
	out := make([]internal.ForecastDay, len(days))
	copy(out, days)
	return out, nil
}
