package api

import (
	"github.com/mehlab1/Turf-Booking-POC/internal"
	"github.com/mehlab1/Turf-Booking-POC/internal/auth"
	"github.com/mehlab1/Turf-Booking-POC/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Tokens() auth.Provider
	Users() storage.UserRepository
	Grounds() storage.GroundRepository
	Slots() storage.SlotRepository
	Bookings() storage.BookingRepository
	Teams() storage.TeamRepository
	Forecasts() storage.ForecastRepository
}

type app struct {
	logger internal.Logger
	tokens auth.Provider
	repos  storage.Repositories
}

func NewApp(logger internal.Logger, tokens auth.Provider, repos storage.Repositories) App {
	return &app{logger: logger, tokens: tokens, repos: repos}
}

func (a *app) Logger() internal.Logger { return a.logger }

func (a *app) Tokens() auth.Provider { return a.tokens }

func (a *app) Users() storage.UserRepository { return a.repos.Users }

func (a *app) Grounds() storage.GroundRepository { return a.repos.Grounds }

func (a *app) Slots() storage.SlotRepository { return a.repos.Slots }

func (a *app) Bookings() storage.BookingRepository { return a.repos.Bookings }

func (a *app) Teams() storage.TeamRepository { return a.repos.Teams }

func (a *app) Forecasts() storage.ForecastRepository { return a.repos.Forecasts }
