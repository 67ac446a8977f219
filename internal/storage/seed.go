package storage

import "github.com/mehlab1/Turf-Booking-POC/internal"

// DefaultForecast is returned for any date missing from the weather table.
var DefaultForecast = internal.ForecastDay{Day: "Sunny", High: 25, Low: 18, Icon: "sun"}

// SeedData is the fixed demo dataset the server boots with.
type SeedData struct {
	Grounds   []internal.Ground
	Slots     []internal.Slot
	Users     []internal.User
	Teams     []internal.Team
	Forecasts map[string][]internal.ForecastDay
}

func DefaultSeed() SeedData {
	return SeedData{
		Grounds: []internal.Ground{
			{ID: 1, Name: "Finova Stadium", City: "Lahore", Sport: "Cricket", Image: "https://images.pexels.com/photos/163452/baseball-stadium-ballpark-green-163452.jpeg", Price: 2000, Rating: 4.8},
			{ID: 2, Name: "Champions Ground", City: "Karachi", Sport: "Football", Image: "https://images.pexels.com/photos/399187/pexels-photo-399187.jpeg", Price: 1800, Rating: 4.6},
			{ID: 3, Name: "Victory Field", City: "Islamabad", Sport: "Cricket", Image: "https://images.pexels.com/photos/1618200/pexels-photo-1618200.jpeg", Price: 2200, Rating: 4.9},
			{ID: 4, Name: "Elite Sports Complex", City: "Lahore", Sport: "Football", Image: "https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg", Price: 1900, Rating: 4.7},
		},
		Slots: []internal.Slot{
			{GroundID: 1, Date: "2025-01-21", Time: "08:00", Demand: "high", Available: true, Price: 2400},
			{GroundID: 1, Date: "2025-01-21", Time: "10:00", Demand: "medium", Available: true, Price: 2000},
			{GroundID: 1, Date: "2025-01-21", Time: "14:00", Demand: "low", Available: true, Price: 1800},
			{GroundID: 1, Date: "2025-01-21", Time: "18:00", Demand: "high", Available: true, Price: 2600},
			{GroundID: 2, Date: "2025-01-21", Time: "09:00", Demand: "medium", Available: true, Price: 1980},
			{GroundID: 2, Date: "2025-01-21", Time: "16:00", Demand: "high", Available: true, Price: 2340},
		},
		Users: []internal.User{
			{ID: 1, Email: "user@test.com", Password: "password", Name: "John Doe", LoyaltyPoints: 50, Role: internal.RoleUser},
			{ID: 2, Email: "admin@test.com", Password: "admin", Name: "Admin User", LoyaltyPoints: 0, Role: internal.RoleAdmin},
		},
		Teams: []internal.Team{
			{ID: 1, Name: "Thunder Strikers", Bookings: 15, TotalSpent: 45000},
			{ID: 2, Name: "Lightning Bolts", Bookings: 12, TotalSpent: 38000},
			{ID: 3, Name: "Fire Eagles", Bookings: 8, TotalSpent: 24000},
		},
		Forecasts: map[string][]internal.ForecastDay{
			"2025-01-21": {{Day: "Sunny", High: 28, Low: 18, Icon: "sun"}},
			"2025-01-22": {{Day: "Partly Cloudy", High: 25, Low: 16, Icon: "cloud"}},
			"2025-01-23": {{Day: "Rainy", High: 22, Low: 15, Icon: "cloud-rain"}},
		},
	}
}
