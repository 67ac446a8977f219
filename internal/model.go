package internal

import "time"

type Ground struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Sport  string  `json:"sport"`
	Image  string  `json:"image"`
	Price  int     `json:"price"`
	Rating float64 `json:"rating"`
}

type Slot struct {
	GroundID  int    `json:"ground_id"`
	Date      string `json:"date"`   // ISO date, e.g. 2025-01-21
	Time      string `json:"time"`   // HH:MM
	Demand    string `json:"demand"` // low, medium, high
	Available bool   `json:"available"`
	Price     int    `json:"price"`
}

type Booking struct {
	ID                int       `json:"id"`
	GroundID          int       `json:"ground_id"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Duration          string    `json:"duration"`
	LoyaltyPointsUsed int       `json:"loyalty_points_used"`
	TotalPrice        float64   `json:"total_price"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

const BookingStatusConfirmed = "Confirmed"

type User struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	Password      string `json:"-"`
	Name          string `json:"name"`
	LoyaltyPoints int    `json:"loyalty_points"`
	Role          string `json:"role"` // user, admin
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// PublicUser is the projection returned by login and signup; it never
// carries the password.
type PublicUser struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	LoyaltyPoints int    `json:"loyalty_points"`
	Role          string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		LoyaltyPoints: u.LoyaltyPoints,
		Role:          u.Role,
	}
}

type Team struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Bookings   int    `json:"bookings"`
	TotalSpent int    `json:"total_spent"`
}

type ForecastDay struct {
	Day  string `json:"day"`
	High int    `json:"high"`
	Low  int    `json:"low"`
	Icon string `json:"icon"`
}

type Analytics struct {
	TotalBookings int          `json:"total_bookings"`
	TotalRevenue  float64      `json:"total_revenue"`
	OccupancyRate float64      `json:"occupancy_rate"`
	PopularSlots  []string     `json:"popular_slots"`
	RevenueByDay  []DayRevenue `json:"revenue_by_day"`
}

type DayRevenue struct {
	Day     string `json:"day"`
	Revenue int    `json:"revenue"`
}

type Pricing struct {
	BasePrices  BasePrices       `json:"base_prices"`
	Multipliers PriceMultipliers `json:"multipliers"`
}

type BasePrices struct {
	Cricket  int `json:"cricket"`
	Football int `json:"football"`
}

type PriceMultipliers struct {
	PeakHours    float64 `json:"peak_hours"`
	OffPeak      float64 `json:"off_peak"`
	Weekend      float64 `json:"weekend"`
	HighDemand   float64 `json:"high_demand"`
	RainForecast float64 `json:"rain_forecast"`
}
