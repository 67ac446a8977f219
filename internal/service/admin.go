package service

import (
	"github.com/mehlab1/Turf-Booking-POC/internal"
	"github.com/mehlab1/Turf-Booking-POC/internal/storage"
)

// Only total_bookings and total_revenue are derived from live data; the
// rest of the analytics payload is fixed demo content.
func BuildAnalytics(stats storage.BookingStats) internal.Analytics {
	return internal.Analytics{
		TotalBookings: stats.Total,
		TotalRevenue:  stats.Revenue,
		OccupancyRate: 75.5,
		PopularSlots:  []string{"18:00", "19:00", "20:00"},
		RevenueByDay: []internal.DayRevenue{
			{Day: "Monday", Revenue: 25000},
			{Day: "Tuesday", Revenue: 18000},
			{Day: "Wednesday", Revenue: 22000},
			{Day: "Thursday", Revenue: 20000},
			{Day: "Friday", Revenue: 35000},
			{Day: "Saturday", Revenue: 45000},
			{Day: "Sunday", Revenue: 40000},
		},
	}
}

func BuildPricing() internal.Pricing {
	return internal.Pricing{
		BasePrices: internal.BasePrices{Cricket: 2000, Football: 1800},
		Multipliers: internal.PriceMultipliers{
			PeakHours:    1.3,
			OffPeak:      0.9,
			Weekend:      1.2,
			HighDemand:   1.4,
			RainForecast: 0.8,
		},
	}
}
