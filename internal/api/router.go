package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mehlab1/Turf-Booking-POC/internal/auth"
)

// NewRouter assembles the gin engine with the middleware chain and every
// route. Cross-origin requests are allowed from anywhere; the frontend is
// served from a different origin in the demo setup.
func NewRouter(app App) *gin.Engine {
	r := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}

	r.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLogger(app.Logger()),
		cors.New(corsCfg),
		auth.Identity(app.Tokens(), app.Users(), app.Logger()),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "path": c.Request.URL.Path})
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/login", PostLogin(app))
		api.POST("/signup", PostSignup(app))

		api.GET("/grounds", GetGrounds(app))
		api.GET("/slots/:ground_id", GetSlots(app))
		api.GET("/forecast/:date", GetForecast(app))

		api.POST("/book", PostBooking(app))
		api.GET("/bookings", GetBookings(app))

		api.POST("/ai/assistant", PostAssistant(app))

		admin := api.Group("/admin")
		admin.GET("/analytics", GetAnalytics(app))
		admin.GET("/teams", GetTeams(app))
		admin.GET("/pricing", GetPricing(app))
	}

	return r
}
