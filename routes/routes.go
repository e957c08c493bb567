package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/666-PLAYER-666/hotel-banya/handlers"
	"github.com/666-PLAYER-666/hotel-banya/middleware"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		// Public endpoints.
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
		api.POST("/verify-otp", hb.Auth.VerifyOTP)

		// Protected routes (Require Authentication)
		auth := api.Group("")
		auth.Use(middleware.JWTAuthMiddleware())

		auth.GET("/reviews", hb.Reviews.List)
		auth.POST("/reviews", hb.Reviews.Create)
		auth.POST("/contact", handlers.ContactHandler)

		auth.GET("/blocked-dates", hb.Blocked.List)
		auth.POST("/blocked-dates", middleware.AdminOnly(), hb.Blocked.Create)
		auth.DELETE("/blocked-dates/:index", middleware.AdminOnly(), hb.Blocked.Delete)

		auth.GET("/bookings", hb.Bookings.List)
		auth.POST("/bookings", hb.Bookings.Create)
		auth.POST("/bookings/check", hb.Bookings.Check)
		auth.POST("/bookings/:index/pay", hb.Bookings.Pay)
		auth.PUT("/bookings/:index", middleware.AdminOnly(), hb.Bookings.AdminUpdate)
		auth.DELETE("/bookings/:index", middleware.AdminOnly(), hb.Bookings.AdminDelete)

		auth.GET("/orders", hb.Orders.List)
		auth.POST("/orders", hb.Orders.Create)
		auth.PUT("/orders/:index", hb.Orders.Update)

		auth.GET("/services", hb.Services.List)
		auth.PUT("/services/:serviceName", middleware.AdminOnly(), hb.Services.Update)
	}

	RegisterHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
