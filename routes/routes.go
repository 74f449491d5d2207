package routes

import (
	"github.com/gin-gonic/gin"

	"hall-booking-api/controllers"
	"hall-booking-api/middleware"
	"hall-booking-api/models"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Public routes
		public := api.Group("")
		{
			public.POST("/auth/login", controllers.Login)

			// Logout only clears cookies; keeping it public lets a browser
			// with an expired session still drop them.
			public.POST("/auth/logout", controllers.Logout)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Hall Booking API is running",
				})
			})
		}

		// Protected routes: every API route past this point requires a valid
		// session, regardless of what the page guard exempts.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/profile", controllers.GetProfile)

			protected.GET("/halls", controllers.GetHalls)

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PATCH("", controllers.MarkNotificationsRead)
				notifications.GET("/counter", controllers.GetNotificationCounter)
			}

			// Booking requests
			booking := protected.Group("/booking-requests")
			{
				booking.GET("", controllers.GetBookingRequests)
				booking.GET("/:id", controllers.GetBookingRequest)

				// Only faculty and clubs file requests
				booking.POST("", middleware.RequireRole(models.RoleFaculty, models.RoleClubs), controllers.CreateBookingRequest)

				// Only admins decide
				booking.PATCH("/:id/approve", middleware.RequireRole(models.RoleAdmin), controllers.ApproveBookingRequest)
				booking.PATCH("/:id/reject", middleware.RequireRole(models.RoleAdmin), controllers.RejectBookingRequest)
			}

			// Admin
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/analytics", controllers.GetAdminAnalytics)
				admin.POST("/halls/reset", controllers.ResetHalls)
			}

			// Club dashboard
			club := protected.Group("/club")
			club.Use(middleware.RequireRole(models.RoleClubs))
			{
				club.GET("/analytics", controllers.GetClubAnalytics)
			}
		}
	}

	SetupPages(router)
}
