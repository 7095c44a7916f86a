package routes

import (
	"pawsgroom-backend/config"
	"pawsgroom-backend/controllers"
	"pawsgroom-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Uploaded gallery images
	r.Static("/uploads", cfg.UploadDir)

	// Static frontend
	r.Static("/static", "./public/static")
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/services", "./public/services.html")
	r.StaticFile("/gallery", "./public/gallery.html")
	r.StaticFile("/booking", "./public/booking.html")
	r.StaticFile("/contact", "./public/contact.html")
	r.StaticFile("/admin", "./public/admin.html")

	adminOnly := utils.AuthMiddleware()

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/me", adminOnly, controllers.Me)
	}

	api := r.Group("/api")
	{
		// Booking routes: creation is public, management is admin-only
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", adminOnly, controllers.GetBookings)
			bookings.GET("/:id", adminOnly, controllers.GetBooking)
			bookings.PUT("/:id/status", adminOnly, controllers.UpdateBookingStatus)
			bookings.PUT("/:id", adminOnly, controllers.UpdateBooking)
			bookings.DELETE("/:id", adminOnly, controllers.DeleteBooking)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.GET("", controllers.GetActiveServices)
			services.GET("/all", adminOnly, controllers.GetAllServices)
			services.POST("", adminOnly, controllers.CreateService)
			services.PUT("/:id", adminOnly, controllers.UpdateService)
			services.DELETE("/:id", adminOnly, controllers.DeleteService)
		}

		// Gallery routes
		galleryController := controllers.NewGalleryController(cfg.UploadDir)
		gallery := api.Group("/gallery")
		{
			gallery.GET("", galleryController.GetActiveGallery)
			gallery.GET("/all", adminOnly, galleryController.GetAllGallery)
			gallery.POST("", adminOnly, galleryController.CreateGalleryImage)
			gallery.PUT("/:id", adminOnly, galleryController.UpdateGalleryImage)
			gallery.DELETE("/:id", adminOnly, galleryController.DeleteGalleryImage)
		}
	}

	return r
}
