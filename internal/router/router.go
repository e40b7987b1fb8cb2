// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
	"github.com/UmairIqbal92/car-dealer-fork/internal/handlers"
	"github.com/UmairIqbal92/car-dealer-fork/internal/middleware"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Object storage unavailable, uploads limited to local disk")
	}

	authService := services.NewAuthService(db, cfg)
	vehicleService := services.NewVehicleService(db)
	categoryService := services.NewCategoryService(db)
	inquiryService := services.NewInquiryService(db, vehicleService, notificationService)
	applicationService := services.NewApplicationService(db, vehicleService, notificationService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	leadHandler := handlers.NewLeadHandler(notificationService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	adminOnly := middleware.AdminRequired(authService, cfg.Session.CookieName)

	api := r.Group("/api")
	{
		// Admin session routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
			admin.POST("/logout", authHandler.Logout)
			admin.GET("/check", authHandler.Check)
			admin.POST("/change-password", adminOnly, authHandler.ChangePassword)
		}

		// Vehicle routes
		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)

			protected := vehicles.Group("")
			protected.Use(adminOnly)
			{
				protected.POST("", vehicleHandler.CreateVehicle)
				protected.PUT("/:id", vehicleHandler.UpdateVehicle)
				protected.DELETE("/:id", vehicleHandler.DeleteVehicle)
			}
		}
		api.GET("/vehicle-options", vehicleHandler.GetVehicleOptions)

		// Category and brand routes
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)

			protected := categories.Group("")
			protected.Use(adminOnly)
			{
				protected.POST("", categoryHandler.CreateCategory)
				protected.PUT("/:id", categoryHandler.UpdateCategory)
				protected.DELETE("/:id", categoryHandler.DeleteCategory)
			}
		}
		api.GET("/brands", categoryHandler.GetBrands)

		// Inquiry routes
		inquiries := api.Group("/inquiries")
		{
			inquiries.POST("", middleware.LeadRateLimit(), inquiryHandler.CreateInquiry)

			protected := inquiries.Group("")
			protected.Use(adminOnly)
			{
				protected.GET("", inquiryHandler.GetInquiries)
				protected.PUT("/:id/status", inquiryHandler.UpdateInquiryStatus)
			}
		}

		// Credit application routes
		applications := api.Group("/applications")
		{
			applications.POST("", middleware.LeadRateLimit(), applicationHandler.CreateApplication)

			protected := applications.Group("")
			protected.Use(adminOnly)
			{
				protected.GET("", applicationHandler.GetApplications)
				protected.PUT("/:id/status", applicationHandler.UpdateApplicationStatus)
			}
		}

		// Lead forms (email only, nothing persisted)
		leads := api.Group("")
		leads.Use(middleware.LeadRateLimit())
		{
			leads.POST("/contact", leadHandler.Contact)
			leads.POST("/car-finder", leadHandler.CarFinder)
			leads.POST("/export-query", leadHandler.ExportQuery)
		}

		// Upload routes
		api.POST("/uploads/request-url", adminOnly, middleware.UploadRateLimit(), uploadHandler.RequestUploadURL)
		api.GET("/objects/*path", uploadHandler.GetObject)
		api.POST("/upload", adminOnly, middleware.UploadRateLimit(), uploadHandler.UploadLocal)
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Upload.LocalDir)
	}

	return r
}
