package routes

import (
	"healthform-server/internal/aggregation"
	"healthform-server/internal/config"
	"healthform-server/internal/extraction"
	"healthform-server/internal/handlers"
	"healthform-server/internal/middleware"
	"healthform-server/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes. The extraction pipeline and
// aggregation engine are built once at startup and shared by the handlers.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, pipeline *extraction.Pipeline, engine *aggregation.Engine) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	reportHandler := handlers.NewReportHandler(db, pipeline, engine, extraction.PlainTextRecoverer{})
	formHandler := handlers.NewFormHandler(db, engine)
	dependentHandler := handlers.NewDependentHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// User management routes
		userRoutes := private.Group("/users")
		{
			// Doctor listing - accessible by all authenticated users
			userRoutes.GET("/doctors", userHandler.GetDoctors)

			// Admin-only routes
			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin)) // Only Admins
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Lab report routes
		reportRoutes := private.Group("/reports")
		{
			// Patients upload their own reports
			reportRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient), reportHandler.UploadReport)

			// Patient can list their own reports, doctors those of their patients (auth in handler)
			reportRoutes.GET("/patient/:patientId", reportHandler.ListReports)

			// Original file download (auth in handler)
			reportRoutes.GET("/:id/file", reportHandler.DownloadReport)

			// Extraction run over a batch of uploaded reports (auth in handler)
			reportRoutes.POST("/patient/:patientId/process", reportHandler.ProcessReports)
		}

		// Health form routes
		formRoutes := private.Group("/forms")
		{
			formRoutes.GET("/patient/:patientId", formHandler.GetForm)    // Auth in handler
			formRoutes.PUT("/patient/:patientId", formHandler.UpdateForm) // Auth in handler
		}

		// Dependent link routes
		dependentRoutes := private.Group("/dependents")
		{
			dependentRoutes.POST("", dependentHandler.RequestDependent)
			dependentRoutes.GET("", dependentHandler.ListDependents)
			dependentRoutes.PATCH("/:id/confirm", dependentHandler.ConfirmDependent)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
