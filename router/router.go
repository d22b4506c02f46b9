package router

import (
	"github.com/VoyageGenie/voyage-backend/config"
	"github.com/VoyageGenie/voyage-backend/handlers"
	"github.com/VoyageGenie/voyage-backend/middleware"
	"github.com/VoyageGenie/voyage-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies holds everything needed to wire the routes.
type Dependencies struct {
	Config           *config.Config
	AuthHandler      *handlers.AuthHandler
	ItineraryHandler *handlers.ItineraryHandler
	SectionHandler   *handlers.SectionHandler
	ImageHandler     *handlers.ImageHandler
	HealthHandler    *handlers.HealthHandler
	RateLimiter      services.RateLimiterInterface
}

// SetupRouter configures and returns the main Gin engine with all routes.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics endpoints stay outside auth.
	r.GET("/health", deps.HealthHandler.Detailed)
	r.GET("/health/liveness", deps.HealthHandler.Liveness)
	r.GET("/health/readiness", deps.HealthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		authGate := middleware.AuthMiddleware(&deps.Config.Server)

		authRoutes := v1.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimiter(deps.RateLimiter, deps.Config.Auth.RequestsPerMinute))
		{
			authRoutes.POST("/register", deps.AuthHandler.Register)
			authRoutes.POST("/login", deps.AuthHandler.Login)
			authRoutes.POST("/password/change", deps.AuthHandler.ChangePassword)
			authRoutes.GET("/question", deps.AuthHandler.GetSecurityQuestion)
			authRoutes.GET("/questions", deps.AuthHandler.SecurityQuestions)
			authRoutes.POST("/password/reset", deps.AuthHandler.ResetPassword)
			authRoutes.GET("/me", authGate, deps.AuthHandler.Me)
		}

		itineraryRoutes := v1.Group("/itineraries")
		itineraryRoutes.Use(authGate)
		{
			itineraryRoutes.GET("", deps.ItineraryHandler.List)
			itineraryRoutes.POST("", deps.ItineraryHandler.Create)
			itineraryRoutes.GET("/:id", deps.ItineraryHandler.Get)
			itineraryRoutes.PUT("/:id", deps.ItineraryHandler.Replace)
			itineraryRoutes.PATCH("/:id/trip", deps.ItineraryHandler.UpdateTrip)
			itineraryRoutes.DELETE("/:id", deps.ItineraryHandler.Delete)
			itineraryRoutes.GET("/:id/expenses", deps.ItineraryHandler.Expenses)

			activityRoutes := itineraryRoutes.Group("/:id/days/:dayID/activities")
			{
				activityRoutes.POST("", deps.SectionHandler.AddActivity)
				activityRoutes.PUT("/:activityID", deps.SectionHandler.UpdateActivity)
				activityRoutes.DELETE("/:activityID", deps.SectionHandler.DeleteActivity)
				activityRoutes.POST("/:activityID/copy", deps.SectionHandler.CopyActivity)
				activityRoutes.POST("/:activityID/move", deps.SectionHandler.MoveActivity)
			}

			packingRoutes := itineraryRoutes.Group("/:id/packing")
			{
				packingRoutes.POST("", deps.SectionHandler.AddPackingItem)
				packingRoutes.PATCH("/:itemID/toggle", deps.SectionHandler.TogglePackingItem)
				packingRoutes.DELETE("/:itemID", deps.SectionHandler.DeletePackingItem)
			}

			transportRoutes := itineraryRoutes.Group("/:id/transports")
			{
				transportRoutes.POST("", deps.SectionHandler.AddTransport)
				transportRoutes.PUT("/:transportID", deps.SectionHandler.UpdateTransport)
				transportRoutes.DELETE("/:transportID", deps.SectionHandler.DeleteTransport)
			}

			concertRoutes := itineraryRoutes.Group("/:id/concerts")
			{
				concertRoutes.POST("", deps.SectionHandler.AddConcert)
				concertRoutes.PUT("/:concertID", deps.SectionHandler.UpdateConcert)
				concertRoutes.PATCH("/:concertID/checklist/:itemID/toggle", deps.SectionHandler.ToggleConcertChecklistItem)
				concertRoutes.DELETE("/:concertID", deps.SectionHandler.DeleteConcert)
			}

			shoppingRoutes := itineraryRoutes.Group("/:id/shopping")
			{
				shoppingRoutes.POST("", deps.SectionHandler.AddShoppingItem)
				shoppingRoutes.PUT("/:itemID", deps.SectionHandler.UpdateShoppingItem)
				shoppingRoutes.PATCH("/:itemID/toggle", deps.SectionHandler.ToggleShoppingItem)
				shoppingRoutes.DELETE("/:itemID", deps.SectionHandler.DeleteShoppingItem)
			}

			itineraryRoutes.POST("/:id/images", deps.ImageHandler.Upload)
		}
	}

	return r
}
