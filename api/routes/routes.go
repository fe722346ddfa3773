package routes

import (
	"net/http"

	"github.com/gazinassis/opshub-backend/internal/config"
	"github.com/gazinassis/opshub-backend/internal/handlers"
	"github.com/gazinassis/opshub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies groups the handlers wired into the router
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	CampaignHandler     *handlers.CampaignHandler
	CollaboratorHandler *handlers.CollaboratorHandler
	DownloadHandler     *handlers.DownloadHandler
	TVImageHandler      *handlers.TVImageHandler
	CalculatorHandler   *handlers.CalculatorHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)

		// Employee directory
		public.GET("/collaborators", deps.CollaboratorHandler.GetCollaborators)
		public.GET("/collaborators/:id", deps.CollaboratorHandler.GetCollaboratorByID)

		// Download catalog
		public.GET("/downloads", deps.DownloadHandler.GetDownloads)

		// TV display
		public.GET("/tv-images", deps.TVImageHandler.GetActiveTVImages)

		// Sales duel, read side
		public.GET("/campaigns/current", deps.CampaignHandler.GetCurrentCampaign)
		public.GET("/campaigns/current/leaderboard", deps.CampaignHandler.GetLeaderboard)

		// Margin calculator
		public.GET("/calculator/profit", deps.CalculatorHandler.ProfitPercentage)
		public.GET("/calculator/sale-price", deps.CalculatorHandler.SalePrice)
	}

	// Admin routes
	admin := router.Group("/api/v1")
	admin.Use(middleware.JWTAuthMiddleware(cfg), middleware.RequireAdmin())
	{
		admin.POST("/auth/register", deps.AuthHandler.Register)

		campaigns := admin.Group("/campaigns")
		{
			campaigns.GET("", deps.CampaignHandler.GetAllCampaigns)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaignByID)
			campaigns.POST("", deps.CampaignHandler.CreateCampaign)
			campaigns.PUT("/:id", deps.CampaignHandler.UpdateCampaign)
			campaigns.DELETE("/:id", deps.CampaignHandler.DeleteCampaign)
			campaigns.POST("/current/import", deps.CampaignHandler.ImportSales)
		}

		collaborators := admin.Group("/collaborators")
		{
			collaborators.POST("", deps.CollaboratorHandler.CreateCollaborator)
			collaborators.PUT("/:id", deps.CollaboratorHandler.UpdateCollaborator)
			collaborators.DELETE("/:id", deps.CollaboratorHandler.DeleteCollaborator)
		}

		downloads := admin.Group("/downloads")
		{
			downloads.POST("", deps.DownloadHandler.CreateDownload)
			downloads.DELETE("/:id", deps.DownloadHandler.DeleteDownload)
		}

		tvImages := admin.Group("/tv-images")
		{
			tvImages.GET("/all", deps.TVImageHandler.GetAllTVImages)
			tvImages.POST("", deps.TVImageHandler.CreateTVImage)
			tvImages.PUT("/:id", deps.TVImageHandler.UpdateTVImage)
			tvImages.DELETE("/:id", deps.TVImageHandler.DeleteTVImage)
		}
	}

	return router
}
