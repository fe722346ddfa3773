package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gazinassis/opshub-backend/api/routes"
	"github.com/gazinassis/opshub-backend/internal/config"
	"github.com/gazinassis/opshub-backend/internal/handlers"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	mongorepo "github.com/gazinassis/opshub-backend/internal/repositories/mongodb"
	"github.com/gazinassis/opshub-backend/internal/services"
	"github.com/gazinassis/opshub-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("[WARN] Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var campaignRepo repositories.CampaignRepository = mongorepo.NewCampaignRepository(db)
	var collaboratorRepo repositories.CollaboratorRepository = mongorepo.NewCollaboratorRepository(db)
	var downloadRepo repositories.DownloadRepository = mongorepo.NewDownloadRepository(db)
	var tvImageRepo repositories.TVImageRepository = mongorepo.NewTVImageRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Services
	authService := services.NewAuthService(adminUserRepo, cfg)
	campaignService := services.NewCampaignService(campaignRepo)
	collaboratorService := services.NewCollaboratorService(collaboratorRepo)
	downloadService := services.NewDownloadService(downloadRepo)
	tvImageService := services.NewTVImageService(tvImageRepo)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService),
		CampaignHandler:     handlers.NewCampaignHandler(campaignService),
		CollaboratorHandler: handlers.NewCollaboratorHandler(collaboratorService),
		DownloadHandler:     handlers.NewDownloadHandler(downloadService),
		TVImageHandler:      handlers.NewTVImageHandler(tvImageService),
		CalculatorHandler:   handlers.NewCalculatorHandler(),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
