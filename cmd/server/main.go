package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/tony-montemuro/smb-website-sub002/internal/api"
	"github.com/tony-montemuro/smb-website-sub002/internal/config"
	"github.com/tony-montemuro/smb-website-sub002/internal/database"
	"github.com/tony-montemuro/smb-website-sub002/internal/handler"
	"github.com/tony-montemuro/smb-website-sub002/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	handler.Init(cfg)

	// Initialize routes
	router := api.SetupRouter(cfg)

	// Wrap router with CORS middleware
	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, cors(router)); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
