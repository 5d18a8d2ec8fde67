package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/tony-montemuro/smb-website-sub002/internal/config"
	"github.com/tony-montemuro/smb-website-sub002/internal/handler"
	"github.com/tony-montemuro/smb-website-sub002/internal/middleware"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

func SetupRouter(cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	moderatorRoutes := r.PathPrefix("/").Subrouter()
	moderatorRoutes.Use(middleware.AuthMiddleware)
	moderatorRoutes.Use(middleware.ModeratorOnly)

	submitRoutes := r.PathPrefix("/").Subrouter()
	submitRoutes.Use(middleware.AuthMiddleware)
	submitRoutes.Use(middleware.NewRateLimiter(cfg.SubmitRatePerSec, cfg.SubmitBurst).Limit)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Games / levels
	r.HandleFunc("/games", handler.GetGames).Methods(http.MethodGet)
	r.HandleFunc("/games/{abb}", handler.GetGame).Methods(http.MethodGet)
	r.HandleFunc("/games/{abb}/{category}/levels", handler.GetLevels).Methods(http.MethodGet)
	moderatorRoutes.HandleFunc("/games/{abb}/boxart", handler.UploadBoxArt).Methods(http.MethodPost)

	// Boards
	r.HandleFunc("/games/{abb}/{category}/{type}/records", handler.GetRecords).Methods(http.MethodGet)
	r.HandleFunc("/games/{abb}/{category}/{type}/medals", handler.GetMedals).Methods(http.MethodGet)
	r.HandleFunc("/games/{abb}/{category}/{type}/totals", handler.GetTotals).Methods(http.MethodGet)

	// Users
	r.HandleFunc("/users", handler.GetProfiles).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/submissions", handler.GetUserSubmissions).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Submissions
	submitRoutes.HandleFunc("/submissions", handler.CreateSubmission).Methods(http.MethodPost)
	r.HandleFunc("/submissions/recent", handler.GetRecentSubmissions).Methods(http.MethodGet)

	// Moderation
	moderatorRoutes.HandleFunc("/submissions/unapproved", handler.GetUnapprovedSubmissions).Methods(http.MethodGet)
	moderatorRoutes.HandleFunc("/submissions/{type}/{id}/approve", handler.ApproveSubmission).Methods(http.MethodPost)
	moderatorRoutes.HandleFunc("/submissions/{type}/{id}", handler.DeleteSubmission).Methods(http.MethodDelete)

	// Notifications
	authenticatedRoutes.HandleFunc("/notifications", handler.GetNotifications).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/notifications/{id}", handler.DeleteNotification).Methods(http.MethodDelete)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
