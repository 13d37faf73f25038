package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"salesincentive-backend/internal/service"
)

// Services bundles the service layer consumed by the HTTP API
type Services struct {
	Deal         service.DealService
	Leaderboard  service.LeaderboardService
	Performance  service.PerformanceService
	Simulation   service.SimulationService
	Notification service.NotificationService
	Audit        service.AuditService
	Policy       service.PolicyService
}

// NewRouter builds the mux router with all API routes registered
func NewRouter(services *Services) *mux.Router {
	router := mux.NewRouter()

	dealHandler := NewDealHandler(services.Deal)
	analyticsHandler := NewAnalyticsHandler(services.Leaderboard, services.Performance)
	simulationHandler := NewSimulationHandler(services.Simulation)
	notificationHandler := NewNotificationHandler(services.Notification)
	adminHandler := NewAdminHandler(services.Audit, services.Policy)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/deals", dealHandler.CreateDeal).Methods("POST")
	api.HandleFunc("/deals", dealHandler.ListDeals).Methods("GET")
	api.HandleFunc("/deals/approve-low-risk", dealHandler.ApproveLowRisk).Methods("POST")
	api.HandleFunc("/deals/{id:[0-9]+}", dealHandler.GetDeal).Methods("GET")
	api.HandleFunc("/deals/{id:[0-9]+}/status", dealHandler.TransitionStatus).Methods("PATCH")

	api.HandleFunc("/leaderboard", analyticsHandler.Leaderboard).Methods("GET")
	api.HandleFunc("/sales/performance/{userId:[0-9]+}", analyticsHandler.Performance).Methods("GET")
	api.HandleFunc("/sales/my-deals/{userId:[0-9]+}", dealHandler.MyDeals).Methods("GET")
	api.HandleFunc("/sales/payouts/{userId:[0-9]+}", dealHandler.Payouts).Methods("GET")

	api.HandleFunc("/simulation/preview", simulationHandler.Preview).Methods("POST")

	api.HandleFunc("/notifications", notificationHandler.List).Methods("GET")
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods("PATCH")

	api.HandleFunc("/audit-logs", adminHandler.AuditLogs).Methods("GET")
	api.HandleFunc("/policies", adminHandler.ListPolicies).Methods("GET")
	api.HandleFunc("/policies/{id:[0-9]+}", adminHandler.GetPolicy).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return router
}
