package http

import (
	"net/http"

	"salesincentive-backend/internal/service"
)

// AnalyticsHandler exposes leaderboard and performance reporting
type AnalyticsHandler struct {
	leaderboardService service.LeaderboardService
	performanceService service.PerformanceService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(leaderboard service.LeaderboardService, performance service.PerformanceService) *AnalyticsHandler {
	return &AnalyticsHandler{
		leaderboardService: leaderboard,
		performanceService: performance,
	}
}

// Leaderboard handles GET /api/leaderboard with an optional period filter
func (h *AnalyticsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	entries, err := h.leaderboardService.GetLeaderboard(r.Context(), period)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// Performance handles GET /api/sales/performance/{userId}
func (h *AnalyticsHandler) Performance(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, err)
		return
	}
	summary, err := h.performanceService.GetSummary(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
