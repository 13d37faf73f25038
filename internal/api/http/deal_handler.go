package http

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/service"
)

var validate = validator.New()

// DealHandler exposes the deal lifecycle over HTTP
type DealHandler struct {
	dealService service.DealService
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

type createDealRequest struct {
	UserID            int64   `json:"userId" validate:"required,gt=0"`
	Amount            float64 `json:"amount" validate:"required"`
	Date              *string `json:"date"`
	Rate              float64 `json:"rate"`
	Incentive         float64 `json:"incentive"`
	PolicyID          *int64  `json:"policyId"`
	CreatedBy         *int64  `json:"createdBy"`
	DealName          string  `json:"dealName"`
	OrganizationName  string  `json:"organizationName"`
	DealType          string  `json:"dealType"`
	ExpectedCloseDate *string `json:"expectedCloseDate"`
	Priority          string  `json:"priority"`
	DealNotes         string  `json:"dealNotes"`
	ClientName        string  `json:"clientName"`
	Industry          string  `json:"industry"`
	Region            string  `json:"region"`
	Currency          string  `json:"currency"`
}

type transitionStatusRequest struct {
	Status  string  `json:"status" validate:"required"`
	Reason  *string `json:"reason"`
	Comment *string `json:"comment"`
	ActorID *int64  `json:"actorId"`
}

// CreateDeal handles POST /api/deals
func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var req createDealRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, domain.Validationf("invalid deal request: %v", err))
		return
	}

	deal, err := h.dealService.CreateDeal(r.Context(), service.CreateDealRequest{
		UserID:            req.UserID,
		Amount:            req.Amount,
		Date:              req.Date,
		Rate:              req.Rate,
		Incentive:         req.Incentive,
		PolicyID:          req.PolicyID,
		CreatedBy:         req.CreatedBy,
		DealName:          req.DealName,
		OrganizationName:  req.OrganizationName,
		DealType:          req.DealType,
		ExpectedCloseDate: req.ExpectedCloseDate,
		Priority:          req.Priority,
		DealNotes:         req.DealNotes,
		ClientName:        req.ClientName,
		Industry:          req.Industry,
		Region:            req.Region,
		Currency:          req.Currency,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, deal)
}

// GetDeal handles GET /api/deals/{id}
func (h *DealHandler) GetDeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	deal, err := h.dealService.GetDeal(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deal)
}

// ListDeals handles GET /api/deals with an optional user_id filter
func (h *DealHandler) ListDeals(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, domain.Validationf("invalid user_id: %s", raw))
			return
		}
		userID = &id
	}
	deals, err := h.dealService.ListDeals(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deals)
}

// TransitionStatus handles PATCH /api/deals/{id}/status
func (h *DealHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req transitionStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, domain.Validationf("invalid transition request: %v", err))
		return
	}

	deal, err := h.dealService.TransitionStatus(r.Context(), id, req.Status, req.Reason, req.Comment, req.ActorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deal)
}

// ApproveLowRisk handles POST /api/deals/approve-low-risk
func (h *DealHandler) ApproveLowRisk(w http.ResponseWriter, r *http.Request) {
	approved, err := h.dealService.BulkAutoApprove(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"approvedCount": len(approved),
		"deals":         approved,
	})
}

// MyDeals handles GET /api/sales/my-deals/{userId}
func (h *DealHandler) MyDeals(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, err)
		return
	}
	deals, err := h.dealService.ListDeals(r.Context(), &userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deals)
}

// Payouts handles GET /api/sales/payouts/{userId}
func (h *DealHandler) Payouts(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, err)
		return
	}
	payouts, err := h.dealService.ListPayouts(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payouts)
}

// pathID parses a numeric path variable
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Validationf("invalid %s: %s", name, raw)
	}
	return id, nil
}
