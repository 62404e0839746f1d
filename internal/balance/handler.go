package balance

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shresth1822/split-expense/pkg/middleware"
	"github.com/Shresth1822/split-expense/pkg/response"
)

// Handler handles HTTP requests for balance queries
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.Summary)
	r.Get("/me/debts", h.Breakdown)
	r.Get("/group/{groupId}", h.Group)

	return r
}

// Summary handles GET /balances/me
// @Summary      My balance summary
// @Description  Total owed to the acting user, total they owe and the net
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Summary}
// @Router       /balances/me [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to compute balance")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Breakdown handles GET /balances/me/debts
// @Summary      My debt breakdown
// @Description  Per-counterparty net positions with contributing expenses; positive total means the acting user owes
// @Tags         balances
// @Produce      json
// @Param        include_settled query bool false "Include counterparties whose position nets to zero" default(false)
// @Success      200 {object} response.APIResponse{data=[]DebtItem}
// @Router       /balances/me/debts [get]
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	includeSettled := r.URL.Query().Get("include_settled") == "true"

	items, err := h.service.Breakdown(r.Context(), userID, includeSettled)
	if err != nil {
		response.InternalError(w, "Failed to compute debt breakdown")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// Group handles GET /balances/group/{groupId}
// @Summary      Group balances
// @Description  Per-member net positions and suggested transfers that settle the group
// @Tags         balances
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Success      200 {object} response.APIResponse
// @Router       /balances/group/{groupId} [get]
func (h *Handler) Group(w http.ResponseWriter, r *http.Request) {
	members, transfers, err := h.service.Group(r.Context(), chi.URLParam(r, "groupId"))
	if err != nil {
		response.InternalError(w, "Failed to compute group balances")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"members":   members,
		"transfers": transfers,
	})
}
