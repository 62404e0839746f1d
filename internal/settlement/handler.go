package settlement

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shresth1822/split-expense/pkg/middleware"
	"github.com/Shresth1822/split-expense/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Settle)

	return r
}

// Settle handles POST /settlements
// @Summary      Settle up
// @Description  Record a payment from the acting user to a counterparty, cancelling that much debt
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body SettleRequest true "Settlement request"
// @Success      201 {object} response.APIResponse{data=SettleResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements [post]
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.CounterpartyID == "" {
		response.BadRequest(w, "counterparty_id is required")
		return
	}

	result, err := h.service.Settle(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrNothingToSettle) {
			response.Conflict(w, err.Error())
			return
		}
		if errors.Is(err, ErrCannotSettleSelf) || errors.Is(err, ErrInvalidAmount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to settle up")
		return
	}

	response.JSON(w, http.StatusCreated, result)
}
