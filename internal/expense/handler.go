package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Shresth1822/split-expense/pkg/middleware"
	"github.com/Shresth1822/split-expense/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/recent", h.ListRecent)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	r.Get("/group/{groupId}", h.ListByGroup)

	return r
}

func withSplits(result *ExpenseWithSplits) *ExpenseResponse {
	resp := result.Expense.ToResponse()
	resp.Splits = result.Splits
	return resp
}

func mapServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrExpenseNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrNotAuthorized):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrEmptyDescription),
		errors.Is(err, ErrNoParticipants),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrSettlementReadOnly):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, "Something went wrong")
	}
}

// Create handles POST /expenses
// @Summary      Create an expense
// @Description  Create an expense and split it among participants using the equal, exact or percentage strategy
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, withSplits(result))
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Description  Get an expense with all its splits
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, withSplits(result))
}

// ListByGroup handles GET /expenses/group/{groupId}
// @Summary      List expenses by group
// @Tags         expenses
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /expenses/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	expenses, total, err := h.service.ListByGroup(r.Context(), chi.URLParam(r, "groupId"), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	expenseResponses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		expenseResponses[i] = e.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, expenseResponses, meta)
}

// ListRecent handles GET /expenses/recent
// @Summary      Recent activity
// @Description  List the acting user's most recent expenses across all groups
// @Tags         expenses
// @Produce      json
// @Param        limit query int false "Max entries" default(10)
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /expenses/recent [get]
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	expenses, err := h.service.ListRecent(r.Context(), userID, limit)
	if err != nil {
		response.InternalError(w, "Failed to list recent expenses")
		return
	}

	expenseResponses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		expenseResponses[i] = e.ToResponse()
	}

	response.JSON(w, http.StatusOK, expenseResponses)
}

// Update handles PUT /expenses/{id}
// @Summary      Edit an expense
// @Description  Replace the expense's fields and recompute its splits atomically
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID"
// @Param        request body UpdateExpenseRequest true "Expense update request"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, withSplits(result))
}

// Delete handles DELETE /expenses/{id}
// @Summary      Delete an expense
// @Description  Delete an expense; its splits are removed with it
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		mapServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}
