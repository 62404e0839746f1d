package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Shresth1822/split-expense/pkg/middleware"
	"github.com/Shresth1822/split-expense/pkg/response"
)

// Handler handles HTTP requests for profile operations
type Handler struct {
	service *Service
}

// NewHandler creates a new profile handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for profile endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)

	return r
}

// Create handles POST /users
// @Summary      Register a profile
// @Description  Create a new user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateProfileRequest true "Profile creation request"
// @Success      201 {object} response.APIResponse{data=ProfileResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	profile, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyInUse) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create profile")
		return
	}

	response.JSON(w, http.StatusCreated, profile.ToResponse())
}

// GetByID handles GET /users/{id}
// @Summary      Get profile by ID
// @Tags         users
// @Produce      json
// @Param        id path string true "Profile ID"
// @Success      200 {object} response.APIResponse{data=ProfileResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /users/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get profile")
		return
	}

	response.JSON(w, http.StatusOK, profile.ToResponse())
}

// List handles GET /users
// @Summary      List profiles
// @Tags         users
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ProfileResponse}
// @Router       /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	profiles, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list profiles")
		return
	}

	profileResponses := make([]*ProfileResponse, len(profiles))
	for i, p := range profiles {
		profileResponses[i] = p.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, profileResponses, meta)
}

// Update handles PATCH /users/{id}
// @Summary      Update own profile
// @Description  Update display fields of the acting user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "Profile ID"
// @Param        request body UpdateProfileRequest true "Profile update request"
// @Success      200 {object} response.APIResponse{data=ProfileResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /users/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	profile, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrNotOwner) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update profile")
		return
	}

	response.JSON(w, http.StatusOK, profile.ToResponse())
}
