package friendship

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shresth1822/split-expense/internal/user"
	"github.com/Shresth1822/split-expense/pkg/middleware"
	"github.com/Shresth1822/split-expense/pkg/response"
)

// Handler handles HTTP requests for friendship operations
type Handler struct {
	service *Service
}

// NewHandler creates a new friendship handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for friendship endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.SendRequest)
	r.Post("/{userId}/accept", h.Accept)
	r.Delete("/{userId}", h.Remove)

	return r
}

// List handles GET /friends
// @Summary      List friends
// @Description  List accepted friends and pending requests for the acting user
// @Tags         friends
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Friend}
// @Router       /friends [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	friends, err := h.service.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list friends")
		return
	}

	response.JSON(w, http.StatusOK, friends)
}

// SendRequest handles POST /friends
// @Summary      Send a friend request
// @Description  Send a friend request to the user registered under an email
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        request body SendRequestRequest true "Friend request"
// @Success      201 {object} response.APIResponse{data=Friendship}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /friends [post]
func (h *Handler) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req SendRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	friendship, err := h.service.SendRequest(r.Context(), userID, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			response.NotFound(w, "No user registered under that email")
			return
		}
		if errors.Is(err, ErrAlreadyFriends) {
			response.Conflict(w, err.Error())
			return
		}
		if errors.Is(err, ErrCannotFriendSelf) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to send friend request")
		return
	}

	response.JSON(w, http.StatusCreated, friendship)
}

// Accept handles POST /friends/{userId}/accept
// @Summary      Accept a friend request
// @Tags         friends
// @Produce      json
// @Param        userId path string true "Initiating user ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /friends/{userId}/accept [post]
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	if err := h.service.Accept(r.Context(), userID, chi.URLParam(r, "userId")); err != nil {
		if errors.Is(err, ErrNoPendingRequest) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to accept friend request")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Friend request accepted"})
}

// Remove handles DELETE /friends/{userId}
// @Summary      Remove a friend
// @Description  Remove a friendship or reject a pending request
// @Tags         friends
// @Produce      json
// @Param        userId path string true "Other user ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /friends/{userId} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	if err := h.service.Remove(r.Context(), userID, chi.URLParam(r, "userId")); err != nil {
		if errors.Is(err, ErrFriendshipNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to remove friend")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Friend removed"})
}
