package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/daily-diet/internal/domain"
	"github.com/msomdec/daily-diet/internal/service"
)

// UserHandler handles registration and metrics HTTP requests.
type UserHandler struct {
	users        *service.UserService
	cookieSecure bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, cookieSecure bool) *UserHandler {
	return &UserHandler{users: users, cookieSecure: cookieSecure}
}

// HandleRegister processes a JSON registration request.
// POST /users
// Request:  {"name":"...","email":"..."}
// Response: 201 empty body, sets the sessionId cookie.
//
// The cookie is issued only when the user row was actually inserted; a
// failed registration hands out no credential.
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := readJSON(r, &req); err != nil || req.Name == nil || req.Email == nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	sessionID, err := h.users.Register(r.Context(), *req.Name, *req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("register user", "error", err)
		writeMessage(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   604800, // 7 days
	})

	w.WriteHeader(http.StatusCreated)
}

// HandleMetrics returns diet metrics for the session's user.
// GET /users/metrics
// Response: {"metrics":{"totalMeals":...,"totalMealsOnDiet":...,"totalMealsOutDiet":...,"bestSequenceOnDiet":...}}
func (h *UserHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionFromContext(r.Context())

	metrics, err := h.users.Metrics(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeMessage(w, http.StatusBadRequest, "User not found")
			return
		}
		slog.Error("compute metrics", "error", err)
		writeMessage(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"metrics": toMetricsDTO(metrics),
	})
}
