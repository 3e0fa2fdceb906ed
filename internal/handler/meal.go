package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/msomdec/daily-diet/internal/domain"
	"github.com/msomdec/daily-diet/internal/service"
)

// MealHandler handles meal CRUD HTTP requests. Every route is behind
// RequireSession; the handlers resolve the session token to a user through
// the service layer and answer 400 "User not found" for unknown tokens.
type MealHandler struct {
	meals *service.MealService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(meals *service.MealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// mealRequest is the shared create/update body. Pointer fields distinguish
// an absent field from a zero value, since all four are required.
type mealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsOnDiet    *bool   `json:"is_on_diet"`
	Datetime    *string `json:"datetime"`
}

func (req *mealRequest) toInput() (service.MealInput, bool) {
	if req.Name == nil || req.Description == nil || req.IsOnDiet == nil || req.Datetime == nil {
		return service.MealInput{}, false
	}
	return service.MealInput{
		Name:        *req.Name,
		Description: *req.Description,
		IsOnDiet:    *req.IsOnDiet,
		Datetime:    *req.Datetime,
	}, true
}

// HandleList returns all meals owned by the session's user.
// GET /meals
// Response: {"meals":[...]}
func (h *MealHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionFromContext(r.Context())

	meals, err := h.meals.List(r.Context(), sessionID)
	if err != nil {
		h.writeMealError(w, "list meals", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"meals": toMealDTOs(meals),
	})
}

// HandleGet returns a single meal by id.
// GET /meals/{id}
// Response: {"meal":{...}}
func (h *MealHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}
	sessionID := SessionFromContext(r.Context())

	meal, err := h.meals.Get(r.Context(), sessionID, id)
	if err != nil {
		h.writeMealError(w, "get meal", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"meal": toMealDTO(meal),
	})
}

// HandleCreate records a new meal for the session's user.
// POST /meals
// Request:  {"name":"...","description":"...","is_on_diet":true,"datetime":"..."}
// Response: 201 empty body.
func (h *MealHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	input, ok := req.toInput()
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	sessionID := SessionFromContext(r.Context())

	if _, err := h.meals.Create(r.Context(), sessionID, input); err != nil {
		h.writeMealError(w, "create meal", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleUpdate overwrites a meal's client-supplied fields. Partial updates
// are not supported; the body carries all four fields like create.
// PUT /meals/{id}
// Response: 200 empty body.
func (h *MealHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}

	var req mealRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	input, ok := req.toInput()
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	sessionID := SessionFromContext(r.Context())

	if err := h.meals.Update(r.Context(), sessionID, id, input); err != nil {
		h.writeMealError(w, "update meal", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleDelete removes a meal owned by the session's user.
// DELETE /meals/{id}
// Response: 204 empty body.
func (h *MealHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}
	sessionID := SessionFromContext(r.Context())

	if err := h.meals.Delete(r.Context(), sessionID, id); err != nil {
		h.writeMealError(w, "delete meal", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// mealID extracts and validates the {id} path parameter. A malformed id is
// rejected before any store access.
func mealID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid meal id.")
		return "", false
	}
	return id, true
}

// writeMealError maps service errors to responses. An unknown session token
// and a missing (or foreign-owned) meal are both 400s; the bodies are the
// only distinction, and foreign ownership is reported exactly like absence.
func (h *MealHandler) writeMealError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeMessage(w, http.StatusBadRequest, "User not found")
	case errors.Is(err, domain.ErrMealNotFound):
		writeMessage(w, http.StatusBadRequest, "Meal not found")
	default:
		slog.Error(op, "error", err)
		writeMessage(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
