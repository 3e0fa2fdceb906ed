package handler

import (
	"net/http"

	"github.com/msomdec/daily-diet/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Registration and
// the health check are public; everything else sits behind RequireSession.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, meals *service.MealService, cookieSecure bool) {
	userHandler := NewUserHandler(users, cookieSecure)
	mealHandler := NewMealHandler(meals)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /users", userHandler.HandleRegister)
	mux.Handle("GET /users/metrics", RequireSession(http.HandlerFunc(userHandler.HandleMetrics)))

	mux.Handle("GET /meals", RequireSession(http.HandlerFunc(mealHandler.HandleList)))
	mux.Handle("POST /meals", RequireSession(http.HandlerFunc(mealHandler.HandleCreate)))
	mux.Handle("GET /meals/{id}", RequireSession(http.HandlerFunc(mealHandler.HandleGet)))
	mux.Handle("PUT /meals/{id}", RequireSession(http.HandlerFunc(mealHandler.HandleUpdate)))
	mux.Handle("DELETE /meals/{id}", RequireSession(http.HandlerFunc(mealHandler.HandleDelete)))
}
