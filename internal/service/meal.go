package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/msomdec/daily-diet/internal/domain"
)

// MealService handles meal CRUD. Every operation first resolves the session
// token to a user and then operates only on that user's meals.
type MealService struct {
	meals domain.MealRepository
	users domain.UserRepository
}

// NewMealService creates a new MealService.
func NewMealService(meals domain.MealRepository, users domain.UserRepository) *MealService {
	return &MealService{meals: meals, users: users}
}

// MealInput carries the client-supplied fields of a meal. All four fields
// are required on both create and update; partial updates are not supported.
type MealInput struct {
	Name        string
	Description string
	IsOnDiet    bool
	Datetime    string
}

// List returns all meals owned by the session's user in stored order.
func (s *MealService) List(ctx context.Context, sessionID string) ([]domain.Meal, error) {
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.meals.ListByUser(ctx, user.ID)
}

// Get returns a single meal owned by the session's user.
func (s *MealService) Get(ctx context.Context, sessionID, mealID string) (*domain.Meal, error) {
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.meals.GetByIDForUser(ctx, mealID, user.ID)
}

// Create records a new meal for the session's user.
func (s *MealService) Create(ctx context.Context, sessionID string, input MealInput) (*domain.Meal, error) {
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	meal := &domain.Meal{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		IsOnDiet:    input.IsOnDiet,
		Datetime:    input.Datetime,
		UserID:      user.ID,
	}

	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

// Update overwrites the client-supplied fields of a meal owned by the
// session's user. The meal's id and creation time are unchanged.
func (s *MealService) Update(ctx context.Context, sessionID, mealID string, input MealInput) error {
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}

	meal := &domain.Meal{
		ID:          mealID,
		Name:        input.Name,
		Description: input.Description,
		IsOnDiet:    input.IsOnDiet,
		Datetime:    input.Datetime,
		UserID:      user.ID,
	}

	return s.meals.Update(ctx, meal)
}

// Delete removes a meal owned by the session's user.
func (s *MealService) Delete(ctx context.Context, sessionID, mealID string) error {
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.meals.Delete(ctx, mealID, user.ID)
}
