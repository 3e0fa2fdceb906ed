package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/msomdec/daily-diet/internal/domain"
)

// UserService handles registration and per-user diet metrics.
type UserService struct {
	users domain.UserRepository
	meals domain.MealRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, meals domain.MealRepository) *UserService {
	return &UserService{users: users, meals: meals}
}

// Register creates a new user account and mints its session token.
// The returned token is the account's only credential; the caller is
// expected to hand it to the client as the session cookie.
func (s *UserService) Register(ctx context.Context, name, email string) (string, error) {
	if name == "" || email == "" {
		return "", fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}

	sessionID := uuid.NewString()
	user := &domain.User{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Name:      name,
		Email:     email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return sessionID, nil
}

// DietMetrics summarizes a user's meal history.
type DietMetrics struct {
	TotalMeals         int
	TotalMealsOnDiet   int
	TotalMealsOutDiet  int
	BestSequenceOnDiet int
}

// Metrics resolves the session token to a user and computes that user's
// diet metrics over their meals in stored order.
func (s *UserService) Metrics(ctx context.Context, sessionID string) (DietMetrics, error) {
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		return DietMetrics{}, err
	}

	meals, err := s.meals.ListByUser(ctx, user.ID)
	if err != nil {
		return DietMetrics{}, fmt.Errorf("list meals: %w", err)
	}

	return MetricsFor(meals), nil
}

// MetricsFor computes diet metrics for a slice of meals. The best sequence
// is the longest run of consecutive on-diet meals; an off-diet meal resets
// the running streak.
func MetricsFor(meals []domain.Meal) DietMetrics {
	var m DietMetrics
	streak := 0
	for _, meal := range meals {
		m.TotalMeals++
		if meal.IsOnDiet {
			m.TotalMealsOnDiet++
			streak++
			if streak > m.BestSequenceOnDiet {
				m.BestSequenceOnDiet = streak
			}
		} else {
			m.TotalMealsOutDiet++
			streak = 0
		}
	}
	return m
}
