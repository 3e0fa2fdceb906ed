package domain

import (
	"context"
	"time"
)

// Meal is a single meal record. Datetime is the client-supplied moment the
// meal happened, stored verbatim; CreatedAt is when the record was inserted.
type Meal struct {
	ID          string
	Name        string
	Description string
	IsOnDiet    bool
	Datetime    string
	CreatedAt   time.Time
	UserID      string
}

// MealRepository defines persistence operations for meals. Every read and
// write is scoped to an owner: a meal that exists but belongs to another
// user is indistinguishable from one that does not exist.
type MealRepository interface {
	Create(ctx context.Context, meal *Meal) error
	GetByIDForUser(ctx context.Context, id, userID string) (*Meal, error)
	ListByUser(ctx context.Context, userID string) ([]Meal, error)
	Update(ctx context.Context, meal *Meal) error
	Delete(ctx context.Context, id, userID string) error
}
