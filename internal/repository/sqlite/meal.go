package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/daily-diet/internal/domain"
)

// MealRepository implements domain.MealRepository using SQLite.
//
// Every statement that touches an existing meal carries a
// `WHERE id = ? AND user_id = ?` guard, so the ownership check and the
// read/write happen atomically in one statement. A meal owned by another
// user answers exactly like a missing one.
type MealRepository struct {
	db *sql.DB
}

// NewMealRepository creates a new SQLite-backed MealRepository.
func NewMealRepository(db *DB) *MealRepository {
	return &MealRepository{db: db.SqlDB}
}

func (r *MealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO meals (id, name, description, is_on_diet, datetime, created_at, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meal.ID, meal.Name, meal.Description, meal.IsOnDiet, meal.Datetime, now, meal.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}

	meal.CreatedAt = now
	return nil
}

func (r *MealRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.Meal, error) {
	meal := &domain.Meal{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, is_on_diet, datetime, created_at, user_id
		 FROM meals WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&meal.ID, &meal.Name, &meal.Description, &meal.IsOnDiet, &meal.Datetime, &meal.CreatedAt, &meal.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMealNotFound
		}
		return nil, fmt.Errorf("query meal by id: %w", err)
	}
	return meal, nil
}

// ListByUser returns all meals owned by userID in insertion order. The
// stable ordering is what makes the diet streak metric reproducible.
func (r *MealRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, is_on_diet, datetime, created_at, user_id
		 FROM meals WHERE user_id = ? ORDER BY created_at, id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query meals by user: %w", err)
	}
	defer rows.Close()

	var meals []domain.Meal
	for rows.Next() {
		var meal domain.Meal
		if err := rows.Scan(&meal.ID, &meal.Name, &meal.Description, &meal.IsOnDiet,
			&meal.Datetime, &meal.CreatedAt, &meal.UserID); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, meal)
	}
	return meals, rows.Err()
}

// Update overwrites the mutable fields of a meal owned by meal.UserID.
// ID and created_at are never touched.
func (r *MealRepository) Update(ctx context.Context, meal *domain.Meal) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE meals SET name = ?, description = ?, is_on_diet = ?, datetime = ?
		 WHERE id = ? AND user_id = ?`,
		meal.Name, meal.Description, meal.IsOnDiet, meal.Datetime, meal.ID, meal.UserID,
	)
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM meals WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}
