package handler

import (
	"time"

	"github.com/msomdec/daily-diet/internal/domain"
	"github.com/msomdec/daily-diet/internal/service"
)

// MealDTO is the JSON representation of a meal. Field names mirror the
// stored columns, so create/update request bodies and responses share the
// same snake_case vocabulary.
type MealDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsOnDiet    bool   `json:"is_on_diet"`
	Datetime    string `json:"datetime"`
	CreatedAt   string `json:"created_at"`
	UserID      string `json:"user_id"`
}

func toMealDTO(m *domain.Meal) MealDTO {
	return MealDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsOnDiet:    m.IsOnDiet,
		Datetime:    m.Datetime,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UserID:      m.UserID,
	}
}

func toMealDTOs(meals []domain.Meal) []MealDTO {
	dtos := make([]MealDTO, len(meals))
	for i := range meals {
		dtos[i] = toMealDTO(&meals[i])
	}
	return dtos
}

// MetricsDTO is the JSON representation of a user's diet metrics.
type MetricsDTO struct {
	TotalMeals         int `json:"totalMeals"`
	TotalMealsOnDiet   int `json:"totalMealsOnDiet"`
	TotalMealsOutDiet  int `json:"totalMealsOutDiet"`
	BestSequenceOnDiet int `json:"bestSequenceOnDiet"`
}

func toMetricsDTO(m service.DietMetrics) MetricsDTO {
	return MetricsDTO{
		TotalMeals:         m.TotalMeals,
		TotalMealsOnDiet:   m.TotalMealsOnDiet,
		TotalMealsOutDiet:  m.TotalMealsOutDiet,
		BestSequenceOnDiet: m.BestSequenceOnDiet,
	}
}
