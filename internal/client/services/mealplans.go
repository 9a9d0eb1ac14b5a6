package services

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

func (s *Service) ListMealPlans(ctx context.Context) ([]models.MealPlan, error) {
	l, err := get[models.MealPlanList](ctx, s.gw, endpointMealPlans, nil)
	if err != nil {
		return nil, err
	}
	return l.MealPlans, nil
}

func (s *Service) CreateMealPlan(ctx context.Context, p models.NewMealPlan) (*models.MealPlan, error) {
	if p.Meals == nil {
		p.Meals = []models.MealEntry{}
	}
	plan, err := post[models.MealPlan](ctx, s.gw, endpointMealPlans, p)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// AddRecipeToMealPlan attaches one item to planID. req.Day must already be a
// calendar date; see planner.NextOccurrence.
func (s *Service) AddRecipeToMealPlan(ctx context.Context, planID string, req models.MealItemRequest) (*models.MealPlan, error) {
	s.log.Debug(ctx, "add recipe to meal plan", "plan", planID, "recipe", req.RecipeID, "day", req.Day)
	plan, err := post[models.MealPlan](ctx, s.gw, join(endpointMealPlans, planID, mealPlanRecipesSegment), req)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *Service) DeleteMealPlan(ctx context.Context, planID string) error {
	_, err := del[rawData](ctx, s.gw, join(endpointMealPlans, planID))
	return err
}
