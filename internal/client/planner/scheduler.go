package planner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

const (
	DefaultMealType = "Lunch"
	DefaultPlanName = "My Weekly Plan"
	planDays        = 7
)

var ErrNoMealPlan = errors.New("no meal plan found, create one first")

// MealPlans is the part of the backend the scheduler needs.
type MealPlans interface {
	ListMealPlans(ctx context.Context) ([]models.MealPlan, error)
	CreateMealPlan(ctx context.Context, p models.NewMealPlan) (*models.MealPlan, error)
	AddRecipeToMealPlan(ctx context.Context, planID string, req models.MealItemRequest) (*models.MealPlan, error)
}

type Scheduler struct {
	plans MealPlans
	now   func() time.Time
	log   logging.Logger
}

type Option func(*Scheduler)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func NewScheduler(plans MealPlans, log logging.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{plans: plans, now: time.Now, log: log.With("component", "planner")}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AddRecipe schedules recipeID on the next occurrence of day in the active
// plan. An empty mealType means Lunch and servings below 1 mean 1.
func (s *Scheduler) AddRecipe(ctx context.Context, recipeID string, day time.Weekday, mealType string, servings int) (*models.MealPlan, error) {
	plans, err := s.plans.ListMealPlans(ctx)
	if err != nil {
		return nil, err
	}
	plan, ok := ActivePlan(plans)
	if !ok {
		return nil, ErrNoMealPlan
	}

	if strings.TrimSpace(mealType) == "" {
		mealType = DefaultMealType
	}
	if servings < 1 {
		servings = 1
	}

	req := models.MealItemRequest{
		Day:      FormatDate(NextOccurrence(day, s.now())),
		RecipeID: recipeID,
		MealType: mealType,
		Servings: servings,
	}
	s.log.Info(ctx, "scheduling recipe", "plan", plan.ID, "recipe", recipeID, "day", req.Day, "mealType", mealType)
	return s.plans.AddRecipeToMealPlan(ctx, plan.ID, req)
}

// CreateWeeklyPlan creates an active plan running seven calendar days from
// today.
func (s *Scheduler) CreateWeeklyPlan(ctx context.Context, name string) (*models.MealPlan, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultPlanName
	}
	now := s.now()
	return s.plans.CreateMealPlan(ctx, models.NewMealPlan{
		Name:      name,
		StartDate: FormatDate(now),
		EndDate:   FormatDate(now.AddDate(0, 0, planDays)),
		IsActive:  true,
		Meals:     []models.MealEntry{},
	})
}
