package planner

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakePlans struct {
	ListRet []models.MealPlan
	ListErr error

	LastPlanID string
	LastItem   models.MealItemRequest
	LastNew    models.NewMealPlan
	AddCalls   int
}

func (f *fakePlans) ListMealPlans(context.Context) ([]models.MealPlan, error) {
	return f.ListRet, f.ListErr
}

func (f *fakePlans) CreateMealPlan(_ context.Context, p models.NewMealPlan) (*models.MealPlan, error) {
	f.LastNew = p
	return &models.MealPlan{ID: "new", Name: p.Name, IsActive: p.IsActive}, nil
}

func (f *fakePlans) AddRecipeToMealPlan(_ context.Context, planID string, req models.MealItemRequest) (*models.MealPlan, error) {
	f.AddCalls++
	f.LastPlanID = planID
	f.LastItem = req
	return &models.MealPlan{ID: planID}, nil
}

// Wednesday afternoon.
var wednesday = time.Date(2024, 5, 8, 14, 0, 0, 0, time.UTC)

func newScheduler(f *fakePlans) *Scheduler {
	return NewScheduler(f, logging.Nop(), WithClock(func() time.Time { return wednesday }))
}

func TestAddRecipe_MondayOnWednesday(t *testing.T) {
	f := &fakePlans{ListRet: []models.MealPlan{{ID: "p0"}, {ID: "p1", IsActive: true}}}
	s := newScheduler(f)

	plan, err := s.AddRecipe(context.Background(), "r1", time.Monday, "", 0)
	require.NoError(t, err)
	require.Equal(t, "p1", plan.ID)
	require.Equal(t, "p1", f.LastPlanID)

	want := models.MealItemRequest{Day: "2024-05-13", RecipeID: "r1", MealType: "Lunch", Servings: 1}
	if diff := cmp.Diff(want, f.LastItem); diff != "" {
		t.Fatalf("meal item mismatch (-want +got):\n%s", diff)
	}

	day, err := ParseDate(f.LastItem.Day)
	require.NoError(t, err)
	y, m, d := wednesday.Date()
	require.Equal(t, 5*24*time.Hour, day.Sub(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)))
}

func TestAddRecipe_ExplicitMealAndServings(t *testing.T) {
	f := &fakePlans{ListRet: []models.MealPlan{{ID: "p0"}}}
	s := newScheduler(f)

	_, err := s.AddRecipe(context.Background(), "r2", time.Wednesday, "Dinner", 4)
	require.NoError(t, err)
	require.Equal(t, models.MealItemRequest{Day: "2024-05-08", RecipeID: "r2", MealType: "Dinner", Servings: 4}, f.LastItem)
}

func TestAddRecipe_NoPlan(t *testing.T) {
	f := &fakePlans{}
	_, err := newScheduler(f).AddRecipe(context.Background(), "r1", time.Monday, "", 1)
	require.ErrorIs(t, err, ErrNoMealPlan)
	require.Zero(t, f.AddCalls)
}

func TestAddRecipe_ListError(t *testing.T) {
	boom := errors.New("boom")
	f := &fakePlans{ListErr: boom}
	_, err := newScheduler(f).AddRecipe(context.Background(), "r1", time.Monday, "", 1)
	require.ErrorIs(t, err, boom)
	require.Zero(t, f.AddCalls)
}

func TestCreateWeeklyPlan(t *testing.T) {
	f := &fakePlans{}
	s := newScheduler(f)

	p, err := s.CreateWeeklyPlan(context.Background(), "  ")
	require.NoError(t, err)
	require.Equal(t, "new", p.ID)

	want := models.NewMealPlan{
		Name:      DefaultPlanName,
		StartDate: "2024-05-08",
		EndDate:   "2024-05-15",
		IsActive:  true,
		Meals:     []models.MealEntry{},
	}
	if diff := cmp.Diff(want, f.LastNew); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}

	_, err = s.CreateWeeklyPlan(context.Background(), "Summer")
	require.NoError(t, err)
	require.Equal(t, "Summer", f.LastNew.Name)
}

func TestCreateWeeklyPlan_AcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// Clocks fall back on 2026-11-01, so this week is 169 hours long.
	now := time.Date(2026, 10, 31, 0, 30, 0, 0, ny)

	f := &fakePlans{}
	s := NewScheduler(f, logging.Nop(), WithClock(func() time.Time { return now }))

	_, err = s.CreateWeeklyPlan(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "2026-10-31", f.LastNew.StartDate)
	require.Equal(t, "2026-11-07", f.LastNew.EndDate)
}

func TestNewScheduler_DefaultClock(t *testing.T) {
	s := NewScheduler(&fakePlans{}, logging.Nop())
	require.WithinDuration(t, time.Now(), s.now(), time.Minute)
}
