package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/planner"
)

// week is the display order of the plan overview.
var week = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// Plans lists the user's meal plans and the week of the active one.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.api.ListMealPlans(ctx)
	if err != nil {
		return a.report(ctx, "list meal plans", err)
	}

	active, ok := planner.ActivePlan(plans)
	if !ok {
		fmt.Fprintln(a.out, "No meal plans yet. Use 'newplan' to create one.")
		return nil
	}

	for _, p := range plans {
		mark := " "
		if p.ID == active.ID {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s  %s .. %s\n", mark, p.ID, p.Name, shortDate(p.StartDate), shortDate(p.EndDate))
	}

	fmt.Fprintf(a.out, "\n%s:\n", active.Name)
	for _, day := range week {
		items := planner.MealsForDay(active, day)
		if len(items) == 0 {
			fmt.Fprintf(a.out, "  %-9s -\n", day)
			continue
		}
		for i, it := range items {
			label := ""
			if i == 0 {
				label = day.String()
			}
			fmt.Fprintf(a.out, "  %-9s %s %s x%d\n", label, it.MealType, it.RecipeID, it.Servings)
		}
	}
	return nil
}

func (a *App) NewPlan(ctx context.Context, name string) error {
	p, err := a.planner.CreateWeeklyPlan(ctx, name)
	if err != nil {
		return a.report(ctx, "create meal plan", err)
	}
	fmt.Fprintf(a.out, "Created meal plan %s (%s).\n", p.Name, p.ID)
	return nil
}

func (a *App) DeletePlan(ctx context.Context, id string) error {
	if err := a.api.DeleteMealPlan(ctx, id); err != nil {
		return a.report(ctx, "delete meal plan", err)
	}
	fmt.Fprintf(a.out, "Deleted meal plan %s.\n", id)
	return nil
}

// Schedule adds a recipe to the active plan on the next given weekday,
// for as many servings as the recipe makes.
func (a *App) Schedule(ctx context.Context, recipeID, weekday, mealType string) error {
	day, err := planner.ParseWeekday(weekday)
	if err != nil {
		return a.report(ctx, "schedule", err)
	}

	r, err := a.api.GetRecipe(ctx, recipeID)
	if err != nil {
		return a.report(ctx, "schedule", err)
	}

	p, err := a.planner.AddRecipe(ctx, recipeID, day, mealType, r.Servings)
	if err != nil {
		return a.report(ctx, "schedule", err)
	}

	fmt.Fprintf(a.out, "Added %s to %s for %s.\n", r.Name, p.Name, day)
	return nil
}

func shortDate(s string) string {
	if t, err := planner.ParseDate(s); err == nil {
		return planner.FormatDate(t)
	}
	return s
}
