package planner

import (
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

// ActivePlan picks the plan quick-add actions target: the first one flagged
// active, else the first one. Zero or several flagged plans are tolerated.
func ActivePlan(plans []models.MealPlan) (*models.MealPlan, bool) {
	for i := range plans {
		if plans[i].IsActive {
			return &plans[i], true
		}
	}
	if len(plans) > 0 {
		return &plans[0], true
	}
	return nil, false
}

// MealsForDay returns the items of plan scheduled on a date that falls on
// day, in plan order. Entries with unreadable dates are skipped.
func MealsForDay(plan *models.MealPlan, day time.Weekday) []models.MealItem {
	if plan == nil {
		return nil
	}
	var items []models.MealItem
	for _, e := range plan.Meals {
		d, err := ParseDate(e.Date)
		if err != nil || d.Weekday() != day {
			continue
		}
		items = append(items, e.Items...)
	}
	return items
}
