package models

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

type MealPlan struct {
	ID        string      `json:"_id"`
	Name      string      `json:"name"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	IsActive  bool        `json:"isActive"`
	Meals     []MealEntry `json:"meals"`
}

func (p *MealPlan) UnmarshalJSON(b []byte) error {
	type plain MealPlan
	var aux struct {
		plain
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = MealPlan(aux.plain)
	if p.ID == "" {
		p.ID = aux.AltID
	}
	return nil
}

// MealEntry groups the items planned for one calendar date (YYYY-MM-DD,
// possibly with a time part when the server echoes a timestamp).
type MealEntry struct {
	Date  string     `json:"day"`
	Items []MealItem `json:"items"`
}

type MealItem struct {
	RecipeID string `json:"recipeId"`
	MealType string `json:"mealType"`
	Servings int    `json:"servings"`
}

// UnmarshalJSON accepts recipeId as a bare id or a populated recipe.
func (m *MealItem) UnmarshalJSON(b []byte) error {
	res := gjson.ParseBytes(b)
	m.RecipeID = refID(res.Get("recipeId"))
	m.MealType = res.Get("mealType").String()
	m.Servings = int(res.Get("servings").Int())
	return nil
}

// MealPlanList decodes {"mealPlans": [...]} as well as a bare array.
type MealPlanList struct {
	MealPlans []MealPlan `json:"mealPlans"`
}

func (l *MealPlanList) UnmarshalJSON(b []byte) error {
	if gjson.ParseBytes(b).IsArray() {
		return json.Unmarshal(b, &l.MealPlans)
	}
	type plain MealPlanList
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*l = MealPlanList(p)
	return nil
}

// NewMealPlan is the body of POST /meal-plans.
type NewMealPlan struct {
	Name      string      `json:"name"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	IsActive  bool        `json:"isActive"`
	Meals     []MealEntry `json:"meals"`
}

// MealItemRequest is the body of POST /meal-plans/:id/recipes.
type MealItemRequest struct {
	Day      string `json:"day"`
	RecipeID string `json:"recipeId"`
	MealType string `json:"mealType"`
	Servings int    `json:"servings"`
}
