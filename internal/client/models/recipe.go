package models

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Recipe struct {
	ID                 string     `json:"_id"`
	Name               string     `json:"name"`
	Ingredients        []string   `json:"ingredients"`
	Instructions       []string   `json:"instructions"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes"`
	CookTimeMinutes    int        `json:"cookTimeMinutes"`
	Servings           int        `json:"servings"`
	Difficulty         Difficulty `json:"difficulty"`
	Cuisine            string     `json:"cuisine"`
	CaloriesPerServing int        `json:"caloriesPerServing"`
	Tags               []string   `json:"tags"`
	Image              string     `json:"image"`
	Rating             float64    `json:"rating"`
	ReviewCount        int        `json:"reviewCount"`
	MealTypes          []string   `json:"mealType"`
}

func (r *Recipe) UnmarshalJSON(b []byte) error {
	type plain Recipe
	var aux struct {
		plain
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = Recipe(aux.plain)
	if r.ID == "" {
		r.ID = aux.AltID
	}
	return nil
}

// TotalTimeMinutes is prep plus cook time.
func (r Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// RecipeList is a page of recipes. The backend sends either
// {"recipes": [...], "pagination": {...}} or a bare array; both decode here.
type RecipeList struct {
	Recipes    []Recipe    `json:"recipes"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func (l *RecipeList) UnmarshalJSON(b []byte) error {
	if gjson.ParseBytes(b).IsArray() {
		l.Pagination = nil
		return json.Unmarshal(b, &l.Recipes)
	}
	type plain RecipeList
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*l = RecipeList(p)
	return nil
}

// RecipeFilter shapes the query of the recipe list and search endpoints.
// Zero fields are left out of the query.
type RecipeFilter struct {
	Page       int
	Limit      int
	Cuisine    string
	Difficulty Difficulty
	MealType   string
	SortBy     string
}

func (f RecipeFilter) Values() url.Values {
	v := url.Values{}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Cuisine != "" {
		v.Set("cuisine", f.Cuisine)
	}
	if f.Difficulty != "" {
		v.Set("difficulty", string(f.Difficulty))
	}
	// "All" is what the meal type chips show for no filter.
	if f.MealType != "" && f.MealType != "All" {
		v.Set("mealType", f.MealType)
	}
	if f.SortBy != "" {
		v.Set("sortBy", f.SortBy)
	}
	return v
}

// RecipeDraft is the body of POST /recipes and PUT /recipes/:id. Zero fields
// are left out, so an update only sends what changed.
type RecipeDraft struct {
	Name               string     `json:"name,omitempty"`
	Ingredients        []string   `json:"ingredients,omitempty"`
	Instructions       []string   `json:"instructions,omitempty"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes,omitempty"`
	CookTimeMinutes    int        `json:"cookTimeMinutes,omitempty"`
	Servings           int        `json:"servings,omitempty"`
	Difficulty         Difficulty `json:"difficulty,omitempty"`
	Cuisine            string     `json:"cuisine,omitempty"`
	CaloriesPerServing int        `json:"caloriesPerServing,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	Image              string     `json:"image,omitempty"`
	MealTypes          []string   `json:"mealType,omitempty"`
}
