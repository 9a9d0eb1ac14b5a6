package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

const recipePageSize = 20

// Recipes lists a page of recipes, optionally narrowed to a meal type and a
// cuisine. Page 0 means the first page.
func (a *App) Recipes(ctx context.Context, mealType, cuisine string, page int) error {
	l, err := a.api.ListRecipes(ctx, models.RecipeFilter{
		Page:     page,
		Limit:    recipePageSize,
		MealType: mealType,
		Cuisine:  cuisine,
	})
	return a.showList(ctx, "list recipes", l, err)
}

func (a *App) Search(ctx context.Context, query string, page int) error {
	l, err := a.api.SearchRecipes(ctx, query, models.RecipeFilter{Page: page, Limit: recipePageSize})
	return a.showList(ctx, "search", l, err)
}

// ByCuisine lists recipes of one cuisine.
func (a *App) ByCuisine(ctx context.Context, cuisine string, page int) error {
	l, err := a.api.RecipesByCuisine(ctx, cuisine, models.RecipeFilter{Page: page, Limit: recipePageSize})
	return a.showList(ctx, "list by cuisine", l, err)
}

// ByMealType lists recipes tagged with one meal type.
func (a *App) ByMealType(ctx context.Context, mealType string, page int) error {
	l, err := a.api.RecipesByMealType(ctx, mealType, models.RecipeFilter{Page: page, Limit: recipePageSize})
	return a.showList(ctx, "list by meal type", l, err)
}

func (a *App) showList(ctx context.Context, op string, l *models.RecipeList, err error) error {
	if err != nil {
		return a.report(ctx, op, err)
	}
	a.printRecipes(l.Recipes)
	a.printPagination(l.Pagination)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	r, err := a.api.GetRecipe(ctx, id)
	if err != nil {
		return a.report(ctx, "show recipe", err)
	}
	a.printRecipe(r)
	return nil
}

func (a *App) Cuisines(ctx context.Context) error {
	c, err := a.api.ListCuisines(ctx)
	if err != nil {
		return a.report(ctx, "list cuisines", err)
	}
	fmt.Fprintln(a.out, strings.Join(c, ", "))
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	t, err := a.api.ListTags(ctx)
	if err != nil {
		return a.report(ctx, "list tags", err)
	}
	fmt.Fprintln(a.out, strings.Join(t, ", "))
	return nil
}

func (a *App) Favorites(ctx context.Context) error {
	rs, err := a.api.ListFavorites(ctx)
	if err != nil {
		return a.report(ctx, "list favorites", err)
	}
	a.printRecipes(rs)
	return nil
}

// ToggleFavorite flips the favorite flag of a recipe.
func (a *App) ToggleFavorite(ctx context.Context, id string) error {
	fav, err := a.session.ToggleFavorite(ctx, id)
	if err != nil {
		return a.report(ctx, "toggle favorite", err)
	}
	if fav {
		fmt.Fprintf(a.out, "Added %s to favorites.\n", id)
	} else {
		fmt.Fprintf(a.out, "Removed %s from favorites.\n", id)
	}
	return nil
}
