package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

func (a *App) printRecipes(rs []models.Recipe) {
	if len(rs) == 0 {
		fmt.Fprintln(a.out, "No recipes found.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tDIFFICULTY\tTIME\tRATING")
	for _, r := range rs {
		name := r.Name
		if a.session.IsFavorite(r.ID) {
			name = "* " + name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d min\t%.1f\n",
			r.ID, name, r.Cuisine, r.Difficulty, r.TotalTimeMinutes(), r.Rating)
	}
	_ = tw.Flush()
}

func (a *App) printPagination(p *models.Pagination) {
	if p == nil || p.TotalPages <= 1 {
		return
	}
	fmt.Fprintf(a.out, "page %d of %d, %d recipes\n", p.Page, p.TotalPages, p.Total)
}

func (a *App) printRecipe(r *models.Recipe) {
	fav := ""
	if a.session.IsFavorite(r.ID) {
		fav = " (favorite)"
	}
	fmt.Fprintf(a.out, "%s%s\n", r.Name, fav)
	fmt.Fprintf(a.out, "%s · %s · %d servings · %d kcal/serving · %.1f (%d reviews)\n",
		r.Cuisine, r.Difficulty, r.Servings, r.CaloriesPerServing, r.Rating, r.ReviewCount)
	fmt.Fprintf(a.out, "Prep %d min, cook %d min\n", r.PrepTimeMinutes, r.CookTimeMinutes)
	if len(r.MealTypes) > 0 {
		fmt.Fprintf(a.out, "Meal: %s\n", strings.Join(r.MealTypes, ", "))
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}

	fmt.Fprintln(a.out, "\nIngredients:")
	for _, in := range r.Ingredients {
		fmt.Fprintf(a.out, "  - %s\n", in)
	}
	fmt.Fprintln(a.out, "\nInstructions:")
	for i, step := range r.Instructions {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, step)
	}
}

func (a *App) printProfile(u *models.UserProfile) {
	fmt.Fprintf(a.out, "Name:      %s\n", u.DisplayName())
	fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
	if u.Username != "" {
		fmt.Fprintf(a.out, "Username:  %s\n", u.Username)
	}
	if u.Bio != "" {
		fmt.Fprintf(a.out, "Bio:       %s\n", u.Bio)
	}
	fmt.Fprintf(a.out, "Favorites: %d\n", len(u.FavoriteRecipeIDs))
}
