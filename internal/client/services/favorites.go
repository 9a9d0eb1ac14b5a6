package services

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

// ListFavorites returns the user's favorite recipes as full documents.
func (s *Service) ListFavorites(ctx context.Context) ([]models.Recipe, error) {
	l, err := get[models.RecipeList](ctx, s.gw, endpointFavorites, nil)
	if err != nil {
		return nil, err
	}
	return l.Recipes, nil
}

// AddFavorite returns the server's updated favorite list, raw: entries may
// be ids or recipe documents.
func (s *Service) AddFavorite(ctx context.Context, recipeID string) (rawData, error) {
	d, err := post[models.FavoritesData](ctx, s.gw, join(endpointFavorites, recipeID), nil)
	if err != nil {
		return nil, err
	}
	return d.FavoriteRecipes, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, recipeID string) (rawData, error) {
	d, err := del[models.FavoritesData](ctx, s.gw, join(endpointFavorites, recipeID))
	if err != nil {
		return nil, err
	}
	return d.FavoriteRecipes, nil
}
