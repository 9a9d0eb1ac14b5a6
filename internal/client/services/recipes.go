package services

import (
	"context"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

func (s *Service) ListRecipes(ctx context.Context, f models.RecipeFilter) (*models.RecipeList, error) {
	l, err := get[models.RecipeList](ctx, s.gw, endpointRecipes, f.Values())
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	r, err := get[models.Recipe](ctx, s.gw, join(endpointRecipes, id), nil)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRecipe publishes a new recipe owned by the signed-in user.
func (s *Service) CreateRecipe(ctx context.Context, d models.RecipeDraft) (*models.Recipe, error) {
	r, err := post[models.Recipe](ctx, s.gw, endpointRecipes, d)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "recipe created", "recipe", r.ID)
	return &r, nil
}

// UpdateRecipe changes the fields set in d. Only the owner may update.
func (s *Service) UpdateRecipe(ctx context.Context, id string, d models.RecipeDraft) (*models.Recipe, error) {
	r, err := put[models.Recipe](ctx, s.gw, join(endpointRecipes, id), d)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	_, err := del[rawData](ctx, s.gw, join(endpointRecipes, id))
	return err
}

// SearchRecipes runs a text search; f narrows it the same way as ListRecipes.
func (s *Service) SearchRecipes(ctx context.Context, q string, f models.RecipeFilter) (*models.RecipeList, error) {
	query := f.Values()
	query.Set("q", q)
	l, err := get[models.RecipeList](ctx, s.gw, endpointSearch, query)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) RecipesByCuisine(ctx context.Context, cuisine string, f models.RecipeFilter) (*models.RecipeList, error) {
	f.Cuisine = ""
	l, err := get[models.RecipeList](ctx, s.gw, join(endpointByCuisine, cuisine), f.Values())
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) RecipesByMealType(ctx context.Context, mealType string, f models.RecipeFilter) (*models.RecipeList, error) {
	f.MealType = ""
	l, err := get[models.RecipeList](ctx, s.gw, join(endpointByMealType, mealType), f.Values())
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) ListCuisines(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, s.gw, endpointCuisines, nil)
}

func (s *Service) ListTags(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, s.gw, endpointTags, nil)
}
