// Package services is the resource-shaped layer over the API gateway. Every
// method issues exactly one gateway call; it only shapes paths, queries and
// bodies and unwraps the response envelope.
//
// A method either returns the envelope's data (success=true) or fails with
// the gateway's error. A 2xx envelope with success=false is reported as a
// *client.ServerError carrying the server message, so no failure is silent.
package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/recipebook/internal/client/client"
	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

// Backend REST surface, relative to the API base URL.
const (
	endpointRegister       = "/auth/register"
	endpointLogin          = "/auth/login"
	endpointMe             = "/auth/me"
	endpointProfile        = "/users/profile"
	endpointPassword       = "/users/password"
	endpointFavorites      = "/users/favorites"
	endpointRecipes        = "/recipes"
	endpointSearch         = "/recipes/search"
	endpointCuisines       = "/recipes/cuisines"
	endpointTags           = "/recipes/tags"
	endpointByCuisine      = "/recipes/cuisine"
	endpointByMealType     = "/recipes/meal"
	endpointMealPlans      = "/meal-plans"
	mealPlanRecipesSegment = "recipes"
)

// join builds a path from a fixed prefix and escaped dynamic segments.
func join(prefix string, segments ...string) string {
	p := prefix
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

type Service struct {
	gw  client.Gateway
	log logging.Logger
}

func New(gw client.Gateway, log logging.Logger) *Service {
	return &Service{gw: gw, log: log.With("component", "services")}
}

// unwrap turns a decoded envelope into its data or an error.
func unwrap[T any](env models.Envelope[T], err error) (T, error) {
	return unwrapOr(env, err, client.DefaultServerMessage)
}

// unwrapOr is unwrap with the message used when a failed envelope has none.
func unwrapOr[T any](env models.Envelope[T], err error, fallback string) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !env.Success {
		return zero, &client.ServerError{Status: http.StatusOK, Message: env.MessageOr(fallback)}
	}
	return env.Data, nil
}

func get[T any](ctx context.Context, gw client.Gateway, path string, query url.Values) (T, error) {
	var env models.Envelope[T]
	err := gw.Get(ctx, path, query, &env)
	return unwrap(env, err)
}

func post[T any](ctx context.Context, gw client.Gateway, path string, body any) (T, error) {
	var env models.Envelope[T]
	err := gw.Post(ctx, path, body, &env)
	return unwrap(env, err)
}

func put[T any](ctx context.Context, gw client.Gateway, path string, body any) (T, error) {
	var env models.Envelope[T]
	err := gw.Put(ctx, path, body, &env)
	return unwrap(env, err)
}

func del[T any](ctx context.Context, gw client.Gateway, path string) (T, error) {
	var env models.Envelope[T]
	err := gw.Delete(ctx, path, &env)
	return unwrap(env, err)
}
