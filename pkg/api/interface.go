package api

import (
	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/form"
	"github.com/tastebook/tastebook/pkg/query"
)

// Service is the remote recipe API surface the client depends on.
type Service interface {
	ListRecipes(req query.Request) ([]data.RecipeSummary, query.Page, error)
	PopularRecipes() ([]data.RecipeSummary, error)
	GetRecipe(id string) (*data.RecipeDetail, error)
	CreateRecipe(payload *form.Payload) (string, error)

	RateRecipe(id string, rating int) error
	AddFavorite(id string) error
	RemoveFavorite(id string) error
	AddComment(id, text string) error

	UserRecipes(userID string) ([]data.RecipeSummary, error)
	UserFavorites(userID string) ([]data.RecipeSummary, error)
	UpdateProfile(username, bio, avatar string) error
	CurrentUser() (*data.User, error)

	SetToken(token string)
}
