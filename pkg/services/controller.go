package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tastebook/tastebook/pkg/api"
	"github.com/tastebook/tastebook/pkg/config"
	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/engage"
	"github.com/tastebook/tastebook/pkg/form"
	"github.com/tastebook/tastebook/pkg/query"
)

// Controller wires the API client, local store and auth state together
// for the screens and CLI commands.
type Controller struct {
	api      api.Service
	repo     *data.Repository
	auth     *Auth
	log      *zap.Logger
	pageSize int
}

func NewController(cfg config.Config, log *zap.Logger) (*Controller, error) {
	repo, err := data.NewRepository(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	auth, err := NewAuth(repo)
	if err != nil {
		repo.Close()
		return nil, err
	}
	client := api.NewClient(cfg.APIBaseURL)
	client.SetToken(auth.Token())

	return &Controller{
		api:      client,
		repo:     repo,
		auth:     auth,
		log:      log,
		pageSize: cfg.PageSize,
	}, nil
}

func (c *Controller) Close() error {
	return c.repo.Close()
}

func (c *Controller) Auth() *Auth {
	return c.auth
}

// NewRequest starts an unfiltered first-page query.
func (c *Controller) NewRequest() query.Request {
	return query.NewRequest(c.pageSize)
}

func (c *Controller) SearchRecipes(req query.Request) ([]data.RecipeSummary, query.Page, error) {
	recipes, page, err := c.api.ListRecipes(req)
	if err != nil {
		c.log.Warn("recipe search failed", zap.Error(err))
		return nil, query.Page{}, err
	}
	if term := strings.TrimSpace(req.Filters.Search); term != "" {
		if err := c.repo.RecordSearch(term); err != nil {
			c.log.Warn("failed to record search term", zap.Error(err))
		}
	}
	return recipes, page, nil
}

func (c *Controller) PopularRecipes() ([]data.RecipeSummary, error) {
	return c.api.PopularRecipes()
}

func (c *Controller) RecentSearches(limit int) []string {
	terms, err := c.repo.RecentSearches(limit)
	if err != nil {
		c.log.Warn("failed to load search history", zap.Error(err))
		return nil
	}
	return terms
}

// LoadRecipe fetches a recipe and, for a signed-in user, whether it is
// among their favorites.
func (c *Controller) LoadRecipe(id string) (*data.RecipeDetail, bool, error) {
	detail, err := c.api.GetRecipe(id)
	if err != nil {
		return nil, false, err
	}
	favorited := false
	if c.auth.IsAuthenticated() {
		favorites, err := c.api.UserFavorites(c.auth.CurrentUser().ID)
		if err != nil {
			c.log.Warn("failed to load favorites", zap.String("recipe", id), zap.Error(err))
		} else {
			for _, fav := range favorites {
				if fav.ID == detail.ID {
					favorited = true
					break
				}
			}
		}
	}
	return detail, favorited, nil
}

// NewTracker builds the engagement tracker for a freshly loaded recipe.
func (c *Controller) NewTracker(detail *data.RecipeDetail, favorited bool) *engage.Tracker {
	return engage.NewTracker(detail, c.auth.CurrentUser().ID, favorited)
}

// SetFavorite issues the add or remove request for an optimistic toggle.
func (c *Controller) SetFavorite(recipeID string, favorited bool) error {
	if favorited {
		return c.api.AddFavorite(recipeID)
	}
	return c.api.RemoveFavorite(recipeID)
}

func (c *Controller) RateRecipe(recipeID string, rating int) error {
	return c.api.RateRecipe(recipeID, rating)
}

// RefetchRecipe reloads a recipe after a rating was accepted; the server
// owns the aggregate so it is never recomputed locally.
func (c *Controller) RefetchRecipe(id string) (*data.RecipeDetail, error) {
	return c.api.GetRecipe(id)
}

func (c *Controller) AddComment(recipeID, text string) error {
	if !c.auth.IsAuthenticated() {
		return engage.ErrAuthRequired
	}
	if strings.TrimSpace(text) == "" {
		return &form.ValidationError{Reason: form.MissingComment, Message: "please enter a comment"}
	}
	return c.api.AddComment(recipeID, text)
}

// SubmitRecipe validates the draft and creates the recipe, returning the
// new recipe id.
func (c *Controller) SubmitRecipe(draft *form.Draft) (string, error) {
	if !c.auth.IsAuthenticated() {
		return "", engage.ErrAuthRequired
	}
	payload, err := draft.BuildPayload()
	if err != nil {
		return "", err
	}
	id, err := c.api.CreateRecipe(payload)
	if err != nil {
		c.log.Warn("recipe submission failed", zap.Error(err))
		return "", err
	}
	c.log.Info("recipe created", zap.String("id", id), zap.String("title", payload.Title))
	return id, nil
}

func (c *Controller) UserRecipes() ([]data.RecipeSummary, error) {
	if !c.auth.IsAuthenticated() {
		return nil, engage.ErrAuthRequired
	}
	return c.api.UserRecipes(c.auth.CurrentUser().ID)
}

func (c *Controller) UserFavorites() ([]data.RecipeSummary, error) {
	if !c.auth.IsAuthenticated() {
		return nil, engage.ErrAuthRequired
	}
	return c.api.UserFavorites(c.auth.CurrentUser().ID)
}

func (c *Controller) UpdateProfile(username, bio, avatar string) error {
	if !c.auth.IsAuthenticated() {
		return engage.ErrAuthRequired
	}
	return c.api.UpdateProfile(username, bio, avatar)
}

// SignIn exchanges an API token for the user identity and persists the
// session locally.
func (c *Controller) SignIn(token string) (*data.User, error) {
	c.api.SetToken(token)
	user, err := c.api.CurrentUser()
	if err != nil {
		c.api.SetToken(c.auth.Token())
		return nil, err
	}
	if err := c.auth.SignIn(user, token); err != nil {
		return nil, err
	}
	c.log.Info("signed in", zap.String("user", user.Username))
	return user, nil
}

func (c *Controller) SignOut() error {
	if err := c.auth.SignOut(); err != nil {
		return err
	}
	c.api.SetToken("")
	return nil
}
