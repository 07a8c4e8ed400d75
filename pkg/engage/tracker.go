package engage

import (
	"errors"
	"fmt"

	"github.com/tastebook/tastebook/pkg/data"
)

// ErrAuthRequired blocks engagement actions for anonymous users before
// any request is issued.
var ErrAuthRequired = errors.New("sign in required")

// State is the client-side view of one recipe's engagement aggregates.
type State struct {
	AverageRating float64
	RatingCount   int
	UserRating    int // 0 = unrated
	Favorited     bool
}

// Tracker owns the engagement state of a single recipe. Favorite and
// rating mutations are applied optimistically and rolled back to the
// last server-confirmed value when the request fails. A Tracker is bound
// to one recipe id; navigating to another recipe means a new Tracker.
type Tracker struct {
	recipeID string
	userID   string // empty for anonymous
	state    State

	nextToken       int
	favConfirmed    bool
	favLatest       int
	favPending      int
	ratingConfirmed int
}

// NewTracker initializes the state from a fetched recipe. The user's own
// rating is looked up in the fetched ratings list by rater identity;
// favorited comes from the user's favorites membership.
func NewTracker(d *data.RecipeDetail, userID string, favorited bool) *Tracker {
	userRating := d.UserRating(userID)
	return &Tracker{
		recipeID: d.ID,
		userID:   userID,
		state: State{
			AverageRating: d.AverageRating,
			RatingCount:   len(d.Ratings),
			UserRating:    userRating,
			Favorited:     favorited,
		},
		favConfirmed:    favorited,
		ratingConfirmed: userRating,
	}
}

func (t *Tracker) RecipeID() string {
	return t.recipeID
}

func (t *Tracker) State() State {
	return t.state
}

// FavoriteOp identifies one in-flight favorite request.
type FavoriteOp struct {
	Token  int
	Target bool
}

// ToggleFavorite flips the flag optimistically and returns the request
// the caller must issue (add when Target is true, remove otherwise).
func (t *Tracker) ToggleFavorite() (FavoriteOp, error) {
	if t.userID == "" {
		return FavoriteOp{}, ErrAuthRequired
	}
	t.nextToken++
	op := FavoriteOp{Token: t.nextToken, Target: !t.state.Favorited}
	t.state.Favorited = op.Target
	t.favLatest = op.Token
	t.favPending++
	return op, nil
}

// ResolveFavorite reconciles a completed favorite request. On failure
// the flag reverts to the last confirmed value. On success the target
// becomes confirmed, and once no requests remain in flight the displayed
// flag settles on the confirmed value.
func (t *Tracker) ResolveFavorite(op FavoriteOp, reqErr error) {
	if t.favPending > 0 {
		t.favPending--
	}
	if reqErr != nil {
		t.state.Favorited = t.favConfirmed
		return
	}
	t.favConfirmed = op.Target
	if op.Token == t.favLatest || t.favPending == 0 {
		t.state.Favorited = t.favConfirmed
	}
}

// RatingOp identifies one in-flight rating request.
type RatingOp struct {
	Token int
	Value int
}

// SubmitRating sets the user's rating optimistically and returns the
// request to issue. The aggregates are left untouched: they are replaced
// wholesale by Reconcile after the post-success refetch, because the
// server computes the average from the full rating distribution.
func (t *Tracker) SubmitRating(value int) (RatingOp, error) {
	if t.userID == "" {
		return RatingOp{}, ErrAuthRequired
	}
	if value < 1 || value > 5 {
		return RatingOp{}, fmt.Errorf("rating must be between 1 and 5, got %d", value)
	}
	t.nextToken++
	op := RatingOp{Token: t.nextToken, Value: value}
	t.state.UserRating = value
	return op, nil
}

// ResolveRating rolls the user's rating back to the last confirmed value
// when the request failed. On success the caller refetches the recipe
// and calls Reconcile.
func (t *Tracker) ResolveRating(op RatingOp, reqErr error) {
	if reqErr != nil {
		t.state.UserRating = t.ratingConfirmed
		return
	}
	t.ratingConfirmed = op.Value
}

// Reconcile replaces the whole state from a fresh fetch of the recipe.
func (t *Tracker) Reconcile(d *data.RecipeDetail) {
	userRating := d.UserRating(t.userID)
	t.state.AverageRating = d.AverageRating
	t.state.RatingCount = len(d.Ratings)
	t.state.UserRating = userRating
	t.ratingConfirmed = userRating
}
