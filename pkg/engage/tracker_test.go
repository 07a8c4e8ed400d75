package engage

import (
	"fmt"
	"testing"

	"github.com/tastebook/tastebook/pkg/data"
)

func testDetail() *data.RecipeDetail {
	return &data.RecipeDetail{
		RecipeSummary: data.RecipeSummary{
			ID:            "recipe-1",
			Title:         "Test Recipe",
			AverageRating: 4.0,
			RatingCount:   2,
		},
		Ratings: []data.Rating{
			{UserID: "user-1", Value: 5},
			{UserID: "user-2", Value: 3},
		},
	}
}

func TestNewTrackerInitialState(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", true)

	state := tracker.State()
	if state.AverageRating != 4.0 {
		t.Errorf("Expected average 4.0, got %f", state.AverageRating)
	}
	if state.RatingCount != 2 {
		t.Errorf("Expected 2 ratings, got %d", state.RatingCount)
	}
	if state.UserRating != 5 {
		t.Errorf("Expected own rating 5, got %d", state.UserRating)
	}
	if !state.Favorited {
		t.Error("Expected favorited")
	}
}

func TestNewTrackerAnonymous(t *testing.T) {
	tracker := NewTracker(testDetail(), "", false)

	if tracker.State().UserRating != 0 {
		t.Errorf("Anonymous user should have no rating, got %d", tracker.State().UserRating)
	}
}

func TestToggleFavoriteRequiresAuth(t *testing.T) {
	tracker := NewTracker(testDetail(), "", false)

	_, err := tracker.ToggleFavorite()
	if err != ErrAuthRequired {
		t.Errorf("Expected ErrAuthRequired, got %v", err)
	}
	if tracker.State().Favorited {
		t.Error("State should not change for anonymous toggle")
	}
}

func TestToggleFavoriteOptimistic(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	op, err := tracker.ToggleFavorite()
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !op.Target {
		t.Error("Expected toggle target true")
	}
	if !tracker.State().Favorited {
		t.Error("Flag should flip before the request resolves")
	}
}

func TestToggleFavoriteSuccessConfirms(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	op, _ := tracker.ToggleFavorite()
	tracker.ResolveFavorite(op, nil)

	if !tracker.State().Favorited {
		t.Error("Confirmed toggle should stay applied")
	}
}

func TestToggleFavoriteFailureRollsBack(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	op, _ := tracker.ToggleFavorite()
	tracker.ResolveFavorite(op, fmt.Errorf("network down"))

	if tracker.State().Favorited {
		t.Error("Failed toggle should roll back")
	}
}

func TestSecondToggleFailureRestoresFirstConfirmed(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	first, _ := tracker.ToggleFavorite()
	tracker.ResolveFavorite(first, nil)

	second, _ := tracker.ToggleFavorite()
	tracker.ResolveFavorite(second, fmt.Errorf("timeout"))

	// The first toggle was confirmed, so the flag lands on its value.
	if !tracker.State().Favorited {
		t.Error("Rollback should restore the last confirmed value, not the initial one")
	}
}

func TestSecondToggleFailsWhileFirstInFlight(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	first, _ := tracker.ToggleFavorite()  // -> true
	second, _ := tracker.ToggleFavorite() // -> false

	tracker.ResolveFavorite(second, fmt.Errorf("timeout"))
	if tracker.State().Favorited {
		t.Error("Expected the flag back at its value before the first toggle")
	}

	tracker.ResolveFavorite(first, nil)
	if !tracker.State().Favorited {
		t.Error("Expected the state as if only the first toggle had happened")
	}
}

func TestRapidTogglesSettleOnLatest(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	first, _ := tracker.ToggleFavorite()  // -> true
	second, _ := tracker.ToggleFavorite() // -> false

	tracker.ResolveFavorite(first, nil)
	if tracker.State().Favorited {
		t.Error("Display should keep the latest optimistic value while newer ops are pending")
	}

	tracker.ResolveFavorite(second, nil)
	if tracker.State().Favorited {
		t.Error("Expected the latest toggle to win")
	}
}

func TestSubmitRatingRequiresAuth(t *testing.T) {
	tracker := NewTracker(testDetail(), "", false)

	_, err := tracker.SubmitRating(4)
	if err != ErrAuthRequired {
		t.Errorf("Expected ErrAuthRequired, got %v", err)
	}
}

func TestSubmitRatingRejectsOutOfRange(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	for _, value := range []int{0, -1, 6, 100} {
		if _, err := tracker.SubmitRating(value); err == nil {
			t.Errorf("Expected error for rating %d", value)
		}
	}
	if tracker.State().UserRating != 5 {
		t.Errorf("Rejected submissions should not change state, got %d", tracker.State().UserRating)
	}
}

func TestSubmitRatingOptimistic(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-2", false)

	op, err := tracker.SubmitRating(4)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if op.Value != 4 {
		t.Errorf("Expected op value 4, got %d", op.Value)
	}
	if tracker.State().UserRating != 4 {
		t.Errorf("Expected optimistic rating 4, got %d", tracker.State().UserRating)
	}
	if tracker.State().AverageRating != 4.0 {
		t.Error("Average must not be recomputed locally")
	}
}

func TestRatingFailureRevertsToConfirmed(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	op, _ := tracker.SubmitRating(1)
	tracker.ResolveRating(op, fmt.Errorf("server error"))

	if tracker.State().UserRating != 5 {
		t.Errorf("Expected rollback to fetched rating 5, got %d", tracker.State().UserRating)
	}
}

func TestRatingFailureAfterConfirmedRating(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-2", false)

	first, _ := tracker.SubmitRating(4)
	tracker.ResolveRating(first, nil)

	second, _ := tracker.SubmitRating(2)
	tracker.ResolveRating(second, fmt.Errorf("rejected"))

	if tracker.State().UserRating != 4 {
		t.Errorf("Expected rollback to confirmed 4, got %d", tracker.State().UserRating)
	}
}

func TestReconcileReplacesAggregates(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-2", false)

	op, _ := tracker.SubmitRating(5)
	tracker.ResolveRating(op, nil)

	refreshed := testDetail()
	refreshed.AverageRating = 4.33
	refreshed.Ratings = []data.Rating{
		{UserID: "user-1", Value: 5},
		{UserID: "user-2", Value: 5},
		{UserID: "user-3", Value: 3},
	}
	tracker.Reconcile(refreshed)

	state := tracker.State()
	if state.AverageRating != 4.33 {
		t.Errorf("Expected average 4.33, got %f", state.AverageRating)
	}
	if state.RatingCount != 3 {
		t.Errorf("Expected 3 ratings, got %d", state.RatingCount)
	}
	if state.UserRating != 5 {
		t.Errorf("Expected own rating 5, got %d", state.UserRating)
	}
}

func TestRecipeID(t *testing.T) {
	tracker := NewTracker(testDetail(), "user-1", false)

	if tracker.RecipeID() != "recipe-1" {
		t.Errorf("Expected recipe-1, got %s", tracker.RecipeID())
	}
}
