package data

import (
	"testing"
)

func TestTotalTime(t *testing.T) {
	recipe := RecipeSummary{PrepTime: 15, CookTime: 30}

	if got := recipe.TotalTime(); got != 45 {
		t.Errorf("Expected 45, got %d", got)
	}
}

func TestUserRating(t *testing.T) {
	detail := RecipeDetail{
		Ratings: []Rating{
			{UserID: "u1", Value: 5},
			{UserID: "u2", Value: 3},
		},
	}

	if got := detail.UserRating("u2"); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := detail.UserRating("u3"); got != 0 {
		t.Errorf("Expected 0 for a user who has not rated, got %d", got)
	}
	if got := detail.UserRating(""); got != 0 {
		t.Errorf("Expected 0 for anonymous, got %d", got)
	}
}
