package data

import "time"

// Option lists for the enum fields, as the server accepts them.
var (
	Cuisines = []string{
		"Italian", "Mexican", "Asian", "American", "French",
		"Indian", "Mediterranean", "Thai", "Chinese", "Japanese",
	}
	Diets        = []string{"Regular", "Vegetarian", "Vegan", "Gluten-Free", "Keto", "Paleo"}
	Difficulties = []string{"Easy", "Medium", "Hard"}
)

type User struct {
	ID       string
	Username string
	Bio      string
	Avatar   string
}

type RecipeSummary struct {
	ID            string
	Title         string
	Description   string
	Image         string
	Cuisine       string
	Diet          string
	Difficulty    string
	PrepTime      int // minutes
	CookTime      int // minutes
	Servings      int
	AverageRating float64
	RatingCount   int
}

// TotalTime is prep plus cook time in minutes.
func (r *RecipeSummary) TotalTime() int {
	return r.PrepTime + r.CookTime
}

type Ingredient struct {
	Name   string
	Amount string
}

// Instruction is one step of a recipe. Step is the 1-based position of
// the instruction within the recipe.
type Instruction struct {
	Step        int
	Description string
}

type Rating struct {
	UserID   string
	Username string
	Value    int
}

type Comment struct {
	Author    string
	Text      string
	CreatedAt time.Time
}

type RecipeDetail struct {
	RecipeSummary
	Calories     int // 0 when the author did not provide it
	Author       User
	CreatedAt    time.Time
	Ingredients  []Ingredient
	Instructions []Instruction
	Ratings      []Rating
	Comments     []Comment
}

// UserRating returns the rating the given user left on this recipe, or 0
// if they have not rated it.
func (r *RecipeDetail) UserRating(userID string) int {
	if userID == "" {
		return 0
	}
	for _, rating := range r.Ratings {
		if rating.UserID == userID {
			return rating.Value
		}
	}
	return 0
}

// Session is the locally persisted sign-in state.
type Session struct {
	UserID   string
	Username string
	Token    string
	SavedAt  time.Time
}
