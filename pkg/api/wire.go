package api

import (
	"time"

	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/form"
	"github.com/tastebook/tastebook/pkg/query"
)

type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

func (u *User) ToUser() *data.User {
	return &data.User{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		Avatar:   u.Avatar,
	}
}

type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type Instruction struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

type Rating struct {
	User   User `json:"user"`
	Rating int  `json:"rating"`
}

type Comment struct {
	User      User      `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Recipe struct {
	ID            string        `json:"_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Cuisine       string        `json:"cuisine"`
	Diet          string        `json:"diet"`
	Difficulty    string        `json:"difficulty"`
	PrepTime      int           `json:"prepTime"`
	CookTime      int           `json:"cookTime"`
	Servings      int           `json:"servings"`
	Calories      int           `json:"calories"`
	AverageRating float64       `json:"averageRating"`
	Author        User          `json:"author"`
	CreatedAt     time.Time     `json:"createdAt"`
	Ingredients   []Ingredient  `json:"ingredients"`
	Instructions  []Instruction `json:"instructions"`
	Ratings       []Rating      `json:"ratings"`
	Comments      []Comment     `json:"comments"`
}

func (r *Recipe) ToSummary() data.RecipeSummary {
	return data.RecipeSummary{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Image:         r.Image,
		Cuisine:       r.Cuisine,
		Diet:          r.Diet,
		Difficulty:    r.Difficulty,
		PrepTime:      r.PrepTime,
		CookTime:      r.CookTime,
		Servings:      r.Servings,
		AverageRating: r.AverageRating,
		RatingCount:   len(r.Ratings),
	}
}

func (r *Recipe) ToDetail() *data.RecipeDetail {
	detail := &data.RecipeDetail{
		RecipeSummary: r.ToSummary(),
		Calories:      r.Calories,
		Author:        *r.Author.ToUser(),
		CreatedAt:     r.CreatedAt,
	}
	for _, ing := range r.Ingredients {
		detail.Ingredients = append(detail.Ingredients, data.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
		})
	}
	for _, inst := range r.Instructions {
		detail.Instructions = append(detail.Instructions, data.Instruction{
			Step:        inst.Step,
			Description: inst.Description,
		})
	}
	for _, rating := range r.Ratings {
		detail.Ratings = append(detail.Ratings, data.Rating{
			UserID:   rating.User.ID,
			Username: rating.User.Username,
			Value:    rating.Rating,
		})
	}
	for _, comment := range r.Comments {
		detail.Comments = append(detail.Comments, data.Comment{
			Author:    comment.User.Username,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		})
	}
	return detail
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecipes int `json:"totalRecipes"`
}

// ToPage rederives HasPrev/HasNext locally instead of trusting the
// server to keep them consistent.
func (p *Pagination) ToPage() query.Page {
	return query.NewPage(p.CurrentPage, p.TotalPages, p.TotalRecipes)
}

type createRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Image        string        `json:"image"`
	Cuisine      string        `json:"cuisine"`
	Difficulty   string        `json:"difficulty"`
	Diet         string        `json:"diet"`
	PrepTime     int           `json:"prepTime"`
	CookTime     int           `json:"cookTime"`
	Servings     int           `json:"servings"`
	Calories     *int          `json:"calories,omitempty"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Instructions []Instruction `json:"instructions"`
}

func newCreateRequest(p *form.Payload) createRequest {
	req := createRequest{
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Cuisine:     p.Cuisine,
		Difficulty:  p.Difficulty,
		Diet:        p.Diet,
		PrepTime:    p.PrepTime,
		CookTime:    p.CookTime,
		Servings:    p.Servings,
		Calories:    p.Calories,
	}
	for _, ing := range p.Ingredients {
		req.Ingredients = append(req.Ingredients, Ingredient{Name: ing.Name, Amount: ing.Amount})
	}
	for _, inst := range p.Instructions {
		req.Instructions = append(req.Instructions, Instruction{Step: inst.Step, Description: inst.Description})
	}
	return req
}
