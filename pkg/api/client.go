package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/form"
	"github.com/tastebook/tastebook/pkg/query"
)

// RequestError is a network or server rejection. The caller surfaces the
// message and rolls back any optimistic mutation tied to the request.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	api     *http.Client
	baseURL string
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{api: http.DefaultClient, baseURL: baseURL}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(method, path string, params url.Values, body, out any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	var payload *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(payload).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", c.baseURL, path), payload)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.api.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&serverErr)
		return &RequestError{StatusCode: resp.StatusCode, Message: serverErr.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(path string, params url.Values, out any) error {
	return c.do(http.MethodGet, path, params, nil, out)
}

func (c *Client) post(path string, body, out any) error {
	return c.do(http.MethodPost, path, nil, body, out)
}

func (c *Client) ListRecipes(req query.Request) ([]data.RecipeSummary, query.Page, error) {
	var list struct {
		Recipes    []Recipe   `json:"recipes"`
		Pagination Pagination `json:"pagination"`
	}
	if err := c.get("/recipes", req.Values(), &list); err != nil {
		return nil, query.Page{}, err
	}
	out := make([]data.RecipeSummary, len(list.Recipes))
	for i, recipe := range list.Recipes {
		out[i] = recipe.ToSummary()
	}
	return out, list.Pagination.ToPage(), nil
}

func (c *Client) PopularRecipes() ([]data.RecipeSummary, error) {
	var recipes []Recipe
	if err := c.get("/recipes/popular", nil, &recipes); err != nil {
		return nil, err
	}
	out := make([]data.RecipeSummary, len(recipes))
	for i, recipe := range recipes {
		out[i] = recipe.ToSummary()
	}
	return out, nil
}

func (c *Client) GetRecipe(id string) (*data.RecipeDetail, error) {
	var recipe Recipe
	if err := c.get(fmt.Sprintf("/recipes/%s", id), nil, &recipe); err != nil {
		return nil, err
	}
	return recipe.ToDetail(), nil
}

func (c *Client) CreateRecipe(payload *form.Payload) (string, error) {
	var created struct {
		ID string `json:"_id"`
	}
	if err := c.post("/recipes", newCreateRequest(payload), &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *Client) RateRecipe(id string, rating int) error {
	body := struct {
		Rating int `json:"rating"`
	}{Rating: rating}
	return c.post(fmt.Sprintf("/recipes/%s/rate", id), body, nil)
}

func (c *Client) AddFavorite(id string) error {
	return c.post(fmt.Sprintf("/recipes/%s/favorite", id), nil, nil)
}

func (c *Client) RemoveFavorite(id string) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/recipes/%s/favorite", id), nil, nil, nil)
}

func (c *Client) AddComment(id, text string) error {
	body := struct {
		Text string `json:"text"`
	}{Text: text}
	return c.post(fmt.Sprintf("/recipes/%s/comment", id), body, nil)
}

func (c *Client) UserRecipes(userID string) ([]data.RecipeSummary, error) {
	var recipes []Recipe
	if err := c.get(fmt.Sprintf("/recipes/user/%s", userID), nil, &recipes); err != nil {
		return nil, err
	}
	out := make([]data.RecipeSummary, len(recipes))
	for i, recipe := range recipes {
		out[i] = recipe.ToSummary()
	}
	return out, nil
}

func (c *Client) UserFavorites(userID string) ([]data.RecipeSummary, error) {
	var recipes []Recipe
	if err := c.get(fmt.Sprintf("/users/%s/favorites", userID), nil, &recipes); err != nil {
		return nil, err
	}
	out := make([]data.RecipeSummary, len(recipes))
	for i, recipe := range recipes {
		out[i] = recipe.ToSummary()
	}
	return out, nil
}

func (c *Client) UpdateProfile(username, bio, avatar string) error {
	body := struct {
		Username string `json:"username"`
		Bio      string `json:"bio"`
		Avatar   string `json:"avatar,omitempty"`
	}{Username: username, Bio: bio, Avatar: avatar}
	var result struct {
		Success bool `json:"success"`
	}
	if err := c.do(http.MethodPut, "/users/profile", nil, body, &result); err != nil {
		return err
	}
	if !result.Success {
		return &RequestError{StatusCode: http.StatusOK, Message: "profile update rejected"}
	}
	return nil
}

func (c *Client) CurrentUser() (*data.User, error) {
	var user User
	if err := c.get("/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return user.ToUser(), nil
}
