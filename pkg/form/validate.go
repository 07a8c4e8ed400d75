package form

import (
	"strconv"
	"strings"

	"github.com/tastebook/tastebook/pkg/data"
)

// Reason names the first check a draft failed.
type Reason string

const (
	MissingTitle        Reason = "missing_title"
	MissingDescription  Reason = "missing_description"
	MissingImage        Reason = "missing_image"
	MissingCuisine      Reason = "missing_cuisine"
	NoValidIngredients  Reason = "no_valid_ingredients"
	NoValidInstructions Reason = "no_valid_instructions"
	MissingComment      Reason = "missing_comment"
)

// ValidationError is a client-detected problem with the draft. It blocks
// submission entirely; nothing reaches the network.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(reason Reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

// Payload is the submission body derived from a valid draft. Rows the
// user left blank are dropped; Calories is nil when not provided and is
// then omitted from the request entirely.
type Payload struct {
	Title        string
	Description  string
	Image        string
	Cuisine      string
	Difficulty   string
	Diet         string
	PrepTime     int
	CookTime     int
	Servings     int
	Calories     *int
	Ingredients  []data.Ingredient
	Instructions []data.Instruction
}

// BuildPayload validates the draft and constructs the submission
// payload. Checks run in order and stop at the first failure.
func (d *Draft) BuildPayload() (*Payload, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, invalid(MissingTitle, "please enter a recipe title")
	}
	if strings.TrimSpace(d.Description) == "" {
		return nil, invalid(MissingDescription, "please enter a recipe description")
	}
	if d.Image == "" {
		return nil, invalid(MissingImage, "please add a recipe image")
	}
	if strings.TrimSpace(d.Cuisine) == "" {
		return nil, invalid(MissingCuisine, "please enter the cuisine type")
	}

	var ingredients []data.Ingredient
	for _, row := range d.Ingredients.Rows() {
		if strings.TrimSpace(row.Name) != "" && strings.TrimSpace(row.Amount) != "" {
			ingredients = append(ingredients, row)
		}
	}
	if len(ingredients) == 0 {
		return nil, invalid(NoValidIngredients, "please add at least one ingredient")
	}

	var instructions []data.Instruction
	for _, row := range d.Instructions.Rows() {
		if strings.TrimSpace(row.Description) != "" {
			instructions = append(instructions, row)
		}
	}
	if len(instructions) == 0 {
		return nil, invalid(NoValidInstructions, "please add at least one instruction")
	}

	p := &Payload{
		Title:        d.Title,
		Description:  d.Description,
		Image:        d.Image,
		Cuisine:      d.Cuisine,
		Difficulty:   d.Difficulty,
		Diet:         d.Diet,
		PrepTime:     parseInt(d.PrepTime),
		CookTime:     parseInt(d.CookTime),
		Servings:     parseInt(d.Servings),
		Ingredients:  ingredients,
		Instructions: instructions,
	}
	if strings.TrimSpace(d.Calories) != "" {
		calories := parseInt(d.Calories)
		p.Calories = &calories
	}
	return p, nil
}

// parseInt tolerates blank input; the form inputs only accept digits.
func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
