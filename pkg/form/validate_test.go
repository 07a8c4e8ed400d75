package form

import (
	"testing"
)

func validDraft() *Draft {
	d := NewDraft()
	d.Title = "Pasta Carbonara"
	d.Description = "A classic Roman pasta"
	d.Image = "data:image/jpeg;base64,abc"
	d.Cuisine = "Italian"
	d.PrepTime = "10"
	d.CookTime = "20"
	d.Servings = "4"
	d.SetIngredientName(0, "Spaghetti")
	d.SetIngredientAmount(0, "400g")
	d.SetInstructionDescription(0, "Boil the pasta")
	return d
}

func reasonOf(t *testing.T, err error) Reason {
	t.Helper()
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Expected *ValidationError, got %T (%v)", err, err)
	}
	return vErr.Reason
}

func TestBuildPayloadValid(t *testing.T) {
	payload, err := validDraft().BuildPayload()
	if err != nil {
		t.Fatalf("Expected valid draft, got %v", err)
	}

	if payload.Title != "Pasta Carbonara" {
		t.Errorf("Expected title preserved, got %q", payload.Title)
	}
	if payload.PrepTime != 10 || payload.CookTime != 20 || payload.Servings != 4 {
		t.Errorf("Expected parsed numbers, got %d/%d/%d",
			payload.PrepTime, payload.CookTime, payload.Servings)
	}
	if payload.Difficulty != "Easy" || payload.Diet != "Regular" {
		t.Errorf("Expected defaults kept, got %s/%s", payload.Difficulty, payload.Diet)
	}
	if len(payload.Ingredients) != 1 {
		t.Errorf("Expected 1 ingredient, got %d", len(payload.Ingredients))
	}
	if len(payload.Instructions) != 1 {
		t.Errorf("Expected 1 instruction, got %d", len(payload.Instructions))
	}
}

func TestBuildPayloadChecksRunInOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		reason Reason
	}{
		{"missing title", func(d *Draft) { d.Title = "  " }, MissingTitle},
		{"missing description", func(d *Draft) { d.Description = "" }, MissingDescription},
		{"missing image", func(d *Draft) { d.Image = "" }, MissingImage},
		{"missing cuisine", func(d *Draft) { d.Cuisine = " " }, MissingCuisine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)
			_, err := d.BuildPayload()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if got := reasonOf(t, err); got != tt.reason {
				t.Errorf("Expected reason %s, got %s", tt.reason, got)
			}
		})
	}
}

func TestBuildPayloadTitleCheckedFirst(t *testing.T) {
	d := NewDraft()

	_, err := d.BuildPayload()
	if got := reasonOf(t, err); got != MissingTitle {
		t.Errorf("Expected the title check to fail first, got %s", got)
	}
}

func TestBuildPayloadFiltersBlankIngredients(t *testing.T) {
	d := validDraft()
	d.AddIngredient() // left blank
	d.AddIngredient()
	d.SetIngredientName(2, "Eggs") // amount missing

	payload, err := d.BuildPayload()
	if err != nil {
		t.Fatalf("One complete ingredient should be enough: %v", err)
	}
	if len(payload.Ingredients) != 1 {
		t.Errorf("Expected only the complete row, got %d", len(payload.Ingredients))
	}
	if payload.Ingredients[0].Name != "Spaghetti" {
		t.Errorf("Expected Spaghetti, got %s", payload.Ingredients[0].Name)
	}
}

func TestBuildPayloadNoCompleteIngredient(t *testing.T) {
	d := validDraft()
	d.SetIngredientAmount(0, "   ")

	_, err := d.BuildPayload()
	if got := reasonOf(t, err); got != NoValidIngredients {
		t.Errorf("Expected NoValidIngredients, got %s", got)
	}
}

func TestBuildPayloadFiltersBlankInstructions(t *testing.T) {
	d := validDraft()
	d.AddInstruction() // left blank

	payload, err := d.BuildPayload()
	if err != nil {
		t.Fatalf("Expected valid draft, got %v", err)
	}
	if len(payload.Instructions) != 1 {
		t.Errorf("Expected blank step dropped, got %d", len(payload.Instructions))
	}
}

func TestBuildPayloadNoInstructions(t *testing.T) {
	d := validDraft()
	d.SetInstructionDescription(0, "")

	_, err := d.BuildPayload()
	if got := reasonOf(t, err); got != NoValidInstructions {
		t.Errorf("Expected NoValidInstructions, got %s", got)
	}
}

func TestBuildPayloadCaloriesOptional(t *testing.T) {
	payload, err := validDraft().BuildPayload()
	if err != nil {
		t.Fatalf("Expected valid draft, got %v", err)
	}
	if payload.Calories != nil {
		t.Errorf("Expected nil calories when not provided, got %d", *payload.Calories)
	}

	d := validDraft()
	d.Calories = "450"
	payload, err = d.BuildPayload()
	if err != nil {
		t.Fatalf("Expected valid draft, got %v", err)
	}
	if payload.Calories == nil || *payload.Calories != 450 {
		t.Errorf("Expected calories 450, got %v", payload.Calories)
	}
}

func TestBuildPayloadBlankNumbersParseToZero(t *testing.T) {
	d := validDraft()
	d.PrepTime = ""
	d.Servings = " "

	payload, err := d.BuildPayload()
	if err != nil {
		t.Fatalf("Expected valid draft, got %v", err)
	}
	if payload.PrepTime != 0 || payload.Servings != 0 {
		t.Errorf("Expected zero for blank numbers, got %d/%d", payload.PrepTime, payload.Servings)
	}
}
