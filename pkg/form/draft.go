package form

import "github.com/tastebook/tastebook/pkg/data"

// Draft is the in-progress recipe in the authoring form. It lives from
// entering the form until submission or navigation away; numeric fields
// stay as the raw digit strings from the inputs until the payload is
// built.
type Draft struct {
	Title       string
	Description string
	Image       string // data URI
	PrepTime    string
	CookTime    string
	Servings    string
	Calories    string // optional
	Difficulty  string
	Cuisine     string
	Diet        string

	Ingredients  *RowList[data.Ingredient]
	Instructions *RowList[data.Instruction]
}

func NewDraft() *Draft {
	return &Draft{
		Difficulty:   "Easy",
		Diet:         "Regular",
		Ingredients:  NewIngredientList(),
		Instructions: NewInstructionList(),
	}
}

func (d *Draft) SetIngredientName(i int, name string) {
	d.Ingredients.Update(i, func(row *data.Ingredient) { row.Name = name })
}

func (d *Draft) SetIngredientAmount(i int, amount string) {
	d.Ingredients.Update(i, func(row *data.Ingredient) { row.Amount = amount })
}

func (d *Draft) SetInstructionDescription(i int, desc string) {
	d.Instructions.Update(i, func(row *data.Instruction) { row.Description = desc })
}

func (d *Draft) AddIngredient() {
	d.Ingredients.Add(data.Ingredient{})
}

func (d *Draft) AddInstruction() {
	d.Instructions.Add(data.Instruction{})
}
