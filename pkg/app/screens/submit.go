package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tastebook/tastebook/pkg/app/components"
	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/engage"
	"github.com/tastebook/tastebook/pkg/form"
	"github.com/tastebook/tastebook/pkg/integrations"
	"github.com/tastebook/tastebook/pkg/services"
)

// Scalar fields of the authoring form, in focus order. Dynamic rows
// follow after scalarFieldCount.
const (
	sfTitle = iota
	sfDescription
	sfImage
	sfPrepTime
	sfCookTime
	sfServings
	sfCalories
	sfDifficulty
	sfCuisine
	sfDiet
	scalarFieldCount
)

type submitResultMsg struct {
	id  string
	err error
}

// SubmitScreen is the recipe authoring form: scalar fields, the dynamic
// ingredient and instruction rows, and submission.
type SubmitScreen struct {
	ctrl  *services.Controller
	draft *form.Draft

	titleInput       textinput.Model
	descriptionInput textinput.Model
	imageInput       textinput.Model
	prepInput        textinput.Model
	cookInput        textinput.Model
	servingsInput    textinput.Model
	caloriesInput    textinput.Model
	difficultySel    *components.Selector
	cuisineSel       *components.Selector
	dietSel          *components.Selector

	ingNameInputs   []textinput.Model
	ingAmountInputs []textinput.Model
	instInputs      []textinput.Model

	focus         int
	submitting    bool
	status        string
	statusIsError bool
}

func newFormInput(placeholder string, limit, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = width
	return input
}

func NewSubmitScreen(ctrl *services.Controller) *SubmitScreen {
	s := &SubmitScreen{ctrl: ctrl}
	s.reset()
	return s
}

// reset returns the form to a fresh draft: blank scalars and one blank
// row in each collection.
func (s *SubmitScreen) reset() {
	s.draft = form.NewDraft()
	s.titleInput = newFormInput("Recipe title", 100, 40)
	s.descriptionInput = newFormInput("Short description", 300, 40)
	s.imageInput = newFormInput("Path to an image file", 200, 40)
	s.prepInput = newDigitInput("min")
	s.cookInput = newDigitInput("min")
	s.servingsInput = newDigitInput("4")
	s.caloriesInput = newDigitInput("kcal")
	s.difficultySel = components.NewSelector("Difficulty", data.Difficulties)
	s.cuisineSel = components.NewSelector("Cuisine", append([]string{""}, data.Cuisines...))
	s.dietSel = components.NewSelector("Diet", data.Diets)

	s.ingNameInputs = []textinput.Model{newFormInput("Ingredient", 100, 25)}
	s.ingAmountInputs = []textinput.Model{newFormInput("Amount", 50, 15)}
	s.instInputs = []textinput.Model{newFormInput("Describe this step", 500, 60)}

	s.focus = 0
	s.submitting = false
	s.status = ""
	s.statusIsError = false
}

func (s *SubmitScreen) Init() tea.Cmd {
	return s.focusCurrent()
}

func (s *SubmitScreen) fieldCount() int {
	return scalarFieldCount + 2*len(s.ingNameInputs) + len(s.instInputs)
}

// Row index helpers over the flat focus index.
func (s *SubmitScreen) ingredientAt(focus int) (row int, amount bool, ok bool) {
	offset := focus - scalarFieldCount
	if offset < 0 || offset >= 2*len(s.ingNameInputs) {
		return 0, false, false
	}
	return offset / 2, offset%2 == 1, true
}

func (s *SubmitScreen) instructionAt(focus int) (row int, ok bool) {
	offset := focus - scalarFieldCount - 2*len(s.ingNameInputs)
	if offset < 0 || offset >= len(s.instInputs) {
		return 0, false
	}
	return offset, true
}

func (s *SubmitScreen) InputFocused() bool {
	return s.currentInput() != nil && s.currentInput().Focused()
}

// currentInput returns the text input under the focus index, nil when a
// selector is focused.
func (s *SubmitScreen) currentInput() *textinput.Model {
	switch s.focus {
	case sfTitle:
		return &s.titleInput
	case sfDescription:
		return &s.descriptionInput
	case sfImage:
		return &s.imageInput
	case sfPrepTime:
		return &s.prepInput
	case sfCookTime:
		return &s.cookInput
	case sfServings:
		return &s.servingsInput
	case sfCalories:
		return &s.caloriesInput
	case sfDifficulty, sfCuisine, sfDiet:
		return nil
	}
	if row, amount, ok := s.ingredientAt(s.focus); ok {
		if amount {
			return &s.ingAmountInputs[row]
		}
		return &s.ingNameInputs[row]
	}
	if row, ok := s.instructionAt(s.focus); ok {
		return &s.instInputs[row]
	}
	return nil
}

func (s *SubmitScreen) currentSelector() *components.Selector {
	switch s.focus {
	case sfDifficulty:
		return s.difficultySel
	case sfCuisine:
		return s.cuisineSel
	case sfDiet:
		return s.dietSel
	}
	return nil
}

func (s *SubmitScreen) blurAll() {
	s.titleInput.Blur()
	s.descriptionInput.Blur()
	s.imageInput.Blur()
	s.prepInput.Blur()
	s.cookInput.Blur()
	s.servingsInput.Blur()
	s.caloriesInput.Blur()
	for i := range s.ingNameInputs {
		s.ingNameInputs[i].Blur()
		s.ingAmountInputs[i].Blur()
	}
	for i := range s.instInputs {
		s.instInputs[i].Blur()
	}
}

func (s *SubmitScreen) focusCurrent() tea.Cmd {
	s.blurAll()
	if input := s.currentInput(); input != nil {
		return input.Focus()
	}
	return nil
}

// syncDraft copies every widget value into the draft.
func (s *SubmitScreen) syncDraft() {
	s.draft.Title = s.titleInput.Value()
	s.draft.Description = s.descriptionInput.Value()
	s.draft.PrepTime = s.prepInput.Value()
	s.draft.CookTime = s.cookInput.Value()
	s.draft.Servings = s.servingsInput.Value()
	s.draft.Calories = s.caloriesInput.Value()
	s.draft.Difficulty = s.difficultySel.Value()
	s.draft.Cuisine = s.cuisineSel.Value()
	s.draft.Diet = s.dietSel.Value()
	for i := range s.ingNameInputs {
		s.draft.SetIngredientName(i, s.ingNameInputs[i].Value())
		s.draft.SetIngredientAmount(i, s.ingAmountInputs[i].Value())
	}
	for i := range s.instInputs {
		s.draft.SetInstructionDescription(i, s.instInputs[i].Value())
	}
}

func (s *SubmitScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		s.submitting = false
		if msg.err != nil {
			var vErr *form.ValidationError
			switch {
			case msg.err == engage.ErrAuthRequired:
				s.status = "Sign in to publish recipes"
			case errors.As(msg.err, &vErr):
				s.status = vErr.Message
			default:
				s.status = fmt.Sprintf("Submission failed: %v", msg.err)
			}
			s.statusIsError = true
			return s, nil
		}
		id := msg.id
		s.reset()
		s.status = "Recipe published"
		return s, func() tea.Msg {
			return SwitchScreenMsg{Screen: "details", Data: id}
		}

	case tea.KeyMsg:
		return s.updateKeys(msg)
	}

	return s, nil
}

func (s *SubmitScreen) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.submitting {
		return s, nil
	}

	switch msg.String() {
	case "down", "enter":
		s.focus = (s.focus + 1) % s.fieldCount()
		return s, s.focusCurrent()
	case "up", "shift+tab":
		s.focus--
		if s.focus < 0 {
			s.focus = s.fieldCount() - 1
		}
		return s, s.focusCurrent()
	case "left", "right":
		if sel := s.currentSelector(); sel != nil {
			if msg.String() == "left" {
				sel.Prev()
			} else {
				sel.Next()
			}
			return s, nil
		}
	case "ctrl+a":
		return s, s.addIngredient()
	case "ctrl+t":
		return s, s.addInstruction()
	case "ctrl+d":
		return s, s.removeCurrentRow()
	case "ctrl+s":
		return s, s.submit()
	case "esc":
		s.blurAll()
		return s, nil
	}

	if input := s.currentInput(); input != nil {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SubmitScreen) addIngredient() tea.Cmd {
	s.syncDraft()
	s.draft.AddIngredient()
	s.ingNameInputs = append(s.ingNameInputs, newFormInput("Ingredient", 100, 25))
	s.ingAmountInputs = append(s.ingAmountInputs, newFormInput("Amount", 50, 15))
	s.focus = scalarFieldCount + 2*(len(s.ingNameInputs)-1)
	return s.focusCurrent()
}

func (s *SubmitScreen) addInstruction() tea.Cmd {
	s.syncDraft()
	s.draft.AddInstruction()
	s.instInputs = append(s.instInputs, newFormInput("Describe this step", 500, 60))
	s.focus = scalarFieldCount + 2*len(s.ingNameInputs) + len(s.instInputs) - 1
	return s.focusCurrent()
}

// removeCurrentRow deletes the focused ingredient or instruction row.
// The last remaining row of a collection stays put.
func (s *SubmitScreen) removeCurrentRow() tea.Cmd {
	s.syncDraft()
	if row, _, ok := s.ingredientAt(s.focus); ok {
		if s.draft.Ingredients.RemoveAt(row) {
			s.ingNameInputs = append(s.ingNameInputs[:row], s.ingNameInputs[row+1:]...)
			s.ingAmountInputs = append(s.ingAmountInputs[:row], s.ingAmountInputs[row+1:]...)
			s.focus = scalarFieldCount
		}
		return s.focusCurrent()
	}
	if row, ok := s.instructionAt(s.focus); ok {
		if s.draft.Instructions.RemoveAt(row) {
			s.instInputs = append(s.instInputs[:row], s.instInputs[row+1:]...)
			s.focus = scalarFieldCount + 2*len(s.ingNameInputs)
		}
		return s.focusCurrent()
	}
	return nil
}

func (s *SubmitScreen) submit() tea.Cmd {
	s.syncDraft()
	s.submitting = true
	s.status = ""
	s.statusIsError = false

	draft := s.draft
	imagePath := strings.TrimSpace(s.imageInput.Value())
	return func() tea.Msg {
		if imagePath != "" && !strings.HasPrefix(imagePath, "data:") {
			uri, err := integrations.EncodeImageFile(imagePath)
			if err != nil {
				return submitResultMsg{err: fmt.Errorf("image: %w", err)}
			}
			draft.Image = uri
		} else {
			draft.Image = imagePath
		}
		id, err := s.ctrl.SubmitRecipe(draft)
		return submitResultMsg{id: id, err: err}
	}
}

func (s *SubmitScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Add a Recipe"))
	b.WriteString("\n")

	field := func(index int, label string, view string) string {
		rendered := styles.LabelStyle.Render(label)
		if s.focus == index {
			rendered = styles.TitleStyle.Render(label)
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, rendered+" ", view)
	}
	input := func(index int, in textinput.Model) string {
		if s.focus == index {
			return styles.FocusedInputStyle.Render(in.View())
		}
		return styles.InputStyle.Render(in.View())
	}

	b.WriteString(field(sfTitle, "Title", input(sfTitle, s.titleInput)))
	b.WriteString("\n")
	b.WriteString(field(sfDescription, "Description", input(sfDescription, s.descriptionInput)))
	b.WriteString("\n")
	b.WriteString(field(sfImage, "Image", input(sfImage, s.imageInput)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		field(sfPrepTime, "Prep", input(sfPrepTime, s.prepInput)),
		"  ",
		field(sfCookTime, "Cook", input(sfCookTime, s.cookInput)),
		"  ",
		field(sfServings, "Servings", input(sfServings, s.servingsInput)),
		"  ",
		field(sfCalories, "Calories", input(sfCalories, s.caloriesInput)),
	))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		field(sfDifficulty, "Difficulty", s.difficultySel.View(s.focus == sfDifficulty)),
		"  ",
		field(sfCuisine, "Cuisine", s.cuisineSel.View(s.focus == sfCuisine)),
		"  ",
		field(sfDiet, "Diet", s.dietSel.View(s.focus == sfDiet)),
	))
	b.WriteString("\n\n")

	b.WriteString(styles.LabelStyle.Render("Ingredients"))
	b.WriteString("\n")
	for i := range s.ingNameInputs {
		nameIdx := scalarFieldCount + 2*i
		b.WriteString(lipgloss.JoinHorizontal(
			lipgloss.Center,
			input(nameIdx, s.ingNameInputs[i]),
			" ",
			input(nameIdx+1, s.ingAmountInputs[i]),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Instructions"))
	b.WriteString("\n")
	for i := range s.instInputs {
		idx := scalarFieldCount + 2*len(s.ingNameInputs) + i
		step := styles.MutedStyle.Render(fmt.Sprintf("%d.", i+1))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, step, " ", input(idx, s.instInputs[i])))
		b.WriteString("\n")
	}

	if s.submitting {
		b.WriteString("\n")
		b.WriteString(styles.StatusPending.Render("Publishing..."))
	} else if s.status != "" {
		b.WriteString("\n")
		if s.statusIsError {
			b.WriteString(styles.StatusError.Render(s.status))
		} else {
			b.WriteString(styles.StatusSuccess.Render(s.status))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(
		"↑/↓ field • ←/→ choose • ctrl+a ingredient • ctrl+t step • ctrl+d remove row • ctrl+s publish"))
	return b.String()
}
