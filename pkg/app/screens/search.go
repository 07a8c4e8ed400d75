package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tastebook/tastebook/pkg/app/components"
	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/query"
	"github.com/tastebook/tastebook/pkg/services"
)

// Filter panel fields, in focus order.
const (
	fieldSearch = iota
	fieldCuisine
	fieldDiet
	fieldDifficulty
	fieldMaxPrep
	fieldMaxCook
	fieldMaxCalories
	fieldIngredients
	fieldCount
)

type searchResultMsg struct {
	gen     int
	recipes []data.RecipeSummary
	page    query.Page
	err     error
}

// SearchScreen is the filtered recipe browser: a filter panel on top of
// a paginated result list.
type SearchScreen struct {
	ctrl *services.Controller

	req       query.Request
	paginator query.Paginator
	gen       int

	searchInput      textinput.Model
	cuisineSel       *components.Selector
	dietSel          *components.Selector
	difficultySel    *components.Selector
	maxPrepInput     textinput.Model
	maxCookInput     textinput.Model
	maxCaloriesInput textinput.Model
	ingredientsInput textinput.Model

	list         *components.RecipeList
	panelFocused bool
	field        int
	searching    bool
	loaded       bool
	err          error
}

func newDigitInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 4
	input.Width = 8
	input.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("digits only")
			}
		}
		return nil
	}
	return input
}

func NewSearchScreen(ctrl *services.Controller) *SearchScreen {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search by title or description..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	ingredientsInput := textinput.New()
	ingredientsInput.Placeholder = "Ingredients, comma separated"
	ingredientsInput.CharLimit = 200
	ingredientsInput.Width = 40

	withAny := func(options []string) []string {
		return append([]string{""}, options...)
	}

	return &SearchScreen{
		ctrl:             ctrl,
		req:              ctrl.NewRequest(),
		searchInput:      searchInput,
		cuisineSel:       components.NewSelector("Cuisine", withAny(data.Cuisines)),
		dietSel:          components.NewSelector("Diet", withAny(data.Diets)),
		difficultySel:    components.NewSelector("Difficulty", withAny(data.Difficulties)),
		maxPrepInput:     newDigitInput("min"),
		maxCookInput:     newDigitInput("min"),
		maxCaloriesInput: newDigitInput("kcal"),
		ingredientsInput: ingredientsInput,
		list:             components.NewRecipeList("No recipes match your filters"),
	}
}

// Hydrate seeds the screen with a free-text search before it is shown,
// e.g. from the home hero box.
func (s *SearchScreen) Hydrate(term string) {
	s.req = s.req.Submit(term)
	s.syncWidgets(s.req.Filters)
	s.paginator.Reset()
	s.loaded = false
}

func (s *SearchScreen) Init() tea.Cmd {
	// Pre-fill the search box from history on the first visit.
	if !s.loaded && s.searchInput.Value() == "" {
		if terms := s.ctrl.RecentSearches(1); len(terms) > 0 {
			s.searchInput.SetValue(terms[0])
		}
	}
	return s.fetch()
}

// fetch issues the current request, tagging the response so that a
// superseded in-flight fetch is discarded when it lands.
func (s *SearchScreen) fetch() tea.Cmd {
	s.gen++
	s.searching = true
	s.err = nil
	gen := s.gen
	req := s.req
	return func() tea.Msg {
		recipes, page, err := s.ctrl.SearchRecipes(req)
		return searchResultMsg{gen: gen, recipes: recipes, page: page, err: err}
	}
}

func (s *SearchScreen) InputFocused() bool {
	return s.searchInput.Focused() ||
		s.maxPrepInput.Focused() ||
		s.maxCookInput.Focused() ||
		s.maxCaloriesInput.Focused() ||
		s.ingredientsInput.Focused()
}

// gather reads the filter panel widgets into a filter set.
func (s *SearchScreen) gather() query.FilterSet {
	return query.FilterSet{
		Search:      s.searchInput.Value(),
		Cuisine:     s.cuisineSel.Value(),
		Diet:        s.dietSel.Value(),
		Difficulty:  s.difficultySel.Value(),
		MaxPrepTime: s.maxPrepInput.Value(),
		MaxCookTime: s.maxCookInput.Value(),
		MaxCalories: s.maxCaloriesInput.Value(),
		Ingredients: s.ingredientsInput.Value(),
	}
}

// syncWidgets makes the filter panel reflect a filter set.
func (s *SearchScreen) syncWidgets(f query.FilterSet) {
	s.searchInput.SetValue(f.Search)
	s.cuisineSel.Select(f.Cuisine)
	s.dietSel.Select(f.Diet)
	s.difficultySel.Select(f.Difficulty)
	s.maxPrepInput.SetValue(f.MaxPrepTime)
	s.maxCookInput.SetValue(f.MaxCookTime)
	s.maxCaloriesInput.SetValue(f.MaxCalories)
	s.ingredientsInput.SetValue(f.Ingredients)
}

func (s *SearchScreen) blurAll() {
	s.searchInput.Blur()
	s.maxPrepInput.Blur()
	s.maxCookInput.Blur()
	s.maxCaloriesInput.Blur()
	s.ingredientsInput.Blur()
}

// focusField gives keyboard focus to the text input of the active panel
// field, if it has one.
func (s *SearchScreen) focusField() tea.Cmd {
	s.blurAll()
	switch s.field {
	case fieldSearch:
		return s.searchInput.Focus()
	case fieldMaxPrep:
		return s.maxPrepInput.Focus()
	case fieldMaxCook:
		return s.maxCookInput.Focus()
	case fieldMaxCalories:
		return s.maxCaloriesInput.Focus()
	case fieldIngredients:
		return s.ingredientsInput.Focus()
	}
	return nil
}

func (s *SearchScreen) activeSelector() *components.Selector {
	switch s.field {
	case fieldCuisine:
		return s.cuisineSel
	case fieldDiet:
		return s.dietSel
	case fieldDifficulty:
		return s.difficultySel
	}
	return nil
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg:
		if msg.gen != s.gen {
			// A newer request is already in flight or resolved.
			return s, nil
		}
		s.searching = false
		s.loaded = true
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.list.SetItems(msg.recipes)
		s.paginator.Replace(msg.page)
		s.req = s.req.GoTo(msg.page.CurrentPage)
		return s, nil

	case tea.WindowSizeMsg:
		s.list.Width = msg.Width
		s.list.Height = msg.Height - 16
		return s, nil

	case tea.KeyMsg:
		if s.panelFocused {
			return s.updatePanel(msg)
		}
		return s.updateResults(msg)
	}

	return s, nil
}

func (s *SearchScreen) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.panelFocused = false
		s.blurAll()
		return s, nil
	case "up", "shift+tab":
		s.field--
		if s.field < 0 {
			s.field = fieldCount - 1
		}
		return s, s.focusField()
	case "down":
		s.field = (s.field + 1) % fieldCount
		return s, s.focusField()
	case "enter":
		s.blurAll()
		s.panelFocused = false
		if s.field == fieldSearch {
			s.req = s.req.Submit(s.searchInput.Value())
			s.syncWidgets(s.req.Filters)
		} else {
			s.req = s.req.Apply(s.gather())
		}
		s.paginator.Reset()
		return s, s.fetch()
	case "ctrl+x":
		s.req = s.req.Clear()
		s.syncWidgets(s.req.Filters)
		s.paginator.Reset()
		return s, s.fetch()
	case "left", "right":
		if sel := s.activeSelector(); sel != nil {
			if msg.String() == "left" {
				sel.Prev()
			} else {
				sel.Next()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.field {
	case fieldSearch:
		s.searchInput, cmd = s.searchInput.Update(msg)
	case fieldMaxPrep:
		s.maxPrepInput, cmd = s.maxPrepInput.Update(msg)
	case fieldMaxCook:
		s.maxCookInput, cmd = s.maxCookInput.Update(msg)
	case fieldMaxCalories:
		s.maxCaloriesInput, cmd = s.maxCaloriesInput.Update(msg)
	case fieldIngredients:
		s.ingredientsInput, cmd = s.ingredientsInput.Update(msg)
	}
	return s, cmd
}

func (s *SearchScreen) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		s.panelFocused = true
		return s, s.focusField()
	case "down", "j":
		s.list.Next()
	case "up", "k":
		s.list.Prev()
	case "enter":
		if recipe := s.list.Selected(); recipe != nil {
			id := recipe.ID
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "details", Data: id}
			}
		}
	case "right", "l", "n":
		return s, s.goTo(s.req.Page + 1)
	case "left", "h", "p":
		return s, s.goTo(s.req.Page - 1)
	case "ctrl+x":
		s.req = s.req.Clear()
		s.syncWidgets(s.req.Filters)
		s.paginator.Reset()
		return s, s.fetch()
	case "r":
		return s, s.fetch()
	}
	return s, nil
}

func (s *SearchScreen) goTo(page int) tea.Cmd {
	if s.searching || !s.paginator.CanGoTo(page) {
		return nil
	}
	s.req = s.req.GoTo(page)
	return s.fetch()
}

func (s *SearchScreen) View() string {
	var b strings.Builder

	b.WriteString(s.viewPanel())
	b.WriteString("\n")

	page := s.paginator.Current()
	switch {
	case s.searching:
		b.WriteString(styles.StatusPending.Render("Searching..."))
		b.WriteString("\n")
	case s.err != nil:
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %v", s.err)))
		b.WriteString("\n")
	case s.loaded:
		if page.TotalRecipes > 0 {
			b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d recipes", page.TotalRecipes)))
			b.WriteString("\n")
		}
		b.WriteString(s.list.View())
		if controls := components.RenderPagination(page); controls != "" {
			b.WriteString(controls)
			b.WriteString("\n")
		}
	}

	if s.panelFocused {
		b.WriteString(styles.HelpStyle.Render("↑/↓ field • ←/→ choose • enter apply • ctrl+x clear • esc results"))
	} else {
		b.WriteString(styles.HelpStyle.Render("↑/↓ browse • ←/→ page • enter open • f filters • ctrl+x clear • q quit"))
	}
	return b.String()
}

func (s *SearchScreen) viewPanel() string {
	row := func(field int, label, view string) string {
		rendered := styles.LabelStyle.Render(label)
		if s.panelFocused && s.field == field {
			rendered = styles.TitleStyle.Render(label)
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, rendered+" ", view)
	}

	input := func(field int, in textinput.Model) string {
		if s.panelFocused && s.field == field {
			return styles.FocusedInputStyle.Render(in.View())
		}
		return styles.InputStyle.Render(in.View())
	}

	top := lipgloss.JoinHorizontal(
		lipgloss.Center,
		row(fieldSearch, "Search", input(fieldSearch, s.searchInput)),
		"  ",
		row(fieldCuisine, "Cuisine", s.cuisineSel.View(s.panelFocused && s.field == fieldCuisine)),
		"  ",
		row(fieldDiet, "Diet", s.dietSel.View(s.panelFocused && s.field == fieldDiet)),
		"  ",
		row(fieldDifficulty, "Difficulty", s.difficultySel.View(s.panelFocused && s.field == fieldDifficulty)),
	)
	bottom := lipgloss.JoinHorizontal(
		lipgloss.Center,
		row(fieldMaxPrep, "Max prep", input(fieldMaxPrep, s.maxPrepInput)),
		"  ",
		row(fieldMaxCook, "Max cook", input(fieldMaxCook, s.maxCookInput)),
		"  ",
		row(fieldMaxCalories, "Max calories", input(fieldMaxCalories, s.maxCaloriesInput)),
		"  ",
		row(fieldIngredients, "Ingredients", input(fieldIngredients, s.ingredientsInput)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}
