package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tastebook/tastebook/pkg/app/components"
	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/services"
)

type popularLoadedMsg struct {
	recipes []data.RecipeSummary
	err     error
}

// HomeScreen shows the most popular recipes and a hero search box that
// jumps straight into the search screen.
type HomeScreen struct {
	ctrl *services.Controller

	searchInput textinput.Model
	list        *components.RecipeList
	loading     bool
	err         error
}

func NewHomeScreen(ctrl *services.Controller) *HomeScreen {
	input := textinput.New()
	input.Placeholder = "Search recipes..."
	input.CharLimit = 100
	input.Width = 40

	return &HomeScreen{
		ctrl:        ctrl,
		searchInput: input,
		list:        components.NewRecipeList("No popular recipes yet"),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	h.loading = true
	h.err = nil
	return h.loadPopular()
}

func (h *HomeScreen) loadPopular() tea.Cmd {
	return func() tea.Msg {
		recipes, err := h.ctrl.PopularRecipes()
		return popularLoadedMsg{recipes: recipes, err: err}
	}
}

func (h *HomeScreen) InputFocused() bool {
	return h.searchInput.Focused()
}

func (h *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case popularLoadedMsg:
		h.loading = false
		if msg.err != nil {
			h.err = msg.err
			return h, nil
		}
		h.list.SetItems(msg.recipes)
		return h, nil

	case tea.WindowSizeMsg:
		h.list.Width = msg.Width
		h.list.Height = msg.Height - 10

	case tea.KeyMsg:
		if h.searchInput.Focused() {
			switch msg.String() {
			case "enter":
				term := strings.TrimSpace(h.searchInput.Value())
				h.searchInput.Blur()
				h.searchInput.SetValue("")
				return h, func() tea.Msg {
					return SwitchScreenMsg{Screen: "search", Data: term}
				}
			case "esc":
				h.searchInput.Blur()
				return h, nil
			}
			h.searchInput, cmd = h.searchInput.Update(msg)
			return h, cmd
		}

		switch msg.String() {
		case "/", "s":
			return h, h.searchInput.Focus()
		case "down", "j":
			h.list.Next()
		case "up", "k":
			h.list.Prev()
		case "enter":
			if recipe := h.list.Selected(); recipe != nil {
				id := recipe.ID
				return h, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: id}
				}
			}
		case "r":
			return h, h.Init()
		}
	}

	return h, cmd
}

func (h *HomeScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Discover Recipes"))
	b.WriteString("\n")

	if h.searchInput.Focused() {
		b.WriteString(styles.FocusedInputStyle.Render(h.searchInput.View()))
	} else {
		b.WriteString(styles.InputStyle.Render(h.searchInput.View()))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.SubtitleStyle.Render("Popular this week"))
	b.WriteString("\n\n")

	switch {
	case h.loading:
		b.WriteString(styles.StatusPending.Render("Loading popular recipes..."))
	case h.err != nil:
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %v", h.err)))
	default:
		b.WriteString(h.list.View())
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("/ search • ↑/↓ browse • enter open • tab next view • q quit"))

	return b.String()
}
