package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/services"
)

type screenType int

const (
	homeView screenType = iota
	searchView
	submitView
	profileView
	detailsView
)

// SwitchScreenMsg asks the root screen to change views. Data carries the
// recipe id for "details" and the search term for "search".
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// focusable lets a screen keep "q" and "tab" for itself while one of its
// text inputs is focused.
type focusable interface {
	InputFocused() bool
}

type RootScreen struct {
	ctrl      *services.Controller
	exportDir string

	currentView screenType
	prevView    screenType
	home        *HomeScreen
	search      *SearchScreen
	submit      *SubmitScreen
	profile     *ProfileScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(ctrl *services.Controller, exportDir, initialQuery string) *RootScreen {
	r := &RootScreen{
		ctrl:      ctrl,
		exportDir: exportDir,
		home:      NewHomeScreen(ctrl),
		search:    NewSearchScreen(ctrl),
		submit:    NewSubmitScreen(ctrl),
		profile:   NewProfileScreen(ctrl),
	}
	if initialQuery != "" {
		r.currentView = searchView
		r.search.Hydrate(initialQuery)
	}
	return r
}

func (r *RootScreen) Init() tea.Cmd {
	if r.currentView == searchView {
		return r.search.Init()
	}
	return r.home.Init()
}

func (r *RootScreen) active() tea.Model {
	switch r.currentView {
	case searchView:
		return r.search
	case submitView:
		return r.submit
	case profileView:
		return r.profile
	case detailsView:
		return r.details
	default:
		return r.home
	}
}

func (r *RootScreen) inputFocused() bool {
	if f, ok := r.active().(focusable); ok {
		return f.InputFocused()
	}
	return false
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !r.inputFocused() {
				return r, tea.Quit
			}
		case "tab":
			if r.currentView != detailsView && !r.inputFocused() {
				r.currentView = (r.currentView + 1) % 4
				return r, r.active().Init()
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "home":
			r.currentView = homeView
			cmd = r.home.Init()
		case "search":
			r.prevView = r.currentView
			r.currentView = searchView
			if term, ok := msg.Data.(string); ok && term != "" {
				r.search.Hydrate(term)
			}
			cmd = r.search.Init()
		case "submit":
			r.currentView = submitView
			cmd = r.submit.Init()
		case "profile":
			r.currentView = profileView
			cmd = r.profile.Init()
		case "details":
			if recipeID, ok := msg.Data.(string); ok {
				r.prevView = r.currentView
				r.details = NewDetailsScreen(r.ctrl, r.exportDir, recipeID)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		case "back":
			r.currentView = r.prevView
			cmd = r.active().Init()
		}
		return r, cmd
	}

	// Forward the message to the active screen.
	switch r.currentView {
	case homeView:
		newModel, newCmd := r.home.Update(msg)
		r.home = newModel.(*HomeScreen)
		return r, newCmd
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	case submitView:
		newModel, newCmd := r.submit.Update(msg)
		r.submit = newModel.(*SubmitScreen)
		return r, newCmd
	case profileView:
		newModel, newCmd := r.profile.Update(msg)
		r.profile = newModel.(*ProfileScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()
	content := r.active().View()
	if tabs == "" {
		return content
	}
	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		return ""
	}

	labels := []string{"Home", "Search", "Add Recipe", "Profile"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if screenType(i) == r.currentView {
			rendered[i] = styles.ActiveTabStyle.Render(label)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(label)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
