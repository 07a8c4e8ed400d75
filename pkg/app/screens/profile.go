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
	"github.com/tastebook/tastebook/pkg/integrations"
	"github.com/tastebook/tastebook/pkg/services"
)

type profileTab int

const (
	tabMyRecipes profileTab = iota
	tabFavorites
	tabEdit
)

type profileLoadedMsg struct {
	tab     profileTab
	recipes []data.RecipeSummary
	err     error
}

type profileSavedMsg struct {
	err error
}

// ProfileScreen shows the signed-in user's recipes and favorites, plus a
// small profile editor.
type ProfileScreen struct {
	ctrl *services.Controller

	tab       profileTab
	myRecipes *components.RecipeList
	favorites *components.RecipeList
	loading   bool

	usernameInput textinput.Model
	bioInput      textinput.Model
	avatarInput   textinput.Model
	editField     int
	saving        bool

	status        string
	statusIsError bool
}

func NewProfileScreen(ctrl *services.Controller) *ProfileScreen {
	return &ProfileScreen{
		ctrl:          ctrl,
		myRecipes:     components.NewRecipeList("You have not published any recipes yet"),
		favorites:     components.NewRecipeList("No favorites yet"),
		usernameInput: newFormInput("Username", 50, 30),
		bioInput:      newFormInput("Tell people about your cooking", 300, 50),
		avatarInput:   newFormInput("Path to an avatar image", 200, 50),
	}
}

func (p *ProfileScreen) Init() tea.Cmd {
	if !p.ctrl.Auth().IsAuthenticated() {
		return nil
	}
	user := p.ctrl.Auth().CurrentUser()
	p.usernameInput.SetValue(user.Username)
	p.bioInput.SetValue(user.Bio)
	p.status = ""
	p.statusIsError = false
	return p.loadTab(p.tab)
}

func (p *ProfileScreen) loadTab(tab profileTab) tea.Cmd {
	if tab == tabEdit {
		return nil
	}
	p.loading = true
	return func() tea.Msg {
		var recipes []data.RecipeSummary
		var err error
		if tab == tabMyRecipes {
			recipes, err = p.ctrl.UserRecipes()
		} else {
			recipes, err = p.ctrl.UserFavorites()
		}
		return profileLoadedMsg{tab: tab, recipes: recipes, err: err}
	}
}

func (p *ProfileScreen) InputFocused() bool {
	return p.usernameInput.Focused() || p.bioInput.Focused() || p.avatarInput.Focused()
}

func (p *ProfileScreen) activeList() *components.RecipeList {
	if p.tab == tabFavorites {
		return p.favorites
	}
	return p.myRecipes
}

func (p *ProfileScreen) editInput(i int) *textinput.Model {
	switch i {
	case 1:
		return &p.bioInput
	case 2:
		return &p.avatarInput
	default:
		return &p.usernameInput
	}
}

func (p *ProfileScreen) focusEditField() tea.Cmd {
	p.usernameInput.Blur()
	p.bioInput.Blur()
	p.avatarInput.Blur()
	return p.editInput(p.editField).Focus()
}

func (p *ProfileScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.status = fmt.Sprintf("Failed to load: %v", msg.err)
			p.statusIsError = true
			return p, nil
		}
		if msg.tab == tabMyRecipes {
			p.myRecipes.SetItems(msg.recipes)
		} else {
			p.favorites.SetItems(msg.recipes)
		}
		return p, nil

	case profileSavedMsg:
		p.saving = false
		if msg.err != nil {
			p.status = fmt.Sprintf("Save failed: %v", msg.err)
			p.statusIsError = true
			return p, nil
		}
		p.status = "Profile saved"
		p.statusIsError = false
		return p, nil

	case tea.WindowSizeMsg:
		p.myRecipes.Width = msg.Width
		p.myRecipes.Height = msg.Height - 10
		p.favorites.Width = msg.Width
		p.favorites.Height = msg.Height - 10
		return p, nil

	case tea.KeyMsg:
		if !p.ctrl.Auth().IsAuthenticated() {
			return p, nil
		}
		if p.tab == tabEdit {
			return p.updateEdit(msg)
		}
		return p.updateLists(msg)
	}

	return p, nil
}

func (p *ProfileScreen) updateLists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "l":
		p.tab++
		if p.tab > tabEdit {
			p.tab = tabMyRecipes
		}
		if p.tab == tabEdit {
			p.editField = 0
			return p, p.focusEditField()
		}
		return p, p.loadTab(p.tab)
	case "left", "h":
		if p.tab == tabMyRecipes {
			p.tab = tabEdit
			p.editField = 0
			return p, p.focusEditField()
		}
		p.tab--
		return p, p.loadTab(p.tab)
	case "down", "j":
		p.activeList().Next()
	case "up", "k":
		p.activeList().Prev()
	case "enter":
		if recipe := p.activeList().Selected(); recipe != nil {
			id := recipe.ID
			return p, func() tea.Msg {
				return SwitchScreenMsg{Screen: "details", Data: id}
			}
		}
	case "r":
		return p, p.loadTab(p.tab)
	}
	return p, nil
}

func (p *ProfileScreen) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if p.saving {
		return p, nil
	}

	switch msg.String() {
	case "esc":
		p.usernameInput.Blur()
		p.bioInput.Blur()
		p.avatarInput.Blur()
		p.tab = tabMyRecipes
		return p, p.loadTab(p.tab)
	case "down", "enter":
		p.editField = (p.editField + 1) % 3
		return p, p.focusEditField()
	case "up", "shift+tab":
		p.editField--
		if p.editField < 0 {
			p.editField = 2
		}
		return p, p.focusEditField()
	case "ctrl+s":
		return p, p.saveProfile()
	}

	input := p.editInput(p.editField)
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return p, cmd
}

func (p *ProfileScreen) saveProfile() tea.Cmd {
	p.saving = true
	p.status = ""
	username := p.usernameInput.Value()
	bio := p.bioInput.Value()
	avatarPath := strings.TrimSpace(p.avatarInput.Value())
	return func() tea.Msg {
		avatar := ""
		if avatarPath != "" {
			uri, err := integrations.EncodeImageFile(avatarPath)
			if err != nil {
				return profileSavedMsg{err: fmt.Errorf("avatar: %w", err)}
			}
			avatar = uri
		}
		return profileSavedMsg{err: p.ctrl.UpdateProfile(username, bio, avatar)}
	}
}

func (p *ProfileScreen) View() string {
	if !p.ctrl.Auth().IsAuthenticated() {
		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render("Profile"))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render("You are not signed in."))
		b.WriteString("\n")
		b.WriteString(styles.TextStyle.Render("Run \"tastebook login\" with your API token to sign in."))
		return b.String()
	}

	user := p.ctrl.Auth().CurrentUser()
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(user.Username))
	if user.Bio != "" {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(user.Bio))
	}
	b.WriteString("\n\n")

	labels := []string{"My Recipes", "Favorites", "Edit Profile"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if profileTab(i) == p.tab {
			rendered[i] = styles.ActiveTabStyle.Render(label)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n\n")

	if p.tab == tabEdit {
		b.WriteString(p.viewEdit())
	} else if p.loading {
		b.WriteString(styles.StatusPending.Render("Loading..."))
	} else {
		b.WriteString(p.activeList().View())
	}

	if p.status != "" {
		b.WriteString("\n")
		if p.statusIsError {
			b.WriteString(styles.StatusError.Render(p.status))
		} else {
			b.WriteString(styles.StatusSuccess.Render(p.status))
		}
	}

	b.WriteString("\n")
	if p.tab == tabEdit {
		b.WriteString(styles.HelpStyle.Render("↑/↓ field • ctrl+s save • esc back to recipes"))
	} else {
		b.WriteString(styles.HelpStyle.Render("←/→ section • ↑/↓ browse • enter open • r refresh"))
	}
	return b.String()
}

func (p *ProfileScreen) viewEdit() string {
	var b strings.Builder
	fields := []struct {
		label string
		input textinput.Model
	}{
		{"Username", p.usernameInput},
		{"Bio", p.bioInput},
		{"Avatar", p.avatarInput},
	}
	for i, f := range fields {
		label := styles.LabelStyle.Render(f.label)
		if p.editField == i {
			label = styles.TitleStyle.Render(f.label)
		}
		view := styles.InputStyle.Render(f.input.View())
		if p.editField == i {
			view = styles.FocusedInputStyle.Render(f.input.View())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label+" ", view))
		b.WriteString("\n")
	}
	if p.saving {
		b.WriteString(styles.StatusPending.Render("Saving..."))
		b.WriteString("\n")
	}
	return b.String()
}
