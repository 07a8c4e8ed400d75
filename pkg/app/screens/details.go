package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tastebook/tastebook/pkg/app/components"
	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/engage"
	"github.com/tastebook/tastebook/pkg/integrations"
	"github.com/tastebook/tastebook/pkg/services"
	"github.com/tastebook/tastebook/pkg/utils"
)

type recipeLoadedMsg struct {
	recipeID  string
	detail    *data.RecipeDetail
	favorited bool
	err       error
}

type favoriteResultMsg struct {
	recipeID string
	op       engage.FavoriteOp
	err      error
}

type ratingResultMsg struct {
	recipeID string
	op       engage.RatingOp
	err      error
}

type recipeRefreshedMsg struct {
	recipeID string
	detail   *data.RecipeDetail
	err      error
}

type commentResultMsg struct {
	recipeID string
	err      error
}

type exportDoneMsg struct {
	recipeID string
	path     string
	err      error
}

// DetailsScreen shows a single recipe with favorite, rating, comment and
// export actions. Every async result carries the recipe id so responses
// for a recipe the user already left are dropped.
type DetailsScreen struct {
	ctrl     *services.Controller
	recipeID string

	detail  *data.RecipeDetail
	tracker *engage.Tracker

	commentArea    textarea.Model
	commenting     bool
	commentPending bool
	loading        bool
	status         string
	statusIsError  bool
	exportDir      string
}

func NewDetailsScreen(ctrl *services.Controller, exportDir, recipeID string) *DetailsScreen {
	area := textarea.New()
	area.Placeholder = "Write a comment..."
	area.SetWidth(60)
	area.SetHeight(3)
	area.CharLimit = 500

	return &DetailsScreen{
		ctrl:        ctrl,
		recipeID:    recipeID,
		commentArea: area,
		exportDir:   exportDir,
		loading:     true,
	}
}

func (d *DetailsScreen) Init() tea.Cmd {
	id := d.recipeID
	return func() tea.Msg {
		detail, favorited, err := d.ctrl.LoadRecipe(id)
		return recipeLoadedMsg{recipeID: id, detail: detail, favorited: favorited, err: err}
	}
}

func (d *DetailsScreen) InputFocused() bool {
	return d.commentArea.Focused()
}

func (d *DetailsScreen) setStatus(msg string, isError bool) {
	d.status = msg
	d.statusIsError = isError
}

func (d *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipeLoadedMsg:
		if msg.recipeID != d.recipeID {
			return d, nil
		}
		d.loading = false
		if msg.err != nil {
			d.setStatus(fmt.Sprintf("Failed to load recipe: %v", msg.err), true)
			return d, nil
		}
		d.detail = msg.detail
		d.tracker = d.ctrl.NewTracker(msg.detail, msg.favorited)
		return d, nil

	case favoriteResultMsg:
		if msg.recipeID != d.recipeID || d.tracker == nil {
			return d, nil
		}
		d.tracker.ResolveFavorite(msg.op, msg.err)
		if msg.err != nil {
			d.setStatus(fmt.Sprintf("Favorite update failed: %v", msg.err), true)
		}
		return d, nil

	case ratingResultMsg:
		if msg.recipeID != d.recipeID || d.tracker == nil {
			return d, nil
		}
		d.tracker.ResolveRating(msg.op, msg.err)
		if msg.err != nil {
			d.setStatus(fmt.Sprintf("Rating failed: %v", msg.err), true)
			return d, nil
		}
		// The server owns the average; refetch instead of recomputing.
		id := d.recipeID
		return d, func() tea.Msg {
			detail, err := d.ctrl.RefetchRecipe(id)
			return recipeRefreshedMsg{recipeID: id, detail: detail, err: err}
		}

	case recipeRefreshedMsg:
		if msg.recipeID != d.recipeID {
			return d, nil
		}
		if msg.err != nil {
			d.setStatus(fmt.Sprintf("Refresh failed: %v", msg.err), true)
			return d, nil
		}
		d.detail = msg.detail
		if d.tracker != nil {
			d.tracker.Reconcile(msg.detail)
		}
		d.setStatus("Rating saved", false)
		return d, nil

	case commentResultMsg:
		if msg.recipeID != d.recipeID {
			return d, nil
		}
		d.commentPending = false
		if msg.err != nil {
			d.setStatus(fmt.Sprintf("Comment failed: %v", msg.err), true)
			return d, nil
		}
		d.commentArea.Reset()
		d.commenting = false
		d.setStatus("Comment posted", false)
		id := d.recipeID
		return d, func() tea.Msg {
			detail, err := d.ctrl.RefetchRecipe(id)
			return recipeRefreshedMsg{recipeID: id, detail: detail, err: err}
		}

	case exportDoneMsg:
		if msg.recipeID != d.recipeID {
			return d, nil
		}
		if msg.err != nil {
			d.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
			return d, nil
		}
		d.setStatus(fmt.Sprintf("Exported to %s", msg.path), false)
		return d, nil

	case tea.KeyMsg:
		return d.updateKeys(msg)
	}

	return d, nil
}

func (d *DetailsScreen) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if d.commenting {
		switch msg.String() {
		case "esc":
			d.commenting = false
			d.commentArea.Blur()
			return d, nil
		case "ctrl+s":
			if d.commentPending {
				return d, nil
			}
			d.commentPending = true
			id := d.recipeID
			text := d.commentArea.Value()
			return d, func() tea.Msg {
				return commentResultMsg{recipeID: id, err: d.ctrl.AddComment(id, text)}
			}
		}
		var cmd tea.Cmd
		d.commentArea, cmd = d.commentArea.Update(msg)
		return d, cmd
	}

	switch msg.String() {
	case "esc", "backspace":
		return d, func() tea.Msg {
			return SwitchScreenMsg{Screen: "back"}
		}
	case "f":
		return d, d.toggleFavorite()
	case "1", "2", "3", "4", "5":
		return d, d.rate(int(msg.String()[0] - '0'))
	case "c":
		if d.detail == nil {
			return d, nil
		}
		d.commenting = true
		return d, d.commentArea.Focus()
	case "e":
		return d, d.export()
	case "r":
		d.loading = true
		d.setStatus("", false)
		return d, d.Init()
	}
	return d, nil
}

func (d *DetailsScreen) toggleFavorite() tea.Cmd {
	if d.tracker == nil {
		return nil
	}
	op, err := d.tracker.ToggleFavorite()
	if err != nil {
		d.setStatus("Sign in to save favorites", true)
		return nil
	}
	id := d.recipeID
	return func() tea.Msg {
		return favoriteResultMsg{
			recipeID: id,
			op:       op,
			err:      d.ctrl.SetFavorite(id, op.Target),
		}
	}
}

func (d *DetailsScreen) rate(value int) tea.Cmd {
	if d.tracker == nil {
		return nil
	}
	op, err := d.tracker.SubmitRating(value)
	if err != nil {
		if err == engage.ErrAuthRequired {
			d.setStatus("Sign in to rate recipes", true)
		} else {
			d.setStatus(err.Error(), true)
		}
		return nil
	}
	id := d.recipeID
	return func() tea.Msg {
		return ratingResultMsg{
			recipeID: id,
			op:       op,
			err:      d.ctrl.RateRecipe(id, op.Value),
		}
	}
}

func (d *DetailsScreen) export() tea.Cmd {
	if d.detail == nil {
		return nil
	}
	recipe := d.detail
	id := d.recipeID
	builder := integrations.NewEPubBuilder(d.exportDir)
	d.setStatus("Exporting...", false)
	return func() tea.Msg {
		path, err := builder.Export(recipe)
		return exportDoneMsg{recipeID: id, path: path, err: err}
	}
}

func (d *DetailsScreen) View() string {
	if d.loading {
		return styles.StatusPending.Render("Loading recipe...")
	}
	if d.detail == nil {
		if d.status != "" {
			return styles.StatusError.Render(d.status)
		}
		return styles.StatusError.Render("Recipe not found")
	}

	r := d.detail
	state := d.tracker.State()
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(r.Title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render("by " + r.Author.Username))
	b.WriteString("\n\n")

	b.WriteString(styles.TextStyle.Render(r.Description))
	b.WriteString("\n\n")

	meta := fmt.Sprintf(
		"%s • %s • %s • prep %s • cook %s • %d servings",
		r.Cuisine, r.Diet, r.Difficulty,
		utils.FormatTime(r.PrepTime), utils.FormatTime(r.CookTime), r.Servings,
	)
	if r.Calories > 0 {
		meta += fmt.Sprintf(" • %d kcal", r.Calories)
	}
	b.WriteString(styles.MutedStyle.Render(meta))
	b.WriteString("\n\n")

	b.WriteString(components.RenderStars(state.AverageRating, state.RatingCount))
	b.WriteString("\n")
	b.WriteString(components.RenderUserStars(state.UserRating))
	b.WriteString("\n")
	if state.Favorited {
		b.WriteString(styles.StatusSuccess.Render("♥ favorited"))
	} else {
		b.WriteString(styles.MutedStyle.Render("♡ not favorited"))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.LabelStyle.Render("Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("  • %s %s", ing.Amount, ing.Name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.LabelStyle.Render("Instructions"))
	b.WriteString("\n")
	for _, step := range r.Instructions {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("  %d. %s", step.Step, step.Description)))
		b.WriteString("\n")
	}

	if len(r.Comments) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("Comments (%d)", len(r.Comments))))
		b.WriteString("\n")
		for _, comment := range r.Comments {
			b.WriteString(styles.SubtitleStyle.Render(comment.Author))
			b.WriteString(styles.MutedStyle.Render(" " + comment.CreatedAt.Format("Jan 2, 2006")))
			b.WriteString("\n")
			b.WriteString(styles.TextStyle.Render("  " + comment.Text))
			b.WriteString("\n")
		}
	}

	if d.commenting {
		b.WriteString("\n")
		b.WriteString(styles.FocusedInputStyle.Render(d.commentArea.View()))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("ctrl+s post • esc cancel"))
		return b.String()
	}

	if d.status != "" {
		b.WriteString("\n")
		if d.statusIsError {
			b.WriteString(styles.StatusError.Render(d.status))
		} else {
			b.WriteString(styles.StatusSuccess.Render(d.status))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("f favorite • 1-5 rate • c comment • e export epub • r refresh • esc back"))
	return b.String()
}
