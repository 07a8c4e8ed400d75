package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/utils"
)

// RecipeList renders a selectable column of recipe cards.
type RecipeList struct {
	Items         []data.RecipeSummary
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewRecipeList(emptyMessage string) *RecipeList {
	return &RecipeList{
		Items:         []data.RecipeSummary{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  emptyMessage,
	}
}

func (l *RecipeList) SetItems(items []data.RecipeSummary) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = 0
	}
}

func (l *RecipeList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *RecipeList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *RecipeList) Selected() *data.RecipeSummary {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *RecipeList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(l.EmptyMessage)
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	for i, recipe := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(recipe.Title)
		meta := styles.MutedStyle.Render(fmt.Sprintf(
			"%s • %d servings • %s",
			utils.FormatTime(recipe.TotalTime()), recipe.Servings, recipe.Difficulty,
		))
		description := styles.TextStyle.Render(utils.Truncate(recipe.Description, 80))
		rating := RenderStars(recipe.AverageRating, recipe.RatingCount)
		kitchen := styles.MutedStyle.Render(fmt.Sprintf("%s • %s", recipe.Cuisine, recipe.Diet))

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			description,
			"",
			meta,
			rating,
			kitchen,
		)

		card := cardStyle.Width(l.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
