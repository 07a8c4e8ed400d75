package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/query"
	"github.com/tastebook/tastebook/pkg/utils"
)

var (
	searchCuisine     string
	searchDiet        string
	searchDifficulty  string
	searchMaxPrep     int
	searchMaxCook     int
	searchMaxCalories int
	searchIngredients string
	searchPage        int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for recipes",
	Long:  "Search recipes by free text and filters, one page of results per call",
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, _, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		optInt := func(v int) string {
			if v <= 0 {
				return ""
			}
			return strconv.Itoa(v)
		}

		req := ctrl.NewRequest()
		req = req.Apply(query.FilterSet{
			Search:      strings.Join(args, " "),
			Cuisine:     searchCuisine,
			Diet:        searchDiet,
			Difficulty:  searchDifficulty,
			MaxPrepTime: optInt(searchMaxPrep),
			MaxCookTime: optInt(searchMaxCook),
			MaxCalories: optInt(searchMaxCalories),
			Ingredients: searchIngredients,
		})
		if searchPage > 1 {
			req = req.GoTo(searchPage)
		}

		recipes, page, err := ctrl.SearchRecipes(req)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		if len(recipes) == 0 {
			fmt.Println("No recipes found.")
			return
		}

		printRecipeTable(recipes)
		if page.TotalPages > 1 {
			fmt.Printf("Page %d of %d (%d recipes)\n", page.CurrentPage, page.TotalPages, page.TotalRecipes)
		}
	},
}

func printRecipeTable(recipes []data.RecipeSummary) {
	var (
		orange = lipgloss.Color("#FF8C42")

		headerStyle = lipgloss.NewStyle().Foreground(orange).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(orange)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("Title", "Cuisine", "Time", "Rating", "ID")

	for _, recipe := range recipes {
		t.Row(
			utils.Truncate(recipe.Title, 40),
			recipe.Cuisine,
			utils.FormatTime(recipe.TotalTime()),
			fmt.Sprintf("%.1f (%d)", recipe.AverageRating, recipe.RatingCount),
			recipe.ID,
		)
	}

	fmt.Println(t)
}

func init() {
	searchCmd.Flags().StringVar(&searchCuisine, "cuisine", "", "filter by cuisine")
	searchCmd.Flags().StringVar(&searchDiet, "diet", "", "filter by diet")
	searchCmd.Flags().StringVar(&searchDifficulty, "difficulty", "", "filter by difficulty")
	searchCmd.Flags().IntVar(&searchMaxPrep, "max-prep", 0, "maximum prep time in minutes")
	searchCmd.Flags().IntVar(&searchMaxCook, "max-cook", 0, "maximum cook time in minutes")
	searchCmd.Flags().IntVar(&searchMaxCalories, "max-calories", 0, "maximum calories per serving")
	searchCmd.Flags().StringVar(&searchIngredients, "ingredients", "", "comma separated ingredients")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "result page to fetch")
	rootCmd.AddCommand(searchCmd)
}
