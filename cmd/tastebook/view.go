package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook/pkg/utils"
)

var viewCmd = &cobra.Command{
	Use:   "view [recipe-id]",
	Short: "Show a recipe",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, _, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		recipe, _, err := ctrl.LoadRecipe(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load recipe: %w", err))
		}

		fmt.Printf("%s\nby %s\n\n%s\n\n", recipe.Title, recipe.Author.Username, recipe.Description)
		fmt.Printf("%s • %s • %s\n", recipe.Cuisine, recipe.Diet, recipe.Difficulty)
		fmt.Printf("prep %s • cook %s • %d servings",
			utils.FormatTime(recipe.PrepTime), utils.FormatTime(recipe.CookTime), recipe.Servings)
		if recipe.Calories > 0 {
			fmt.Printf(" • %d kcal", recipe.Calories)
		}
		fmt.Printf("\nrated %.1f by %d cooks\n\n", recipe.AverageRating, len(recipe.Ratings))

		fmt.Println("Ingredients:")
		for _, ing := range recipe.Ingredients {
			fmt.Printf("  - %s %s\n", ing.Amount, ing.Name)
		}

		fmt.Println("\nInstructions:")
		for _, step := range recipe.Instructions {
			fmt.Printf("  %d. %s\n", step.Step, step.Description)
		}

		if len(recipe.Comments) > 0 {
			fmt.Printf("\nComments (%d):\n", len(recipe.Comments))
			for _, comment := range recipe.Comments {
				fmt.Printf("  %s: %s\n", comment.Author, comment.Text)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
