package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the most popular recipes",
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, _, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		recipes, err := ctrl.PopularRecipes()
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load popular recipes: %w", err))
		}
		if len(recipes) == 0 {
			fmt.Println("No popular recipes yet.")
			return
		}
		printRecipeTable(recipes)
	},
}

func init() {
	rootCmd.AddCommand(popularCmd)
}
