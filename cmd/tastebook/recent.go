package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show your recent search terms",
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, _, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		terms := ctrl.RecentSearches(recentLimit)
		if len(terms) == 0 {
			fmt.Println("No searches yet.")
			return
		}
		for _, term := range terms {
			fmt.Println(term)
		}
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "number of terms to show")
	rootCmd.AddCommand(recentCmd)
}
