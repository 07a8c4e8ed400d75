package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook/pkg/integrations"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [recipe-id]",
	Short: "Export a recipe as an EPUB",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, cfg, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		recipe, _, err := ctrl.LoadRecipe(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load recipe: %w", err))
		}

		outDir := cfg.ExportDir
		if exportOut != "" {
			outDir = exportOut
		}
		builder := integrations.NewEPubBuilder(outDir)
		path, err := builder.Export(recipe)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}
		fmt.Printf("Exported %q to %s\n", recipe.Title, path)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (defaults to the configured export dir)")
	rootCmd.AddCommand(exportCmd)
}
