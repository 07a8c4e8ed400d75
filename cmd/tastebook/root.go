package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook/pkg/app"
	"github.com/tastebook/tastebook/pkg/config"
	"github.com/tastebook/tastebook/pkg/services"
	"github.com/tastebook/tastebook/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:   "tastebook",
	Short: "Browse, rate and share recipes from your terminal",
	Long:  "Discover recipes with filters and pagination, favorite and rate them, and publish your own",
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, cfg, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		query, _ := cmd.Flags().GetString("query")
		if err := app.Run(ctrl, cfg.ExportDir, query); err != nil {
			cobra.CheckErr(err)
		}
	},
}

// newController loads the config and wires the service layer for a
// command invocation.
func newController() (*services.Controller, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	log, err := utils.NewLogger(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, config.Config{}, err
	}
	ctrl, err := services.NewController(cfg, log)
	if err != nil {
		return nil, config.Config{}, err
	}
	return ctrl, cfg, nil
}

func init() {
	rootCmd.Flags().StringP("query", "q", "", "open the search view with this term")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
