package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Sign in with an API token",
	Long:  "Exchange an API token for your identity and store the session locally",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, _, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		user, err := ctrl.SignIn(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("sign in failed: %w", err))
		}
		fmt.Printf("Signed in as %s\n", user.Username)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, _, err := newController()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer ctrl.Close()

		if err := ctrl.SignOut(); err != nil {
			cobra.CheckErr(fmt.Errorf("sign out failed: %w", err))
		}
		fmt.Println("Signed out.")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
