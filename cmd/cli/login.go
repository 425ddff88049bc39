package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thand-io/terminal/internal/login"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with your hub credentials",
	Long:  "Ignores any remembered session and asks for credentials before starting the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoginFlow(func(ctx context.Context, flow *login.Flow) error {
			return flow.Prompt(ctx, true)
		})
	},
}

func init() {
	// Add the command to the root
	rootCmd.AddCommand(loginCmd)
}
