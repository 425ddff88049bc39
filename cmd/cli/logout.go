package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thand-io/terminal/internal/common"
	"github.com/thand-io/terminal/internal/console"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke and forget the remembered session",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {

	out := console.Stdout()

	session, err := sessionManager.GetSession()
	if err != nil {
		return fmt.Errorf("failed to read local session: %w", err)
	}

	if !session.IsValid() {
		out.Warning("No remembered session found.")
		return nil
	}

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	if err := hubClient.Logout(ctx, session); err != nil {
		return err
	}

	out.Success("Logged out.")

	return nil
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
