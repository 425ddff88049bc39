package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thand-io/terminal/internal/common"
)

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Show version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Terminal %s\n", common.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
