package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shopcat %s (commit %s, built %s)\n", Version, CommitID, BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
