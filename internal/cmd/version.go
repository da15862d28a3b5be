package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/457992195/BGmi/internal/console"
	"github.com/457992195/BGmi/internal/update"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bgmi version banner",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), console.Banner(update.CurrentVersion))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
