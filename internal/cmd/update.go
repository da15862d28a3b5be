package cmd

import (
	"github.com/spf13/cobra"

	"github.com/457992195/BGmi/internal/update"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for new releases of bgmi and the web frontend",
	Long: `Check the published package index for a newer bgmi release and the
npm registry for a newer web frontend.

A newer bgmi release is only announced; a newer frontend is installed
automatically when one is already present under front_static_path.`,
	RunE: runUpdateCommand,
}

func runUpdateCommand(cmd *cobra.Command, args []string) error {
	reconciler := update.NewReconciler(settings, printer)

	// An explicit update ignores the weekly marker: check once, then
	// signal the caller to exit.
	return reconciler.CheckUpdate(cmd.Context(), false)
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
