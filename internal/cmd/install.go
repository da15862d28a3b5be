package cmd

import (
	"github.com/spf13/cobra"

	"github.com/457992195/BGmi/internal/update"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the web frontend bundle",
	Long: `Download the current web frontend release from the npm registry and
install it under front_static_path, replacing any previous bundle
wholesale.`,
	RunE: runInstallCommand,
}

func runInstallCommand(cmd *cobra.Command, args []string) error {
	installer := update.NewInstaller(settings, printer)

	if err := installer.InstallLatest(cmd.Context()); err != nil {
		// Frontend installation failing is an inconvenience, not a
		// reason to report a broken CLI run.
		printer.Warning("failed to install web frontend: %v", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(installCmd)
}
