package cmd

import (
	"github.com/spf13/cobra"

	bgmihttp "github.com/457992195/BGmi/internal/http"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the configured data source",
	Long: `Send a quick connectivity probe (10 second timeout) to the configured
data source and report whether it answered.`,
	RunE: runStatusCommand,
}

func runStatusCommand(cmd *cobra.Command, args []string) error {
	client := bgmihttp.NewClient()

	if client.Probe(cmd.Context(), settings.DataSourceURL) {
		printer.Success("%s is reachable", settings.DataSourceURL)
		return nil
	}

	printer.Error("%s is not reachable; episode sources will not work", settings.DataSourceURL)
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
