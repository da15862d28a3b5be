package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/457992195/BGmi/internal/config"
	"github.com/457992195/BGmi/internal/console"
	"github.com/457992195/BGmi/internal/logging"
	"github.com/457992195/BGmi/internal/update"
)

var (
	cfgPath string

	settings *config.Settings
	printer  *console.Printer
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bgmi",
	Short: "An anime episode tracker",
	Long: `bgmi tracks anime episodes: it downloads cover images in bulk,
keeps the bundled web frontend up to date, and filters episode lists
by regex and keyword rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := logging.Setup(settings.LogPath); err != nil {
			return err
		}

		printer = console.NewPrinter(os.Stdout)

		// Startup hook: at most one remote version check per week,
		// driven by the marker file. The update command runs its own
		// unconditional check instead.
		switch cmd.Name() {
		case "update", "version", "help", "completion":
			return nil
		}
		return update.NewReconciler(settings, printer).CheckUpdate(cmd.Context(), true)
	},
}

// Execute runs the root command with a signal-cancelled context.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, update.ErrCheckedExit) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "Path to config file")
}
