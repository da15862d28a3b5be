package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/457992195/BGmi/internal/download"
	"github.com/457992195/BGmi/internal/tui"
)

var (
	coverFromFile string
	coverUseTUI   bool
)

var coverCmd = &cobra.Command{
	Use:   "cover [url...]",
	Short: "Download cover images in bulk",
	Long: `Download cover images across a bounded worker pool and store them
under <save_path>/cover/, keyed by their normalized URL.

URLs come from the arguments, from --from-file (one URL per line), or
from both. Failed downloads are skipped; the command reports how many
covers were saved.`,
	RunE: runCoverCommand,
}

func runCoverCommand(cmd *cobra.Command, args []string) error {
	urls := append([]string(nil), args...)

	if coverFromFile != "" {
		fromFile, err := readURLFile(coverFromFile)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}

	if len(urls) == 0 {
		return fmt.Errorf("no cover URLs given; pass them as arguments or via --from-file")
	}

	if coverUseTUI {
		events := make(chan download.ProgressEvent, len(urls))
		manager := download.NewManager(settings, func(event download.ProgressEvent) {
			events <- event
		})
		return tui.Run(cmd.Context(), manager, urls, events)
	}

	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		switch event.Level {
		case download.LevelWarning, download.LevelError:
			printer.Warning("%s", event.Message)
		case download.LevelVerbose:
			// Per-file paths only go to the debug log.
		default:
			printer.Info("%s", event.Message)
		}
	})

	if err := manager.DownloadCovers(cmd.Context(), urls); err != nil {
		return err
	}

	downloaded, total := manager.GetProgress()
	printer.Success("Saved %d/%d covers", downloaded, total)
	return nil
}

func readURLFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	return urls, scanner.Err()
}

func init() {
	rootCmd.AddCommand(coverCmd)
	coverCmd.Flags().StringVar(&coverFromFile, "from-file", "", "Read cover URLs from a file, one per line")
	coverCmd.Flags().BoolVar(&coverUseTUI, "tui", false, "Show an interactive progress view")
}
