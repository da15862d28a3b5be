package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/457992195/BGmi/internal/episode"
	"github.com/457992195/BGmi/internal/filter"
	"github.com/457992195/BGmi/internal/model"
)

var (
	filterRegex  string
	filterStrict bool
	filterInput  string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter episode titles by regex and keyword rules",
	Long: `Read episode titles (one per line, from stdin or --input), apply the
optional --regex inclusion filter and the configured global keyword
exclusions, and print the titles that survive.

A regex that fails to compile is normally skipped with a warning; with
--strict the command fails instead.`,
	RunE: runFilterCommand,
}

func runFilterCommand(cmd *cobra.Command, args []string) error {
	episodes, err := readEpisodes()
	if err != nil {
		return err
	}

	var exclude []string
	if settings.EnableGlobalFilters {
		exclude = settings.GlobalFilters
	}

	kept, err := filter.Apply(episodes, filterRegex, exclude)
	if err != nil {
		if filterStrict {
			return err
		}
		printer.Warning("%v, skipping filter by regex", err)
	}

	for _, e := range kept {
		fmt.Fprintln(cmd.OutOrStdout(), e.Title)
	}
	return nil
}

// readEpisodes turns title lines into episode records, parsing the
// episode number from each title.
func readEpisodes() ([]model.Episode, error) {
	var reader io.Reader = os.Stdin
	if filterInput != "" {
		file, err := os.Open(filterInput)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var episodes []model.Episode
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		title := strings.TrimSpace(scanner.Text())
		if title == "" {
			continue
		}
		episodes = append(episodes, model.Episode{
			Title:   title,
			Episode: episode.Parse(title),
		})
	}

	return episodes, scanner.Err()
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().StringVar(&filterRegex, "regex", "", "Keep only titles matching this regular expression")
	filterCmd.Flags().BoolVar(&filterStrict, "strict", false, "Fail on an invalid regex instead of skipping it")
	filterCmd.Flags().StringVar(&filterInput, "input", "", "Read titles from a file instead of stdin")
}
