package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/457992195/BGmi/internal/model"
)

// Apply filters an ordered list of episodes.
//
// Two independent stages run in order:
//
//  1. Regex inclusion: when pattern is non-empty, only episodes whose
//     title matches it are kept.
//  2. Keyword exclusion: episodes whose title contains any of the
//     exclude keywords (trimmed, case-insensitive substring match)
//     are dropped.
//
// The input slice is never mutated; a fresh slice is returned. An
// empty pattern and no keywords return the episodes unchanged, in the
// original order.
//
// A pattern that fails to compile does not abort filtering: the regex
// stage is skipped, the keyword stage still runs, and the compile
// error is returned alongside the result. Callers decide the policy:
// log a warning and keep the slice, or (in strict mode) propagate the
// error and discard it.
func Apply(episodes []model.Episode, pattern string, exclude []string) ([]model.Episode, error) {
	// Work on a copy so the caller's slice is never aliased.
	result := append([]model.Episode(nil), episodes...)
	var regexErr error

	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			regexErr = fmt.Errorf("can't compile regex %q: %w", pattern, err)
		} else {
			matched := make([]model.Episode, 0, len(result))
			for _, episode := range result {
				if re.MatchString(episode.Title) {
					matched = append(matched, episode)
				}
			}
			result = matched
		}
	}

	if len(exclude) > 0 {
		keywords := make([]string, 0, len(exclude))
		for _, word := range exclude {
			keywords = append(keywords, strings.ToLower(strings.TrimSpace(word)))
		}

		kept := make([]model.Episode, 0, len(result))
		for _, episode := range result {
			if !episode.ContainsAnyWords(keywords) {
				kept = append(kept, episode)
			}
		}
		result = kept
	}

	return result, regexErr
}
