package model

import "strings"

// Episode is a single episode record handed over by a data source.
//
// Records are immutable once produced: the filter stage reads them
// and builds fresh slices, it never mutates an episode in place.
type Episode struct {
	// Title is the raw release title as published by the source,
	// e.g. "[Lilith-Raws] Mobile Suit Gundam - 04 [Baha][WEB-DL][1080p]".
	Title string

	// Episode is the parsed episode number, 0 when unknown.
	Episode int

	// Download is the location the episode can be fetched from.
	Download string
}

// ContainsAnyWords reports whether the title contains any of the
// given keywords, case-insensitively.
//
// Keywords are expected to be already lower-cased; the global filter
// list is prepared that way before matching.
func (e Episode) ContainsAnyWords(keywords []string) bool {
	title := strings.ToLower(e.Title)
	for _, word := range keywords {
		if word == "" {
			continue
		}
		if strings.Contains(title, word) {
			return true
		}
	}
	return false
}
