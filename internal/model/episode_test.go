package model

import "testing"

func TestContainsAnyWords(t *testing.T) {
	episode := Episode{Title: "[Lilith-Raws] Mobile Suit Gundam - 04 [Baha][WEB-DL][1080p]"}

	tests := []struct {
		name     string
		keywords []string
		want     bool
	}{
		{"match", []string{"web-dl"}, true},
		{"case insensitive title", []string{"baha"}, true},
		{"no match", []string{"hevc", "x265"}, false},
		{"empty keyword skipped", []string{"", "gundam"}, true},
		{"only empty keywords", []string{"", ""}, false},
		{"nil keywords", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := episode.ContainsAnyWords(tt.keywords); got != tt.want {
				t.Errorf("ContainsAnyWords(%v) = %v, want %v", tt.keywords, got, tt.want)
			}
		})
	}
}
