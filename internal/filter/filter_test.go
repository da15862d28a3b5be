package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/457992195/BGmi/internal/model"
)

func episodes(titles ...string) []model.Episode {
	list := make([]model.Episode, 0, len(titles))
	for _, title := range titles {
		list = append(list, model.Episode{Title: title})
	}
	return list
}

func TestApplyNoFilters(t *testing.T) {
	input := episodes("Show S01E01", "Show S01E02", "Other")

	got, err := Apply(input, "", nil)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if diff := cmp.Diff(input, got); diff != "" {
		t.Errorf("episodes changed without any filter (-want +got):\n%s", diff)
	}
}

func TestApplyRegexInclusion(t *testing.T) {
	input := episodes("Show S01E01", "Show S01E02", "Other")

	got, err := Apply(input, "S01E02", nil)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	want := episodes("Show S01E02")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("regex inclusion (-want +got):\n%s", diff)
	}
}

func TestApplyKeywordExclusion(t *testing.T) {
	input := episodes("[Group] Show 01 RAW", "[Group] Show 01", "[Group] Show 01 raw ver")

	// Keywords are trimmed and matched case-insensitively.
	got, err := Apply(input, "", []string{" RAW "})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	want := episodes("[Group] Show 01")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keyword exclusion (-want +got):\n%s", diff)
	}
}

func TestApplyStagesCompose(t *testing.T) {
	input := episodes("Show 720p", "Show 1080p", "Show 1080p RAW", "Movie 1080p")

	got, err := Apply(input, "^Show", []string{"raw"})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	want := episodes("Show 720p", "Show 1080p")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("combined stages (-want +got):\n%s", diff)
	}
}

func TestApplyInvalidRegex(t *testing.T) {
	input := episodes("Show S01E01", "Show RAW")

	got, err := Apply(input, "[invalid", []string{"raw"})
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}

	// The regex stage is skipped, the keyword stage still runs.
	want := episodes("Show S01E01")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("invalid regex result (-want +got):\n%s", diff)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := episodes("Show S01E01", "Show S01E02", "Other")
	snapshot := episodes("Show S01E01", "Show S01E02", "Other")

	if _, err := Apply(input, "S01E02", []string{"other"}); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if diff := cmp.Diff(snapshot, input); diff != "" {
		t.Errorf("input slice was mutated (-want +got):\n%s", diff)
	}
}
