package episode

import (
	"regexp"
	"strconv"
)

// Patterns are tried in priority order; explicit episode markers win
// over bare numbers.
var patterns = []*regexp.Regexp{
	// "第04話" / "第4集" style CJK markers
	regexp.MustCompile(`第\s*(\d{1,4})\s*[話话集]`),
	// "S01E04", "EP04", "E04"
	regexp.MustCompile(`(?i)(?:s\d{1,2})?e(?:p)?\s*(\d{1,4})`),
	// "[04]" / "[04v2]" bracketed numbers
	regexp.MustCompile(`\[(\d{1,4})(?:[vV]\d)?\]`),
	// "- 04" separator-delimited numbers
	regexp.MustCompile(`[-_ ]\s*(\d{1,4})\s*(?:[-_ \[\(]|$)`),
}

// Parse extracts the episode number from a release title.
//
// A number is only trusted when the best-matching pattern is
// unambiguous: if the pattern matches several different numbers in
// the same title (a resolution mistaken for an episode, a batch
// range) Parse returns 0 rather than guessing.
func Parse(title string) int {
	for _, re := range patterns {
		matches := re.FindAllStringSubmatch(title, -1)
		if len(matches) == 0 {
			continue
		}

		distinct := map[int]struct{}{}
		last := 0
		for _, m := range matches {
			n, err := strconv.Atoi(m[1])
			if err != nil || !plausible(n) {
				continue
			}
			distinct[n] = struct{}{}
			last = n
		}

		switch len(distinct) {
		case 0:
			continue
		case 1:
			return last
		default:
			return 0
		}
	}

	return 0
}

// plausible rejects numbers that are clearly not episode numbers,
// such as resolutions (720, 1080) and years.
func plausible(n int) bool {
	if n <= 0 || n > 1500 {
		return false
	}
	switch n {
	case 480, 540, 720, 1080, 1440:
		return false
	}
	return true
}
