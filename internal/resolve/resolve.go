package resolve

import (
	"path/filepath"
	"strings"
)

// PathConfig holds the directories and overrides path resolution
// works against.
type PathConfig struct {
	// SaveRoot is the directory bangumi and covers are saved under.
	SaveRoot string

	// Overrides maps a normalized bangumi name to a replacement
	// save location. Absolute overrides are used as-is, relative
	// ones are joined under SaveRoot.
	Overrides map[string]string
}

// illegal characters stripped from identifiers before they are used
// as filesystem paths.
const illegalChars = `:*?"<>|'`

// Normalize maps a URL or bangumi name to a relative filesystem path.
//
// The scheme of a URL is kept as a leading path segment rather than
// discarded, so the http and https variants of the same resource map
// to distinct paths:
//
//	Normalize("https://a.com/x:y?z") // "https/a.com/xyz"
//
// Normalize is pure and never fails; it is idempotent once the input
// is already normalized. Distinct identifiers may collide after
// illegal-character stripping, so callers get determinism, not
// uniqueness.
func Normalize(identifier string) string {
	s := strings.ReplaceAll(identifier, "http://", "http/")
	s = strings.ReplaceAll(s, "https://", "https/")

	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalChars, r) {
			return -1
		}
		return r
	}, s)

	// Drop exactly one leading separator so the result stays relative.
	return strings.TrimPrefix(s, "/")
}

// SavePath returns the directory a bangumi's episodes are saved
// under.
//
// The name is normalized first, then looked up in the override table:
// an absolute override is returned unchanged, a relative one is
// joined under the save root, and a missing entry joins the
// normalized name under the save root.
func SavePath(cfg *PathConfig, name string) string {
	normalized := Normalize(name)

	override, ok := cfg.Overrides[normalized]
	if !ok {
		return filepath.Join(cfg.SaveRoot, normalized)
	}

	if filepath.IsAbs(override) {
		return override
	}

	return filepath.Join(cfg.SaveRoot, override)
}

// CoverPath maps a cover URL to its on-disk location under the
// "cover" namespace of the save root. It returns the containing
// directory and the file path.
func CoverPath(cfg *PathConfig, coverURL string) (dir, file string) {
	file = filepath.Join(cfg.SaveRoot, "cover", Normalize(coverURL))
	return filepath.Dir(file), file
}
