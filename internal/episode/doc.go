// Package episode extracts episode numbers from release titles.
//
// Release titles are messy: the episode number shares the string with
// resolutions, CRC checksums, version tags and years. Parse prefers
// explicit markers ("第04話", "E04") and returns 0 whenever the title
// is ambiguous, which downstream code treats as "unknown episode".
package episode
