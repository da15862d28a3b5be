// Package filter applies user-supplied rules to episode lists.
//
// Filtering is pure: no I/O, no logging, no mutation of the input.
// The regex-inclusion stage runs before the keyword-exclusion stage,
// and a broken regex degrades to "no regex filtering" instead of
// failing the whole list; the caller chooses whether to surface the
// compile error (strict mode) or just warn about it.
package filter
