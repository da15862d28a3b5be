// Package model defines the data types shared across bgmi packages.
//
// Episode is the unit the filter stage operates on. It is produced by
// upstream data sources, consumed read-only, and never mutated.
package model
