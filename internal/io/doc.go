// Package ioutils provides file system and image utilities for bgmi.
//
// This package contains functions for:
//   - Directory creation
//   - File writing, copying and moving
//   - Cover image normalization (resize + JPEG re-encode)
//
// Everything here is a thin, dependency-free helper; policy (which
// file goes where, what to do on failure) lives with the callers.
package ioutils
