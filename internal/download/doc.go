// Package download fans cover downloads out across a bounded worker
// pool.
//
// # Manager
//
// The Manager takes a pre-enumerated URL list and:
//
//  1. Fetches every URL through at most N concurrent workers
//     (four by default)
//  2. Pairs each response with its URL by input position
//  3. Writes successful fetches under <save_path>/cover/, creating
//     directories as needed
//  4. Skips failures silently; a missing cover never aborts the batch
//
// The pool is fully drained before DownloadCovers returns; there is
// no orphaned background work and no shared mutable state between
// workers beyond the result slot each one owns.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent
// values; both the CLI printer and the TUI progress bar consume the
// same stream.
package download
