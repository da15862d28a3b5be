// Package update keeps bgmi and its web frontend current.
//
// # Reconciler
//
// The Reconciler rate-limits remote version checks through a marker
// file holding the timestamp of the last check (one check per seven
// days, or unconditionally for an explicit `bgmi update`). A check
// compares the published package index against the compiled-in
// version (announcing, never installing, a newer tool) and compares
// the published frontend version against the installed bundle's
// package.json, installing the newer bundle automatically.
//
// # Installer
//
// The Installer performs the bundle replacement: fetch the release
// tarball, gunzip it in memory, wipe and recreate the bundle
// directory, extract, flatten package/dist to the root, and write the
// manifest. See the Installer type for the crash-window caveats.
//
// # Failure handling
//
// Every remote failure is classified (network vs malformed response)
// and reduced to a console warning by the Reconciler. Nothing in this
// package may take the CLI down just because a registry misbehaved.
package update
