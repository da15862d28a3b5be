// Package resolve maps remote identifiers (cover URLs, bangumi names)
// to local filesystem paths.
//
// All functions in this package are pure: they never touch the
// filesystem and never fail. The same identifier always resolves to
// the same path, which is what the downloader relies on when pairing
// fetched bytes back to their target files.
//
// # Normalization
//
// URL schemes are folded into a path segment instead of being
// stripped, keeping http and https variants of a resource apart:
//
//	resolve.Normalize("https://lain.bgm.tv/pic/cover/c/8f/ab.jpg")
//	// "https/lain.bgm.tv/pic/cover/c/8f/ab.jpg"
//
// Characters that are illegal in filenames on common filesystems
// (: * ? " < > | ') are removed outright.
//
// # Save path overrides
//
// Users can redirect individual bangumi to custom directories via the
// save_path_map configuration table; see SavePath.
package resolve
