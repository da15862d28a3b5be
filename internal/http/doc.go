// Package http wraps HTTP operations with bgmi-specific configuration.
//
// Client provides:
//   - A 60 second timeout for downloads and registry fetches
//   - A 10 second timeout for connectivity probes
//   - Typed failure classification (ErrNetwork, ErrMalformedResponse)
//
// The failure sentinels exist because no remote check in this tool is
// allowed to crash the process: callers match them with errors.Is,
// print a warning, and move on.
//
// Example usage:
//
//	client := http.NewClient()
//
//	body, err := client.Fetch(ctx, coverURL)
//	if errors.Is(err, http.ErrNetwork) {
//	    // skip this cover, keep going
//	}
package http
