// Package console handles terminal output for bgmi.
//
// Printer is the single reporting surface injected into components
// that talk to the user; path resolution and episode filtering take
// no Printer and stay silent. Colors come from lipgloss and degrade
// automatically on dumb terminals.
package console
