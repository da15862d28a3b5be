package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// Printer reports progress to the terminal.
//
// Every message carries a severity indicator ([*] info, [+] success,
// [-] warning, [x] error) and is mirrored to the debug log. Components
// receive a *Printer at construction instead of printing directly, so
// tests can capture output by pointing one at a buffer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to w. A nil w means stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w}
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	slog.Info(message)
	fmt.Fprintln(p.out, "[*] "+message)
}

// Success prints a success message in green.
func (p *Printer) Success(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	slog.Info(message)
	fmt.Fprintln(p.out, successStyle.Render("[+] "+message))
}

// Warning prints a warning message in yellow.
func (p *Printer) Warning(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	slog.Warn(message)
	fmt.Fprintln(p.out, warningStyle.Render("[-] "+message))
}

// Error prints an error message in red.
func (p *Printer) Error(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	slog.Error(message)
	fmt.Fprintln(p.out, errorStyle.Render("[x] "+message))
}

const defaultWidth = 80

// Width returns the terminal column count, or 80 when stdout is not a
// terminal or its size cannot be determined.
func Width() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Banner returns the version banner shown by `bgmi version`.
func Banner(version string) string {
	return fmt.Sprintf(`BGmi %s

Github: https://github.com/457992195/BGmi`, bannerStyle.Render("ver. "+version))
}
