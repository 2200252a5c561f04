// Package output provides consistent CLI output formatting for the opldb
// command line: status/progress lines shared by every subcommand, plus
// the tabular rendering rankings and search use to print rows of
// entries without each command hand-rolling its own column widths.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
)

// Writer provides formatted output for CLI.
type Writer struct {
	out      io.Writer
	useColor bool
}

type fder interface {
	Fd() uintptr
}

// New creates a new output Writer. Color is enabled only when out is a
// real terminal (e.g. os.Stdout attached to a console, not redirected to
// a file or pipe), matching the corpus's convention of never emitting
// ANSI codes into piped or `--json` output.
func New(out io.Writer) *Writer {
	useColor := false
	if f, ok := out.(fder); ok {
		useColor = isatty.IsTerminal(f.Fd())
	}
	return &Writer{
		out:      out,
		useColor: useColor,
	}
}

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// bold wraps s in ANSI bold codes when the writer's output is a
// terminal, and returns it unchanged otherwise.
func (w *Writer) bold(s string) string {
	if !w.useColor {
		return s
	}
	return ansiBold + s + ansiReset
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Status(icon, msg)
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status("✅", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠️ ", msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status("❌", msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Code prints a code block with indentation.
func (w *Writer) Code(content string) {
	_, _ = fmt.Fprintln(w.out)
	// Indent each line
	lines := strings.Split(content, "\n")
	for _, line := range lines {
		_, _ = fmt.Fprintf(w.out, "  %s\n", line)
	}
	_, _ = fmt.Fprintln(w.out)
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// Progress prints a progress bar with message.
func (w *Writer) Progress(current, total int, msg string) {
	if total <= 0 {
		return
	}

	pct := float64(current) / float64(total) * 100
	bar := renderProgressBar(current, total, 30)

	// Use carriage return for in-place updates
	_, _ = fmt.Fprintf(w.out, "\r[%s] %.0f%% %s", bar, pct, msg)

	// Add newline when complete
	if current >= total {
		_, _ = fmt.Fprintln(w.out)
	}
}

// ProgressDone completes a progress line with newline.
func (w *Writer) ProgressDone() {
	_, _ = fmt.Fprintln(w.out)
}

// RankingsRow prints one ranked entry: rank, lifter, equipment, meet,
// total, and a trailing points/lift column whose meaning depends on the
// query's ordering (blank for a raw total ordering).
func (w *Writer) RankingsRow(rank int, lifter, equipment, meet, totalKg, points string) {
	_, _ = fmt.Fprintf(w.out, "%4s. %-24s %-10s %-24s %skg  %s\n",
		w.bold(fmt.Sprintf("%d", rank)), lifter, equipment, meet, totalKg, points)
}

// SearchHit prints one name-search match: username, display name, and
// the meet the matching entry came from.
func (w *Writer) SearchHit(username, name, meet string) {
	_, _ = fmt.Fprintf(w.out, "%-24s %-32s %s\n", username, name, meet)
}

// NoMatches prints the message `opldb search` shows when a query
// matches nothing in the ranked list it was run against.
func (w *Writer) NoMatches() {
	_, _ = fmt.Fprintln(w.out, "no matches")
}

// renderProgressBar creates a text progress bar.
func renderProgressBar(current, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}

	pct := float64(current) / float64(total)
	filled := int(pct * float64(width))

	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
