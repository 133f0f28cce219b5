package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	cyanStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

// Printer writes styled lines to a writer.
type Printer struct {
	w       io.Writer
	verbose bool
}

// New returns a Printer writing to w. A nil writer means os.Stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Discard returns a Printer that drops everything.
func Discard() *Printer {
	return &Printer{w: io.Discard}
}

// SetVerbose enables Verbose lines.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Println writes an unstyled line. Fragments may already carry inline styles.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Printf writes unstyled formatted text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Info writes a plain status line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Success writes a green, bold line.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, successStyle.Render(msg))
}

// Error writes a red line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, errorStyle.Render(msg))
}

// Warn writes a yellow line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, warnStyle.Render(msg))
}

// Step writes an indented gray line for sub-items and next steps.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.w, stepStyle.Render("  "+msg))
}

// Verbose writes a gray line only when verbose output is on.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.w, stepStyle.Render(msg))
	}
}

// Cyan styles a fragment for commands and package names.
func Cyan(s string) string { return cyanStyle.Render(s) }

// Green styles a fragment for project names and paths.
func Green(s string) string { return greenStyle.Render(s) }

// Red styles a fragment for offending values.
func Red(s string) string { return redStyle.Render(s) }

// Bold styles a fragment for emphasis.
func Bold(s string) string { return boldStyle.Render(s) }
