package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints prefixed status lines such as "[secrets] Generated ...".
// Styling follows the color profile of each writer, so redirected output
// stays plain text.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	prefix string

	prefixOut lipgloss.Style
	prefixErr lipgloss.Style
	ok        lipgloss.Style
	fail      lipgloss.Style
	faint     lipgloss.Style
}

func NewReporter(out, errOut io.Writer, prefix string) *Reporter {
	ro := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)

	return &Reporter{
		out:       out,
		errOut:    errOut,
		prefix:    prefix,
		prefixOut: ro.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		prefixErr: re.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		ok:        ro.NewStyle().Foreground(lipgloss.Color("42")),
		fail:      re.NewStyle().Foreground(lipgloss.Color("203")),
		faint:     ro.NewStyle().Faint(true),
	}
}

func (r *Reporter) Info(format string, args ...any) {
	r.line(r.out, r.prefixOut, lipgloss.NewStyle(), format, args...)
}

func (r *Reporter) Success(format string, args ...any) {
	r.line(r.out, r.prefixOut, r.ok, format, args...)
}

func (r *Reporter) Error(format string, args ...any) {
	r.line(r.errOut, r.prefixErr, r.fail, format, args...)
}

// Plain writes text to stdout without prefix or styling.
func (r *Reporter) Plain(s string) {
	fmt.Fprint(r.out, s)
}

// Faint renders s dimmed for stdout.
func (r *Reporter) Faint(s string) string {
	return r.faint.Render(s)
}

func (r *Reporter) line(w io.Writer, p, body lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.prefix == "" {
		fmt.Fprintln(w, body.Render(msg))
		return
	}
	fmt.Fprintf(w, "%s %s\n", p.Render("["+r.prefix+"]"), body.Render(msg))
}
