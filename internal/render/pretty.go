package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"reset-bridger/internal/common"
	"reset-bridger/internal/diagnostic"
)

type palette struct {
	err     *color.Color
	warn    *color.Color
	subject *color.Color
	help    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		subject: color.New(color.Bold),
		help:    color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.err, p.warn, p.subject, p.help} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) severity(s diagnostic.Severity) *color.Color {
	if s == diagnostic.SeverityError {
		return p.err
	}

	return p.warn
}

// Pretty writes one line per diagnostic followed by a summary:
//
//	warning[ResetNameConflict] Person.resetFirstName/0: message
//	  help: rename or remove the explicit resetFirstName method
func Pretty(w io.Writer, diags diagnostic.Diagnostics, colored bool) error {
	p := newPalette(colored)

	var b strings.Builder

	for _, d := range diags.Items {
		subject := d.Subject
		if d.Class != "" {
			subject = common.QualifiedName(d.Class, d.Subject)
		}

		fmt.Fprintf(&b, "%s %s: %s\n",
			p.severity(d.Severity).Sprintf("%s[%s]", d.Severity, d.Kind),
			p.subject.Sprint(subject),
			d.Message)

		for _, s := range d.Suggestions {
			fmt.Fprintf(&b, "  %s %s\n", p.help.Sprint("help:"), s)
		}
	}

	if diags.Len() > 0 {
		fmt.Fprintln(&b, summary(len(diags.Errors()), len(diags.Warnings())))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func summary(errors, warnings int) string {
	return fmt.Sprintf("%s, %s", plural(errors, "error"), plural(warnings, "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return fmt.Sprintf("%d %ss", n, word)
}
