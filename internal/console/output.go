// Package console renders minipy diagnostics, inspections and verification
// reports for the terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/minipy/internal/interp"
	"github.com/itsmostafa/minipy/internal/token"
	"github.com/itsmostafa/minipy/internal/verify"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// keywordStyle for keyword tokens in inspections
	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// boxStyle for summary boxes with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// headerBoxStyle for the REPL banner
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatError writes a fatal error line.
func FormatError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error:")+" "+err.Error())
}

// FormatBanner renders the REPL header.
func FormatBanner(w io.Writer, version, session string) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s",
		titleStyle.Render("minipy"), version,
		dimStyle.Render("Session:"), session,
		dimStyle.Render("End a block with an empty line. :vars :reset :quit"),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatVars writes the variable table, one binding per line.
func FormatVars(w io.Writer, env *interp.Env) {
	if env.Len() == 0 {
		fmt.Fprintln(w, dimStyle.Render("(no variables)"))
		return
	}
	for _, name := range env.Names() {
		fmt.Fprintf(w, "%s %s %d\n", name, dimStyle.Render("="), env.Get(name))
	}
}

// FormatProgram renders the logical lines of a program: physical line
// number, indentation, statement kind and tokens.
func FormatProgram(w io.Writer, program interp.Program) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d logical lines", len(program))))
	for _, line := range program {
		toks := make([]string, len(line.Tokens))
		for i, tok := range line.Tokens {
			toks[i] = renderToken(tok)
		}
		fmt.Fprintf(w, "%s %s %-6s %s\n",
			dimStyle.Render(fmt.Sprintf("%4d", line.Number)),
			dimStyle.Render(fmt.Sprintf("indent=%-2d", line.Indent)),
			line.Statement(),
			strings.Join(toks, " "),
		)
	}
}

func renderToken(tok token.Token) string {
	switch tok.Kind {
	case token.If, token.Else, token.While, token.Print:
		return keywordStyle.Render(tok.Text)
	default:
		return tok.Text
	}
}

// FormatReport renders a verification summary box.
func FormatReport(w io.Writer, report verify.Report) {
	status := successStyle.Render("AGREE")
	if !report.Agreed {
		status = errorStyle.Render("DISAGREE")
	}

	lines := []string{titleStyle.Render(report.Name) + "  " + status}
	for _, check := range report.Checks {
		outcome := successStyle.Render("ok")
		if check.Err != nil {
			outcome = errorStyle.Render(verify.ErrorClass(check.Err))
		}
		lines = append(lines, fmt.Sprintf("%s %-6s %s %d lines  %s %dms  %s",
			dimStyle.Render("Engine:"), check.Engine,
			dimStyle.Render("Output:"), strings.Count(check.Output, "\n"),
			dimStyle.Render("Time:"), check.DurationMs,
			outcome,
		))
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))

	if !report.Agreed {
		for _, check := range report.Checks {
			fmt.Fprintf(w, "%s\n%s", dimStyle.Render("--- "+check.Engine), check.Output)
			if check.Err != nil {
				FormatError(w, check.Err)
			}
		}
	}
}
