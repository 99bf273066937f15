package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  " // 2 spaces per indent level
	sectionWidth = 50   // total character width for Section separators
)

// TerminalUI is the production UI implementation.
// It writes coloured output to a terminal. Indentation is tracked as a level
// count, each level adds two spaces.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	au          aurora.Aurora
}

// NewTerminalUI creates a TerminalUI that writes to os.Stdout. Colours are
// enabled automatically when stdout is a real terminal.
func NewTerminalUI() *TerminalUI {
	return NewTerminalUIWithWriter(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// NewTerminalUIWithWriter creates a TerminalUI writing to out.
func NewTerminalUIWithWriter(out io.Writer, colors bool) *TerminalUI {
	return &TerminalUI{
		out: out,
		au:  aurora.NewAurora(colors),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

// writeLine writes a single line to the output with the current indent prefix.
func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	default: // SeverityInfo
		return t.Text
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.writeLine(u.au.Green(msg).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.writeLine(u.au.Yellow(msg).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.writeLine(u.au.Red(msg).String())
}

// Section prints a separator line centred around the title, surrounded by
// blank lines so sections are visually distinct in long output.
//
//	=============== vitalik.eth ===============
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - len(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	right := bars - left
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", right)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

// KeyValue renders an aligned 2-column block.
// The label column is right-padded to the width of the longest label so all
// values line up, making metadata blocks easy to scan at a glance.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	if len(rows) == 0 {
		return
	}
	maxLabel := 0
	for _, r := range rows {
		if len(r[0]) > maxLabel {
			maxLabel = len(r[0])
		}
	}
	p := u.prefix()
	for _, r := range rows {
		fmt.Fprintf(u.out, "%s%-*s  %s\n", p, maxLabel, r[0], r[1])
	}
}

// Table renders a full bordered table. When headers is nil or empty no header
// row is rendered. Column widths ignore ANSI colour codes so styled cells
// still line up.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	if len(rows) == 0 && len(headers) == 0 {
		return
	}
	// Infer column count from the widest row when no headers are supplied.
	ncols := len(headers)
	if ncols == 0 {
		for _, r := range rows {
			if len(r) > ncols {
				ncols = len(r)
			}
		}
	}

	cellWidth := func(s string) int {
		return runewidth.StringWidth(ansi.Strip(s))
	}

	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < ncols && i < len(row); i++ {
			if w := cellWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	pad := func(s string, w int) string {
		visible := cellWidth(s)
		if visible >= w {
			return s
		}
		return s + strings.Repeat(" ", w-visible)
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	border := func(s string) string { return borderStyle.Render(s) }

	dashes := make([]string, ncols)
	for i, w := range widths {
		dashes[i] = strings.Repeat("─", w+2)
	}
	topBorder := border("┌" + strings.Join(dashes, "┬") + "┐")
	headerSep := border("├" + strings.Join(dashes, "┼") + "┤")
	botBorder := border("└" + strings.Join(dashes, "┴") + "┘")

	renderRow := func(cells []string) string {
		parts := make([]string, ncols)
		for i := 0; i < ncols; i++ {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			parts[i] = " " + pad(val, widths[i]) + " "
		}
		return border("│") + strings.Join(parts, border("│")) + border("│")
	}

	p := u.prefix()
	fmt.Fprintf(u.out, "%s%s\n", p, topBorder)
	if len(headers) > 0 {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(headers))
		fmt.Fprintf(u.out, "%s%s\n", p, headerSep)
	}
	for _, row := range rows {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(row))
	}
	fmt.Fprintf(u.out, "%s%s\n", p, botBorder)
}

// Indent returns a child UI at one deeper indent level sharing the
// underlying writer with the parent.
func (u *TerminalUI) Indent() UI {
	return &TerminalUI{
		indentLevel: u.indentLevel + 1,
		out:         u.out,
		au:          u.au,
	}
}

// Writer returns an io.Writer that automatically prepends the current
// indentation prefix to every line written to it. This lets you pass the
// UI's output context into functions that accept a plain io.Writer.
func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
