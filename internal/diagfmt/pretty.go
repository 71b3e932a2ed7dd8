package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tokwalk/internal/diag"
	"tokwalk/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	gutterColor  = color.New(color.FgBlue)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty formats diagnostics for terminals. It walks bag.Items() in order
// (call bag.Sort() first if a stable order matters) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline covering the primary
// span, then notes in the same shape. Color is gated by opts.Color.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
		printContext(w, d.Primary, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "%s: %s\n", locPrefix(note.Span, fs, opts), "note: "+note.Msg)
				printContext(w, note.Span, fs, opts)
			}
		}
	}
}

func locPrefix(span source.Span, fs *source.FileSet, opts PrettyOpts) string {
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	startPos, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, opts.PathMode), startPos.Line, startPos.Col)
}

func printHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	sevLabel := fmt.Sprintf("%s %s", sev.String(), code.ID())
	if opts.Color {
		sevLabel = severityColor(sev).Sprint(sevLabel)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", locPrefix(span, fs, opts), sevLabel, msg)
}

// printContext prints the primary line (plus opts.Context surrounding
// lines) with a caret underline. Spans that cross lines are underlined to
// the end of their first line.
func printContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	startPos, endPos := fs.Resolve(span)

	firstLine := startPos.Line
	if ctx := uint32(max(opts.Context, 0)); ctx < firstLine {
		firstLine -= ctx
	} else {
		firstLine = 1
	}
	lastLine := startPos.Line + uint32(max(opts.Context, 0))

	gutterWidth := len(fmt.Sprintf("%d", lastLine))

	for line := firstLine; line <= lastLine; line++ {
		text, ok := lineText(f, line)
		if !ok {
			break
		}
		gutter := fmt.Sprintf("%*d |", gutterWidth, line)
		if opts.Color {
			gutter = gutterColor.Sprint(gutter)
		}
		fmt.Fprintf(w, "%s %s\n", gutter, text)

		if line != startPos.Line {
			continue
		}

		underLen := 1
		if endPos.Line == startPos.Line && endPos.Col > startPos.Col {
			underLen = int(endPos.Col - startPos.Col)
		} else if endPos.Line > startPos.Line {
			underLen = len(text) - int(startPos.Col) + 1
		}
		if underLen < 1 {
			underLen = 1
		}

		marker := "^" + strings.Repeat("~", underLen-1)
		if opts.Color {
			marker = caretColor.Sprint(marker)
		}
		pad := strings.Repeat(" ", gutterWidth)
		caretGutter := pad + " |"
		if opts.Color {
			caretGutter = gutterColor.Sprint(caretGutter)
		}
		fmt.Fprintf(w, "%s %s%s\n", caretGutter, strings.Repeat(" ", int(startPos.Col-1)), marker)
	}
}

// lineText reports the line's content without its terminating newline, and
// whether the line exists in the file at all.
func lineText(f *source.File, line uint32) (string, bool) {
	if line == 0 {
		return "", false
	}
	lastLine := uint32(len(f.LineIdx)) + 1
	if line > lastLine {
		return "", false
	}
	return f.GetLine(line), true
}
