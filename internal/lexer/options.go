package lexer

import (
	"tokwalk/internal/diag"
	"tokwalk/internal/source"
)

// Options configures a Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; errors are then
	// dropped, but lexing still continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
