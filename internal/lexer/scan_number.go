package lexer

import (
	"tokwalk/internal/diag"
	"tokwalk/internal/token"
)

// Supported forms: 0, 123, 0b..., 0o..., 0x..., 1.0, 1., .5, 1e-3, 1.0e+10.
// '_' is allowed between digits; malformed forms are reported through the
// Reporter and the token is still emitted whenever possible.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// Leading dot: ".digits" (caller checked isNumberAfterDot).
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		lx.scanExponent(&kind)
		return emit(kind)
	}

	// Leading 0 with a base prefix?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if !lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' }) {
				lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing digits after base prefix")
			}
			return emit(token.IntLit)
		case 'o', 'O':
			lx.cursor.Bump()
			if !lx.eatDigits(func(b byte) bool { return b >= '0' && b <= '7' }) {
				lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing digits after base prefix")
			}
			return emit(token.IntLit)
		case 'x', 'X':
			lx.cursor.Bump()
			if !lx.eatDigits(isHex) {
				lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing digits after base prefix")
			}
			return emit(token.IntLit)
		}
		// plain "0", possibly followed by a fraction
	}

	// decimal integer part
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// fraction
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '.' && (b1 == '.' || b1 == '=') {
			// ".." or "..=" ranges, not part of the number
		} else {
			lx.cursor.Bump()
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	lx.scanExponent(&kind)
	return emit(kind)
}

// scanExponent consumes [eE][+-]?digits if present and upgrades kind to FloatLit.
func (lx *Lexer) scanExponent(kind *token.Kind) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || (b0 != 'e' && b0 != 'E') {
		return
	}
	if !isDec(b1) && b1 != '+' && b1 != '-' {
		return
	}
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // e/E
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		// "1e+" with no digits: back out, leave "e" for the ident scanner
		lx.cursor.Reset(mark)
		return
	}
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
	*kind = token.FloatLit
}

func (lx *Lexer) eatDigits(valid func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		if valid(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		return seen
	}
}
