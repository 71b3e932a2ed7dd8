// Package token defines lexical token kinds and trivia for tokwalk.
// Invariants:
//   - Token.Text is exactly the source slice covered by Token.Span.
//   - Token.Span is a half-open byte range [Start, End) in one file.
//   - Whitespace and comments never appear in the main token stream; they
//     are carried as leading Trivia on the token that follows them.
package token
