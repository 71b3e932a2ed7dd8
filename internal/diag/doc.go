// Package diag carries diagnostics produced while lexing and walking
// source files: severities, stable codes, a bounded Bag collection, and
// the Reporter contract phases report through.
package diag
