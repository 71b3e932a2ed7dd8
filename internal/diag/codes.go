package diag

import (
	"fmt"
)

// Code is a stable numeric identifier for one diagnostic condition.
type Code uint16

const (
	// UnknownCode is the fallback for uncategorized diagnostics.
	UnknownCode Code = 0

	// Lexical.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Walk (cursor construction and stepping).
	WalkInfo        Code = 2000
	WalkEmptySeed   Code = 2001
	WalkPastEnd     Code = 2002
	WalkCacheStale  Code = 2003
	WalkCacheDenied Code = 2004

	// Observability.
	ObsTimings Code = 3000

	// I/O and project configuration.
	IOInfo           Code = 4000
	IOReadFailed     Code = 4001
	PrjInfo          Code = 5000
	PrjBadManifest   Code = 5001
	PrjUnknownOption Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexInfo:                     "lexer note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	WalkInfo:                    "walk note",
	WalkEmptySeed:               "seed location has no token",
	WalkPastEnd:                 "walk stepped past end of stream",
	WalkCacheStale:              "token cache entry is stale",
	WalkCacheDenied:             "token cache unavailable",
	ObsTimings:                  "phase timings",
	IOInfo:                      "io note",
	IOReadFailed:                "failed to read file",
	PrjInfo:                     "project note",
	PrjBadManifest:              "malformed tokwalk.toml",
	PrjUnknownOption:            "unknown configuration option",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("WLK%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
