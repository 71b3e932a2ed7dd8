package driver

import (
	"tokwalk/internal/diag"
	"tokwalk/internal/lexer"
	"tokwalk/internal/project"
	"tokwalk/internal/source"
	"tokwalk/internal/unit"
)

// UnitResult is a tokenized file ready for walking.
type UnitResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Unit      *unit.Unit
	Bag       *diag.Bag
	FromCache bool
}

// UnitOptions controls how NewUnit builds the token table.
type UnitOptions struct {
	MaxDiagnostics int
	Cache          *DiskCache // nil disables caching
}

// NewUnit loads path and produces its token table, consulting the disk
// cache first. A cache hit skips the lexer entirely, so a cached unit
// carries no lexical diagnostics; the table is still byte-exact because
// the key is the content digest.
func NewUnit(path string, opts UnitOptions) (*UnitResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	key := project.Digest(file.Hash)

	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.WalkCacheDenied,
				source.Span{File: fileID}, "token cache read failed: "+err.Error()).Emit()
		} else if hit {
			return &UnitResult{
				FileSet:   fs,
				File:      file,
				Unit:      unit.FromTable(file, payload.Entries),
				Bag:       bag,
				FromCache: true,
			}, nil
		}
	}

	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	u := unit.New(file, reporter)

	if opts.Cache != nil {
		payload := DiskPayload{
			Schema:      diskCacheSchemaVersion,
			Path:        file.Path,
			ContentHash: key,
			Entries:     u.Table(),
		}
		if err := opts.Cache.Put(key, &payload); err != nil {
			diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.WalkCacheDenied,
				source.Span{File: fileID}, "token cache write failed: "+err.Error()).Emit()
		}
	}

	return &UnitResult{
		FileSet: fs,
		File:    file,
		Unit:    u,
		Bag:     bag,
	}, nil
}
