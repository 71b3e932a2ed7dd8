package diag

import (
	"testing"

	"tokwalk/internal/source"
)

func spanAt(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := bag.Add(Diagnostic{
			Severity: SevError,
			Code:     LexUnknownChar,
			Message:  "bad char",
			Primary:  spanAt(uint32(i), uint32(i+1)),
		})
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d returned %v, want %v", i, ok, want)
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatal("HasErrors = false after adding errors")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevWarning, Code: WalkEmptySeed, Primary: spanAt(10, 12)})
	bag.Add(Diagnostic{Severity: SevError, Code: LexUnterminatedString, Primary: spanAt(10, 12)})
	bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: spanAt(0, 1)})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != LexUnknownChar {
		t.Fatalf("first after sort is %v, want LexUnknownChar", items[0].Code)
	}
	// Same offset: error sorts before warning.
	if items[1].Code != LexUnterminatedString || items[2].Code != WalkEmptySeed {
		t.Fatalf("same-offset order is %v, %v", items[1].Code, items[2].Code)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	dst := NewBag(1)
	dst.Add(Diagnostic{Severity: SevError, Code: LexBadNumber, Primary: spanAt(0, 1)})

	src := NewBag(2)
	src.Add(Diagnostic{Severity: SevWarning, Code: WalkCacheDenied, Primary: spanAt(1, 2)})
	src.Add(Diagnostic{Severity: SevInfo, Code: ObsTimings, Primary: spanAt(2, 3)})

	dst.Merge(src)
	if dst.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", dst.Len())
	}
	dst.Merge(nil)
	if dst.Len() != 3 {
		t.Fatalf("Len after nil merge = %d, want 3", dst.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportWarning(BagReporter{Bag: bag}, WalkCacheStale, spanAt(0, 3), "stale entry").
		WithNote(spanAt(3, 4), "recorded here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after double Emit", bag.Len())
	}
	got := bag.Items()[0]
	if got.Severity != SevWarning || got.Code != WalkCacheStale {
		t.Fatalf("emitted %v %v", got.Severity, got.Code)
	}
	if len(got.Notes) != 1 || got.Notes[0].Msg != "recorded here" {
		t.Fatalf("notes = %+v", got.Notes)
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnterminatedString, "LEX1002"},
		{WalkEmptySeed, "WLK2001"},
		{ObsTimings, "OBS3000"},
		{IOReadFailed, "IO4001"},
		{PrjBadManifest, "PRJ5001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
