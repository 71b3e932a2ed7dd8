package driver

import (
	"strings"
	"testing"

	"tokwalk/internal/diag"
	"tokwalk/internal/observ"
)

func TestAppendTimings(t *testing.T) {
	bag := diag.NewBag(4)
	AppendTimings(bag, "tokenize", "main.tw", observ.Report{
		TotalMS: 1.5,
		Phases:  []observ.PhaseReport{{Name: "lex", DurationMS: 1.5}},
	})

	if bag.Len() != 1 {
		t.Fatalf("bag len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.ObsTimings || d.Severity != diag.SevInfo {
		t.Errorf("code/severity = %v/%v", d.Code, d.Severity)
	}
	if !strings.Contains(d.Message, "tokenize") || !strings.Contains(d.Message, "main.tw") {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, `"lex"`) {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestAppendTimingsFullBag(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Message: "filler"})

	AppendTimings(bag, "walk", "", observ.Report{})
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ObsTimings {
			found = true
		}
	}
	if !found {
		t.Error("timing diagnostic must survive a full bag")
	}
}
