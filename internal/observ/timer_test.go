package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()

	idx := tm.Begin("lex")
	time.Sleep(time.Millisecond)
	tm.End(idx, "42 tokens")

	idx2 := tm.Begin("walk")
	tm.End(idx2, "")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases: got %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "lex" || report.Phases[0].Note != "42 tokens" {
		t.Errorf("phase 0 = %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Errorf("phase 0 duration must be positive, got %v", report.Phases[0].DurationMS)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Errorf("total %v < phase 0 %v", report.TotalMS, report.Phases[0].DurationMS)
	}

	sum := tm.Summary()
	if !strings.Contains(sum, "lex") || !strings.Contains(sum, "total") {
		t.Errorf("summary missing sections:\n%s", sum)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(0, "no phase")  // must not panic
	tm.End(-1, "negative") // must not panic
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Errorf("report = %+v, want empty", got)
	}
}
