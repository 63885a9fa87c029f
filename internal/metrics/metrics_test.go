package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.Submission(OutcomeRelayed, "attending")
	p.Submission(OutcomeRelayed, "attending")
	p.Submission(OutcomeFailed, "not_attending")
	p.Personalization(PersonalizationApplied)

	if got := testutil.ToFloat64(p.submissions.WithLabelValues(OutcomeRelayed, "attending")); got != 2 {
		t.Fatalf("relayed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.submissions.WithLabelValues(OutcomeFailed, "not_attending")); got != 1 {
		t.Fatalf("failed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.personalization.WithLabelValues(PersonalizationApplied)); got != 1 {
		t.Fatalf("applied = %v, want 1", got)
	}
}

func TestTallyDrain(t *testing.T) {
	tally := NewTally()
	rec := Multi{tally, Nop{}}

	rec.Submission(OutcomeRelayed, "attending")
	rec.Submission(OutcomeRelayed, "attending")
	rec.Personalization(PersonalizationFailed)

	got := tally.Drain()
	if got["relayed/attending"] != 2 || got["personalization/failed"] != 1 {
		t.Fatalf("Drain() = %v", got)
	}
	if again := tally.Drain(); len(again) != 0 {
		t.Fatalf("second Drain() = %v, want empty", again)
	}
}
