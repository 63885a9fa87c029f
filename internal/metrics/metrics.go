package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes.
const (
	OutcomeRelayed       = "relayed"
	OutcomeInvalid       = "invalid"
	OutcomeFailed        = "failed"
	OutcomeNotConfigured = "not_configured"
	OutcomeInFlight      = "in_flight"
)

// Personalization outcomes.
const (
	PersonalizationApplied = "applied"
	PersonalizationDefault = "default"
	PersonalizationFailed  = "failed"
	PersonalizationSkipped = "skipped"
)

// Recorder is what the RSVP flow reports into.
type Recorder interface {
	Submission(outcome, attendance string)
	Personalization(outcome string)
}

type Prometheus struct {
	submissions     *prometheus.CounterVec
	personalization *prometheus.CounterVec
}

func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invitation",
			Name:      "rsvp_submissions_total",
			Help:      "RSVP submissions by outcome and attendance.",
		}, []string{"outcome", "attendance"}),
		personalization: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invitation",
			Name:      "personalization_lookups_total",
			Help:      "Page loads by personalization outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(p.submissions, p.personalization)
	return p
}

func (p *Prometheus) Submission(outcome, attendance string) {
	p.submissions.WithLabelValues(outcome, attendance).Inc()
}

func (p *Prometheus) Personalization(outcome string) {
	p.personalization.WithLabelValues(outcome).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) Submission(string, string) {}
func (Nop) Personalization(string)    {}
