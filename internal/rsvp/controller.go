package rsvp

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quannhg/graduation-invitation/internal/metrics"
	"github.com/quannhg/graduation-invitation/internal/models"
	"github.com/quannhg/graduation-invitation/pkg/utils"
)

// Submitter relays a submission to the spreadsheet endpoint.
type Submitter interface {
	Submit(ctx context.Context, sub models.Submission) error
	Configured() bool
}

// Notifier hears about submissions that left successfully.
type Notifier interface {
	Notify(sub models.Submission, displayName string)
}

type Outcome int

const (
	OutcomeSubmitted Outcome = iota
	OutcomeInvalid
	OutcomeFailed
	OutcomeNotConfigured
	OutcomeInFlight
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSubmitted:
		return metrics.OutcomeRelayed
	case OutcomeInvalid:
		return metrics.OutcomeInvalid
	case OutcomeFailed:
		return metrics.OutcomeFailed
	case OutcomeNotConfigured:
		return metrics.OutcomeNotConfigured
	case OutcomeInFlight:
		return metrics.OutcomeInFlight
	default:
		return "unknown"
	}
}

// Result is what a submit produced besides the view changes.
type Result struct {
	Outcome    Outcome
	Submission *models.Submission
	Errors     ValidationErrors
	Err        error
}

type Controller struct {
	opts      Options
	submitter Submitter
	loader    *Loader
	notifier  Notifier
	recorder  metrics.Recorder
	now       func() time.Time
}

type ControllerOption func(*Controller)

func WithNotifier(n Notifier) ControllerOption {
	return func(c *Controller) { c.notifier = n }
}

func WithRecorder(r metrics.Recorder) ControllerOption {
	return func(c *Controller) { c.recorder = r }
}

func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// NewController wires the flow once at startup. submitter is also the source
// of truth for whether the endpoint is configured.
func NewController(opts Options, submitter Submitter, personalizer Personalizer, options ...ControllerOption) *Controller {
	c := &Controller{
		opts:      opts.withDefaults(),
		submitter: submitter,
		recorder:  metrics.Nop{},
		now:       time.Now,
	}
	for _, o := range options {
		o(c)
	}
	c.loader = NewLoader(c.opts, personalizer, submitter.Configured, c.recorder)
	return c
}

func (c *Controller) Options() Options {
	return c.opts
}

// Load builds the page for one request: personalize if an inviter token is
// present, then reveal. The reveal happens whether or not personalization worked.
func (c *Controller) Load(ctx context.Context, inviter string) (*View, *models.InviterContext) {
	v := NewView(c.opts)
	reveal := v.Reveal()

	reveal.Begin(c.loader.Wants(inviter))
	inviterCtx := c.loader.Load(ctx, v, inviter)
	reveal.Finish()

	return v, inviterCtx
}

// Resume is Load for a form post: when the token no longer resolves, the
// display name the page was rendered with restores the inviter context.
func (c *Controller) Resume(ctx context.Context, inviter, displayName string) (*View, *models.InviterContext) {
	v, inviterCtx := c.Load(ctx, inviter)
	if inviterCtx == nil && !v.Personalized {
		inviterCtx = c.loader.Resume(v, inviter, displayName)
	}
	return v, inviterCtx
}

// BuildSubmission assembles the record sent to the sheet. With an inviter
// context the stable URL token is submitted instead of a typed name.
func BuildSubmission(in FormInput, inviter *models.InviterContext, now time.Time) models.Submission {
	name := NormalizeName(in.Name)
	if inviter != nil {
		name = inviter.URLParam
	}
	return models.Submission{
		Name:       name,
		Attendance: in.Attendance.Label(),
		Timestamp:  now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// Submit validates the form, relays it and leaves the outcome on the view.
// The form state is kept on the view afterwards.
func (c *Controller) Submit(ctx context.Context, v *View, in FormInput, inviter *models.InviterContext) Result {
	v.HideMessage()
	v.clearFieldErrors()
	if inviter == nil {
		v.Name.Value = in.Name
	}
	v.setAttendance(in.Attendance)

	attendanceLabel := attendanceMetricLabel(in.Attendance)

	if err := Validate(in, inviter); err != nil {
		var verrs ValidationErrors
		errors.As(err, &verrs)
		v.Name.Error = verrs[FieldName]
		v.Attendance.Error = verrs[FieldAttendance]
		c.recorder.Submission(metrics.OutcomeInvalid, attendanceLabel)
		return Result{Outcome: OutcomeInvalid, Errors: verrs, Err: err}
	}

	sub := BuildSubmission(in, inviter, c.now())

	if !c.submitter.Configured() {
		v.ShowMessage(MsgNotConfigured, BannerError)
		c.recorder.Submission(metrics.OutcomeNotConfigured, attendanceLabel)
		return Result{Outcome: OutcomeNotConfigured, Submission: &sub}
	}

	toggle := v.Toggle()
	if err := toggle.Begin(); err != nil {
		c.recorder.Submission(metrics.OutcomeInFlight, attendanceLabel)
		return Result{Outcome: OutcomeInFlight, Submission: &sub, Err: err}
	}

	err := c.submitter.Submit(ctx, sub)
	toggle.End()

	log := utils.Logger.WithFields(logrus.Fields{
		"name":       sub.Name,
		"attendance": sub.Attendance,
	})

	if err != nil {
		log.WithError(err).Error("Submission error")
		v.ShowMessage(MsgSubmitFailed, BannerError)
		c.recorder.Submission(metrics.OutcomeFailed, attendanceLabel)
		return Result{Outcome: OutcomeFailed, Submission: &sub, Err: err}
	}

	displayName := sub.Name
	if inviter != nil {
		displayName = inviter.DisplayName
	}
	v.ShowMessage(SuccessMessage(in.Attendance, displayName), BannerSuccess)

	log.Info("RSVP relayed to sheet")
	c.recorder.Submission(metrics.OutcomeRelayed, attendanceLabel)
	if c.notifier != nil {
		c.notifier.Notify(sub, displayName)
	}

	return Result{Outcome: OutcomeSubmitted, Submission: &sub}
}

func attendanceMetricLabel(a models.Attendance) string {
	switch a {
	case models.Attending:
		return "attending"
	case models.NotAttending:
		return "not_attending"
	default:
		return "unset"
	}
}
