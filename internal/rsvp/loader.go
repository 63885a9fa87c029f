package rsvp

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/quannhg/graduation-invitation/internal/metrics"
	"github.com/quannhg/graduation-invitation/internal/models"
	"github.com/quannhg/graduation-invitation/pkg/utils"
)

// Personalizer resolves an inviter token to personalized copy.
type Personalizer interface {
	Lookup(ctx context.Context, inviter string) (*models.Personalization, error)
}

// Loader applies best-effort personalization to a page. Every failure falls
// back to the default copy and is only logged.
type Loader struct {
	opts         Options
	personalizer Personalizer
	configured   func() bool
	recorder     metrics.Recorder
}

func NewLoader(opts Options, p Personalizer, configured func() bool, rec metrics.Recorder) *Loader {
	if configured == nil {
		configured = func() bool { return true }
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Loader{opts: opts.withDefaults(), personalizer: p, configured: configured, recorder: rec}
}

// Wants reports whether a lookup will be attempted for this token.
func (l *Loader) Wants(inviter string) bool {
	return inviter != "" && l.opts.Personalization && l.personalizer != nil && l.configured()
}

// Load rewrites the view from the inviter's personalization and returns the
// resolved inviter context, or nil when the page stays generic.
func (l *Loader) Load(ctx context.Context, v *View, inviter string) *models.InviterContext {
	if inviter == "" {
		return nil
	}
	if !l.opts.Personalization {
		l.recorder.Personalization(metrics.PersonalizationSkipped)
		return nil
	}
	if l.personalizer == nil {
		l.recorder.Personalization(metrics.PersonalizationSkipped)
		return nil
	}
	if !l.configured() {
		utils.Logger.Warn("Apps Script URL not configured, skipping personalization")
		l.recorder.Personalization(metrics.PersonalizationSkipped)
		return nil
	}

	log := utils.Logger.WithFields(logrus.Fields{"inviter": inviter})

	data, err := l.personalizer.Lookup(ctx, inviter)
	if err != nil {
		log.WithError(err).Error("Error fetching personalized message")
		l.recorder.Personalization(metrics.PersonalizationFailed)
		return nil
	}
	if !data.HasMessage() {
		log.WithField("status", data.Status).Debug("No custom message for inviter")
		l.recorder.Personalization(metrics.PersonalizationDefault)
		return nil
	}

	display := strings.TrimSpace(data.Inviter)
	applyPersonalization(v, data.Message, display)
	l.recorder.Personalization(metrics.PersonalizationApplied)

	if !l.opts.PrefillName || display == "" {
		return nil
	}

	log.WithField("display_name", display).Info("Personalized invitation")
	return prefill(v, inviter, display)
}

// Resume rebuilds the inviter context a rendered form carried back when the
// lookup no longer answers, so the submitted identifier stays the URL token.
func (l *Loader) Resume(v *View, inviter, displayName string) *models.InviterContext {
	display := strings.TrimSpace(displayName)
	if inviter == "" || display == "" || !l.opts.Personalization || !l.opts.PrefillName {
		return nil
	}
	utils.Logger.WithFields(logrus.Fields{
		"inviter":      inviter,
		"display_name": display,
	}).Warn("Personalization lookup unavailable, resuming inviter from the form")
	return prefill(v, inviter, display)
}

func prefill(v *View, inviter, display string) *models.InviterContext {
	v.Inviter = inviter
	v.InviterName = display
	v.Name = TextField{Value: display, Hidden: true}
	v.setAttendance(models.Attending)
	return &models.InviterContext{URLParam: inviter, DisplayName: display}
}

func applyPersonalization(v *View, message, display string) {
	v.Personalized = true
	if len(v.Greetings) > 0 {
		v.Greetings[0] = message
	}
	if display == "" {
		return
	}
	if len(v.Greetings) > 1 {
		v.Greetings[1] = strings.Replace(v.Greetings[1], inviterPlaceholder, display, 1)
	}
	v.Occasion = occasionFor(display)
	v.SignatureNote = signatureNoteFor(display)
}
