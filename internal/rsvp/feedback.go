package rsvp

import (
	"errors"
	"sync"
)

type RevealState int

const (
	Skeleton RevealState = iota
	Personalizing
	Ready
)

func (s RevealState) String() string {
	switch s {
	case Skeleton:
		return "skeleton"
	case Personalizing:
		return "personalizing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Reveal sequences Skeleton -> [Personalizing ->] Ready for one page load.
// Ready is terminal and the content is revealed exactly once.
type Reveal struct {
	view  *View
	state RevealState
}

func NewReveal(v *View) *Reveal {
	return &Reveal{view: v}
}

func (r *Reveal) State() RevealState {
	return r.state
}

// Begin starts the load. Without personalization the page is revealed at once.
func (r *Reveal) Begin(personalize bool) {
	if r.state != Skeleton {
		return
	}
	if !personalize {
		r.Finish()
		return
	}
	r.state = Personalizing
	r.view.MessageLoading = true
}

// Finish reveals the content. It reports false if the content was already revealed.
func (r *Reveal) Finish() bool {
	if r.state == Ready {
		return false
	}
	r.state = Ready
	r.view.MessageLoading = false
	r.view.SkeletonHidden = true
	r.view.ContentHidden = false
	return true
}

var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// SubmitToggle is the Idle/Submitting switch around the POST. It mirrors the
// disabled button: a second Begin before End is refused.
type SubmitToggle struct {
	view *View

	mu         sync.Mutex
	submitting bool
}

func NewSubmitToggle(v *View) *SubmitToggle {
	return &SubmitToggle{view: v}
}

func (t *SubmitToggle) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.submitting {
		return ErrSubmissionInFlight
	}
	t.submitting = true
	t.view.SetLoading(true)
	return nil
}

func (t *SubmitToggle) End() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.submitting = false
	t.view.SetLoading(false)
}

func (t *SubmitToggle) Submitting() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.submitting
}
