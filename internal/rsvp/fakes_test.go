package rsvp

import (
	"context"
	"errors"
	"sync"

	"github.com/quannhg/graduation-invitation/internal/models"
)

type fakeSubmitter struct {
	configured bool
	err        error
	block      chan struct{}
	started    chan struct{}

	mu   sync.Mutex
	sent []models.Submission
}

func (f *fakeSubmitter) Configured() bool { return f.configured }

func (f *fakeSubmitter) Submit(_ context.Context, sub models.Submission) error {
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.sent = append(f.sent, sub)
	f.mu.Unlock()
	return f.err
}

func (f *fakeSubmitter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakePersonalizer struct {
	res   *models.Personalization
	err   error
	calls int
}

func (f *fakePersonalizer) Lookup(context.Context, string) (*models.Personalization, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

type fakeNotifier struct {
	subs  []models.Submission
	names []string
}

func (f *fakeNotifier) Notify(sub models.Submission, displayName string) {
	f.subs = append(f.subs, sub)
	f.names = append(f.names, displayName)
}

type fakeRecorder struct {
	submissions     []string
	personalization []string
}

func (f *fakeRecorder) Submission(outcome, attendance string) {
	f.submissions = append(f.submissions, outcome+"/"+attendance)
}

func (f *fakeRecorder) Personalization(outcome string) {
	f.personalization = append(f.personalization, outcome)
}

var errTransport = errors.New("dial tcp: i/o timeout")

func customMessage() *models.Personalization {
	return &models.Personalization{
		Status:           models.PersonalizationStatusSuccess,
		HasCustomMessage: true,
		Message:          "Tuấn ơi, cảm ơn vì đã đồng hành cùng mình suốt 4 năm!",
		Inviter:          "Tuấn Nguyễn",
	}
}
