package invitation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/quannhg/graduation-invitation/internal/models"
	"github.com/quannhg/graduation-invitation/internal/rsvp"
	"github.com/quannhg/graduation-invitation/web"
)

type stubSheet struct {
	configured bool
	err        error
	lookup     *models.Personalization

	mu   sync.Mutex
	sent []models.Submission
}

func (s *stubSheet) Configured() bool { return s.configured }

func (s *stubSheet) Submit(_ context.Context, sub models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sub)
	return s.err
}

func (s *stubSheet) Lookup(context.Context, string) (*models.Personalization, error) {
	if s.lookup == nil {
		return nil, errors.New("no personalization")
	}
	return s.lookup, nil
}

func newTestHandlers(t *testing.T, sheet *stubSheet, opts rsvp.Options) *Handlers {
	t.Helper()
	ctrl := rsvp.NewController(opts, sheet, sheet)
	h, err := New(ctrl, web.Files)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h
}

func tuanPersonalization() *models.Personalization {
	return &models.Personalization{
		Status:           models.PersonalizationStatusSuccess,
		HasCustomMessage: true,
		Message:          "Tuấn ơi, cảm ơn vì đã đồng hành cùng mình!",
		Inviter:          "Tuấn Nguyễn",
	}
}
