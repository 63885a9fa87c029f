package metrics

import "sync"

// Tally counts outcomes in memory between digests.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

func (t *Tally) Submission(outcome, attendance string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[outcome+"/"+attendance]++
}

func (t *Tally) Personalization(outcome string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts["personalization/"+outcome]++
}

// Drain returns the counts since the last drain and starts over.
func (t *Tally) Drain() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.counts
	t.counts = make(map[string]int)
	return out
}

// Multi fans out to several recorders.
type Multi []Recorder

func (m Multi) Submission(outcome, attendance string) {
	for _, r := range m {
		r.Submission(outcome, attendance)
	}
}

func (m Multi) Personalization(outcome string) {
	for _, r := range m {
		r.Personalization(outcome)
	}
}
