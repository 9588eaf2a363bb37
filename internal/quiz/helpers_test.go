package quiz

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mathmedha/medha/internal/problemgen"
	"github.com/mathmedha/medha/internal/store"
)

// fixedGenerator always asks the same question.
type fixedGenerator struct {
	q     problemgen.Question
	calls int
}

func (g *fixedGenerator) Next() problemgen.Question {
	g.calls++
	return g.q
}

func newFixedGenerator(a, b int) *fixedGenerator {
	return &fixedGenerator{q: problemgen.NewQuestion(a, b)}
}

// fakeSpeaker records what it was asked to say.
type fakeSpeaker struct {
	mu        sync.Mutex
	available bool
	spoken    []string
	cancels   int
}

func (f *fakeSpeaker) Available() bool { return f.available }

func (f *fakeSpeaker) Speak(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	return nil
}

func (f *fakeSpeaker) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
}

func (f *fakeSpeaker) Spoken() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spoken...)
}

// fakeTicker is fired by hand.
type fakeTicker struct {
	c chan time.Time

	mu      sync.Mutex
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *fakeTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// fakeClock hands out fakeTickers and a manually fired After channel.
type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
	after   chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{after: make(chan time.Time, 1)}
}

func (c *fakeClock) Now() time.Time { return time.Unix(0, 0) }

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{c: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *fakeClock) After(time.Duration) <-chan time.Time { return c.after }

// ticker waits for the run loop to create its ticker.
func (c *fakeClock) ticker(t *testing.T) *fakeTicker {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		if len(c.tickers) > 0 {
			tk := c.tickers[0]
			c.mu.Unlock()
			return tk
		}
		c.mu.Unlock()
		time.Sleep(time.Millisecond)
	}
	t.Fatal("ticker never created")
	return nil
}

// mockEventRepo records session events.
type mockEventRepo struct {
	mu            sync.Mutex
	sessionEvents []store.SessionEventData
	rewardEvents  []store.RewardEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendRewardEvent(_ context.Context, data store.RewardEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rewardEvents = append(m.rewardEvents, data)
	return nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryRewardEvents(_ context.Context, _ store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RewardCounts(_ context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}

// answer types text and submits it.
func answer(s *Session, text string) (Outcome, bool) {
	for _, c := range text {
		s.AppendChar(c)
	}
	return s.Submit()
}
