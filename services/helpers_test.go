package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"leximax/content"
	"leximax/db"
	"leximax/models"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.GamificationEvent
}

func (n *recordingNotifier) Notify(e models.GamificationEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

func (n *recordingNotifier) count(eventType string) int {
	c := 0
	for _, t := range n.types() {
		if t == eventType {
			c++
		}
	}
	return c
}

type fixture struct {
	store       *db.MemoryUserStore
	notifier    *recordingNotifier
	progression *ProgressionService
	lessons     *LessonService
}

func newFixture(t *testing.T, users ...*models.User) *fixture {
	t.Helper()
	store := db.NewMemoryUserStore(users...)
	notifier := &recordingNotifier{}
	progression := NewProgressionService(store, content.New(), notifier)
	progression.now = func() time.Time { return testNow }
	return &fixture{
		store:       store,
		notifier:    notifier,
		progression: progression,
		lessons:     NewLessonService(progression),
	}
}

func (f *fixture) user(t *testing.T, id string) *models.User {
	t.Helper()
	u, err := f.store.GetUser(context.Background(), id)
	require.NoError(t, err)
	return u
}

func newLearner(id string) *models.User {
	return models.NewUser(id, id, id+"@example.com", "", testNow.Add(-48*time.Hour))
}

// fakeGenerator replays canned responses in order; an error entry fails
// that call.
type fakeGenerator struct {
	mu        sync.Mutex
	responses []fakeResponse
	prompts   []string
}

type fakeResponse struct {
	text string
	err  error
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if len(g.responses) == 0 {
		return "", context.DeadlineExceeded
	}
	r := g.responses[0]
	g.responses = g.responses[1:]
	return r.text, r.err
}
