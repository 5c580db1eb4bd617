package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytareq/portfolio/internal/services"
)

// fakeNotifier sends each id once, like the real claim guard
type fakeNotifier struct {
	mu      sync.Mutex
	pending []string
	sent    map[string]int
	calls   int
}

func newFakeNotifier(pending ...string) *fakeNotifier {
	return &fakeNotifier{pending: pending, sent: make(map[string]int)}
}

func (n *fakeNotifier) Notify(_ context.Context, id string) (services.NotificationOutcome, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	if n.sent[id] > 0 {
		return services.OutcomeSkipped, nil
	}
	n.sent[id]++
	for i, p := range n.pending {
		if p == id {
			n.pending = append(n.pending[:i], n.pending[i+1:]...)
			break
		}
	}
	return services.OutcomeSent, nil
}

func (n *fakeNotifier) PendingIDs(_ context.Context, limit int) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.pending) < limit {
		limit = len(n.pending)
	}
	return append([]string(nil), n.pending[:limit]...), nil
}

func (n *fakeNotifier) sentCount(id string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[id]
}

func (n *fakeNotifier) addPending(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, id)
}

func TestNotificationWorkerProcessesQueue(t *testing.T) {
	notifier := newFakeNotifier()
	queue := make(chan string, 4)
	worker := NewNotificationWorker("notification-1", notifier, queue, time.Hour, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Start(ctx) }()

	queue <- "m1"
	queue <- "m1"
	queue <- "m2"

	assert.Eventually(t, func() bool {
		return notifier.sentCount("m1") == 1 && notifier.sentCount("m2") == 1
	}, time.Second, 10*time.Millisecond)
	assert.True(t, worker.IsRunning())

	cancel()
	require.NoError(t, <-done)
	assert.False(t, worker.IsRunning())
	assert.Equal(t, 1, notifier.sentCount("m1"), "duplicate trigger sends nothing")
}

func TestNotificationWorkerSweepsPending(t *testing.T) {
	notifier := newFakeNotifier("left-over")
	worker := NewNotificationWorker("notification-1", notifier, make(chan string), 20*time.Millisecond, 10)

	done := make(chan error, 1)
	go func() { done <- worker.Start(context.Background()) }()

	// startup sweep
	assert.Eventually(t, func() bool { return notifier.sentCount("left-over") == 1 }, time.Second, 5*time.Millisecond)

	// periodic sweep
	notifier.addPending("missed")
	assert.Eventually(t, func() bool { return notifier.sentCount("missed") == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, worker.Stop())
	require.NoError(t, worker.Stop(), "stop is idempotent")
	require.NoError(t, <-done)
}

func TestWorkerManager(t *testing.T) {
	notifier := newFakeNotifier("a", "b", "c")
	queue := make(chan string, 8)
	manager := NewWorkerManager(ManagerConfig{Workers: 3, PollInterval: 20 * time.Millisecond, BatchSize: 2}, notifier, queue)

	require.NoError(t, manager.StartAll(context.Background()))
	assert.Error(t, manager.StartAll(context.Background()), "second start is rejected")

	queue <- "d"

	assert.Eventually(t, func() bool {
		for _, id := range []string{"a", "b", "c", "d"} {
			if notifier.sentCount(id) != 1 {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)

	status := manager.GetWorkerStatus()
	assert.Len(t, status, 3)
	assert.Contains(t, status, "notification-1")

	require.NoError(t, manager.StopAll())
	for id, running := range manager.GetWorkerStatus() {
		assert.False(t, running, "worker %s still running", id)
	}
	require.NoError(t, manager.StopAll())
}

func TestWorkerManagerDefaults(t *testing.T) {
	manager := NewWorkerManager(ManagerConfig{}, newFakeNotifier(), make(chan string))

	assert.Equal(t, 1, manager.cfg.Workers)
	assert.Equal(t, 30*time.Second, manager.cfg.PollInterval)
	require.NoError(t, manager.StopAll(), "stopping before start is a no-op")
}
