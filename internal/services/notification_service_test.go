package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytareq/portfolio/internal/mailer"
	"github.com/ytareq/portfolio/internal/models"
)

// fakeMailer collects sent emails and fails while err is set
type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Email
	err  error
}

func (m *fakeMailer) Send(_ context.Context, email mailer.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func storeMessage(t *testing.T, svc *ContactService, subject string) *models.Message {
	t.Helper()
	message, err := svc.Submit(context.Background(), models.Submission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: subject,
		Message: "<b>hello</b>",
	})
	require.NoError(t, err)
	return message
}

func TestNotifySendsOnceAndRecordsSuccess(t *testing.T) {
	repo := newTestMessageRepository(t)
	m := &fakeMailer{}
	notifier := NewNotificationService(repo, m, "site@example.com", "owner@example.com", time.Minute, nil)
	message := storeMessage(t, NewContactService(repo, nil, nil), "Hello")

	outcome, err := notifier.Notify(context.Background(), message.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, outcome)

	require.Equal(t, 1, m.count())
	email := m.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, email.To)
	assert.Equal(t, "site@example.com", email.From)
	assert.Equal(t, "New Contact Form Message: Hello", email.Subject)
	assert.Contains(t, email.HTMLBody, "&lt;b&gt;hello&lt;/b&gt;")

	stored, err := repo.GetByID(context.Background(), message.ID)
	require.NoError(t, err)
	assert.True(t, stored.EmailNotified)
	require.NotNil(t, stored.EmailSent)
	assert.True(t, *stored.EmailSent)
	assert.Nil(t, stored.Error)

	// a duplicate trigger for the same message is a no-op
	outcome, err = notifier.Notify(context.Background(), message.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, 1, m.count())
}

func TestNotifyRecordsFailure(t *testing.T) {
	repo := newTestMessageRepository(t)
	m := &fakeMailer{err: errors.New("535 authentication failed")}
	notifier := NewNotificationService(repo, m, "site@example.com", "owner@example.com", time.Minute, nil)
	message := storeMessage(t, NewContactService(repo, nil, nil), "Hello")

	outcome, err := notifier.Notify(context.Background(), message.ID)
	require.NoError(t, err, "a failed send is recorded, not returned")
	assert.Equal(t, OutcomeFailed, outcome)

	stored, err := repo.GetByID(context.Background(), message.ID)
	require.NoError(t, err)
	assert.True(t, stored.EmailNotified)
	require.NotNil(t, stored.EmailSent)
	assert.False(t, *stored.EmailSent)
	require.NotNil(t, stored.Error)
	assert.Equal(t, "535 authentication failed", *stored.Error)

	// no retry once the outcome is recorded
	m.err = nil
	outcome, err = notifier.Notify(context.Background(), message.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, 0, m.count())
}

func TestNotifyOnlyTouchesItsMessage(t *testing.T) {
	repo := newTestMessageRepository(t)
	notifier := NewNotificationService(repo, &fakeMailer{}, "site@example.com", "owner@example.com", time.Minute, nil)
	contact := NewContactService(repo, nil, nil)
	first := storeMessage(t, contact, "first")
	second := storeMessage(t, contact, "second")

	_, err := notifier.Notify(context.Background(), first.ID)
	require.NoError(t, err)

	other, err := repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.False(t, other.EmailNotified)
	assert.Nil(t, other.EmailSent)
}

func TestNotifyConcurrentTriggersSendOnce(t *testing.T) {
	repo := newTestMessageRepository(t)
	m := &fakeMailer{}
	notifier := NewNotificationService(repo, m, "site@example.com", "owner@example.com", time.Minute, nil)
	message := storeMessage(t, NewContactService(repo, nil, nil), "Hello")

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := notifier.Notify(context.Background(), message.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, m.count())
}

func TestNotifyUnknownMessageIsSkipped(t *testing.T) {
	repo := newTestMessageRepository(t)
	m := &fakeMailer{}
	notifier := NewNotificationService(repo, m, "site@example.com", "owner@example.com", time.Minute, nil)

	outcome, err := notifier.Notify(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, 0, m.count())
}

func TestNotifyCancelledSendLeavesMessagePending(t *testing.T) {
	repo := newTestMessageRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := &cancellingMailer{cancel: cancel}
	notifier := NewNotificationService(repo, m, "site@example.com", "owner@example.com", time.Minute, nil)
	message := storeMessage(t, NewContactService(repo, nil, nil), "Hello")

	_, err := notifier.Notify(ctx, message.ID)
	assert.ErrorIs(t, err, context.Canceled)

	stored, err := repo.GetByID(context.Background(), message.ID)
	require.NoError(t, err)
	assert.False(t, stored.EmailNotified, "interrupted sends are retried after the lease")

	notifier.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	ids, err := notifier.PendingIDs(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{message.ID}, ids)
}

// cancellingMailer simulates shutdown arriving while the relay is talking
type cancellingMailer struct {
	cancel context.CancelFunc
}

func (m *cancellingMailer) Send(ctx context.Context, _ mailer.Email) error {
	m.cancel()
	return ctx.Err()
}

// slowMailer takes delay to deliver unless its context ends first
type slowMailer struct {
	delay    time.Duration
	mu       sync.Mutex
	attempts int
}

func (m *slowMailer) Send(ctx context.Context, _ mailer.Email) error {
	m.mu.Lock()
	m.attempts++
	m.mu.Unlock()

	select {
	case <-time.After(m.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *slowMailer) attemptCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

func TestNotifySlowRelayDoesNotOutliveClaim(t *testing.T) {
	repo := newTestMessageRepository(t)
	m := &slowMailer{delay: 150 * time.Millisecond}
	lease := 50 * time.Millisecond
	notifier := NewNotificationService(repo, m, "site@example.com", "owner@example.com", lease, nil)
	message := storeMessage(t, NewContactService(repo, nil, nil), "Hello")

	type result struct {
		outcome NotificationOutcome
		err     error
	}
	first := make(chan result, 1)
	go func() {
		outcome, err := notifier.Notify(context.Background(), message.ID)
		first <- result{outcome, err}
	}()

	// a second trigger after the lease would have expired
	time.Sleep(80 * time.Millisecond)
	outcome, err := notifier.Notify(context.Background(), message.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)

	r := <-first
	require.NoError(t, r.err)
	assert.Equal(t, OutcomeFailed, r.outcome)
	assert.Equal(t, 1, m.attemptCount())

	stored, err := repo.GetByID(context.Background(), message.ID)
	require.NoError(t, err)
	assert.True(t, stored.EmailNotified)
	require.NotNil(t, stored.Error)
	assert.Contains(t, *stored.Error, "timed out")
}

func TestPendingIDs(t *testing.T) {
	repo := newTestMessageRepository(t)
	notifier := NewNotificationService(repo, &fakeMailer{}, "site@example.com", "owner@example.com", time.Minute, nil)
	contact := NewContactService(repo, nil, nil)
	first := storeMessage(t, contact, "first")
	second := storeMessage(t, contact, "second")

	_, err := notifier.Notify(context.Background(), first.ID)
	require.NoError(t, err)

	ids, err := notifier.PendingIDs(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID}, ids)
}

func TestNotificationQueue(t *testing.T) {
	q := NewNotificationQueue(1)

	assert.True(t, q.Enqueue("a"))
	assert.False(t, q.Enqueue("b"), "full queue does not block")
	assert.Equal(t, "a", <-q.IDs())
}
