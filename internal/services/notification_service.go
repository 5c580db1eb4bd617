package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ytareq/portfolio/internal/mailer"
	"github.com/ytareq/portfolio/internal/metrics"
	"github.com/ytareq/portfolio/internal/models"
	"github.com/ytareq/portfolio/pkg/logger"
)

// NotificationStore is the part of the message store used by the notifier
type NotificationStore interface {
	GetByID(ctx context.Context, id string) (*models.Message, error)
	ClaimForNotification(ctx context.Context, id string, now time.Time, lease time.Duration) (bool, error)
	ListPendingNotification(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*models.Message, error)
	RecordNotification(ctx context.Context, id string, sent bool, errMsg string) error
}

// NotificationQueue carries ids of freshly stored messages to the workers
type NotificationQueue struct {
	ids chan string
}

// NewNotificationQueue creates a queue holding up to size pending ids
func NewNotificationQueue(size int) *NotificationQueue {
	return &NotificationQueue{ids: make(chan string, size)}
}

// Enqueue hands id to a worker without blocking. It returns false when the
// queue is full.
func (q *NotificationQueue) Enqueue(id string) bool {
	select {
	case q.ids <- id:
		return true
	default:
		return false
	}
}

// IDs returns the receiving end of the queue
func (q *NotificationQueue) IDs() <-chan string {
	return q.ids
}

// NotificationOutcome describes what a single Notify call did
type NotificationOutcome string

const (
	OutcomeSkipped NotificationOutcome = "skipped"
	OutcomeSent    NotificationOutcome = "sent"
	OutcomeFailed  NotificationOutcome = "failed"
)

// recordTimeout bounds the final write once the email has been handed off
const recordTimeout = 10 * time.Second

// NotificationService emails the site owner about new contact messages
type NotificationService struct {
	store   NotificationStore
	mailer  mailer.Mailer
	from    string
	to      string
	lease   time.Duration
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(store NotificationStore, m mailer.Mailer, from, to string, lease time.Duration, mtr *metrics.Metrics) *NotificationService {
	return &NotificationService{
		store:   store,
		mailer:  m,
		from:    from,
		to:      to,
		lease:   lease,
		metrics: mtr,
		now:     time.Now,
	}
}

// Notify sends the notification for one message at most once. Messages that
// were already notified, or are claimed by another worker, are skipped. A
// failed send is recorded on the message and is not an error; only store
// failures are returned.
func (s *NotificationService) Notify(ctx context.Context, id string) (NotificationOutcome, error) {
	claimed, err := s.store.ClaimForNotification(ctx, id, s.now(), s.lease)
	if err != nil {
		return OutcomeSkipped, fmt.Errorf("failed to claim message %s: %w", id, err)
	}
	if !claimed {
		logger.WithField("message_id", id).Debug("Message already notified or claimed, skipping")
		return OutcomeSkipped, nil
	}

	message, err := s.store.GetByID(ctx, id)
	if err != nil {
		return OutcomeSkipped, fmt.Errorf("failed to load message %s: %w", id, err)
	}

	email, err := mailer.NewNotification(s.from, s.to, message)
	if err == nil {
		start := s.now()
		err = s.send(ctx, email)
		if s.metrics != nil {
			s.metrics.RecordNotification(err == nil, s.now().Sub(start))
		}
	}

	// shutting down mid-send: leave the claim to expire so the message is retried
	if err != nil && ctx.Err() != nil {
		return OutcomeSkipped, ctx.Err()
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	outcome, errMsg := OutcomeSent, ""
	if err != nil {
		outcome, errMsg = OutcomeFailed, err.Error()
	}
	if recErr := s.store.RecordNotification(recordCtx, id, outcome == OutcomeSent, errMsg); recErr != nil {
		return outcome, fmt.Errorf("failed to record notification for %s: %w", id, recErr)
	}

	entry := logger.WithFields(logrus.Fields{
		"message_id": id,
		"outcome":    outcome,
	})
	if err != nil {
		entry.WithError(err).Error("Error sending email")
	} else {
		entry.Info("Notification email sent")
	}
	return outcome, nil
}

// send hands email to the relay within half the claim lease, so the claim
// is still held when the outcome is recorded and no other worker can pick
// the message up and send it again.
func (s *NotificationService) send(ctx context.Context, email mailer.Email) error {
	if s.lease <= 0 {
		return s.mailer.Send(ctx, email)
	}
	sendCtx, cancel := context.WithTimeout(ctx, s.lease/2)
	defer cancel()

	err := s.mailer.Send(sendCtx, email)
	if err != nil && ctx.Err() == nil && errors.Is(sendCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("send timed out after %s: %w", s.lease/2, err)
	}
	return err
}

// PendingIDs lists messages that still need a notification
func (s *NotificationService) PendingIDs(ctx context.Context, limit int) ([]string, error) {
	messages, err := s.store.ListPendingNotification(ctx, s.now(), s.lease, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}
	return ids, nil
}
