package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ytareq/portfolio/internal/services"
	"github.com/ytareq/portfolio/pkg/logger"
)

// Notifier sends operator notifications for stored messages
type Notifier interface {
	Notify(ctx context.Context, id string) (services.NotificationOutcome, error)
	PendingIDs(ctx context.Context, limit int) ([]string, error)
}

// NotificationWorker emails the operator about new messages. It reacts to
// ids pushed on the queue and periodically sweeps the store for messages
// that were never notified.
type NotificationWorker struct {
	*BaseWorker
	notifier     Notifier
	queue        <-chan string
	pollInterval time.Duration
	batchSize    int
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(workerID string, notifier Notifier, queue <-chan string, pollInterval time.Duration, batchSize int) *NotificationWorker {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &NotificationWorker{
		BaseWorker:   NewBaseWorker(workerID),
		notifier:     notifier,
		queue:        queue,
		pollInterval: pollInterval,
		batchSize:    batchSize,
	}
}

// Start begins the notification worker process
func (w *NotificationWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)

	log := logger.WithField("worker_id", w.WorkerID)
	log.Info("Notification worker started")

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// pick up anything left over from a previous run
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("Notification worker stopping due to context cancellation")
			return nil
		case <-w.StopChan:
			log.Info("Notification worker stopping")
			return nil
		case id := <-w.queue:
			w.process(ctx, id)
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *NotificationWorker) sweep(ctx context.Context) {
	ids, err := w.notifier.PendingIDs(ctx, w.batchSize)
	if err != nil {
		logger.WithError(err).WithField("worker_id", w.WorkerID).Error("Failed to list pending notifications")
		return
	}
	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, id)
	}
}

func (w *NotificationWorker) process(ctx context.Context, id string) {
	outcome, err := w.notifier.Notify(ctx, id)
	fields := logrus.Fields{
		"worker_id":  w.WorkerID,
		"message_id": id,
		"outcome":    outcome,
	}
	if err != nil {
		logger.WithFields(fields).WithError(err).Error("Notification failed")
		return
	}
	logger.WithFields(fields).Debug("Notification processed")
}
