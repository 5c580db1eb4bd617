package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ytareq/portfolio/internal/metrics"
	"github.com/ytareq/portfolio/internal/models"
	"github.com/ytareq/portfolio/pkg/logger"
)

// MessageStore appends contact messages
type MessageStore interface {
	Append(ctx context.Context, message *models.Message) (string, error)
}

// Notifier is told about every newly stored message
type Notifier interface {
	Enqueue(id string) bool
}

// StoreError reports that the message could not be persisted
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to store message: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ContactService validates submissions and appends them to the message store
type ContactService struct {
	validator *SubmissionValidator
	store     MessageStore
	notifier  Notifier
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewContactService creates a new contact service. notifier and m may be nil.
func NewContactService(store MessageStore, notifier Notifier, m *metrics.Metrics) *ContactService {
	return &ContactService{
		validator: NewSubmissionValidator(),
		store:     store,
		notifier:  notifier,
		metrics:   m,
		now:       time.Now,
	}
}

// Submit validates sub and appends exactly one new message for it. Errors
// are either a *models.ValidationError or a *StoreError.
func (s *ContactService) Submit(ctx context.Context, sub models.Submission) (*models.Message, error) {
	if _, err := s.validator.Validate(sub); err != nil {
		s.record(metrics.OutcomeInvalid)
		return nil, err
	}

	message := models.NewMessage(sub, s.now())
	id, err := s.store.Append(ctx, message)
	if err != nil {
		s.record(metrics.OutcomeStoreError)
		logger.WithError(err).Error("Failed to store contact message")
		return nil, &StoreError{Err: err}
	}
	message.ID = id

	logger.WithFields(logrus.Fields{
		"message_id": id,
		"subject":    message.Subject,
	}).Info("Contact message stored")
	s.record(metrics.OutcomeAccepted)
	if s.metrics != nil {
		s.metrics.RecordMessageStored()
	}

	// the polling loop picks the message up if the queue is full
	if s.notifier != nil && !s.notifier.Enqueue(id) {
		logger.WithField("message_id", id).Warn("Notification queue full, deferring to poller")
	}

	return message, nil
}

func (s *ContactService) record(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordSubmission(outcome)
	}
}
