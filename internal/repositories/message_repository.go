package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ytareq/portfolio/internal/models"
)

var (
	// ErrMessageNotFound is returned when no message has the requested id
	ErrMessageNotFound = errors.New("message not found")
	// ErrAlreadyNotified is returned when recording an outcome twice
	ErrAlreadyNotified = errors.New("message already notified")
)

const messageColumns = `id, name, email, subject, message, created_at, status, email_notified, email_sent, error`

// MessageRepository handles database operations for contact messages
type MessageRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append inserts a new message and returns its id.
// There is no idempotency key: every call creates a row.
func (r *MessageRepository) Append(ctx context.Context, message *models.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO messages (id, name, email, subject, message, created_at, status, email_notified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.CreatedAt,
		message.Status,
		message.EmailNotified,
	)
	if err != nil {
		return "", err
	}
	return message.ID, nil
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row := r.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	message, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return message, nil
}

// ClaimForNotification marks the message as being notified by the caller.
// It returns false when the message was already notified or another worker
// holds a claim younger than lease.
func (r *MessageRepository) ClaimForNotification(ctx context.Context, id string, now time.Time, lease time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		UPDATE messages
		SET claimed_at = ?
		WHERE id = ? AND email_notified = 0 AND (claimed_at IS NULL OR claimed_at < ?)
	`

	result, err := r.db.ExecContext(ctx, query, now.UnixNano(), id, now.Add(-lease).UnixNano())
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ListPendingNotification returns the oldest messages that were never
// notified and are not claimed by a live worker.
func (r *MessageRepository) ListPendingNotification(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE email_notified = 0 AND (claimed_at IS NULL OR claimed_at < ?)
		ORDER BY created_at ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, now.Add(-lease).UnixNano(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

// RecordNotification stores the outcome of the notification attempt and
// releases the claim. Only the row with the given id is touched.
func (r *MessageRepository) RecordNotification(ctx context.Context, id string, sent bool, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errValue sql.NullString
	if errMsg != "" {
		errValue = sql.NullString{String: errMsg, Valid: true}
	}

	query := `
		UPDATE messages
		SET email_notified = 1, email_sent = ?, error = ?, claimed_at = NULL
		WHERE id = ? AND email_notified = 0
	`

	result, err := r.db.ExecContext(ctx, query, sent, errValue, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrMessageNotFound
	}
	return ErrAlreadyNotified
}

// List returns messages newest first, filtered by opts
func (r *MessageRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var conditions []string
	var args []interface{}
	if opts.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opts.Status)
	}
	if opts.Since != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, opts.Since.UTC())
	}

	query := `SELECT ` + messageColumns + ` FROM messages`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMessage(row rowScanner) (*models.Message, error) {
	message := &models.Message{}
	var emailSent sql.NullBool
	var errMsg sql.NullString

	err := row.Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Subject,
		&message.Message,
		&message.CreatedAt,
		&message.Status,
		&message.EmailNotified,
		&emailSent,
		&errMsg,
	)
	if err != nil {
		return nil, err
	}

	if emailSent.Valid {
		sent := emailSent.Bool
		message.EmailSent = &sent
	}
	if errMsg.Valid {
		text := errMsg.String
		message.Error = &text
	}
	message.CreatedAt = message.CreatedAt.UTC()
	return message, nil
}

func scanMessages(rows *sql.Rows) ([]*models.Message, error) {
	var messages []*models.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
