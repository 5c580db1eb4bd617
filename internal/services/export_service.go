package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/ytareq/portfolio/internal/models"
)

// MessagesSheet is the worksheet holding exported messages
const MessagesSheet = "Messages"

var exportHeader = []interface{}{
	"ID", "Created At", "Name", "Email", "Subject", "Message",
	"Status", "Email Notified", "Email Sent", "Error",
}

// MessageLister lists stored messages
type MessageLister interface {
	List(ctx context.Context, opts models.ListOptions) ([]*models.Message, error)
}

// ExportService writes stored messages to a spreadsheet
type ExportService struct {
	messages MessageLister
}

// NewExportService creates a new export service
func NewExportService(messages MessageLister) *ExportService {
	return &ExportService{messages: messages}
}

// WriteFile exports to path. The workbook is written to a temporary file
// next to path and renamed over it only once complete, so a failed export
// leaves an existing file untouched.
func (s *ExportService) WriteFile(ctx context.Context, path string, opts models.ListOptions) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.xlsx")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	count, err := s.WriteWorkbook(ctx, tmp, opts)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return count, nil
}

// WriteWorkbook writes the messages matching opts as an xlsx workbook to w
// and returns how many rows were exported.
func (s *ExportService) WriteWorkbook(ctx context.Context, w io.Writer, opts models.ListOptions) (int, error) {
	messages, err := s.messages.List(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to list messages: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MessagesSheet); err != nil {
		return 0, err
	}
	if err := f.SetSheetRow(MessagesSheet, "A1", &exportHeader); err != nil {
		return 0, err
	}

	for i, message := range messages {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		row := messageRow(message)
		if err := f.SetSheetRow(MessagesSheet, cell, &row); err != nil {
			return 0, err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}
	return len(messages), nil
}

func messageRow(m *models.Message) []interface{} {
	sent := ""
	if m.EmailSent != nil {
		sent = fmt.Sprintf("%t", *m.EmailSent)
	}
	errMsg := ""
	if m.Error != nil {
		errMsg = *m.Error
	}

	return []interface{}{
		m.ID,
		m.CreatedAt.UTC().Format(time.RFC3339),
		m.Name,
		m.Email,
		m.Subject,
		m.Message,
		string(m.Status),
		fmt.Sprintf("%t", m.EmailNotified),
		sent,
		errMsg,
	}
}
