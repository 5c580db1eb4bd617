package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ytareq/portfolio/internal/models"
)

// FormState is the lifecycle of a single contact form
type FormState string

const (
	FormStateIdle       FormState = "idle"
	FormStateSubmitting FormState = "submitting"
	FormStateSucceeded  FormState = "succeeded"
	FormStateFailed     FormState = "failed"
)

// NoticeVariant selects how a notice is rendered
type NoticeVariant string

const (
	NoticeDefault     NoticeVariant = "default"
	NoticeDestructive NoticeVariant = "destructive"
)

// Notice is the toast shown to the visitor after a submit
type Notice struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Variant     NoticeVariant `json:"variant"`
}

// Notice texts
const (
	NoticeSentTitle       = "Message sent!"
	NoticeSentDescription = "Thank you for your message. I'll get back to you soon."
	NoticeErrorTitle      = "Error"
	NoticeStoreFailure    = "Failed to send message. Please try again."
	NoticeBusyTitle       = "Please wait"
	NoticeBusyDescription = "Your message is already being sent."
)

// ErrSubmissionInProgress is returned when submit is called while a submit is running
var ErrSubmissionInProgress = errors.New("submission already in progress")

// Submitter runs the submission pipeline for a draft
type Submitter interface {
	Submit(ctx context.Context, sub models.Submission) (*models.Message, error)
}

// ContactForm holds the visitor's draft and drives one submission at a time
type ContactForm struct {
	mu        sync.Mutex
	submitter Submitter
	draft     models.Submission
	state     FormState
	focused   string
}

// NewContactForm creates an idle form with an empty draft
func NewContactForm(submitter Submitter) *ContactForm {
	return &ContactForm{
		submitter: submitter,
		state:     FormStateIdle,
	}
}

// SetField updates one field of the draft
func (f *ContactForm) SetField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "subject":
		f.draft.Subject = value
	case "message":
		f.draft.Message = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// SetDraft replaces the whole draft
func (f *ContactForm) SetDraft(sub models.Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = sub
}

// Focus marks field as focused. It has no effect on the submission.
func (f *ContactForm) Focus(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused = field
}

// Blur clears the focused field
func (f *ContactForm) Blur() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused = ""
}

func (f *ContactForm) Focused() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

func (f *ContactForm) Draft() models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *ContactForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit sends the current draft. A call made while another submit is
// running is rejected with ErrSubmissionInProgress and never reaches the
// store. On success the draft is cleared; on failure it is kept so the
// visitor can retry. The returned error carries the failure cause.
func (f *ContactForm) Submit(ctx context.Context) (Notice, error) {
	return f.submit(ctx, nil)
}

// SubmitDraft replaces the draft with sub and submits it. The draft is left
// untouched when another submit is running.
func (f *ContactForm) SubmitDraft(ctx context.Context, sub models.Submission) (Notice, error) {
	return f.submit(ctx, &sub)
}

func (f *ContactForm) submit(ctx context.Context, replace *models.Submission) (Notice, error) {
	f.mu.Lock()
	if f.state == FormStateSubmitting {
		f.mu.Unlock()
		return Notice{Title: NoticeBusyTitle, Description: NoticeBusyDescription, Variant: NoticeDestructive}, ErrSubmissionInProgress
	}
	if replace != nil {
		f.draft = *replace
	}
	f.state = FormStateSubmitting
	draft := f.draft
	f.mu.Unlock()

	_, err := f.submitter.Submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = FormStateFailed
		return failureNotice(err), err
	}

	f.state = FormStateSucceeded
	f.draft = models.Submission{}
	return Notice{Title: NoticeSentTitle, Description: NoticeSentDescription, Variant: NoticeDefault}, nil
}

func failureNotice(err error) Notice {
	notice := Notice{Title: NoticeErrorTitle, Description: NoticeStoreFailure, Variant: NoticeDestructive}

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		notice.Description = validationErr.Message
	}
	return notice
}
