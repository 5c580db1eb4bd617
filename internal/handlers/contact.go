package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/ytareq/portfolio/internal/models"
	"github.com/ytareq/portfolio/internal/services"
)

type ContactHandler struct {
	submitter services.Submitter

	mu    sync.Mutex
	forms map[string]*services.ContactForm
}

func NewContactHandler(submitter services.Submitter) *ContactHandler {
	return &ContactHandler{
		submitter: submitter,
		forms:     make(map[string]*services.ContactForm),
	}
}

// ContactResponse is returned for every contact submission
type ContactResponse struct {
	Notice services.Notice    `json:"notice"`
	State  services.FormState `json:"state"`
	Field  string             `json:"field,omitempty"`
	Draft  *models.Submission `json:"draft,omitempty"`
}

// Submit handles POST /api/contact with a JSON or form encoded body.
// Submissions from one client run one at a time; a second one sent while
// the first is still being stored gets 409.
func (h *ContactHandler) Submit(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	form := h.formFor(c.ClientIP())
	notice, err := form.SubmitDraft(c.Request.Context(), sub)
	if !errors.Is(err, services.ErrSubmissionInProgress) {
		h.release(c.ClientIP(), form)
	}

	resp := ContactResponse{Notice: notice, State: form.State()}
	if err == nil {
		c.JSON(http.StatusCreated, resp)
		return
	}

	// the visitor keeps what they typed
	resp.Draft = &sub

	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, services.ErrSubmissionInProgress):
		resp.State = services.FormStateSubmitting
		c.JSON(http.StatusConflict, resp)
	case errors.As(err, &validationErr):
		resp.Field = validationErr.Field
		c.JSON(http.StatusBadRequest, resp)
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func (h *ContactHandler) formFor(clientIP string) *services.ContactForm {
	h.mu.Lock()
	defer h.mu.Unlock()

	form, ok := h.forms[clientIP]
	if !ok {
		form = services.NewContactForm(h.submitter)
		h.forms[clientIP] = form
	}
	return form
}

// release forgets the client's form once its submit has finished
func (h *ContactHandler) release(clientIP string, form *services.ContactForm) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.forms[clientIP] == form {
		delete(h.forms, clientIP)
	}
}
