package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/ytareq/portfolio/internal/models"
)

// SubjectPrefix starts the subject line of every notification
const SubjectPrefix = "New Contact Form Message: "

// Email is a single HTML message ready to be handed to a Mailer
type Email struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

var notificationTemplate = template.Must(template.New("notification").Parse(`
<h2>New Message from Portfolio Contact Form</h2>
<p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

// NewNotification builds the operator email for a stored message. All
// submitter text is HTML escaped and the submitter becomes the Reply-To.
func NewNotification(from, to string, message *models.Message) (Email, error) {
	var body bytes.Buffer
	if err := notificationTemplate.Execute(&body, message); err != nil {
		return Email{}, fmt.Errorf("render notification: %w", err)
	}

	email := Email{
		From:     from,
		To:       []string{to},
		Subject:  SubjectPrefix + message.Subject,
		HTMLBody: body.String(),
	}
	// a malformed address would only break the header, so it is left out
	if _, err := mail.ParseAddress(message.Email); err == nil {
		email.ReplyTo = (&mail.Address{Name: message.Name, Address: message.Email}).String()
	}
	return email, nil
}

// Bytes renders the email as an RFC 5322 message
func (e Email) Bytes(now time.Time) []byte {
	var buf bytes.Buffer

	writeHeader := func(key, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, value)
	}

	writeHeader("From", e.From)
	for _, to := range e.To {
		writeHeader("To", to)
	}
	if e.ReplyTo != "" {
		writeHeader("Reply-To", e.ReplyTo)
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", e.Subject))
	writeHeader("Date", now.Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%s@portfolio>", uuid.New().String()))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/html; charset="UTF-8"`)
	writeHeader("Content-Transfer-Encoding", "8bit")
	buf.WriteString("\r\n")
	buf.WriteString(e.HTMLBody)

	return buf.Bytes()
}
