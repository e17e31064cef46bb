package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

// EmailMessage is the payload handed to the outbound email collaborator.
type EmailMessage struct {
	To         string
	Subject    string
	SenderName string
	ReplyTo    string
	Text       string
	HTML       string
}

type EmailSender interface {
	Send(msg EmailMessage) error
}

// SMTPSender sends email via unauthenticated SMTP (Mailpit-compatible).
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@inkstudio.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

func (s *SMTPSender) Send(msg EmailMessage) error {
	raw := buildMessage(s.from, msg)
	return smtp.SendMail(s.addr, nil, s.from, []string{msg.To}, []byte(raw))
}

// buildMessage assembles a multipart/alternative RFC 5322 message carrying
// both the plain-text and HTML bodies.
func buildMessage(from string, msg EmailMessage) string {
	fromHeader := from
	if msg.SenderName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", msg.SenderName, from)
	}

	var b strings.Builder
	boundary := "inkstudio-alt-boundary"

	fmt.Fprintf(&b, "From: %s\r\n", fromHeader)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}
