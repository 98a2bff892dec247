package email

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
)

// Sender is the outbound notification contract. Both calls are synchronous
// and report delivery as a boolean only, so callers can ignore failures
// without structured error handling.
type Sender interface {
	SendSimple(to, subject, body string) bool
	SendWithAttachment(to, subject, body, path string) bool
}

// Config holds the SMTP settings, resolved once at process start.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

type SMTPSender struct {
	config Config
	auth   smtp.Auth
}

func NewSMTPSender(config Config) *SMTPSender {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPSender{
		config: config,
		auth:   auth,
	}
}

// SendSimple delivers a plain-text mail. Failures are logged, not returned.
func (s *SMTPSender) SendSimple(to, subject, body string) bool {
	message := s.buildMessage(to, subject, body, "", nil)
	if err := s.send(to, message); err != nil {
		log.Printf("Failed to send mail to %s: %v", to, err)
		return false
	}
	return true
}

// SendWithAttachment delivers a plain-text mail with the file at path
// attached. Returns false without sending when the file does not exist.
func (s *SMTPSender) SendWithAttachment(to, subject, body, path string) bool {
	if _, err := os.Stat(path); err != nil {
		log.Printf("Attachment %s not readable: %v", path, err)
		return false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read attachment %s: %v", path, err)
		return false
	}

	message := s.buildMessage(to, subject, body, filepath.Base(path), content)
	if err := s.send(to, message); err != nil {
		log.Printf("Failed to send mail to %s: %v", to, err)
		return false
	}
	return true
}

const mimeBoundary = "WINELABEL_BOUNDARY"

func (s *SMTPSender) buildMessage(to, subject, body, attachmentName string, attachment []byte) []byte {
	builder := &strings.Builder{}

	builder.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.From))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", to))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	builder.WriteString("MIME-Version: 1.0\r\n")

	if attachment == nil {
		builder.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		builder.WriteString(body)
		return []byte(builder.String())
	}

	builder.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n\r\n", mimeBoundary))

	builder.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
	builder.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	builder.WriteString(body)
	builder.WriteString("\r\n")

	contentType := mime.TypeByExtension(filepath.Ext(attachmentName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	builder.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
	builder.WriteString(fmt.Sprintf("Content-Type: %s\r\n", contentType))
	builder.WriteString("Content-Transfer-Encoding: base64\r\n")
	builder.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", attachmentName))

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// RFC 2045 caps encoded lines at 76 characters
	for len(encoded) > 76 {
		builder.WriteString(encoded[:76])
		builder.WriteString("\r\n")
		encoded = encoded[76:]
	}
	builder.WriteString(encoded)
	builder.WriteString("\r\n")

	builder.WriteString(fmt.Sprintf("--%s--", mimeBoundary))

	return []byte(builder.String())
}

func (s *SMTPSender) send(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	if !s.config.UseTLS {
		return smtp.SendMail(addr, s.auth, s.config.From, []string{to}, message)
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		return fmt.Errorf("failed to dial TLS: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if s.auth != nil {
		if err := client.Auth(s.auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return client.Quit()
}
