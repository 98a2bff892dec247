package email

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSender() *SMTPSender {
	return NewSMTPSender(Config{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "noreply@winelabelmaker.it",
		FromName: "Wine Label Maker",
	})
}

func TestBuildMessage_Plain(t *testing.T) {
	s := testSender()

	msg := string(s.buildMessage("a@x.com", "Oggetto", "Corpo del messaggio", "", nil))

	assert.Contains(t, msg, "From: Wine Label Maker <noreply@winelabelmaker.it>")
	assert.Contains(t, msg, "To: a@x.com")
	assert.Contains(t, msg, "Subject: Oggetto")
	assert.Contains(t, msg, "Content-Type: text/plain")
	assert.Contains(t, msg, "Corpo del messaggio")
	assert.NotContains(t, msg, "multipart/mixed")
}

func TestBuildMessage_WithAttachment(t *testing.T) {
	s := testSender()

	content := []byte("fake png bytes")
	msg := string(s.buildMessage("a@x.com", "Etichetta", "In allegato", "label.png", content))

	assert.Contains(t, msg, "multipart/mixed")
	assert.Contains(t, msg, `Content-Disposition: attachment; filename="label.png"`)
	assert.Contains(t, msg, "Content-Transfer-Encoding: base64")
	assert.Contains(t, msg, base64.StdEncoding.EncodeToString(content))
}

func TestBuildMessage_AttachmentLinesWrapped(t *testing.T) {
	s := testSender()

	big := make([]byte, 600)
	msg := string(s.buildMessage("a@x.com", "s", "b", "label.bin", big))

	inBody := false
	for _, line := range strings.Split(msg, "\r\n") {
		if strings.HasPrefix(line, "Content-Transfer-Encoding") {
			inBody = true
			continue
		}
		if inBody {
			assert.LessOrEqual(t, len(line), 76)
		}
	}
}

func TestSendWithAttachment_MissingFile(t *testing.T) {
	s := testSender()

	ok := s.SendWithAttachment("a@x.com", "s", "b", filepath.Join(t.TempDir(), "nope.png"))
	assert.False(t, ok)
}

func TestSendWithAttachment_UnreadableDirectory(t *testing.T) {
	s := testSender()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.png"), []byte("x"), 0o644))

	ok := s.SendWithAttachment("a@x.com", "s", "b", filepath.Join(dir, "other.png"))
	assert.False(t, ok)
}
