package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winelabelmaker/winelabel-go/models"
)

var data = TemplateData{Name: "Anna", Surname: "Bianchi", RequestID: "req-42"}

func TestBody_StatusesWithAutomaticMail(t *testing.T) {
	tpl := DefaultTemplates()

	for _, status := range []models.RequestStatus{
		models.RequestStatusInProgress,
		models.RequestStatusPaymentConfirmed,
		models.RequestStatusRejected,
	} {
		body, ok := tpl.Body(status, data)
		assert.True(t, ok, "expected body for %s", status)
		assert.Contains(t, body, "Anna Bianchi")
	}
}

func TestBody_StatusesWithoutAutomaticMail(t *testing.T) {
	tpl := DefaultTemplates()

	for _, status := range []models.RequestStatus{
		models.RequestStatusPending,
		models.RequestStatusQuoteSent,
		models.RequestStatusCompleted,
	} {
		_, ok := tpl.Body(status, data)
		assert.False(t, ok, "expected no body for %s", status)
	}
}

func TestSubject_ItalianStatusNames(t *testing.T) {
	tpl := DefaultTemplates()

	assert.Contains(t, tpl.Subject(models.RequestStatusRejected), "Respinta")
	assert.Contains(t, tpl.Subject(models.RequestStatusInProgress), "In lavorazione")
	assert.Contains(t, tpl.Subject(models.RequestStatusCompleted), "Completata")
}

func TestCompletedBody_IncludesRequestID(t *testing.T) {
	tpl := DefaultTemplates()

	body := tpl.CompletedBody(data)
	assert.Contains(t, body, "req-42")
	assert.Contains(t, body, "allegato")
}

func TestLoadOverrides(t *testing.T) {
	tpl := DefaultTemplates()

	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `subjects:
  Rejected: "Richiesta respinta"
bodies:
  InProgress: "Ciao {{.Name}}, ci stiamo lavorando."
  Completed: "Fatto, {{.Name}}! Richiesta {{.RequestID}}."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, tpl.LoadOverrides(path))

	assert.Equal(t, "Richiesta respinta", tpl.Subject(models.RequestStatusRejected))

	body, ok := tpl.Body(models.RequestStatusInProgress, data)
	require.True(t, ok)
	assert.Equal(t, "Ciao Anna, ci stiamo lavorando.", body)

	assert.Equal(t, "Fatto, Anna! Richiesta req-42.", tpl.CompletedBody(data))

	// untouched entries keep their defaults
	rejected, ok := tpl.Body(models.RequestStatusRejected, data)
	require.True(t, ok)
	assert.Contains(t, rejected, "Anna Bianchi")
}

func TestLoadOverrides_UnknownStatus(t *testing.T) {
	tpl := DefaultTemplates()

	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("subjects:\n  Archived: \"x\"\n"), 0o644))

	assert.Error(t, tpl.LoadOverrides(path))
}

func TestLoadOverrides_BodyForStatusWithoutMail(t *testing.T) {
	tpl := DefaultTemplates()

	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bodies:\n  Pending: \"x\"\n"), 0o644))

	assert.Error(t, tpl.LoadOverrides(path))
}
