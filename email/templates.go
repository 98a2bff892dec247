package email

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/winelabelmaker/winelabel-go/models"
	"gopkg.in/yaml.v2"
)

// TemplateData feeds the per-status mail bodies.
type TemplateData struct {
	Name      string
	Surname   string
	RequestID string
}

const subjectPrefix = "WINE LABEL MAKER - aggiornamento richiesta: "

// statusDisplay is the customer-facing Italian label for each status.
var statusDisplay = map[models.RequestStatus]string{
	models.RequestStatusPending:          "In attesa",
	models.RequestStatusInProgress:       "In lavorazione",
	models.RequestStatusQuoteSent:        "Preventivo inviato",
	models.RequestStatusPaymentConfirmed: "Pagamento confermato",
	models.RequestStatusCompleted:        "Completata",
	models.RequestStatusRejected:         "Respinta",
}

// Default bodies for the statuses that trigger an automatic mail when an
// admin changes a request. QuoteSent and Completed have dedicated endpoints
// instead and send nothing here.
var defaultBodies = map[models.RequestStatus]string{
	models.RequestStatusInProgress: "Gentile {{.Name}} {{.Surname}},\n\n" +
		"Abbiamo preso in carico la sua richiesta per la nuova etichetta di vino. " +
		"La nostra illustratrice sta attualmente lavorando sulla creazione dell'etichetta, " +
		"seguendo le indicazioni che ci ha fornito.\n\n" +
		"Non appena l'etichetta sarà completata, riceverà una nuova email con il file pronto.\n\n" +
		"Grazie per aver scelto Wine Label Maker.",
	models.RequestStatusPaymentConfirmed: "Gentile {{.Name}} {{.Surname}},\n\n" +
		"Le confermiamo di aver ricevuto il pagamento per la sua richiesta di etichetta di vino. " +
		"Procederemo ora con la finalizzazione del lavoro.\n\n" +
		"Riceverà una nuova email non appena l'etichetta sarà pronta.\n\n" +
		"Grazie per aver scelto Wine Label Maker.",
	models.RequestStatusRejected: "Gentile {{.Name}} {{.Surname}},\n\n" +
		"Siamo spiacenti di informarla che la sua richiesta per la nuova etichetta di vino non può essere completata. " +
		"Se desidera ulteriori dettagli o assistenza, non esiti a contattarci.\n\n" +
		"Ci auguriamo di poterla aiutare con altre richieste in futuro.\n\n" +
		"Grazie per aver scelto Wine Label Maker.",
}

const defaultCompletedBody = "Gentile {{.Name}} {{.Surname}},\n\n" +
	"Siamo felici di informarla che la sua richiesta con id: {{.RequestID}} per la nuova etichetta di vino è stata completata con successo. " +
	"La nostra illustratrice ha realizzato l'etichetta seguendo la descrizione da lei fornita.\n\n" +
	"Troverà l'etichetta in allegato a questa email.\n\n" +
	"Per qualsiasi chiarimento, modifica o ulteriore richiesta, non esiti a contattarci: " +
	"saremo lieti di assisterla e di mettere la nostra esperienza a sua disposizione.\n\n" +
	"Cordiali saluti,\n" +
	"Il team di Wine Label Maker"

// Templates resolves the subject and body texts for status mails. Defaults
// are compiled in; a YAML file can override individual entries.
type Templates struct {
	subjects  map[models.RequestStatus]string
	bodies    map[models.RequestStatus]*template.Template
	completed *template.Template
}

func DefaultTemplates() *Templates {
	t := &Templates{
		subjects: make(map[models.RequestStatus]string),
		bodies:   make(map[models.RequestStatus]*template.Template),
	}
	for status, display := range statusDisplay {
		t.subjects[status] = subjectPrefix + display
	}
	for status, body := range defaultBodies {
		t.bodies[status] = template.Must(template.New(string(status)).Parse(body))
	}
	t.completed = template.Must(template.New("Completed").Parse(defaultCompletedBody))
	return t
}

type templateFile struct {
	Subjects map[string]string `yaml:"subjects"`
	Bodies   map[string]string `yaml:"bodies"`
}

// LoadOverrides merges subject/body overrides from a YAML file. A body keyed
// "Completed" replaces the attachment-mail default; other body keys must be
// statuses that already have an automatic mail.
func (t *Templates) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse template file: %w", err)
	}

	for status, subject := range file.Subjects {
		if _, ok := statusDisplay[models.RequestStatus(status)]; !ok {
			return fmt.Errorf("unknown status %q in subjects", status)
		}
		t.subjects[models.RequestStatus(status)] = subject
	}

	for status, body := range file.Bodies {
		tmpl, err := template.New(status).Parse(body)
		if err != nil {
			return fmt.Errorf("invalid body template for %q: %w", status, err)
		}
		if status == string(models.RequestStatusCompleted) {
			t.completed = tmpl
			continue
		}
		if _, ok := t.bodies[models.RequestStatus(status)]; !ok {
			return fmt.Errorf("status %q has no automatic mail", status)
		}
		t.bodies[models.RequestStatus(status)] = tmpl
	}

	return nil
}

// Subject returns the mail subject for a status.
func (t *Templates) Subject(status models.RequestStatus) string {
	return t.subjects[status]
}

// Body renders the automatic-mail body for a status. ok is false for
// statuses that send no automatic notification.
func (t *Templates) Body(status models.RequestStatus, data TemplateData) (string, bool) {
	tmpl, ok := t.bodies[status]
	if !ok {
		return "", false
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", false
	}
	return buf.String(), true
}

// CompletedBody renders the default text for the completion mail with the
// label attached.
func (t *Templates) CompletedBody(data TemplateData) string {
	var buf bytes.Buffer
	if err := t.completed.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
