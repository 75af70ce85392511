package email

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"lexdata-backend/config"
	"lexdata-backend/internal/domain"
	"lexdata-backend/pkg/logger"

	"github.com/google/uuid"
)

// contactRecipient is the sales inbox every submission is forwarded to.
const contactRecipient = "email@lexdatafinance.com"

// Service handles sending contact emails via SMTP
type Service struct {
	host           string
	port           string
	senderEmail    string
	senderPassword string
}

// contactEmailData holds the rendered fields for the plain-text body
type contactEmailData struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	ServiceType string
	Message     string
	Date        string
	Token       string
}

// NewService creates a new email service from the SMTP configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:           cfg.SMTPServer,
		port:           cfg.SMTPPort,
		senderEmail:    cfg.SenderEmail,
		senderPassword: cfg.SenderPassword,
	}
}

// contactEmailTemplate is the plain-text body for contact form emails
const contactEmailTemplate = `Nova mensagem de contato recebida via website:

Nome: {{.Name}}
Email: {{.Email}}
Empresa: {{.Company}}
Telefone: {{.Phone}}
Tipo de Serviço: {{.ServiceType}}

Mensagem:
{{.Message}}

Data: {{.Date}}
ID: {{.Token}}
`

// Send delivers the submission to the sales inbox. It never returns an error:
// when credentials are unset the send is simulated (development mode), and
// delivery failures are logged and reported as false so the caller can answer
// in-band. At most one delivery attempt is made per call.
func (s *Service) Send(contact *domain.ContactRequest) bool {
	if !s.IsConfigured() {
		logger.Log.Info("Email credentials not set, simulating send",
			"company", contact.Company, "service_type", contact.ServiceType)
		return true
	}

	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		logger.Log.Error("Failed to parse email template", "error", err)
		return false
	}

	phone := strings.TrimSpace(contact.Phone)
	if phone == "" {
		phone = "Não informado"
	}

	var body bytes.Buffer
	data := contactEmailData{
		Name:        contact.Name,
		Email:       contact.Email,
		Company:     contact.Company,
		Phone:       phone,
		ServiceType: contact.ServiceType,
		Message:     contact.Message,
		Date:        time.Now().Format("02/01/2006 15:04"),
		// Body-only token, separate from the contact_id returned to the client.
		Token: uuid.NewString()[:8],
	}
	if err := tmpl.Execute(&body, data); err != nil {
		logger.Log.Error("Failed to execute email template", "error", err)
		return false
	}

	subject := fmt.Sprintf("Novo Contato - %s", contact.Company)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.senderEmail,
		contactRecipient,
		contact.Email,
		subject,
		body.String(),
	))

	// SendMail upgrades the session via STARTTLS when the relay advertises it
	// and tears the connection down on every exit path.
	auth := smtp.PlainAuth("", s.senderEmail, s.senderPassword, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.senderEmail, []string{contactRecipient}, msg); err != nil {
		logger.Log.Error("Failed to send contact email", "error", err, "host", s.host)
		return false
	}

	return true
}

// IsConfigured checks if the service has SMTP credentials to send with
func (s *Service) IsConfigured() bool {
	return s.senderEmail != "" && s.senderPassword != ""
}
