package email_test

import (
	"testing"

	"lexdata-backend/config"
	"lexdata-backend/internal/domain"
	"lexdata-backend/pkg/email"
	"lexdata-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func contact() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:        "Ana Silva",
		Email:       "ana@example.com",
		Company:     "Acme",
		ServiceType: "financas",
		Message:     "Gostaria de agendar uma reunião sobre consultoria financeira.",
	}
}

func TestSendSimulatedWhenUnconfigured(t *testing.T) {
	svc := email.NewService(&config.Config{
		SMTPServer: "smtp.gmail.com",
		SMTPPort:   "587",
	})

	assert.False(t, svc.IsConfigured())
	assert.True(t, svc.Send(contact()))
}

func TestSendReturnsFalseOnUnreachableRelay(t *testing.T) {
	// Port 1 on loopback refuses the connection; the dispatcher must swallow
	// the failure and report it as false rather than raising.
	svc := email.NewService(&config.Config{
		SMTPServer:     "127.0.0.1",
		SMTPPort:       "1",
		SenderEmail:    "sender@lexdatafinance.com",
		SenderPassword: "secret",
	})

	assert.True(t, svc.IsConfigured())
	assert.False(t, svc.Send(contact()))
}
