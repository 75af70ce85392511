package usecase

import (
	"context"

	"lexdata-backend/internal/domain"

	"github.com/google/uuid"
)

type contactUsecase struct {
	dispatcher domain.ContactDispatcher
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(dispatcher domain.ContactDispatcher) domain.ContactUsecase {
	return &contactUsecase{
		dispatcher: dispatcher,
	}
}

// Submit hands the submission to the dispatcher and builds the acknowledgment.
// The request blocks for the full duration of the delivery attempt. The
// contact_id here is independent of the token the dispatcher embeds in the
// email body.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) *domain.ContactResponse {
	if uc.dispatcher.Send(req) {
		return &domain.ContactResponse{
			Success:   true,
			Message:   "Mensagem enviada com sucesso! Entraremos em contato em breve.",
			ContactID: uuid.NewString(),
		}
	}

	return &domain.ContactResponse{
		Success: false,
		Message: "Erro ao enviar mensagem. Tente novamente mais tarde.",
	}
}
