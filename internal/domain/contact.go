package domain

import "context"

// ContactRequest represents a contact form submission from the website.
// service_type is the submission enum; note it overlaps with but does not
// match the catalog keys in service.go.
type ContactRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Company     string `json:"company" binding:"required,min=2,max=100"`
	ServiceType string `json:"service_type" binding:"required,oneof=consultoria legaltech financas treinamento outro"`
	Message     string `json:"message" binding:"required,min=10,max=1000"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
}

// ContactResponse is the acknowledgment returned for a submission. ContactID
// is only present on success.
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contact_id,omitempty"`
}

// ContactDispatcher delivers a submission to the sales inbox. It reports
// delivery as a boolean and never raises: failures are handled (and logged)
// by the implementation.
type ContactDispatcher interface {
	Send(contact *ContactRequest) bool
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit dispatches the submission and builds the acknowledgment.
	// Delivery failure is reported in-band via ContactResponse.Success.
	Submit(ctx context.Context, req *ContactRequest) *ContactResponse
}
