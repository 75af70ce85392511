package domain

import "errors"

// ErrServiceNotFound is returned when a catalog key has no record.
var ErrServiceNotFound = errors.New("service not found")

// ServiceInfo describes one service offering from the static catalog.
type ServiceInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// submissionServiceTypes is the enum accepted on the contact form. It is NOT
// the set of catalog keys: the form accepts "outro" while the catalog carries
// "tecnologia". Keep the two apart until product decides on unification.
var submissionServiceTypes = map[string]bool{
	"consultoria": true,
	"legaltech":   true,
	"financas":    true,
	"treinamento": true,
	"outro":       true,
}

// IsValidServiceType reports whether s is one of the submission enum values.
func IsValidServiceType(s string) bool {
	return submissionServiceTypes[s]
}

// ServiceCatalog defines read access to the static service catalog.
type ServiceCatalog interface {
	// GetAllServices returns the complete catalog. The map is built per call;
	// callers may only rely on value equality across calls.
	GetAllServices() map[string]ServiceInfo

	// GetService returns the record for a catalog key, or ErrServiceNotFound.
	GetService(serviceType string) (ServiceInfo, error)
}
