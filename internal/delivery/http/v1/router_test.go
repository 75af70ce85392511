package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lexdata-backend/config"
	v1 "lexdata-backend/internal/delivery/http/v1"
	"lexdata-backend/internal/domain"
	"lexdata-backend/internal/usecase"
	"lexdata-backend/pkg/email"
	"lexdata-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDispatcher records dispatch attempts and returns a fixed result.
type countingDispatcher struct {
	result bool
	calls  int
}

func (d *countingDispatcher) Send(contact *domain.ContactRequest) bool {
	d.calls++
	return d.result
}

func newTestRouter(dispatcher domain.ContactDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	cfg := &config.Config{
		ProjectName: config.ProjectName,
		Version:     config.Version,
		Port:        "8080",
		SMTPServer:  "smtp.gmail.com",
		SMTPPort:    "587",
	}
	if dispatcher == nil {
		// Unconfigured email service: every send is simulated.
		dispatcher = email.NewService(cfg)
	}

	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(dispatcher),
		Catalog:   usecase.NewServiceCatalog(),
		Config:    cfg,
	})
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRootAndHealth(t *testing.T) {
	router := newTestRouter(nil)

	t.Run("Root announces version and docs path", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Bem-vindo à LexData & Finance Solutions API", body["message"])
		assert.Equal(t, "1.0.0", body["version"])
		assert.NotEmpty(t, body["docs"])
	})

	t.Run("Health probe", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "LexData API", body["service"])
	})
}

func TestSubmitContact(t *testing.T) {
	validPayload := `{
		"name": "Ana Silva",
		"email": "ana@example.com",
		"company": "Acme",
		"service_type": "financas",
		"message": "Gostaria de agendar uma reunião sobre consultoria financeira."
	}`

	t.Run("Valid submission with simulated send succeeds", func(t *testing.T) {
		router := newTestRouter(nil)
		w := doRequest(router, http.MethodPost, "/api/v1/contact", validPayload)
		assert.Equal(t, http.StatusOK, w.Code)

		var res domain.ContactResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Message)
		assert.NotEmpty(t, res.ContactID)
	})

	t.Run("Delivery failure is a 200 with success=false and no contact_id", func(t *testing.T) {
		router := newTestRouter(&countingDispatcher{result: false})
		w := doRequest(router, http.MethodPost, "/api/v1/contact", validPayload)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.NotContains(t, body, "contact_id")
	})

	t.Run("Schema violations are rejected before the dispatcher runs", func(t *testing.T) {
		invalidPayloads := map[string]string{
			"name too short":    `{"name":"A","email":"ana@example.com","company":"Acme","service_type":"financas","message":"Gostaria de agendar uma reunião."}`,
			"message too short": `{"name":"Ana Silva","email":"ana@example.com","company":"Acme","service_type":"financas","message":"curta"}`,
			"malformed email":   `{"name":"Ana Silva","email":"not-an-email","company":"Acme","service_type":"financas","message":"Gostaria de agendar uma reunião."}`,
			"bad service_type":  `{"name":"Ana Silva","email":"ana@example.com","company":"Acme","service_type":"tecnologia","message":"Gostaria de agendar uma reunião."}`,
			"missing company":   `{"name":"Ana Silva","email":"ana@example.com","service_type":"financas","message":"Gostaria de agendar uma reunião."}`,
			"phone too long":    `{"name":"Ana Silva","email":"ana@example.com","company":"Acme","service_type":"financas","message":"Gostaria de agendar uma reunião.","phone":"123456789012345678901"}`,
			"not json":          `{"name":`,
		}

		for label, payload := range invalidPayloads {
			dispatcher := &countingDispatcher{result: true}
			router := newTestRouter(dispatcher)
			w := doRequest(router, http.MethodPost, "/api/v1/contact", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code, label)
			assert.Zero(t, dispatcher.calls, label)
		}
	})
}

func TestServices(t *testing.T) {
	router := newTestRouter(nil)

	t.Run("Listing returns the full catalog", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/services", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var services map[string]domain.ServiceInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
		assert.Len(t, services, 5)
		assert.Contains(t, services, "tecnologia")
	})

	t.Run("Detail for a known service", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/services/legaltech", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var svc domain.ServiceInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svc))
		assert.Contains(t, svc.Name, "LegalTech")
		assert.NotEmpty(t, svc.Features)
	})

	t.Run("Unknown service type is a 404, not a server error", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/services/invalidtype", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("outro is a valid form type but has no catalog record", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/services/outro", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCORS(t *testing.T) {
	router := newTestRouter(nil)

	t.Run("Preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Preflight from a lexdata vercel preview", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
		req.Header.Set("Origin", "https://lexdata-frontend-git-main.vercel.app")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Preflight from an unknown origin is blocked", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
