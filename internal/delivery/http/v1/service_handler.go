package v1

import (
	"errors"
	"net/http"

	"lexdata-backend/internal/domain"
	"lexdata-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	catalog domain.ServiceCatalog
}

// NewServiceHandler registers the service catalog routes (public)
func NewServiceHandler(public *gin.RouterGroup, catalog domain.ServiceCatalog) {
	handler := &ServiceHandler{
		catalog: catalog,
	}

	public.GET("/services", handler.ListServices)
	public.GET("/services/:service_type", handler.GetService)
}

// ListServices godoc
// @Summary      List Services
// @Description  Retorna a lista completa de serviços oferecidos pela LexData
// @Tags         services
// @Produce      json
// @Success      200  {object}  map[string]domain.ServiceInfo
// @Router       /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.GetAllServices())
}

// GetService godoc
// @Summary      Get Service Detail
// @Description  Retorna detalhes de um serviço específico
// @Tags         services
// @Produce      json
// @Param        service_type  path      string  true  "Service type"  Enums(consultoria, legaltech, financas, treinamento, outro)
// @Success      200           {object}  domain.ServiceInfo
// @Failure      404           {object}  response.Response
// @Router       /services/{service_type} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	serviceType := c.Param("service_type")

	// The path param is validated against the submission enum, which overlaps
	// with but does not equal the catalog keys ("outro" vs "tecnologia"), so
	// both checks below can miss independently.
	if !domain.IsValidServiceType(serviceType) {
		c.Error(apperror.NotFound("Serviço não encontrado"))
		return
	}

	svc, err := h.catalog.GetService(serviceType)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			c.Error(apperror.NotFound("Serviço não encontrado"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	c.JSON(http.StatusOK, svc)
}
