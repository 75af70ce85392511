package v1

import (
	"net/http"

	"lexdata-backend/config"
	"lexdata-backend/internal/delivery/http/middleware"
	"lexdata-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Catalog   domain.ServiceCatalog
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Bem-vindo à LexData & Finance Solutions API",
			"version": deps.Config.Version,
			"docs":    "/api/v1/swagger/index.html",
		})
	})

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "LexData API",
		})
	})

	v1 := r.Group("/api/v1")

	// Public routes - no auth anywhere on this API
	NewContactHandler(v1, deps.ContactUC)
	NewServiceHandler(v1, deps.Catalog)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
