package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	cataloghttp "github.com/delicias-da-thai/storefront/internal/domains/catalog/adapters/http"
	operatorshttp "github.com/delicias-da-thai/storefront/internal/domains/operators/adapters/http"
	operatorsports "github.com/delicias-da-thai/storefront/internal/domains/operators/ports"
	orderinghttp "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/http"
	settingshttp "github.com/delicias-da-thai/storefront/internal/domains/settings/adapters/http"
)

// Handlers groups the per-domain HTTP handlers mounted by NewRouter.
type Handlers struct {
	Catalog   *cataloghttp.Handler
	Settings  *settingshttp.Handler
	Ordering  *orderinghttp.Handler
	Operators *operatorshttp.Handler
}

// NewRouter assembles the gin engine: public storefront routes under
// /api/v1 and operator-only routes under /api/v1/admin.
func NewRouter(serviceName string, cfg Config, handlers Handlers, auth operatorsports.Service) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(serviceName))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	public := router.Group("/api/v1")
	handlers.Catalog.RegisterPublic(public)
	handlers.Settings.RegisterPublic(public)
	handlers.Ordering.RegisterPublic(public)
	handlers.Operators.Register(public)

	admin := router.Group("/api/v1/admin")
	admin.Use(operatorshttp.AuthMiddleware(auth))
	handlers.Catalog.RegisterAdmin(admin)
	handlers.Settings.RegisterAdmin(admin)
	handlers.Ordering.RegisterAdmin(admin)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: true,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
