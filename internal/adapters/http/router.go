// Package http - Router configuration for REST API.
//
// Router собирает все handlers и middleware в единую точку входа.
// Handlers receive only the use cases they need; a missing use case group
// simply leaves its routes unregistered.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/Haleralex/pricecalc/internal/adapters/http/handlers"
	"github.com/Haleralex/pricecalc/internal/adapters/http/middleware"
)

// ============================================
// Router Configuration
// ============================================

// RouterConfig - конфигурация роутера.
type RouterConfig struct {
	// Logger для middleware
	Logger *slog.Logger
	// ServiceName reported by GET / and used as the HTTP span service
	ServiceName string
	// Version reported by GET / and /health
	Version string
	// Environment (development, staging, production)
	Environment string
	// ExposeErrors adds the error detail to 500 bodies
	ExposeErrors bool
	// Limiter counts requests per client; nil disables rate limiting
	Limiter middleware.Limiter
	// HealthChecks are probed by /ready
	HealthChecks map[string]handlers.Checker
	// TracerProvider for HTTP server spans; nil disables them
	TracerProvider trace.TracerProvider
}

// DefaultRouterConfig - конфигурация по умолчанию для development.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Logger:       slog.Default(),
		ServiceName:  "Conversion API",
		Version:      "1.0.0",
		Environment:  "development",
		ExposeErrors: true,
	}
}

// unlimitedPaths are never rate limited.
var unlimitedPaths = []string{"/health", "/live", "/ready", "/metrics"}

// ============================================
// Use Case Providers
// ============================================

// ConversionUseCases - provider для use cases конвертации.
type ConversionUseCases struct {
	Convert  handlers.ConvertUseCase
	GetRates handlers.GetRatesUseCase
}

// VatUseCases - provider для use cases TVA.
type VatUseCases struct {
	CalculateTTC       handlers.CalculateTTCUseCase
	CalculateHT        handlers.CalculateHTUseCase
	CalculateTvaAmount handlers.CalculateTvaAmountUseCase
	StandardRates      handlers.GetStandardRatesUseCase
}

// DiscountUseCases - provider для use cases remise.
type DiscountUseCases struct {
	ApplyRemise     handlers.ApplyRemiseUseCase
	RemiseAmount    handlers.CalculateRemiseAmountUseCase
	ApplyRemiseFixe handlers.ApplyRemiseFixeUseCase
	PrixOriginal    handlers.CalculatePrixOriginalUseCase
}

// ============================================
// Router Builder
// ============================================

// RouterBuilder - builder для создания роутера.
//
// Pattern: Builder
type RouterBuilder struct {
	config     *RouterConfig
	conversion *ConversionUseCases
	vat        *VatUseCases
	discount   *DiscountUseCases
}

// NewRouterBuilder создаёт новый builder.
func NewRouterBuilder(config *RouterConfig) *RouterBuilder {
	if config == nil {
		config = DefaultRouterConfig()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &RouterBuilder{
		config: config,
	}
}

// WithConversionUseCases добавляет use cases конвертации.
func (b *RouterBuilder) WithConversionUseCases(useCases *ConversionUseCases) *RouterBuilder {
	b.conversion = useCases
	return b
}

// WithVatUseCases добавляет use cases TVA.
func (b *RouterBuilder) WithVatUseCases(useCases *VatUseCases) *RouterBuilder {
	b.vat = useCases
	return b
}

// WithDiscountUseCases добавляет use cases remise.
func (b *RouterBuilder) WithDiscountUseCases(useCases *DiscountUseCases) *RouterBuilder {
	b.discount = useCases
	return b
}

// Build создаёт сконфигурированный Gin Engine.
func (b *RouterBuilder) Build() *gin.Engine {
	if b.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// ============================================
	// Global Middleware
	// ============================================

	// 1. Error details and Recovery first, so panics anywhere below are caught
	router.Use(middleware.ErrorDetails(b.config.ExposeErrors))
	router.Use(middleware.Recovery(&middleware.RecoveryConfig{
		Logger:           b.config.Logger,
		EnableStackTrace: b.config.Environment != "production",
	}))

	// 2. Request ID
	router.Use(middleware.RequestID())

	// 3. Tracing
	if b.config.TracerProvider != nil {
		router.Use(otelgin.Middleware(b.config.ServiceName,
			otelgin.WithTracerProvider(b.config.TracerProvider),
		))
	}

	// 4. CORS, every origin
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// 5. Logging
	router.Use(middleware.Logging(&middleware.LoggingConfig{
		Logger:    b.config.Logger,
		SkipPaths: unlimitedPaths,
	}))

	// 6. Rate Limiting
	if b.config.Limiter != nil {
		router.Use(middleware.RateLimit(&middleware.RateLimitConfig{
			Limiter:   b.config.Limiter,
			Logger:    b.config.Logger,
			SkipPaths: unlimitedPaths,
		}))
	}

	// 7. Metrics (Prometheus)
	router.Use(middleware.Metrics())

	// ============================================
	// Operational Routes
	// ============================================

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.NewHealthHandler(b.config.Version, b.config.HealthChecks).RegisterRoutes(router)

	// ============================================
	// API Routes
	// ============================================

	// GET / and the 404 fallback for unmatched paths and methods
	handlers.NewServiceHandler(b.config.ServiceName, b.config.Version).RegisterRoutes(router)

	if b.conversion != nil {
		handlers.NewConversionHandler(
			b.conversion.Convert,
			b.conversion.GetRates,
		).RegisterRoutes(router)
	}

	if b.vat != nil {
		handlers.NewVatHandler(
			b.vat.CalculateTTC,
			b.vat.CalculateHT,
			b.vat.CalculateTvaAmount,
			b.vat.StandardRates,
		).RegisterRoutes(router)
	}

	if b.discount != nil {
		handlers.NewDiscountHandler(
			b.discount.ApplyRemise,
			b.discount.RemiseAmount,
			b.discount.ApplyRemiseFixe,
			b.discount.PrixOriginal,
		).RegisterRoutes(router)
	}

	return router
}
