// Package container - Dependency Injection container for the application.
//
// Container управляет жизненным циклом всех зависимостей:
// - Создание (lazy initialization)
// - Доступ (getters)
// - Закрытие (cleanup)
//
// Pattern: Composition Root
// - Все зависимости собираются в одном месте
// - Легко тестировать
// - Легко заменять реализации
package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/adapters/http"
	"github.com/Haleralex/pricecalc/internal/adapters/http/handlers"
	"github.com/Haleralex/pricecalc/internal/application/ports"
	"github.com/Haleralex/pricecalc/internal/application/usecases"
	"github.com/Haleralex/pricecalc/internal/application/usecases/conversion"
	"github.com/Haleralex/pricecalc/internal/application/usecases/discount"
	"github.com/Haleralex/pricecalc/internal/application/usecases/vat"
	"github.com/Haleralex/pricecalc/internal/config"
	"github.com/Haleralex/pricecalc/internal/domain/currency"
	"github.com/Haleralex/pricecalc/internal/infrastructure/messaging"
	"github.com/Haleralex/pricecalc/internal/infrastructure/ratelimit"
	"github.com/Haleralex/pricecalc/internal/pkg/logger"
	"github.com/Haleralex/pricecalc/internal/pkg/tracing"
)

// limiter is a rate limit store owned by the container.
type limiter interface {
	Allow(ctx context.Context, key string) (bool, int, time.Duration, error)
	Limit() int
	Close() error
}

// ============================================
// Container
// ============================================

// Container - DI контейнер приложения.
type Container struct {
	config *config.Config
	logger *slog.Logger

	// Infrastructure
	tracing        *tracing.Provider
	eventPublisher ports.EventPublisher
	limiter        limiter
	healthChecks   map[string]handlers.Checker

	// Domain
	rates currency.RateTable

	// Use Cases
	recorder             *usecases.Recorder
	convertUC            *conversion.ConvertUseCase
	getRatesUC           *conversion.GetRatesUseCase
	calculateTTCUC       *vat.CalculateTTCUseCase
	calculateHTUC        *vat.CalculateHTUseCase
	calculateTvaAmountUC *vat.CalculateTvaAmountUseCase
	standardRatesUC      *vat.GetStandardRatesUseCase
	applyRemiseUC        *discount.ApplyRemiseUseCase
	remiseAmountUC       *discount.CalculateRemiseAmountUseCase
	applyRemiseFixeUC    *discount.ApplyRemiseFixeUseCase
	prixOriginalUC       *discount.CalculatePrixOriginalUseCase

	// HTTP
	router     *gin.Engine
	httpServer *http.Server
}

// New создаёт новый контейнер с заданной конфигурацией.
func New(cfg *config.Config) *Container {
	return &Container{
		config:       cfg,
		rates:        currency.DefaultRateTable(),
		healthChecks: make(map[string]handlers.Checker),
	}
}

// ============================================
// Initialization
// ============================================

// Initialize инициализирует все зависимости.
func (c *Container) Initialize(ctx context.Context) error {
	c.logger = c.initLogger()
	c.logger.Info("Initializing application container...")

	// 1. Tracing
	if err := c.initTracing(ctx); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	// 2. Event publisher
	c.initEventPublisher()

	// 3. Rate limiter
	c.initLimiter(ctx)

	// 4. Use Cases
	c.initUseCases()
	c.logger.Info("Use cases initialized")

	// 5. HTTP Server
	c.initHTTPServer()
	c.logger.Info("HTTP server initialized")

	c.logger.Info("Container initialization complete")
	return nil
}

// initLogger инициализирует логгер.
func (c *Container) initLogger() *slog.Logger {
	return logger.Setup(&logger.Config{
		Level:     c.config.Log.Level,
		Format:    c.config.Log.Format,
		Output:    os.Stdout,
		AddSource: c.config.Log.AddSource,
	})
}

// initTracing installs the global tracer provider.
func (c *Container) initTracing(ctx context.Context) error {
	provider, err := tracing.New(ctx, tracing.Config{
		Enabled:        c.config.Tracing.Enabled,
		Endpoint:       c.config.Tracing.Endpoint,
		Insecure:       c.config.Tracing.Insecure,
		SampleRatio:    c.config.Tracing.SampleRatio,
		ServiceName:    c.config.App.Name,
		ServiceVersion: c.config.App.Version,
		Environment:    c.config.App.Environment,
	})
	if err != nil {
		return err
	}
	c.tracing = provider

	if c.config.Tracing.Enabled {
		c.logger.Info("Tracing enabled", slog.String("endpoint", c.config.Tracing.Endpoint))
	}
	return nil
}

// initEventPublisher выбирает publisher: NATS, если включён и доступен,
// иначе debug log.
func (c *Container) initEventPublisher() {
	if c.eventPublisher != nil {
		return
	}

	if c.config.NATS.Enabled {
		publisher, err := messaging.NewNATSPublisher(messaging.NATSConfig{
			URL:           c.config.NATS.URL,
			Name:          c.config.App.Name,
			SubjectPrefix: c.config.NATS.SubjectPrefix,
			Timeout:       c.config.NATS.Timeout,
			MaxReconnects: c.config.NATS.MaxReconnects,
			ReconnectWait: c.config.NATS.ReconnectWait,
		}, c.logger)
		if err == nil {
			c.eventPublisher = publisher
			c.healthChecks["nats"] = publisher.Ping
			return
		}
		c.logger.Warn("NATS unavailable, calculation events go to the log",
			slog.String("url", c.config.NATS.URL),
			slog.Any("error", err),
		)
	}

	c.eventPublisher = messaging.NewLogPublisher(c.logger, slog.LevelDebug)
}

// initLimiter создаёт store для rate limiting.
func (c *Container) initLimiter(ctx context.Context) {
	if c.limiter != nil || !c.config.RateLimit.Enabled {
		return
	}

	limit := c.config.RateLimit.RequestsPerMinute
	window := c.config.RateLimit.Window()

	if c.config.RateLimit.Backend != config.RateLimitBackendRedis {
		c.limiter = ratelimit.NewMemoryStore(limit, window)
		c.logger.Info("Rate limiting enabled",
			slog.String("backend", config.RateLimitBackendMemory),
			slog.Int("requests_per_minute", limit),
		)
		return
	}

	store := ratelimit.NewRedisStore(ratelimit.RedisConfig{
		Addr:         c.config.Redis.Addr,
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		KeyPrefix:    c.config.Redis.KeyPrefix,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
		PoolSize:     c.config.Redis.PoolSize,
	}, limit, window)

	// Requests are let through while Redis is down.
	if err := store.Ping(ctx); err != nil {
		c.logger.Warn("Redis unavailable at startup",
			slog.String("addr", c.config.Redis.Addr),
			slog.Any("error", err),
		)
	}

	c.limiter = store
	c.healthChecks["redis"] = store.Ping
	c.logger.Info("Rate limiting enabled",
		slog.String("backend", config.RateLimitBackendRedis),
		slog.Int("requests_per_minute", limit),
	)
}

// initUseCases инициализирует use cases.
func (c *Container) initUseCases() {
	c.recorder = usecases.NewRecorder(c.eventPublisher, c.tracing.Tracer(usecases.TracerName), c.logger)

	// Conversion Use Cases
	c.convertUC = conversion.NewConvertUseCase(currency.NewConverter(c.rates), c.recorder)
	c.getRatesUC = conversion.NewGetRatesUseCase(c.rates)

	// VAT Use Cases
	c.calculateTTCUC = vat.NewCalculateTTCUseCase(c.recorder)
	c.calculateHTUC = vat.NewCalculateHTUseCase(c.recorder)
	c.calculateTvaAmountUC = vat.NewCalculateTvaAmountUseCase(c.recorder)
	c.standardRatesUC = vat.NewGetStandardRatesUseCase()

	// Discount Use Cases
	c.applyRemiseUC = discount.NewApplyRemiseUseCase(c.recorder)
	c.remiseAmountUC = discount.NewCalculateRemiseAmountUseCase(c.recorder)
	c.applyRemiseFixeUC = discount.NewApplyRemiseFixeUseCase(c.recorder)
	c.prixOriginalUC = discount.NewCalculatePrixOriginalUseCase(c.recorder)
}

// initHTTPServer инициализирует HTTP сервер.
func (c *Container) initHTTPServer() {
	// Router Config
	routerConfig := &http.RouterConfig{
		Logger:         c.logger,
		ServiceName:    c.config.App.Name,
		Version:        c.config.App.Version,
		Environment:    c.config.App.Environment,
		ExposeErrors:   c.config.App.IsDevelopment(),
		HealthChecks:   c.healthChecks,
		TracerProvider: c.tracing.TracerProvider(),
	}
	if c.limiter != nil {
		routerConfig.Limiter = c.limiter
	}

	// Build Router
	c.router = http.NewRouterBuilder(routerConfig).
		WithConversionUseCases(&http.ConversionUseCases{
			Convert:  c.convertUC,
			GetRates: c.getRatesUC,
		}).
		WithVatUseCases(&http.VatUseCases{
			CalculateTTC:       c.calculateTTCUC,
			CalculateHT:        c.calculateHTUC,
			CalculateTvaAmount: c.calculateTvaAmountUC,
			StandardRates:      c.standardRatesUC,
		}).
		WithDiscountUseCases(&http.DiscountUseCases{
			ApplyRemise:     c.applyRemiseUC,
			RemiseAmount:    c.remiseAmountUC,
			ApplyRemiseFixe: c.applyRemiseFixeUC,
			PrixOriginal:    c.prixOriginalUC,
		}).
		Build()

	// Server Config
	serverConfig := &http.ServerConfig{
		Host:            c.config.Server.Host,
		Port:            c.config.Server.Port,
		ReadTimeout:     c.config.Server.ReadTimeout,
		WriteTimeout:    c.config.Server.WriteTimeout,
		IdleTimeout:     c.config.Server.IdleTimeout,
		ShutdownTimeout: c.config.Server.ShutdownTimeout,
		Logger:          c.logger,
	}

	c.httpServer = http.NewServer(serverConfig, c.router)
}

// ============================================
// Getters
// ============================================

// Config возвращает конфигурацию.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger возвращает логгер.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Router возвращает HTTP handler.
func (c *Container) Router() *gin.Engine {
	return c.router
}

// HTTPServer возвращает HTTP сервер.
func (c *Container) HTTPServer() *http.Server {
	return c.httpServer
}

// EventPublisher возвращает publisher событий.
func (c *Container) EventPublisher() ports.EventPublisher {
	return c.eventPublisher
}

// ============================================
// Shutdown
// ============================================

// Shutdown освобождает ресурсы. The HTTP server stops on its own in Run.
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down container...")

	var errs []error

	// 1. Event publisher (flush pending NATS messages)
	if c.eventPublisher != nil {
		if err := c.eventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("event publisher close: %w", err))
		}
	}

	// 2. Rate limiter
	if c.limiter != nil {
		if err := c.limiter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("rate limiter close: %w", err))
		}
	}

	// 3. Tracing (flush spans)
	if err := c.tracing.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.logger.Info("Container shutdown complete")
	return nil
}

// ============================================
// Run
// ============================================

// Run запускает HTTP сервер и ждёт ctx или сигнал завершения.
func (c *Container) Run(ctx context.Context) error {
	c.logger.Info("Starting "+c.config.App.Name,
		slog.String("version", c.config.App.Version),
		slog.String("environment", c.config.App.Environment),
		slog.String("address", c.config.Server.Address()),
	)

	return c.httpServer.Run(ctx)
}

// ============================================
// Builder Pattern (Alternative)
// ============================================

// ContainerBuilder - builder для создания контейнера с кастомными компонентами.
type ContainerBuilder struct {
	cfg            *config.Config
	logger         *slog.Logger
	eventPublisher ports.EventPublisher
	limiter        limiter
	rates          *currency.RateTable
}

// NewBuilder создаёт новый builder.
func NewBuilder(cfg *config.Config) *ContainerBuilder {
	return &ContainerBuilder{
		cfg: cfg,
	}
}

// WithLogger устанавливает кастомный логгер.
func (b *ContainerBuilder) WithLogger(logger *slog.Logger) *ContainerBuilder {
	b.logger = logger
	return b
}

// WithEventPublisher устанавливает кастомный event publisher.
func (b *ContainerBuilder) WithEventPublisher(ep ports.EventPublisher) *ContainerBuilder {
	b.eventPublisher = ep
	return b
}

// WithLimiter устанавливает готовый rate limit store.
func (b *ContainerBuilder) WithLimiter(l limiter) *ContainerBuilder {
	b.limiter = l
	return b
}

// WithRateTable заменяет таблицу курсов по умолчанию.
func (b *ContainerBuilder) WithRateTable(rates currency.RateTable) *ContainerBuilder {
	b.rates = &rates
	return b
}

// Build создаёт контейнер.
func (b *ContainerBuilder) Build(ctx context.Context) (*Container, error) {
	c := New(b.cfg)

	// Use provided or initialize
	if b.logger != nil {
		c.logger = b.logger
	} else {
		c.logger = c.initLogger()
	}

	if b.rates != nil {
		c.rates = *b.rates
	}

	if err := c.initTracing(ctx); err != nil {
		return nil, err
	}

	c.eventPublisher = b.eventPublisher
	c.initEventPublisher()

	c.limiter = b.limiter
	c.initLimiter(ctx)

	c.initUseCases()
	c.initHTTPServer()

	return c, nil
}
