package app

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	httpapi "github.com/shestoi/paypal-checkout/internal/api/http"
	"github.com/shestoi/paypal-checkout/internal/config"
	kafkaevent "github.com/shestoi/paypal-checkout/internal/event/kafka"
	noopevent "github.com/shestoi/paypal-checkout/internal/event/noop"
	"github.com/shestoi/paypal-checkout/internal/paypal"
	"github.com/shestoi/paypal-checkout/internal/repository"
	memoryrepo "github.com/shestoi/paypal-checkout/internal/repository/memory"
	postgresrepo "github.com/shestoi/paypal-checkout/internal/repository/postgres"
	"github.com/shestoi/paypal-checkout/internal/service"
	platformlogging "github.com/shestoi/paypal-checkout/platform/logging"
	platformshutdown "github.com/shestoi/paypal-checkout/platform/shutdown"
)

// App содержит все зависимости для запуска и корректного shutdown Checkout Service
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Checkout Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	// Создаём logger
	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "checkout",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Checkout service", zap.String("http_addr", cfg.HTTPAddr))

	// Создаём shutdown manager
	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)

	// Реестр refund заявок: PostgreSQL если задан DSN, иначе память процесса
	// In-memory вариант теряет состояние на рестарте - для демо это принято,
	// для production задаётся CHECKOUT_POSTGRES_DSN
	var refundRepo repository.RefundRepository
	readiness := func() bool { return true }

	if cfg.PostgresDSN != "" {
		logger.Info("Connecting to PostgreSQL")
		pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		// Проверяем подключение к PostgreSQL
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("PostgreSQL connection established")

		refundRepo = postgresrepo.NewRepository(pool)

		// Readiness зависит от доступности БД
		readiness = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Ping(ctx) == nil
		}

		shutdownMgr.Add("postgres_pool", platformshutdown.ClosePool(pool))
	} else {
		logger.Info("Using in-memory refund registry")
		refundRepo = memoryrepo.NewMemoryRepository()
	}

	// Публикация событий: Kafka если заданы брокеры, иначе noop
	var events service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		logger.Info("Kafka event publishing enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic))
		publisher := kafkaevent.NewPublisher(logger, cfg.KafkaBrokers, cfg.KafkaTopic)
		events = publisher
		shutdownMgr.Add("kafka_writer", platformshutdown.CloseCloser(publisher))
	} else {
		logger.Info("Kafka brokers not configured, event publishing disabled")
		events = noopevent.NewPublisher()
	}

	// Клиент PayPal API
	paypalClient := paypal.NewClient(paypal.Config{
		BaseURL:       cfg.PayPalBaseURL,
		ClientID:      cfg.PayPalClientID,
		ClientSecret:  cfg.PayPalClientSecret,
		SellerPayerID: cfg.PayPalSellerID,
		Currency:      cfg.Currency,
		Timeout:       cfg.PayPalTimeout,
	})

	// Создаём service слой с зависимостями
	checkoutService := service.NewCheckoutService(paypalClient, refundRepo, events)

	// Создаём HTTP handler и роутер
	handler := httpapi.NewHandler(checkoutService)
	router := httpapi.NewRouter(handler, readiness)

	// Создаём HTTP сервер
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// HTTP сервер регистрируется последним: выполняется первым при shutdown
	shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		httpServer:  httpServer,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Checkout service", zap.String("addr", a.httpServer.Addr))
	a.logger.Info("Health check available", zap.String("url", "http://"+a.httpServer.Addr+"/health"))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Ожидаем сигнал и выполняем shutdown
	a.shutdownMgr.Wait()

	a.wg.Wait()
	a.logger.Info("Checkout service stopped")
	return nil
}
