package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/config"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/facades"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/handlers"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/mexc"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/middlewares"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-batch-withdrawal API
// @version 1.0.0
// @description Gateway for single and batch crypto withdrawals from a MEXC account
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @securityDefinitions.apikey ApiSecretAuth
// @in header
// @name x-api-secret
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.LoadServer(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newLimiter paces outbound exchange requests; a zero rate disables pacing.
func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg config.Server) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// newRouter wires the handlers onto a chi router.
func newRouter(cfg config.Server, gateway services.ExchangeGateway, kafkaWriter services.KafkaWriter) chi.Router {
	withdrawalService := services.NewWithdrawalService(gateway)
	batchService := services.NewBatchService(withdrawalService, cfg.BatchDelay, kafkaWriter)
	credentialService := services.NewCredentialService(gateway)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/test-credentials", handlers.NewTestCredentialsHandler(credentialService))
	r.Get("/coins", handlers.NewGetCoinsHandler())
	r.Post("/addresses/validate", handlers.NewValidateAddressesHandler())

	// Routes requiring exchange credentials
	r.Group(func(r chi.Router) {
		r.Use(middlewares.CredentialsMiddleware)
		r.Get("/balance/{coin}", handlers.NewGetBalanceHandler(withdrawalService))
		r.Get("/withdrawal-fee/{coin}", handlers.NewGetWithdrawalFeeHandler(withdrawalService))
		r.Get("/deposit-address/{coin}", handlers.NewGetDepositAddressHandler(withdrawalService))
		r.Get("/withdrawal-status/{id}", handlers.NewGetWithdrawalStatusHandler(withdrawalService))
		r.Post("/withdraw", handlers.NewWithdrawHandler(withdrawalService))
		r.Post("/batch-withdraw", handlers.NewBatchWithdrawHandler(batchService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	return r
}

// run initializes the logger, the exchange gateway and the optional Kafka
// writer, starts the HTTP server and handles graceful shutdown.
func run(ctx context.Context, cfg config.Server) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infow("Logger initialized", "level", cfg.LogLevel)

	gateway := facades.NewExchangeFacade(facades.NewMEXCClientFactory(mexc.Config{
		BaseURL:    cfg.MEXCBaseURL,
		Timeout:    cfg.MEXCTimeout,
		RecvWindow: cfg.MEXCRecvWindow,
		Limiter:    newLimiter(cfg.MEXCRateLimit, cfg.MEXCRateBurst),
	}))
	logger.Log.Infow("Exchange gateway configured", "base_url", cfg.MEXCBaseURL, "rate_limit", cfg.MEXCRateLimit)

	var kafkaWriter services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(cfg, gateway, kafkaWriter),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
