// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/encryption"
	"github.com/canonical/workspace-service/internal/events"
	"github.com/canonical/workspace-service/internal/identity"
	"github.com/canonical/workspace-service/internal/kratos"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/monitoring/prometheus"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/providers"
	"github.com/canonical/workspace-service/pkg/tenant"
	"github.com/canonical/workspace-service/pkg/vendors"
	"github.com/canonical/workspace-service/pkg/web"
	"github.com/canonical/workspace-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TxTimeout:       specs.DBTxTimeout,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	encrypter, err := encryption.NewEncrypter(specs.EncryptionKey, specs.EncryptionSalt)
	if err != nil {
		return fmt.Errorf("failed to create encrypter: %v", err)
	}

	var publisher events.PublisherInterface = events.NewNoopPublisher()
	if specs.NATSURL != "" {
		nc, err := events.Connect(specs.NATSURL, monitor, logger)
		if err != nil {
			return err
		}
		publisher = events.NewPublisher(nc, tracer, monitor, logger)
		logger.Infof("Publishing domain events to %s", specs.NATSURL)
	} else {
		logger.Info("Using noop event publisher")
	}
	defer publisher.Close()

	outbound := &http.Client{
		Timeout:   specs.VendorTimeout,
		Transport: tracing.NewTransport(http.DefaultTransport),
	}

	registry, err := vendors.NewRegistry(outbound, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to load vendor registry: %v", err)
	}

	kratosClient := kratos.NewClient(specs.KratosAdminURL, outbound, tracer, monitor, logger)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)
	guard := authorization.NewMiddleware(authorizer, tracer, monitor, logger)

	authn, err := authenticationMiddleware(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	tenantService := tenant.NewService(s, dbClient, kratosClient, publisher, tracer, monitor, logger)
	providerService := providers.NewService(
		s,
		dbClient,
		registry,
		encrypter,
		publisher,
		specs.VendorTimeout,
		specs.ReconcileConcurrency,
		tracer,
		monitor,
		logger,
	)
	webhookService := webhooks.NewService(s, tenantService, tracer, monitor, logger)

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			RateLimitRPS:       specs.RateLimitRPS,
			RateLimitBurst:     specs.RateLimitBurst,
		},
		authn,
		webhooks.NewAPI(webhookService, specs.WebhookAPIToken, logger),
		dbClient,
		tracer,
		monitor,
		logger,
		tenant.NewAPI(tenantService, guard, logger),
		providers.NewAPI(providerService, guard, logger),
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

// authenticationMiddleware verifies bearer tokens, or trusts the gateway
// identity header when token authentication is disabled.
func authenticationMiddleware(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (func(http.Handler) http.Handler, error) {
	if !specs.AuthenticationEnabled {
		logger.Info("Token authentication is disabled, trusting the identity header")
		return identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware, nil
	}

	verifier, err := authentication.NewAuthenticator(
		context.Background(),
		specs.AuthenticationMode,
		specs.AuthenticationIssuer,
		specs.AuthenticationJWKSURL,
		specs.JWTSecret,
		specs.AuthenticationAllowedSubjects,
		specs.AuthenticationRequiredScope,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %v", err)
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
