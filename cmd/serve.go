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

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/tenant-manager/internal/config"
	"github.com/canonical/tenant-manager/internal/db"
	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring/prometheus"
	"github.com/canonical/tenant-manager/internal/storage"
	"github.com/canonical/tenant-manager/internal/tracing"
	"github.com/canonical/tenant-manager/pkg/authentication"
	"github.com/canonical/tenant-manager/pkg/connection"
	"github.com/canonical/tenant-manager/pkg/mail"
	"github.com/canonical/tenant-manager/pkg/tenant"
	"github.com/canonical/tenant-manager/pkg/user"
	"github.com/canonical/tenant-manager/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenant-manager", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     specs.SMTPHost,
		Port:     specs.SMTPPort,
		User:     specs.SMTPUser,
		Password: specs.SMTPPassword,
		From:     specs.MailFrom,
		FromName: "Tenant Manager",
	})
	dispatcher := mail.NewDispatcher(sender, specs.MailQueueSize, specs.MailMaxRetries, tracer, monitor, logger)
	dispatcher.Start()
	defer dispatcher.Shutdown()

	hasher := authentication.NewHasher(specs.BcryptCost)

	userService := user.NewService(
		s,
		hasher,
		dispatcher,
		user.Config{
			BaseURL:              specs.BaseURL,
			TokenTTL:             specs.EmailVerificationLifetime,
			AutoSendVerification: specs.AutoSendConfirmEmail,
		},
		tracer,
		monitor,
		logger,
	)

	tenantService := tenant.NewService(
		s,
		dbClient,
		hasher,
		userService,
		tenant.Config{
			UploadDir:            specs.UploadDir,
			LogoSizeLimit:        specs.LogoFileSizeLimit,
			AutoSendVerification: specs.AutoSendConfirmEmail,
		},
		tracer,
		monitor,
		logger,
	)

	authService := authentication.NewService(s, hasher, tracer, monitor, logger)
	connectionService := connection.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		tenant.NewAPI(tenantService, specs.LogoFileSizeLimit, tracer, monitor, logger),
		user.NewAPI(userService, tracer, monitor, logger),
		authentication.NewAPI(authService, tracer, monitor, logger),
		connection.NewAPI(connectionService, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
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
