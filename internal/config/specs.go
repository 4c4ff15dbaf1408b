// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// BaseURL is the externally reachable address of this service, used as a
	// fallback when composing email confirmation links for requests that
	// carry no usable Host header.
	BaseURL string `envconfig:"base_url" default:"http://localhost:8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	BcryptCost int `envconfig:"bcrypt_cost" default:"10"`

	EmailVerificationLifetime time.Duration `envconfig:"email_verification_lifetime" default:"48h"`
	AutoSendConfirmEmail      bool          `envconfig:"auto_send_confirm_email" default:"true"`

	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUser     string `envconfig:"smtp_user"`
	SMTPPassword string `envconfig:"smtp_password"`
	MailFrom     string `envconfig:"mail_from" default:"noreply@piosystems.com"`

	MailQueueSize  int `envconfig:"mail_queue_size" default:"128"`
	MailMaxRetries int `envconfig:"mail_max_retries" default:"3"`

	UploadDir         string `envconfig:"upload_dir" default:"uploads"`
	LogoFileSizeLimit int64  `envconfig:"logo_file_size_limit" default:"1024000"`
}
