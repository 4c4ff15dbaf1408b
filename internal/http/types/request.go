// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"context"
	"fmt"
	"net/http"
)

type baseURLContextKey struct{}

var baseURLKey baseURLContextKey

// WithBaseURL derives the externally visible base URL of the request and
// stores it in the context, so that services composing absolute links (email
// confirmations) can point them at the host the client actually reached.
// Requests without a usable Host header leave the context untouched.
func WithBaseURL(ctx context.Context, r *http.Request) context.Context {
	if r.Host == "" {
		return ctx
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return context.WithValue(ctx, baseURLKey, fmt.Sprintf("%s://%s", scheme, r.Host))
}

// BaseURL returns the request base URL stored by WithBaseURL, or the empty
// string when the context carries none.
func BaseURL(ctx context.Context) string {
	if base, ok := ctx.Value(baseURLKey).(string); ok {
		return base
	}
	return ""
}
