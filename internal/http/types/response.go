// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-manager/internal/storage"
)

// Response is the standard JSON envelope every endpoint returns.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func WriteResponse(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteResponse(w, status, nil, message)
}

// WriteErrorFromErr maps domain errors to their HTTP status: storage
// sentinels to 404/400/409-style codes, validation failures to 400, anything
// unrecognized to a generic 500 so internals never leak.
func WriteErrorFromErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateKey),
		errors.Is(err, storage.ErrForeignKeyViolation),
		errors.Is(err, storage.ErrNotLinked):
		WriteError(w, http.StatusBadRequest, err.Error())
	default:
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			WriteError(w, http.StatusBadRequest, formatValidationErrors(validationErrs))
			return
		}
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "validation failed"
	}
	// Report the first violation, enough for a client to fix its request.
	e := errs[0]
	return "validation failed on field " + e.Field() + " (" + e.Tag() + ")"
}
