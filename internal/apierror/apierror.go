// Package apierror mirrors the backend's error envelope and converts failed
// HTTP responses into errors the views can show as-is. Backend-provided
// messages are surfaced verbatim; anything unreadable falls back to a generic
// localized string so internals never leak to the user.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// MessageGenerique is shown when the backend gave no usable message.
const MessageGenerique = "Une erreur est survenue. Veuillez réessayer."

// ErrNonAutorise is returned on any 401. The caller side (api client)
// invalidates the session before returning it.
var ErrNonAutorise = errors.New("session expirée, reconnexion requise")

// APIError is the canonical error envelope of every 4xx/5xx backend response.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string { return e.Detail }

// New builds an APIError with an explicit message.
func New(status int, msg string) *APIError {
	return &APIError{StatusCode: status, Detail: msg}
}

// Decode turns a non-2xx response body into an *APIError. It tries the
// {"detail": …} envelope first, then bare {"message": …} / {"error": …},
// then falls back to the generic message.
func Decode(status int, body []byte) *APIError {
	var env struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := MessageGenerique
	if err := json.Unmarshal(body, &env); err == nil {
		switch {
		case env.Detail != "":
			msg = env.Detail
		case env.Message != "":
			msg = env.Message
		case env.Error != "":
			msg = env.Error
		}
	}
	return &APIError{StatusCode: status, Detail: msg}
}

// EstIntrouvable reports whether err is a backend 404.
func EstIntrouvable(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// ValidationError is raised before any network call when user input is
// rejected client-side. It is never sent to the backend.
type ValidationError struct {
	Champ  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Champ == "" {
		return e.Detail
	}
	return fmt.Sprintf("%s : %s", e.Champ, e.Detail)
}

// NewValidation builds a ValidationError for one field.
func NewValidation(champ, detail string) *ValidationError {
	return &ValidationError{Champ: champ, Detail: detail}
}

// EstValidation reports whether err is a client-side validation error.
func EstValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
