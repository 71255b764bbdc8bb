package ai

import (
	"errors"
	"fmt"

	"feedback-coach/internal/domain"
)

var (
	// ErrNotConfigured means credentials are missing; no request is sent.
	ErrNotConfigured = errors.New("ai backend not configured")
	// ErrUnauthorized means the endpoint rejected the credentials.
	ErrUnauthorized = errors.New("ai backend rejected credentials")
	// ErrEmptyResponse means the endpoint answered without generated text.
	ErrEmptyResponse = errors.New("ai backend returned an empty response")
)

// TransportError covers non-success statuses and network failures.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Failure kinds reported in domain.AIFailure.
const (
	KindNotConfigured = "not_configured"
	KindUnauthorized  = "unauthorized"
	KindEmpty         = "empty"
	KindTransport     = "transport"
)

const (
	msgNotConfigured = "Ошибка конфигурации: Не задан токен или ID бота."
	msgUnauthorized  = "Ошибка авторизации: Неверный токен бота."
	msgEmpty         = "Бот вернул пустой ответ."
	msgTransport     = "Ошибка соединения с AI: "
	msgUnknown       = "Неизвестная ошибка"
)

// Kind classifies err into one of the failure kinds.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return KindNotConfigured
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrEmptyResponse):
		return KindEmpty
	default:
		return KindTransport
	}
}

// Diagnostic returns the user-facing message for a gateway failure.
func Diagnostic(err error) string {
	switch Kind(err) {
	case KindNotConfigured:
		return msgNotConfigured
	case KindUnauthorized:
		return msgUnauthorized
	case KindEmpty:
		return msgEmpty
	}
	detail := msgUnknown
	if err != nil && err.Error() != "" {
		detail = err.Error()
	}
	return msgTransport + detail
}

// NewReply folds a gateway result into a reply that keeps content and
// diagnostics apart.
func NewReply(text string, err error) domain.AIReply {
	if err != nil {
		return domain.AIReply{Error: &domain.AIFailure{Kind: Kind(err), Message: Diagnostic(err)}}
	}
	return domain.AIReply{Text: text}
}
