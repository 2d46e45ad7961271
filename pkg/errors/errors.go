package errors

import "fmt"

// Error codes
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeMissingCredential  = "MISSING_CREDENTIAL"
	CodeProviderHTTP       = "PROVIDER_HTTP_ERROR"
	CodeDefaultUnavailable = "DEFAULT_SERVICE_UNAVAILABLE"
	CodeUnknown            = "UNKNOWN_ERROR"
)

// Validation reason codes
const (
	ReasonMissingText       = "missing_text"
	ReasonTextTooLong       = "text_too_long"
	ReasonInvalidSourceLang = "invalid_source_lang"
	ReasonInvalidTargetLang = "invalid_target_lang"
	ReasonInvalidProvider   = "invalid_provider_type"
)

// User-facing messages surfaced verbatim to the client.
const (
	MsgRateLimited        = "Translation service is rate limited, please try again later"
	MsgQuotaExhausted     = "Translation service quota exhausted"
	MsgDefaultUnavailable = "Default translation service is not configured. Please set up a custom translation provider."
)

// ProviderFailedMessage renders the generic message for a non-2xx upstream
// status that has no dedicated mapping.
func ProviderFailedMessage(status int) string {
	return fmt.Sprintf("Translation request failed (status %d)", status)
}

type TranslateError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *TranslateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslateError) Unwrap() error {
	return e.Cause
}

// HTTPStatus exposes the outward status code. Wrapper types inherit it, so
// the HTTP boundary can recover the status through errors.As on the
// interface.
func (e *TranslateError) HTTPStatus() int {
	return e.StatusCode
}

func (e *TranslateError) WithCause(cause error) *TranslateError {
	e.Cause = cause
	return e
}

// ValidationError reports malformed inbound input. Always local, never
// retried.
type ValidationError struct {
	*TranslateError
	Reason string
}

func NewValidationError(message, reason string, statusCode int) *ValidationError {
	return &ValidationError{
		TranslateError: &TranslateError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: statusCode,
			Context: map[string]any{
				"reason": reason,
			},
		},
		Reason: reason,
	}
}

// MissingCredentialError is raised before any HTTP call when a provider
// requires an API key that was not supplied.
type MissingCredentialError struct {
	*TranslateError
	Provider string
}

func NewMissingCredentialError(providerLabel string) *MissingCredentialError {
	return &MissingCredentialError{
		TranslateError: &TranslateError{
			Message:    fmt.Sprintf("%s requires an API Key", providerLabel),
			Code:       CodeMissingCredential,
			StatusCode: 500,
			Context: map[string]any{
				"provider": providerLabel,
			},
		},
		Provider: providerLabel,
	}
}

// ProviderHTTPError carries a non-2xx upstream response. The outward status
// stays 500; the upstream status is preserved for logs and callers that
// inspect it.
type ProviderHTTPError struct {
	*TranslateError
	UpstreamStatus int
}

func NewProviderHTTPError(message string, upstreamStatus int, context map[string]any) *ProviderHTTPError {
	if context == nil {
		context = map[string]any{}
	}
	context["upstream_status"] = upstreamStatus
	return &ProviderHTTPError{
		TranslateError: &TranslateError{
			Message:    message,
			Code:       CodeProviderHTTP,
			StatusCode: 500,
			Context:    context,
		},
		UpstreamStatus: upstreamStatus,
	}
}

// NewDefaultServiceUnavailable signals that the system default gateway has no
// configured credential.
func NewDefaultServiceUnavailable() *TranslateError {
	return &TranslateError{
		Message:    MsgDefaultUnavailable,
		Code:       CodeDefaultUnavailable,
		StatusCode: 503,
	}
}
