package errors

import "fmt"

// Error codes
const (
	CodeGateway    = "GATEWAY_ERROR"
	CodeAPIError   = "API_ERROR"
	CodeAuth       = "AUTH_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
)

type GatewayError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

func NewGatewayError(message, code string, statusCode int, context map[string]any) *GatewayError {
	return &GatewayError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *GatewayError) WithCause(cause error) *GatewayError {
	e.Cause = cause
	return e
}

type APIError struct {
	*GatewayError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		GatewayError: &GatewayError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

// AuthError carries the gateway's own message so the auth view can surface it
// verbatim.
type AuthError struct {
	*GatewayError
}

func NewAuthError(message string, statusCode int, context map[string]any) *AuthError {
	return &AuthError{
		GatewayError: &GatewayError{
			Message:    message,
			Code:       CodeAuth,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*GatewayError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		GatewayError: &GatewayError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// NotFoundError marks the benign missing-record condition. Callers that see
// it synthesize a draft record instead of surfacing an error.
type NotFoundError struct {
	*GatewayError
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		GatewayError: &GatewayError{
			Message:    fmt.Sprintf("%s not found", resource),
			Code:       CodeNotFound,
			StatusCode: 404,
			Context: map[string]any{
				"resource": resource,
				"id":       id,
			},
		},
		Resource: resource,
		ID:       id,
	}
}
