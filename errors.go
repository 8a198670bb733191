package statusreset

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// Error codes
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeConnection    = "CONNECTION_ERROR"
	ErrCodeAuthorization = "AUTHORIZATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeMissingKey    = "MISSING_KEY"
	ErrCodeUpdateFailed  = "UPDATE_FAILED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// API error codes the service returns for rejected credentials or permissions
var authorizationCodes = map[string]bool{
	"AccessDeniedException":       true,
	"UnrecognizedClientException": true,
	"InvalidSignatureException":   true,
	"ExpiredTokenException":       true,
	"MissingAuthenticationToken":  true,
	"IncompleteSignature":         true,
}

// ResetError represents an error that aborted a reset run
type ResetError struct {
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	Stage     RunStage  `json:"stage,omitempty"`
	Key       string    `json:"key,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	Cause error `json:"-"`
}

// Error implements the error interface
func (e *ResetError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("[%s] %s (key: %s)", e.Code, e.Message, e.Key)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying client error
func (e *ResetError) Unwrap() error {
	return e.Cause
}

// NewResetError creates a new reset error
func NewResetError(code, message string) *ResetError {
	return &ResetError{
		Message:   message,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// WithStage records the stage the run was in when it failed
func (e *ResetError) WithStage(stage RunStage) *ResetError {
	e.Stage = stage
	return e
}

// WithKey records the primary key of the item being processed
func (e *ResetError) WithKey(key string) *ResetError {
	e.Key = key
	return e
}

// WithCause attaches the underlying error
func (e *ResetError) WithCause(err error) *ResetError {
	e.Cause = err
	return e
}

// ClassifyError converts a client library failure into a ResetError.
// Errors that already are ResetErrors are returned as is.
func ClassifyError(err error) *ResetError {
	if err == nil {
		return nil
	}

	var re *ResetError
	if errors.As(err, &re) {
		return re
	}

	return NewResetError(classifyCode(err), err.Error()).WithCause(err)
}

func classifyCode(err error) string {
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return ErrCodeNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode() == "ResourceNotFoundException" {
			return ErrCodeNotFound
		}
		if authorizationCodes[apiErr.ErrorCode()] {
			return ErrCodeAuthorization
		}
		return ErrCodeInternalError
	}

	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return ErrCodeConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrCodeConnection
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeConnection
	}

	return ErrCodeInternalError
}

func hasCode(err error, code string) bool {
	var re *ResetError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// IsNotFound checks if an error means the table or item does not exist
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsAuthorizationError checks if an error was caused by rejected credentials
func IsAuthorizationError(err error) bool {
	return hasCode(err, ErrCodeAuthorization)
}

// IsConnectionError checks if an error was caused by the network
func IsConnectionError(err error) bool {
	return hasCode(err, ErrCodeConnection)
}

// IsUpdateError checks if an error came from a per-item update
func IsUpdateError(err error) bool {
	return hasCode(err, ErrCodeUpdateFailed)
}
