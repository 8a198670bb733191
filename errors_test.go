package statusreset

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetError_Error(t *testing.T) {
	err := NewResetError(ErrCodeUpdateFailed, "throttled")
	assert.Equal(t, "[UPDATE_FAILED] throttled", err.Error())

	err.WithKey("A")
	assert.Equal(t, "[UPDATE_FAILED] throttled (key: A)", err.Error())
}

func TestResetError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewResetError(ErrCodeInternalError, "wrapped").WithCause(cause)

	assert.ErrorIs(t, err, cause)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{
			name: "resource not found",
			err:  fmt.Errorf("describe: %w", &types.ResourceNotFoundException{Message: aws.String("no table")}),
			code: ErrCodeNotFound,
		},
		{
			name: "generic not found code",
			err:  &smithy.GenericAPIError{Code: "ResourceNotFoundException"},
			code: ErrCodeNotFound,
		},
		{
			name: "access denied",
			err:  &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "nope"},
			code: ErrCodeAuthorization,
		},
		{
			name: "bad credentials",
			err:  fmt.Errorf("scan: %w", &smithy.GenericAPIError{Code: "UnrecognizedClientException"}),
			code: ErrCodeAuthorization,
		},
		{
			name: "other api error",
			err:  &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException"},
			code: ErrCodeInternalError,
		},
		{
			name: "request send failure",
			err:  &smithyhttp.RequestSendError{Err: errors.New("dial tcp: connection refused")},
			code: ErrCodeConnection,
		},
		{
			name: "deadline",
			err:  fmt.Errorf("scan: %w", context.DeadlineExceeded),
			code: ErrCodeConnection,
		},
		{
			name: "plain error",
			err:  errors.New("unexpected"),
			code: ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := ClassifyError(tt.err)
			require.NotNil(t, re)
			assert.Equal(t, tt.code, re.Code)
			assert.ErrorIs(t, re, tt.err)
		})
	}
}

func TestClassifyError_Passthrough(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))

	original := NewResetError(ErrCodeMissingKey, "no key")
	assert.Same(t, original, ClassifyError(fmt.Errorf("wrapped: %w", original)))
}

func TestErrorPredicates(t *testing.T) {
	notFound := ClassifyError(&types.ResourceNotFoundException{Message: aws.String("missing")})
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsAuthorizationError(notFound))

	auth := ClassifyError(&smithy.GenericAPIError{Code: "ExpiredTokenException"})
	assert.True(t, IsAuthorizationError(auth))

	conn := ClassifyError(&smithyhttp.RequestSendError{Err: errors.New("reset by peer")})
	assert.True(t, IsConnectionError(conn))

	update := NewResetError(ErrCodeUpdateFailed, "failed").WithKey("B")
	assert.True(t, IsUpdateError(fmt.Errorf("run: %w", update)))

	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsUpdateError(nil))
}
