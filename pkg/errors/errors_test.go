package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeRateLimit, 429, "limited after %d requests", 10)

	assert.Equal(t, ErrorTypeRateLimit, err.Type)
	assert.Equal(t, 429, err.Code)
	assert.Equal(t, "limited after 10 requests", err.Message)
	assert.Contains(t, err.Error(), "rate_limit")
	assert.Contains(t, err.Error(), "429")
}

func TestErrorAsThroughWrapping(t *testing.T) {
	inner := New(ErrorTypeNotFound, 404, "gone")
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	var typed *Error
	require.True(t, errors.As(wrapped, &typed))
	assert.Equal(t, ErrorTypeNotFound, typed.Type)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrorTypeNetwork))
	assert.True(t, IsRetryable(ErrorTypeRateLimit))
	assert.True(t, IsRetryable(ErrorTypeServerError))
	assert.False(t, IsRetryable(ErrorTypeNotFound))
	assert.False(t, IsRetryable(ErrorTypeParsing))
	assert.False(t, IsRetryable(ErrorTypeIO))
	assert.False(t, IsRetryable(ErrorTypeUnknown))
}

func TestIsRetryableStatusCode(t *testing.T) {
	assert.True(t, IsRetryableStatusCode(0))
	assert.True(t, IsRetryableStatusCode(429))
	assert.True(t, IsRetryableStatusCode(500))
	assert.True(t, IsRetryableStatusCode(503))
	assert.False(t, IsRetryableStatusCode(200))
	assert.False(t, IsRetryableStatusCode(401))
	assert.False(t, IsRetryableStatusCode(404))
}

func TestTypeForStatusCode(t *testing.T) {
	assert.Equal(t, ErrorTypeRateLimit, TypeForStatusCode(429))
	assert.Equal(t, ErrorTypeNotFound, TypeForStatusCode(404))
	assert.Equal(t, ErrorTypeServerError, TypeForStatusCode(502))
	assert.Equal(t, ErrorTypeNetwork, TypeForStatusCode(0))
	assert.Equal(t, ErrorTypeUnknown, TypeForStatusCode(302))
}
