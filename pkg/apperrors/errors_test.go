package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := New(ValidationError, "missing file", "inbound document not provided")
	assert.Equal(t, "VALIDATION_ERROR: missing file (inbound document not provided)", err.Error())

	bare := New(SendError, "relay unavailable", "")
	assert.Equal(t, "SEND_ERROR: relay unavailable", bare.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ExtractionError, "provider call failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ExtractionError, "ignored"))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[ErrorType]int{
		ValidationError:    http.StatusBadRequest,
		NotFoundError:      http.StatusNotFound,
		ConfigurationError: http.StatusUnprocessableEntity,
		ExtractionError:    http.StatusBadGateway,
		SendError:          http.StatusBadGateway,
		DatabaseError:      http.StatusInternalServerError,
	}
	for errType, want := range cases {
		assert.Equal(t, want, New(errType, "x", "").HTTPStatus, string(errType))
	}
}

func TestIsType(t *testing.T) {
	err := MissingAPIKey("gemini")
	wrapped := fmt.Errorf("loading config: %w", err)

	assert.True(t, IsType(wrapped, ConfigurationError))
	assert.False(t, IsType(wrapped, ExtractionError))
	assert.False(t, IsType(errors.New("plain"), ConfigurationError))
}
