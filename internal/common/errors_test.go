package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewUserError("failed to open database", cause)

	assert.Equal(t, "failed to open database: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "failed to open database", userErr.UserMessage)
}

func TestUserErrorWithoutCause(t *testing.T) {
	err := &UserError{UserMessage: "nothing to ingest"}
	assert.Equal(t, "nothing to ingest", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: %q", ErrUnknownSource, "weather")
	assert.ErrorIs(t, err, ErrUnknownSource)

	err = fmt.Errorf("%w: log level %q", ErrInvalidConfig, "verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
