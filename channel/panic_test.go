package channel_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/123jimin/tooltool/channel"
	"gotest.tools/v3/assert"
)

func TestPanicError_WrapsError(t *testing.T) {
	cause := errors.New("cause")
	pe := channel.NewPanicError(cause)

	assert.Equal(t, pe.Error(), "panic: cause")
	assert.ErrorIs(t, pe, cause)
	assert.Equal(t, pe.Recovered(), cause)
}

func TestPanicError_NonError(t *testing.T) {
	pe := channel.NewPanicError("some string")

	assert.Equal(t, pe.Error(), "panic: some string")
	assert.Assert(t, pe.Unwrap() == nil)
}

func TestPanicError_StackTrace(t *testing.T) {
	pe := channel.NewPanicError("x")
	assert.Assert(t, strings.Contains(pe.StackTrace(), "TestPanicError_StackTrace"))
}
