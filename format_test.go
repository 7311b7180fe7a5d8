package loggy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatErrorPlain(t *testing.T) {
	out := formatError(errors.New("boom"))

	require.Equal(t, "*errors.errorString: boom", out)
}

func TestFormatErrorUnwrapChain(t *testing.T) {
	root := errors.New("connection refused")
	mid := fmt.Errorf("dial upstream: %w", root)

	out := formatError(fmt.Errorf("sync state: %w", mid))

	require.Contains(t, out, "*fmt.wrapError: sync state: dial upstream: connection refused")
	require.Contains(t, out, "caused by: *fmt.wrapError: dial upstream: connection refused")
	require.Contains(t, out, "caused by: *errors.errorString: connection refused")
}

type detailedError struct{ msg string }

func (e *detailedError) Error() string { return e.msg }

func (e *detailedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\nat worker.go:42", e.msg)
		return
	}
	fmt.Fprint(s, e.msg)
}

func TestFormatErrorKeepsFormatterDetail(t *testing.T) {
	out := formatError(&detailedError{msg: "stalled"})

	require.Contains(t, out, "*loggy.detailedError: stalled")
	require.Contains(t, out, "at worker.go:42")
}
