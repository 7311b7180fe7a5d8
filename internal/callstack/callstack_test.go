package callstack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallerNamesSelf(t *testing.T) {
	name := Caller(0)

	require.Contains(t, name, "callstack.TestCallerNamesSelf")
}

func TestCallerSkipsFrames(t *testing.T) {
	name := oneLevelDown()

	require.Contains(t, name, "callstack.TestCallerSkipsFrames")
}

func oneLevelDown() string {
	return Caller(1)
}

func TestCallerOutOfRange(t *testing.T) {
	require.Equal(t, "", Caller(512))
}
