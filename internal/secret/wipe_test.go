package secret

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipe(t *testing.T) {
	b := []byte("hunter2")
	Wipe(b)
	require.Equal(t, make([]byte, 7), b)

	require.NotPanics(t, func() { Wipe(nil) })
}

func TestString(t *testing.T) {
	b := []byte("hunter2")
	s := String(b)
	require.Equal(t, "hunter2", s)
	require.Equal(t, make([]byte, 7), b)
}
