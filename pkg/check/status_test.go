package check

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	require.Equal(t, "OK", OK.String())
	require.Equal(t, "WARNING", Warning.String())
	require.Equal(t, "CRITICAL", Critical.String())
	require.Equal(t, "UNKNOWN", Unknown.String())
}

func TestStatusExitCode(t *testing.T) {
	require.Equal(t, 0, OK.ExitCode())
	require.Equal(t, 1, Warning.ExitCode())
	require.Equal(t, 2, Critical.ExitCode())
	require.Equal(t, 3, Unknown.ExitCode())
}

func TestWorse(t *testing.T) {
	all := []Status{OK, Warning, Critical}
	for _, a := range all {
		for _, b := range all {
			want := a
			if b > a {
				want = b
			}
			require.Equal(t, want, Worse(a, b), "Worse(%v, %v)", a, b)
		}
	}
}
