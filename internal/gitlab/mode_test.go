package gitlab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseCollapsableMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want CollapsableMode
	}{
		{"steps", ModeSteps},
		{"vars", ModeVars},
		{"scope", ModeScope},
	} {
		mode, err := ParseCollapsableMode(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, mode)
		require.Equal(t, tc.in, mode.String())
	}
}

func Test_ParseCollapsableMode_unknown(t *testing.T) {
	_, err := ParseCollapsableMode("everything")
	require.EqualError(t, err, `unknown collapsable mode "everything" (expected steps, vars, or scope)`)
}

func Test_ParseCollapsableMode_empty(t *testing.T) {
	_, err := ParseCollapsableMode("")
	require.Error(t, err)
}
