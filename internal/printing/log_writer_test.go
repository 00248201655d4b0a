package printing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LogWriter_Write(t *testing.T) {
	toWrite := []byte("test")
	var b bytes.Buffer
	tested := NewLogWriter(&b)
	n, err := tested.Write(toWrite)
	require.NoError(t, err)
	require.Equal(t, len(toWrite), n)
	require.Equal(t, "test", b.String())
}

func Test_LogWriter_Write_error(t *testing.T) {
	toWrite := []byte("test")
	tested := NewLogWriter(failingWriter{err: errors.New("fail boat")})
	n, err := tested.Write(toWrite)
	require.NoError(t, err)
	require.Equal(t, len(toWrite), n)
}

func Test_LogWriter_Logf(t *testing.T) {
	var b bytes.Buffer
	tested := NewLogWriter(&b)
	tested.Logf("a %s %s", "b", "c")
	require.Equal(t, "a b c\n", b.String())
}
