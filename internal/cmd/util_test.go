package cmd

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

func Test_executeNoArgs(t *testing.T) {
	f := flag.NewFlagSet("report", flag.ContinueOnError)
	require.NoError(t, f.Parse(nil))

	called := false
	status := executeNoArgs(f, func() error { called = true; return nil })
	require.Equal(t, subcommands.ExitSuccess, status)
	require.True(t, called)
}

func Test_executeNoArgs_error(t *testing.T) {
	var b bytes.Buffer
	f := flag.NewFlagSet("report", flag.ContinueOnError)
	f.SetOutput(&b)
	require.NoError(t, f.Parse(nil))

	status := executeNoArgs(f, func() error { return errors.New("fail boat") })
	require.Equal(t, subcommands.ExitFailure, status)
	require.Contains(t, b.String(), "fail boat")
}

func Test_executeNoArgs_positionalArgs(t *testing.T) {
	var b bytes.Buffer
	f := flag.NewFlagSet("report", flag.ContinueOnError)
	f.SetOutput(&b)
	require.NoError(t, f.Parse([]string{"unexpected"}))

	status := executeNoArgs(f, func() error { require.Fail(t, "should not be called"); return nil })
	require.Equal(t, subcommands.ExitUsageError, status)
	require.Contains(t, b.String(), "unexpected positional argument(s)")
}
