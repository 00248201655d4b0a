package scenario

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// accepterFunc adapts a function to the Accepter interface.
type accepterFunc func(res Result) error

func (f accepterFunc) Accept(res Result) error { return f(res) }

// startAccepterFunc adapts a pair of functions to Accepter + StartAccepter.
type startAccepterFunc struct {
	accept func(res Result) error
	start  func(namespace, subject string) error
}

func (f startAccepterFunc) Accept(res Result) error { return f.accept(res) }

func (f startAccepterFunc) AcceptStart(namespace, subject string) error {
	return f.start(namespace, subject)
}

func Test_multiAccepter_Accept(t *testing.T) {
	var (
		firstCalled  bool
		secondCalled bool
	)
	expectedResult := Result{Subject: "blah"}
	tested := newMultiAccepter(
		accepterFunc(func(res Result) error { require.Equal(t, expectedResult, res); firstCalled = true; return nil }),
		accepterFunc(func(res Result) error { require.Equal(t, expectedResult, res); secondCalled = true; return nil }),
	)
	require.NoError(t, tested.Accept(expectedResult))
	require.True(t, firstCalled)
	require.True(t, secondCalled)
}

func Test_multiAccepter_Accept_error(t *testing.T) {
	expectedErr := errors.New("fail boat")
	tested := newMultiAccepter(
		accepterFunc(func(res Result) error { return expectedErr }),
		accepterFunc(func(res Result) error { require.Fail(t, "should not be called"); return nil }),
	)
	require.Equal(t, expectedErr, tested.Accept(Result{}))
}

func Test_multiAccepter_Accept_nil(t *testing.T) {
	tested := newMultiAccepter()
	require.NoError(t, tested.Accept(Result{}))
}

func Test_multiAccepter_AcceptStart(t *testing.T) {
	var started []string
	tested := newMultiAccepter(
		// Plain accepters are skipped for starts.
		accepterFunc(func(res Result) error { require.Fail(t, "should not be called"); return nil }),
		startAccepterFunc{
			accept: func(res Result) error { return nil },
			start: func(namespace, subject string) error {
				started = append(started, namespace+"/"+subject)
				return nil
			},
		},
	)
	require.NoError(t, tested.AcceptStart("auth", "login"))
	require.Equal(t, []string{"auth/login"}, started)
}

func Test_multiAccepter_AcceptStart_error(t *testing.T) {
	expectedErr := errors.New("fail boat")
	tested := newMultiAccepter(
		startAccepterFunc{
			accept: func(res Result) error { return nil },
			start:  func(namespace, subject string) error { return expectedErr },
		},
	)
	require.Equal(t, expectedErr, tested.AcceptStart("", "login"))
}

func Test_Result_FailedStep(t *testing.T) {
	res := Result{
		Steps: []StepResult{
			{Name: "first", Status: StatusPassed},
			{Name: "second", Status: StatusFailed},
			{Name: "third", Status: StatusFailed},
		},
	}
	step := res.FailedStep()
	require.NotNil(t, step)
	require.Equal(t, "third", step.Name)
}

func Test_Result_FailedStep_none(t *testing.T) {
	res := Result{
		Steps: []StepResult{
			{Name: "first", Status: StatusPassed},
		},
	}
	require.Nil(t, res.FailedStep())
}

func Test_Summary_Total(t *testing.T) {
	sum := Summary{Passed: 3, Failed: 2, Skipped: 1, Elapsed: time.Second}
	require.Equal(t, 6, sum.Total())
}
