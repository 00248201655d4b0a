package scenario

import (
	"time"
)

// Status is the final status of a scenario or a step.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Failure describes the error raised by a failed scenario.
type Failure struct {
	Message   string
	Traceback []string
}

// StepResult is the outcome of a single step within a scenario. Vars holds
// the step's captured local variables when the host engine provided them.
type StepResult struct {
	Name    string
	Status  Status
	Elapsed time.Duration
	EndedAt time.Time
	Vars    map[string]interface{}
}

// Result is a completed scenario: its identity, final status, executed
// steps, and — on failure — the raised error and captured scope.
type Result struct {
	Namespace string
	Subject   string
	Status    Status
	Elapsed   time.Duration
	EndedAt   time.Time
	Failure   *Failure
	Steps     []StepResult
	Scope     map[string]interface{}
}

// FailedStep returns the last failed step of the scenario, or nil if no
// step failed.
func (r Result) FailedStep() *StepResult {
	for i := len(r.Steps) - 1; i >= 0; i-- {
		if r.Steps[i].Status == StatusFailed {
			return &r.Steps[i]
		}
	}
	return nil
}

// Summary holds the totals for a whole run.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
	Elapsed time.Duration
}

// Total is the number of scenarios in the run.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Accepter accepts completed scenario results.
type Accepter interface {
	Accept(res Result) error
}

// StartAccepter is implemented by Accepters that also want to observe
// scenario starts, before any result exists.
type StartAccepter interface {
	AcceptStart(namespace, subject string) error
}

// multiAccepter accepts results and forwards them on to zero or more
// downstream accepters.
type multiAccepter struct {
	accepters []Accepter
}

var (
	_ Accepter      = (*multiAccepter)(nil)
	_ StartAccepter = (*multiAccepter)(nil)
)

func newMultiAccepter(accepter ...Accepter) *multiAccepter {
	return &multiAccepter{accepters: accepter}
}

// Accept forwards the result to the downstream Accepters. If any Accepter
// returns an error processing stops immediately and that error is returned
// to the caller.
func (m multiAccepter) Accept(res Result) error {
	for _, accepter := range m.accepters {
		if err := accepter.Accept(res); err != nil {
			return err
		}
	}
	return nil
}

// AcceptStart forwards a scenario start to the downstream Accepters that
// observe starts. Error handling matches Accept.
func (m multiAccepter) AcceptStart(namespace, subject string) error {
	for _, accepter := range m.accepters {
		sa, ok := accepter.(StartAccepter)
		if !ok {
			continue
		}
		if err := sa.AcceptStart(namespace, subject); err != nil {
			return err
		}
	}
	return nil
}
