package scenario

import (
	"errors"
	"fmt"
	"time"
)

// aggregator is an eventAccepter that folds step and scenario events into
// per-scenario Results. Completed results are passed to the Accepter.
type aggregator struct {
	to         Accepter
	open       map[string]*Result
	counted    Summary
	reported   Summary
	sawCleanup bool
	err        error
}

var _ eventAccepter = (*aggregator)(nil)

func newAggregator(to Accepter) *aggregator {
	return &aggregator{
		to:   to,
		open: make(map[string]*Result),
	}
}

// Accept folds an event into the internal state and provides any result
// completed by the event to the Accepter.
//
// If the Accepter returns an error the aggregator enters an error state
// causing the current accept and all subsequent accepts to fail. This error
// is also returned by CheckAllEventsConsumed.
func (a *aggregator) Accept(e event) error {
	if a.err != nil {
		return fmt.Errorf("permanent error state: %w", a.err)
	}

	switch e.Event {
	case eventScenarioRun:
		res := a.scenario(e.Subject)
		res.Namespace = e.Namespace
		if sa, ok := a.to.(StartAccepter); ok {
			if err := sa.AcceptStart(e.Namespace, e.Subject); err != nil {
				a.setErr(err)
				return a.err
			}
		}
	case eventStepPassed, eventStepFailed:
		res := a.scenario(e.Subject)
		res.Steps = append(res.Steps, StepResult{
			Name:    e.Step,
			Status:  stepStatus(e.Event),
			Elapsed: seconds(e.Elapsed),
			EndedAt: e.Time,
			Vars:    e.Vars,
		})
	case eventScenarioPassed, eventScenarioFailed, eventScenarioSkipped:
		return a.complete(e)
	case eventCleanup:
		a.sawCleanup = true
		a.reported = Summary{
			Passed:  e.Passed,
			Failed:  e.Failed,
			Skipped: e.Skipped,
			Elapsed: seconds(e.Elapsed),
		}
	default:
		// Unknown events are ignored so newer hosts keep working.
	}

	return nil
}

// complete closes the scenario the event belongs to and forwards the
// finished result.
func (a *aggregator) complete(e event) error {
	res := a.scenario(e.Subject)
	res.Status = scenarioStatus(e.Event)
	res.Elapsed = seconds(e.Elapsed)
	res.EndedAt = e.Time
	if e.Error != nil {
		res.Failure = &Failure{
			Message:   e.Error.Message,
			Traceback: e.Error.Traceback,
		}
	}
	if e.Scope != nil {
		res.Scope = e.Scope
	}
	delete(a.open, e.Subject)

	switch res.Status {
	case StatusPassed:
		a.counted.Passed++
	case StatusFailed:
		a.counted.Failed++
	case StatusSkipped:
		a.counted.Skipped++
	}
	a.counted.Elapsed += res.Elapsed

	if err := a.to.Accept(*res); err != nil {
		a.setErr(err)
		return a.err
	}
	return nil
}

// scenario returns the open result for the subject, opening one implicitly
// if the host never delivered a "scenarioRun" for it.
func (a *aggregator) scenario(subject string) *Result {
	res, ok := a.open[subject]
	if !ok {
		res = &Result{Subject: subject}
		a.open[subject] = res
	}
	return res
}

// Summary returns the run totals: the host-reported totals when a "cleanup"
// event arrived, otherwise the aggregator's own counts so a truncated
// stream still yields a correct summary line.
func (a *aggregator) Summary() Summary {
	if a.sawCleanup {
		return a.reported
	}
	return a.counted
}

// CheckAllEventsConsumed checks that no scenario is still open and that no
// error occurred in any Accept.
func (a *aggregator) CheckAllEventsConsumed() error {
	if a.err == nil && len(a.open) > 0 {
		a.setErr(errors.New("not all events were consumed"))
	}
	return a.err
}

// setErr puts the aggregator into a permanent error state.
func (a *aggregator) setErr(err error) {
	a.err = err
	a.open = nil
}

func stepStatus(event string) Status {
	if event == eventStepFailed {
		return StatusFailed
	}
	return StatusPassed
}

func scenarioStatus(event string) Status {
	switch event {
	case eventScenarioFailed:
		return StatusFailed
	case eventScenarioSkipped:
		return StatusSkipped
	default:
		return StatusPassed
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
