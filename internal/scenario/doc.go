// Package scenario consumes the lifecycle event stream emitted by a
// scenario-based test engine and reassembles it into per-scenario results.
//
// The host engine reports each scenario as a "scenarioRun" event, zero or
// more step events, and a terminal "scenarioPassed", "scenarioFailed", or
// "scenarioSkipped" event, followed by a single "cleanup" event carrying the
// run totals. Events arrive as newline-delimited JSON on a stream.
//
// All of the reassembly is hidden behind a small API:
//
//	summary, err := scenario.Parse(os.Stdin, reporter)
//
// Each completed scenario is delivered to the provided Accepters in stream
// order, and the returned Summary holds the run totals.
package scenario
