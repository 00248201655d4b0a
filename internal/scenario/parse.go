package scenario

import (
	"io"
)

// Parse reads host-engine lifecycle events from r and delivers each
// completed scenario to the provided Accepters in stream order. The
// returned Summary holds the run totals.
//
// Parse fails if the stream contains a non-JSON line, if any Accepter
// returns an error, or if the stream ends with scenarios still open.
func Parse(r io.Reader, to ...Accepter) (Summary, error) {
	agg := newAggregator(newMultiAccepter(to...))
	parser := newEventStreamParser(agg)
	if err := parser.Parse(r); err != nil {
		return Summary{}, err
	}
	if err := agg.CheckAllEventsConsumed(); err != nil {
		return Summary{}, err
	}
	return agg.Summary(), nil
}
