package scenario

import (
	"bufio"
	"encoding/json"
	"io"
	"time"
)

// Event names delivered by the host engine. Names not listed here are
// ignored by the aggregator so that newer hosts remain compatible.
const (
	eventScenarioRun     = "scenarioRun"
	eventStepPassed      = "stepPassed"
	eventStepFailed      = "stepFailed"
	eventScenarioPassed  = "scenarioPassed"
	eventScenarioFailed  = "scenarioFailed"
	eventScenarioSkipped = "scenarioSkipped"
	eventCleanup         = "cleanup"
)

// maxEventLine bounds a single event line. Scope dumps can get big.
const maxEventLine = 1 << 20

// event is a single lifecycle notification from the host engine. JSON keys
// are matched case-insensitively, so the lowercase wire keys ("event",
// "subject", ...) bind to these fields without tags.
type event struct {
	Time      time.Time
	Event     string
	Namespace string
	Subject   string
	Step      string
	Elapsed   float64 // seconds
	Error     *eventError
	Vars      map[string]interface{}
	Scope     map[string]interface{}
	Passed    int
	Failed    int
	Skipped   int
}

// eventError is the failure payload of a "scenarioFailed" event.
type eventError struct {
	Message   string
	Traceback []string
}

// eventAccepter accepts events created by an eventStreamParser.
type eventAccepter interface {
	Accept(e event) error
}

// eventStreamParser reads the host engine's event stream, converts each
// line to an event, and passes each event to the eventAccepter.
type eventStreamParser struct {
	to eventAccepter
}

func newEventStreamParser(to eventAccepter) *eventStreamParser {
	return &eventStreamParser{to: to}
}

// Parse the event stream and pass each event to the eventAccepter.
//
// If any line is not JSON, or if the eventAccepter returns an error, Parse
// stops immediately and returns the error.
func (esp *eventStreamParser) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLine)
	for scanner.Scan() {
		var e event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return err
		}
		if err := esp.to.Accept(e); err != nil {
			return err
		}
	}
	return scanner.Err()
}
