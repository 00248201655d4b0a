package gitlab

import (
	"io"
	"sort"
	"time"

	"github.com/vedro-universe/vedro-gitlab-reporter/internal/scenario"
)

const defaultMaxFrames = 8

// Reporter renders a scenario run as GitLab CI job log output. It plugs
// into the event pipeline as a scenario.Accepter (and StartAccepter), and
// Finish prints the run summary once the stream is done.
//
// The only state carried across scenarios is the current namespace; section
// names come from the sectionWriter per open/close pair.
type Reporter struct {
	mode     CollapsableMode
	printer  *printer
	sections *sectionWriter

	maxFrames    int
	showInternal bool
	colored      bool
	newName      func() string

	namespace string
}

var (
	_ scenario.Accepter      = (*Reporter)(nil)
	_ scenario.StartAccepter = (*Reporter)(nil)
)

// Option configures a Reporter.
type Option func(r *Reporter)

// WithTracebackMaxFrames bounds how many traceback frames a failure shows.
func WithTracebackMaxFrames(n int) Option {
	return func(r *Reporter) { r.maxFrames = n }
}

// WithInternalCalls shows traceback frames the host marked as internal.
func WithInternalCalls(show bool) Option {
	return func(r *Reporter) { r.showInternal = show }
}

// WithColor enables or disables ANSI color. Section markers are emitted
// either way.
func WithColor(enabled bool) Option {
	return func(r *Reporter) { r.colored = enabled }
}

// WithSectionNames overrides the section name generator.
func WithSectionNames(newName func() string) Option {
	return func(r *Reporter) { r.newName = newName }
}

// NewReporter creates a Reporter writing to out with the given mode.
func NewReporter(out io.Writer, mode CollapsableMode, opts ...Option) *Reporter {
	r := &Reporter{
		mode:      mode,
		maxFrames: defaultMaxFrames,
		colored:   true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.printer = newPrinter(out, r.colored)
	r.sections = newSectionWriter(out)
	if r.newName != nil {
		r.sections.newName = r.newName
	}
	return r
}

// AcceptStart prints the scenario subject with a pending marker as soon as
// the host starts running it.
func (r *Reporter) AcceptStart(namespace, subject string) error {
	r.enterNamespace(namespace)
	r.printer.SubjectPending(subject)
	return r.printer.Err()
}

// Accept renders one completed scenario.
func (r *Reporter) Accept(res scenario.Result) error {
	r.enterNamespace(res.Namespace)
	if res.Status == scenario.StatusFailed {
		r.reportFailed(res)
	} else {
		r.printer.Subject(res.Subject, res.Status, res.Elapsed)
	}
	return r.printer.Err()
}

// Finish prints the run summary. Call it once after the event stream has
// been fully consumed.
func (r *Reporter) Finish(sum scenario.Summary) error {
	r.printer.EmptyLine()
	r.printer.Summary(sum)
	return r.printer.Err()
}

func (r *Reporter) enterNamespace(namespace string) {
	if namespace == "" || namespace == r.namespace {
		return
	}
	r.namespace = namespace
	r.printer.Namespace(namespace)
}

func (r *Reporter) reportFailed(res scenario.Result) {
	r.printer.Subject(res.Subject, res.Status, res.Elapsed)
	if res.Failure != nil {
		r.printer.Failure(res.Failure, r.maxFrames, r.showInternal)
	}

	r.printSteps(res)

	switch r.mode {
	case ModeVars:
		if step := res.FailedStep(); step != nil && len(step.Vars) > 0 {
			r.printValues(step.Vars, step.EndedAt)
		}
	case ModeScope:
		if len(res.Scope) > 0 {
			r.printValues(res.Scope, res.EndedAt)
		}
	}

	r.printer.EmptyLine()
}

// printSteps wraps the executed step list of a failed scenario in one
// collapsible section.
func (r *Reporter) printSteps(res scenario.Result) {
	if len(res.Steps) == 0 {
		return
	}
	name, err := r.sections.Open(res.Steps[0].EndedAt)
	r.printer.setErr(err)
	for _, step := range res.Steps {
		r.printer.StepName(step.Name, step.Status, step.Elapsed)
	}
	r.printer.setErr(r.sections.Close(name, res.Steps[len(res.Steps)-1].EndedAt))
}

// printValues wraps a variable or scope dump in one collapsible section,
// keys in sorted order.
func (r *Reporter) printValues(values map[string]interface{}, at time.Time) {
	name, err := r.sections.Open(at)
	r.printer.setErr(err)

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		r.printer.ScopePair(key, formatValue(values[key]))
	}

	r.printer.setErr(r.sections.Close(name, at))
}
