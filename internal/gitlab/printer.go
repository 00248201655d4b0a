package gitlab

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/vedro-universe/vedro-gitlab-reporter/internal/printing"
	"github.com/vedro-universe/vedro-gitlab-reporter/internal/scenario"
)

// unprintable replaces any captured value that cannot be rendered, so a
// single bad value cannot abort the whole report.
const unprintable = "<unprintable>"

const (
	glyphPassed  = "✔"
	glyphFailed  = "✗"
	glyphSkipped = "○"
	glyphPending = "…"
)

// printer writes the styled report lines. It keeps the first write error it
// sees and drops everything after it; a broken output stream makes further
// reporting meaningless, so the reporter surfaces that error instead.
type printer struct {
	out io.Writer
	err error

	passed    *color.Color
	failed    *color.Color
	skipped   *color.Color
	pending   *color.Color
	heading   *color.Color
	dim       *color.Color
	scopeKeys *color.Color
}

func newPrinter(out io.Writer, colored bool) *printer {
	p := &printer{
		out:       out,
		passed:    color.New(color.FgGreen),
		failed:    color.New(color.FgRed),
		skipped:   color.New(color.FgHiBlack),
		pending:   color.New(color.FgHiBlack),
		heading:   color.New(color.Bold),
		dim:       color.New(color.FgHiBlack),
		scopeKeys: color.New(color.FgBlue),
	}
	styles := []*color.Color{p.passed, p.failed, p.skipped, p.pending, p.heading, p.dim, p.scopeKeys}
	for _, c := range styles {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Err returns the first write error encountered, if any.
func (p *printer) Err() error {
	return p.err
}

func (p *printer) setErr(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

// printf writes a styled fragment. A nil style writes plain text.
func (p *printer) printf(c *color.Color, format string, a ...interface{}) {
	if p.err != nil {
		return
	}
	var err error
	if c != nil {
		_, err = c.Fprintf(p.out, format, a...)
	} else {
		_, err = fmt.Fprintf(p.out, format, a...)
	}
	p.setErr(err)
}

func (p *printer) style(status scenario.Status) *color.Color {
	switch status {
	case scenario.StatusFailed:
		return p.failed
	case scenario.StatusSkipped:
		return p.skipped
	default:
		return p.passed
	}
}

func glyph(status scenario.Status) string {
	switch status {
	case scenario.StatusFailed:
		return glyphFailed
	case scenario.StatusSkipped:
		return glyphSkipped
	default:
		return glyphPassed
	}
}

// Namespace prints a heading when the run moves into a new namespace.
func (p *printer) Namespace(name string) {
	p.printf(p.heading, "* %s\n", name)
}

// SubjectPending prints a scenario subject with the pending marker, before
// its outcome is known.
func (p *printer) SubjectPending(subject string) {
	p.printf(p.pending, " %s %s\n", glyphPending, subject)
}

// Subject prints a scenario subject with its final status glyph.
func (p *printer) Subject(subject string, status scenario.Status, elapsed time.Duration) {
	p.printf(p.style(status), " %s %s", glyph(status), subject)
	if elapsed > 0 {
		p.printf(p.dim, " (%.2fs)", elapsed.Seconds())
	}
	p.printf(nil, "\n")
}

// StepName prints a single executed step with its status glyph.
func (p *printer) StepName(name string, status scenario.Status, elapsed time.Duration) {
	p.printf(p.style(status), "   %s %s", glyph(status), name)
	if elapsed > 0 {
		p.printf(p.dim, " (%.2fs)", elapsed.Seconds())
	}
	p.printf(nil, "\n")
}

// Failure prints the traceback (deepest maxFrames frames, internal frames
// filtered unless showInternal) followed by the error message.
func (p *printer) Failure(f *scenario.Failure, maxFrames int, showInternal bool) {
	frames := visibleFrames(f.Traceback, showInternal)
	if maxFrames > 0 && len(frames) > maxFrames {
		frames = frames[len(frames)-maxFrames:]
	}
	if p.err == nil && len(frames) > 0 {
		w := printing.NewLinePrefixWriter(p.out, "   ")
		for _, frame := range frames {
			_, err := fmt.Fprintln(w, frame)
			p.setErr(err)
		}
	}
	p.printf(p.failed, "   %s\n", f.Message)
}

// ScopePair prints one captured value as "key: value", indenting
// continuation lines of multi-line values under the key.
func (p *printer) ScopePair(key, val string) {
	p.printf(p.scopeKeys, "     %s: ", key)
	lines := strings.Split(val, "\n")
	p.printf(nil, "%s\n", lines[0])
	for _, line := range lines[1:] {
		p.printf(nil, "     %s\n", line)
	}
}

// Summary prints the run totals, styled by outcome.
func (p *printer) Summary(sum scenario.Summary) {
	c := p.passed
	switch {
	case sum.Failed > 0:
		c = p.failed
	case sum.Total() == 0:
		c = p.skipped
	}
	p.printf(c, "# %d passed, %d failed, %d skipped", sum.Passed, sum.Failed, sum.Skipped)
	p.printf(p.dim, " (in %.2fs)", sum.Elapsed.Seconds())
	p.printf(nil, "\n")
}

// EmptyLine prints a blank separator line.
func (p *printer) EmptyLine() {
	p.printf(nil, "\n")
}

// internalFramePrefix marks traceback frames the host engine considers
// internal to itself rather than part of the test.
const internalFramePrefix = "<internal>"

func visibleFrames(frames []string, showInternal bool) []string {
	if showInternal {
		return frames
	}
	visible := make([]string, 0, len(frames))
	for _, frame := range frames {
		if !strings.HasPrefix(frame, internalFramePrefix) {
			visible = append(visible, frame)
		}
	}
	return visible
}

// formatValue renders a captured value. Rendering never raises past this
// boundary: a marshal error or panic yields the placeholder instead.
func formatValue(v interface{}) (s string) {
	defer func() {
		if recover() != nil {
			s = unprintable
		}
	}()
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return unprintable
	}
	return string(b)
}
