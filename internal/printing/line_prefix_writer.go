// Package printing provides writer utilities for report output.
package printing

import (
	"bytes"
	"io"
)

// NewLinePrefixWriter wraps an io.Writer so that every line written through
// it starts with the given prefix. The reporter uses it to indent traceback
// and dump blocks under their heading.
func NewLinePrefixWriter(to io.Writer, prefix string) *LinePrefixWriter {
	return &LinePrefixWriter{
		to:     to,
		prefix: []byte(prefix),
	}
}

type LinePrefixWriter struct {
	to      io.Writer
	prefix  []byte
	midline bool
}

var _ io.Writer = (*LinePrefixWriter)(nil)

// Write writes p to the underlying io.Writer, inserting the prefix at the
// start of each line. The returned count covers input bytes only, so a
// successful write always reports len(p). A line split across multiple
// Write calls gets its prefix exactly once.
func (w *LinePrefixWriter) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		if !w.midline {
			if _, err := w.to.Write(w.prefix); err != nil {
				return n, err
			}
			w.midline = true
		}

		line := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line = p[:i+1]
		}

		cnt, err := w.to.Write(line)
		n += cnt
		if err != nil {
			return n, err
		}
		if line[len(line)-1] == '\n' {
			w.midline = false
		}
		p = p[len(line):]
	}
	return n, nil
}
