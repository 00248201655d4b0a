package printing

import (
	"fmt"
	"io"
	"sync"
)

// NewLogWriter wraps an io.Writer for ancillary diagnostic lines. Write
// errors are swallowed: losing a progress message must never fail the
// report itself.
func NewLogWriter(to io.Writer) *LogWriter {
	return &LogWriter{out: to}
}

type LogWriter struct {
	out io.Writer
	mu  sync.Mutex
}

var _ io.Writer = (*LogWriter)(nil)

// Write to the underlying io.Writer. Errors are silently ignored. Always
// returns len(p) and a nil error.
func (lw *LogWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, _ = lw.out.Write(p)
	return len(p), nil
}

// Logf writes one formatted log line. A newline is appended automatically.
func (lw *LogWriter) Logf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(lw, format+"\n", a...)
}
