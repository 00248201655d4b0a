package gitlab

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// sectionWriter emits GitLab's collapsible-section markers around detail
// blocks. Section names must be unique within a run and stable between an
// open and its matching close; random UUIDs give both without any
// cross-scenario state.
//
// Marker syntax per the GitLab job log documentation:
//
//	\x1b[0Ksection_start:<unix-ts>:<name>[collapsed=true]\r\x1b[0K
//	\x1b[0Ksection_end:<unix-ts>:<name>\r\x1b[0K
type sectionWriter struct {
	out     io.Writer
	newName func() string
}

func newSectionWriter(out io.Writer) *sectionWriter {
	return &sectionWriter{
		out:     out,
		newName: func() string { return uuid.New().String() },
	}
}

// Open emits a section_start marker and returns the section name to pass
// to Close.
func (w *sectionWriter) Open(at time.Time) (string, error) {
	name := w.newName()
	_, err := fmt.Fprintf(w.out, "\x1b[0Ksection_start:%d:%s[collapsed=true]\r\x1b[0K", unixTS(at), name)
	return name, err
}

// Close emits the section_end marker matching a previous Open.
func (w *sectionWriter) Close(name string, at time.Time) error {
	_, err := fmt.Fprintf(w.out, "\x1b[0Ksection_end:%d:%s\r\x1b[0K", unixTS(at), name)
	return err
}

func unixTS(at time.Time) int64 {
	if at.IsZero() {
		return 0
	}
	return at.Unix()
}
