package loxerrors

import (
	"fmt"
	"io"
)

// ErrReporter is the error sink shared by the scanner and the parser.
//
// It is owned by the caller, which resets it between independent runs.
// Not safe for concurrent use.
type ErrReporter interface {
	// ReportError records err and marks the sink as failed.
	ReportError(err error)
	// HadError reports whether anything was recorded since the last Reset.
	HadError() bool
	// Errors returns the recorded errors in report order.
	Errors() []error
	// Reset clears recorded errors.
	Reset()
}

type errReporter struct {
	w    io.Writer
	errs []error
}

// NewErrReporter returns a sink printing one line per reported error to w.
func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// NewDiscardReporter returns a sink that only records errors.
func NewDiscardReporter() *errReporter {
	return &errReporter{w: io.Discard}
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	if err == nil {
		return
	}
	e.errs = append(e.errs, err)
	DefaultReportError(e.w, err)
}

// HadError implements ErrReporter.
func (e *errReporter) HadError() bool {
	return len(e.errs) > 0
}

// Errors implements ErrReporter.
func (e *errReporter) Errors() []error {
	return append([]error(nil), e.errs...)
}

// Reset implements ErrReporter.
func (e *errReporter) Reset() {
	e.errs = nil
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}

func formatReport(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

var _ ErrReporter = (*errReporter)(nil)
