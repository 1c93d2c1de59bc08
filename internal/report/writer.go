package report

import (
	"io"

	"github.com/nao1215/neuroscan/internal/model"
)

// Writer renders a build report and returns the number of bytes written.
//
// A Writer owns only the formatting. Where the bytes go is the io.Writer it
// was built with, so the same formatter serves stdout, a report file given
// with -o, or a test buffer. Writers never close their destination; the
// caller that opened a file closes it.
//
// Write is called once per build, after the pipeline has finished or failed.
// Implementations must therefore cope with partial reports: a cancelled build
// has no Files for the steps that never ran, and Issues is empty when
// verification did not run. They render the status line from Cancelled and
// ErrorMessage rather than assuming success.
type Writer interface {
	Write(report *model.BuildReport) (int, error)
}

// MultiWriter fans one report out to several Writers, e.g. a JSON file
// plus the text summary on stdout.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter returns a MultiWriter over writers, used in order.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write stops at the first failing Writer and returns the bytes written so far.
func (m *MultiWriter) Write(report *model.BuildReport) (int, error) {
	total := 0
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// statusText summarizes the build outcome in one line.
func statusText(report *model.BuildReport) string {
	switch {
	case report.Cancelled:
		return "CANCELLED (partial output)"
	case report.ErrorMessage != "":
		return "FAILED - " + report.ErrorMessage
	case report.HasErrors():
		return "Complete with verification errors"
	default:
		return "Complete"
	}
}

// severities lists severities from most to least severe.
var severities = []model.Severity{
	model.SeverityError,
	model.SeverityWarning,
	model.SeverityInfo,
}
