package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/neuroscan/internal/model"
)

// JSONWriter emits a build report as one JSON document per call, so CI jobs
// can consume the verification results.
//
// Output is compact by default, one document per line, which suits log
// collectors and jq pipelines. WithPrettyPrint or WithIndent switch to
// indented output for humans. Severities are encoded by name and decode back
// through model.Severity, so a saved report can be loaded and compared with a
// later build.
type JSONWriter struct {
	baseWriter

	prefix string
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent indents nested values with indent, starting each line with prefix.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.prefix, w.indent = prefix, indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter returns a compact JSONWriter unless an indent option is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes the report followed by a newline.
func (w *JSONWriter) Write(report *model.BuildReport) (int, error) {
	return w.encode(report)
}

// encode buffers the document so a failed encoding writes nothing.
func (w *JSONWriter) encode(v any) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if w.prefix != "" || w.indent != "" {
		enc.SetIndent(w.prefix, w.indent)
	}
	if err := enc.Encode(v); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

// JSONReport pairs a build report with the generator version that made it.
type JSONReport struct {
	Version string             `json:"version"`
	Report  *model.BuildReport `json:"report"`
}

// NewJSONReport wraps report with version.
func NewJSONReport(report *model.BuildReport, version string) *JSONReport {
	return &JSONReport{Version: version, Report: report}
}

// FullJSONWriter is a JSONWriter that wraps every report in a JSONReport.
type FullJSONWriter struct {
	*JSONWriter
	version string
}

// NewFullJSONWriter returns a FullJSONWriter stamping reports with version.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{JSONWriter: NewJSONWriter(output, opts...), version: version}
}

// Write encodes the wrapped report followed by a newline.
func (w *FullJSONWriter) Write(report *model.BuildReport) (int, error) {
	return w.encode(NewJSONReport(report, w.version))
}
