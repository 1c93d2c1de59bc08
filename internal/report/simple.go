package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/neuroscan/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with nothing to list are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.BuildReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writeFiles(&sb, report)
	w.writeIssues(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with build information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.BuildReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        NEUROSCAN BUILD REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Output:         %s\n", report.OutputDir)
	fmt.Fprintf(sb, "Build Date:     %s\n", report.DateBuilt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Duration:       %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(sb, "Graph:          %d nodes, %d edges (%s)\n", report.NodeCount, report.EdgeCount, seedText(report.Seed))
	fmt.Fprintf(sb, "Status:         %s\n", statusText(report))
	if w.verbose && len(report.PerformedSteps) > 0 {
		fmt.Fprintf(sb, "Steps:          %s\n", strings.Join(report.PerformedSteps, ", "))
	}
	sb.WriteString("\n")
}

// writeSummary writes the issue summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.BuildReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("VERIFICATION SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "  ERROR:    %d\n", report.ErrorCount)
	fmt.Fprintf(sb, "  WARNING:  %d\n", report.WarningCount)
	fmt.Fprintf(sb, "  INFO:     %d\n", report.InfoCount)
	sb.WriteString("\n")
}

// writeFiles writes the written files section.
func (w *SimpleWriter) writeFiles(sb *strings.Builder, report *model.BuildReport) {
	if len(report.Files) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FILES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Files) == 0 {
		sb.WriteString("  No files written\n\n")
		return
	}
	for _, f := range report.Files {
		fmt.Fprintf(sb, "  [+] %-36s %12s\n", f.Path, formatBytes(f.Size))
		if w.verbose {
			fmt.Fprintf(sb, "      blake2b-256 %s\n", f.Hash)
		}
	}
	fmt.Fprintf(sb, "\n  TOTAL: %s\n\n", formatBytes(report.TotalBytes()))
}

// writeIssues writes all issues grouped by severity.
func (w *SimpleWriter) writeIssues(sb *strings.Builder, report *model.BuildReport) {
	if len(report.Issues) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ISSUES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, severity := range severities {
		issues := report.IssuesBySeverity(severity)
		if len(issues) == 0 && !w.showEmpty {
			continue
		}
		w.writeIssuesForSeverity(sb, severity, issues)
	}
}

// writeIssuesForSeverity writes issues of a specific severity level.
func (w *SimpleWriter) writeIssuesForSeverity(sb *strings.Builder, severity model.Severity, issues []model.Issue) {
	fmt.Fprintf(sb, "[%s] %s\n", w.getSeverityIndicator(severity), severity.String())

	if len(issues) == 0 {
		sb.WriteString("  No issues\n\n")
		return
	}

	for _, issue := range issues {
		fmt.Fprintf(sb, "  * %s\n", issue.Message)
		if issue.Location != "" {
			fmt.Fprintf(sb, "    Location: %s\n", issue.Location)
		}
		if w.verbose {
			info := model.GetIssueInfo(issue.Code)
			fmt.Fprintf(sb, "    Code: %s\n", issue.Code)
			fmt.Fprintf(sb, "    Recommendation: %s\n", info.Recommendation)
		}
	}
	sb.WriteString("\n")
}

// getSeverityIndicator returns a visual indicator for the severity level.
func (w *SimpleWriter) getSeverityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityError:
		return "!!"
	case model.SeverityWarning:
		return "!"
	case model.SeverityInfo:
		return "i"
	default:
		return "?"
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by neuroscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// seedText describes the graph seed.
func seedText(seed uint64) string {
	if seed == 0 {
		return "random seed"
	}
	return fmt.Sprintf("seed %d", seed)
}

// formatBytes prints a size with thousands separators ("12,345 B").
func formatBytes(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d B", n)
}
