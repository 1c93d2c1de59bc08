package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/neuroscan/internal/model"
)

// MarkdownWriter outputs build reports in Markdown format, suitable for CI
// job summaries and pull request comments.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.BuildReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeFiles(md, report)
	w.writeIssues(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with build information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.BuildReport) {
	md.H1("NeuroScan Build Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Output", "`" + report.OutputDir + "`"},
			{"Build Date", report.DateBuilt.Format("2006-01-02 15:04:05 MST")},
			{"Graph", strconv.Itoa(report.NodeCount) + " nodes, " + strconv.Itoa(report.EdgeCount) + " edges (" + seedText(report.Seed) + ")"},
			{"Sections", strings.Join(report.Sections, ", ")},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.BuildReport) string {
	switch {
	case report.Cancelled:
		return "⚠️ Cancelled (partial output)"
	case report.ErrorMessage != "":
		return "❌ Failed - " + report.ErrorMessage
	case report.HasErrors():
		return "❌ Verification errors"
	default:
		return "✅ Complete"
	}
}

// writeSummary writes the verification summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.BuildReport) {
	md.H2("Verification Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Error", strconv.Itoa(report.ErrorCount)},
			{"🟡 Warning", strconv.Itoa(report.WarningCount)},
			{"⚪ Info", strconv.Itoa(report.InfoCount)},
			{"**Total**", "**" + strconv.Itoa(len(report.Issues)) + "**"},
		},
	})
	md.PlainText("")

	if len(report.Issues) > 0 {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart for the issue distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.BuildReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Issue Severity Distribution"),
		piechart.WithShowData(true),
	)

	if report.ErrorCount > 0 {
		chart.LabelAndIntValue("Error", uint64(report.ErrorCount))
	}
	if report.WarningCount > 0 {
		chart.LabelAndIntValue("Warning", uint64(report.WarningCount))
	}
	if report.InfoCount > 0 {
		chart.LabelAndIntValue("Info", uint64(report.InfoCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the build outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.BuildReport) {
	switch {
	case report.ErrorMessage != "":
		md.Cautionf("The build did not finish: %s", report.ErrorMessage)
	case report.ErrorCount > 0:
		md.Warningf("%d verification error(s) found. The page may be broken.", report.ErrorCount)
	case report.WarningCount > 0:
		md.Importantf("%d verification warning(s) found. The page renders with fallbacks.", report.WarningCount)
	case report.InfoCount > 0:
		md.Note("Only informational issues found.")
	default:
		md.Tip("The page passed verification.")
	}
	md.PlainText("")
}

// writeFiles writes the written files table.
func (w *MarkdownWriter) writeFiles(md *markdown.Markdown, report *model.BuildReport) {
	md.H2("Files")
	md.PlainText("")

	if len(report.Files) == 0 {
		md.PlainText("No files written.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Files)+1)
	for _, f := range report.Files {
		rows = append(rows, []string{"`" + f.Path + "`", formatBytes(f.Size), "`" + truncateString(f.Hash, 16) + "`"})
	}
	rows = append(rows, []string{"**Total**", "**" + formatBytes(report.TotalBytes()) + "**", ""})

	md.Table(markdown.TableSet{
		Header: []string{"Path", "Size", "BLAKE2b-256"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeIssues writes all issues grouped by severity.
func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, report *model.BuildReport) {
	md.H2("Issues")
	md.PlainText("")

	if len(report.Issues) == 0 {
		md.PlainText("No issues found.")
		md.PlainText("")
		return
	}

	headers := map[model.Severity]string{
		model.SeverityError:   "### 🔴 Error",
		model.SeverityWarning: "### 🟡 Warning",
		model.SeverityInfo:    "### ⚪ Info",
	}

	for _, severity := range severities {
		issues := report.IssuesBySeverity(severity)
		if len(issues) == 0 {
			continue
		}

		md.PlainText(headers[severity])
		md.PlainText("")
		w.writeIssuesTable(md, issues)
	}
}

// writeIssuesTable writes a table of issues with their recommendations.
func (w *MarkdownWriter) writeIssuesTable(md *markdown.Markdown, issues []model.Issue) {
	rows := make([][]string, len(issues))
	for i, issue := range issues {
		location := issue.Location
		if location == "" {
			location = "-"
		}
		rows[i] = []string{
			"`" + issue.Code + "`",
			truncateString(issue.Message, 60),
			truncateString(location, 40),
			truncateString(model.GetIssueInfo(issue.Code).Recommendation, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Code", "Message", "Location", "Recommendation"},
		Rows:   rows,
	})
	md.PlainText("")

	seen := make(map[string]bool)
	for _, issue := range issues {
		if seen[issue.Code] {
			continue
		}
		seen[issue.Code] = true
		md.Details(issue.Code, model.GetIssueInfo(issue.Code).Impact)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by neuroscan*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
