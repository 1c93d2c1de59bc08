package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/site"
)

// InventoryWriter lists the static content of the landing page in Markdown,
// so copy changes can be reviewed without opening the built page.
type InventoryWriter struct {
	baseWriter
}

// NewInventoryWriter creates an InventoryWriter that outputs to the given writer.
func NewInventoryWriter(output io.Writer) *InventoryWriter {
	return &InventoryWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the content inventory.
func (w *InventoryWriter) Write() (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(content.ProductName + " Content Inventory")
	md.PlainText("")

	w.writeFeatures(md)
	w.writeStats(md)
	w.writeDemo(md)
	w.writeFooter(md)

	if missing := unknownIcons(); len(missing) > 0 {
		md.Warningf("%d icon tag(s) are not registered and render as placeholders.", len(missing))
		md.PlainText("")
		md.BulletList(missing...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

func (w *InventoryWriter) writeFeatures(md *markdown.Markdown) {
	md.H2("Features")
	md.PlainText("")

	features := content.Features()
	rows := make([][]string, len(features))
	for i, f := range features {
		rows[i] = []string{f.Title, "`" + f.Icon + "`", f.Stat, truncateString(f.Description, 80)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Title", "Icon", "Badge", "Description"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *InventoryWriter) writeStats(md *markdown.Markdown) {
	md.H2("Statistics")
	md.PlainText("")

	stats := content.Stats()
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{
			s.Label,
			strconv.FormatFloat(s.Value, 'f', -1, 64),
			s.Display(0),
			s.Final(),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Label", "Target", "Initial", "Final"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *InventoryWriter) writeDemo(md *markdown.Markdown) {
	md.H2("Demo")
	md.PlainText("")

	steps := content.DemoSteps()
	rows := make([][]string, len(steps))
	for i, s := range steps {
		rows[i] = []string{strconv.Itoa(s.ID), s.Title, s.Status.Label(), "`" + s.Icon + "`", s.Details}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Step", "Title", "Status", "Icon", "Details"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H3("Sample Scans")
	md.PlainText("")
	scans := content.SampleScans()
	scanRows := make([][]string, len(scans))
	for i, s := range scans {
		scanRows[i] = []string{s.Name, s.Modality, s.Size}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Modality", "Size"},
		Rows:   scanRows,
	})
	md.PlainText("")

	md.H3("Analysis Results")
	md.PlainText("")
	findings := content.ReportFindings()
	items := make([]string, len(findings))
	for i, f := range findings {
		items[i] = f.Title + ": " + f.Value + " (" + f.Note + ")"
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (w *InventoryWriter) writeFooter(md *markdown.Markdown) {
	md.H2("Footer")
	md.PlainText("")

	for _, group := range content.FooterGroups() {
		md.H3(site.CategoryTitle(group.Category))
		md.PlainText("")
		links := make([]string, len(group.Links))
		for i, l := range group.Links {
			links[i] = l.Name + " (" + l.Href + ")"
		}
		md.BulletList(links...)
		md.PlainText("")
	}

	contact := content.ContactDetails()
	md.Table(markdown.TableSet{
		Header: []string{"Contact", "Value"},
		Rows: [][]string{
			{"Email", contact.Email},
			{"Phone", contact.Phone},
			{"Location", contact.Location},
		},
	})
	md.PlainText("")
}

// unknownIcons returns icon tags used by the content that have no glyph.
func unknownIcons() []string {
	var tags []string
	add := func(tag string) {
		if !site.HasIcon(tag) {
			tags = append(tags, tag)
		}
	}
	for _, f := range content.Features() {
		add(f.Icon)
	}
	for _, s := range content.DemoSteps() {
		add(s.Icon)
	}
	for _, h := range content.HeroHighlights() {
		add(h.Icon)
	}
	for _, s := range content.SocialLinks() {
		add(s.Icon)
	}
	for _, c := range content.Certifications() {
		add(c.Icon)
	}
	return tags
}
