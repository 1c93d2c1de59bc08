package site

import (
	"strconv"

	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/demo"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PanelID returns the element id of the demo panel for a step.
func PanelID(step int) string {
	return "demo-panel-" + strconv.Itoa(step)
}

// demo renders every panel and hides all but the selected one, so that the
// script only has to toggle the hidden attribute.
func (r *Renderer) demo(sel *demo.Selector) g.Node {
	steps := sel.Steps()

	stepCards := make([]g.Node, 0, len(steps))
	panels := make([]g.Node, 0, len(steps))
	for _, s := range steps {
		visible := sel.Visible(s.ID)
		stepCards = append(stepCards, r.demoStep(s, visible))
		panels = append(panels, h.Div(
			h.ID(PanelID(s.ID)),
			h.Class("demo-panel"),
			g.Attr("role", "tabpanel"),
			g.Attr("data-demo-panel", strconv.Itoa(s.ID)),
			g.If(!visible, g.Attr("hidden")),
			r.panelBody(s, sel),
		))
	}

	playLabel := "Start Demo"
	if sel.Playing() {
		playLabel = "Pause Demo"
	}

	return h.Section(
		h.ID(SectionDemo),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			sectionHeader(r.Icon("scan", "icon-sm"), "Interactive Demo", "Experience", content.ProductName,
				"See how our platform transforms neuroimaging analysis in three simple steps. Try our interactive demo with real medical imaging data."),
			h.Div(
				h.Class("demo-layout"),
				h.Div(
					h.Class("demo-steps"),
					h.H3(g.Text("Analysis Process")),
					h.Div(g.Attr("role", "tablist"), g.Attr("aria-label", "Demo steps"), g.Group(stepCards)),
					h.Div(
						h.Class("demo-controls"),
						h.Button(h.Type("button"), h.Class("btn btn-primary"), g.Attr("data-demo-play"),
							g.Attr("aria-pressed", strconv.FormatBool(sel.Playing())), g.Text(playLabel)),
						h.Button(h.Type("button"), h.Class("btn btn-outline"), g.Attr("data-demo-reset"), g.Text("Reset Demo")),
					),
				),
				h.Div(
					h.Class("demo-screen"),
					h.Div(
						h.Class("demo-screen-bar"),
						h.H3(g.Text(content.ProductName+" Interface")),
						h.Span(h.Class("window-dots"), h.Span(), h.Span(), h.Span()),
					),
					g.Group(panels),
					h.Div(h.Class("quick-stats"), g.Group(g.Map(content.QuickStats(), func(q content.QuickStat) g.Node {
						return h.Div(h.Strong(h.Class("tone-"+q.Tone), g.Text(q.Value)), h.Span(g.Text(q.Label)))
					}))),
				),
			),
		),
	)
}

func (r *Renderer) demoStep(s content.DemoStep, selected bool) g.Node {
	statusIcon := s.Icon
	if s.Status == content.StatusCompleted {
		statusIcon = "check-circle"
	}
	return h.Button(
		h.Type("button"),
		h.Class("demo-step"),
		g.Attr("role", "tab"),
		g.Attr("data-demo-step", strconv.Itoa(s.ID)),
		g.Attr("aria-selected", strconv.FormatBool(selected)),
		g.Attr("aria-controls", PanelID(s.ID)),
		h.Span(h.Class("step-icon step-"+s.Status.String()), r.Icon(statusIcon)),
		h.Span(
			h.Class("step-body"),
			h.Span(h.Class("step-title"), g.Text(s.Title)),
			h.Span(h.Class("status status-"+s.Status.String()), g.Text(s.Status.Label())),
			h.Span(h.Class("step-description"), g.Text(s.Description)),
			h.Span(h.Class("step-details"), g.Text(s.Details)),
		),
	)
}

func (r *Renderer) panelBody(s content.DemoStep, sel *demo.Selector) g.Node {
	switch s.Status {
	case content.StatusCompleted:
		return r.uploadPanel(sel.Scan())
	case content.StatusProcessing:
		return r.processingPanel()
	default:
		return r.reportPanel()
	}
}

func (r *Renderer) uploadPanel(selectedScan int) g.Node {
	scans := content.SampleScans()
	items := make([]g.Node, 0, len(scans))
	for i, sc := range scans {
		class := "scan-item"
		if i == selectedScan {
			class += " is-active"
		}
		items = append(items, h.Li(
			h.Button(
				h.Type("button"),
				h.Class(class),
				g.Attr("data-scan-index", strconv.Itoa(i)),
				g.Attr("aria-pressed", strconv.FormatBool(i == selectedScan)),
				r.Icon("file-image"),
				h.Span(h.Class("scan-name"), g.Text(sc.Name)),
				h.Span(h.Class("scan-meta"), g.Text(sc.Modality+" · "+sc.Size)),
			),
		))
	}
	return g.Group{
		h.Div(
			h.Class("dropzone"),
			r.Icon("upload"),
			h.P(g.Text("Drop your brain scan files here")),
			h.Button(h.Type("button"), h.Class("btn btn-outline"), g.Text("Choose Files")),
		),
		h.Ul(h.Class("scan-list"), g.Group(items)),
	}
}

func (r *Renderer) processingPanel() g.Node {
	checklist := content.ProcessingChecklist()
	progress := strconv.Itoa(content.ProcessingProgress)
	return h.Div(
		h.Class("console"),
		h.P(h.Class("console-title"), r.Icon("activity", "icon-sm animate-pulse-slow"), g.Text("AI Analysis in Progress...")),
		h.Ul(h.Class("checklist"), g.Group(g.Map(checklist, func(c content.ChecklistItem) g.Node {
			var marker g.Node
			switch c.State {
			case "done":
				marker = h.Span(h.Class("check-done"), g.Text("✓"))
			case "running":
				marker = h.Span(h.Class("spinner"))
			default:
				marker = h.Span(h.Class("check-waiting"), r.Icon("clock", "icon-sm"))
			}
			return h.Li(h.Class("check-"+c.State), h.Span(g.Text(c.Label)), marker)
		}))),
		h.Div(
			h.Class("progress-box"),
			h.Span(g.Text("Progress")),
			h.Div(
				h.Class("progress"),
				g.Attr("role", "progressbar"),
				g.Attr("aria-valuemin", "0"),
				g.Attr("aria-valuemax", "100"),
				g.Attr("aria-valuenow", progress),
				h.Div(h.Class("progress-bar"), h.Style("width:"+progress+"%")),
			),
			h.Span(g.Text(progress+"% complete")),
		),
	)
}

func (r *Renderer) reportPanel() g.Node {
	return g.Group{
		h.Div(h.Class("findings"), g.Group(g.Map(content.ReportFindings(), func(f content.Finding) g.Node {
			return h.Div(
				h.Class("finding tone-"+f.Tone),
				h.Span(h.Class("finding-title"), g.Text(f.Title)),
				h.Strong(g.Text(f.Value)),
				h.Span(h.Class("finding-note"), g.Text(f.Note)),
			)
		}))),
		h.Div(
			h.Class("visualization"),
			h.Span(g.Text("3D Visualization")),
			h.Div(h.Class("visualization-canvas"), r.Icon("brain", "animate-brain-pulse")),
		),
	}
}
