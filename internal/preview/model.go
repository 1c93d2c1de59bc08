package preview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/neuroscan/internal/anim"
	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/demo"
	"github.com/nao1215/neuroscan/internal/neural"
	"github.com/nao1215/neuroscan/internal/site"
	"github.com/nao1215/neuroscan/internal/theme"
)

// Section is one page of the preview.
type Section int

// Sections in navigation order.
const (
	SectionHero Section = iota
	SectionFeatures
	SectionStats
	SectionDemo
	SectionFooter
	sectionCount
)

// String returns the section title shown in the tab bar.
func (s Section) String() string {
	switch s {
	case SectionHero:
		return "Home"
	case SectionFeatures:
		return "Features"
	case SectionStats:
		return "Statistics"
	case SectionDemo:
		return "Demo"
	case SectionFooter:
		return "Contact"
	default:
		return "Unknown"
	}
}

// Default canvas size used until the terminal reports its size.
const (
	defaultWidth  = 80
	defaultHeight = 24
	canvasHeight  = 12
)

// frameMsg carries the time of a display frame.
type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(anim.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the bubbletea model of the preview.
type Model struct {
	width  int
	height int

	section Section
	graph   neural.Graph
	queue   *anim.FrameQueue
	board   *anim.Board
	stats   []content.StatEntry
	values  []int64

	selector *demo.Selector
	progress progress.Model
	help     help.Model
	keys     keyMap
	styles   Styles

	quitting bool
}

type options struct {
	nodes           int
	maxConnections  int
	seed            uint64
	counterDuration time.Duration
	tokens          theme.Tokens
}

// Option configures the preview.
type Option func(*options)

// WithGraph sets the size and seed of the hero graph. A zero seed draws a
// fresh graph every time the preview starts.
func WithGraph(nodes, maxConnections int, seed uint64) Option {
	return func(o *options) {
		o.nodes = nodes
		o.maxConnections = maxConnections
		o.seed = seed
	}
}

// WithCounterDuration sets the stats counter animation time.
func WithCounterDuration(d time.Duration) Option {
	return func(o *options) {
		o.counterDuration = d
	}
}

// WithTokens sets the palette the styles derive from.
func WithTokens(t theme.Tokens) Option {
	return func(o *options) {
		o.tokens = t
	}
}

// New returns a preview model showing the hero section.
func New(opts ...Option) *Model {
	o := options{
		nodes:           neural.DefaultNodeCount,
		maxConnections:  neural.DefaultMaxConnections,
		counterDuration: anim.DefaultDuration,
		tokens:          theme.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	styles := NewStyles(o.tokens)
	m := &Model{
		width:    defaultWidth,
		height:   defaultHeight,
		section:  SectionHero,
		graph:    neural.NewSeededGenerator(o.seed).Generate(o.nodes, o.maxConnections),
		queue:    anim.NewFrameQueue(),
		stats:    content.Stats(),
		selector: demo.NewSelector(),
		progress: progress.New(
			progress.WithGradient(styles.GradientStart, styles.GradientEnd),
			progress.WithWidth(defaultWidth/2),
		),
		help:   help.New(),
		keys:   newKeyMap(),
		styles: styles,
	}

	targets := make([]float64, len(m.stats))
	for i, s := range m.stats {
		targets[i] = s.Value
	}
	m.values = make([]int64, len(m.stats))
	m.board = anim.NewBoard(m.queue, o.counterDuration, targets, func(i int, v int64) {
		m.values[i] = v
	})
	return m
}

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles key presses, resizes and frames.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width/2, 10)
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.queue.Flush(time.Time(msg))
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.board.Teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.SetSection((m.section + 1) % sectionCount)
	case key.Matches(msg, m.keys.Prev):
		m.SetSection((m.section + sectionCount - 1) % sectionCount)
	case key.Matches(msg, m.keys.Step1):
		m.selectStep(1)
	case key.Matches(msg, m.keys.Step2):
		m.selectStep(2)
	case key.Matches(msg, m.keys.Step3):
		m.selectStep(3)
	case key.Matches(msg, m.keys.Scan):
		m.selector.NextScan()
	case key.Matches(msg, m.keys.Play):
		m.selector.TogglePlay()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// selectStep jumps to the demo section and shows step id.
func (m *Model) selectStep(id int) {
	if err := m.selector.Select(id); err != nil {
		return
	}
	m.SetSection(SectionDemo)
}

// SetSection switches the visible section. Showing the stats section for
// the first time starts the counters.
func (m *Model) SetSection(s Section) {
	m.section = s
	m.board.SetVisible(s == SectionStats)
}

// Section returns the visible section.
func (m *Model) Section() Section { return m.section }

// Selector returns the demo walkthrough state.
func (m *Model) Selector() *demo.Selector { return m.selector }

// Counters returns the displayed stats values.
func (m *Model) Counters() []int64 {
	out := make([]int64, len(m.values))
	copy(out, m.values)
	return out
}

// CountersStarted reports whether the stats counters have been started.
func (m *Model) CountersStarted() bool { return m.board.Started() }

// Quitting reports whether the user asked to quit.
func (m *Model) Quitting() bool { return m.quitting }

// View renders the visible section with the tab bar and help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.section {
	case SectionHero:
		body = m.viewHero()
	case SectionFeatures:
		body = m.viewFeatures()
	case SectionStats:
		body = m.viewStats()
	case SectionDemo:
		body = m.viewDemo()
	case SectionFooter:
		body = m.viewFooter()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		"",
		body,
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}

func (m *Model) viewTabs() string {
	tabs := make([]string, 0, sectionCount)
	for s := range sectionCount {
		style := m.styles.Tab
		if s == m.section {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) viewHero() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(content.ProductName))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Revolutionary AI-powered neuroimaging platform"))
	b.WriteString("\n\n")

	highlights := make([]string, 0, len(content.HeroHighlights()))
	for _, hl := range content.HeroHighlights() {
		highlights = append(highlights, m.styles.Accent.Render("◆ ")+hl.Text)
	}
	b.WriteString(strings.Join(highlights, "   "))
	b.WriteString("\n")

	canvas := NewCanvas(max(m.width-2, 0), canvasHeight)
	DrawGraph(canvas, m.graph)
	b.WriteString(m.styles.Graph.Render(canvas.String()))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d nodes, %d edges", len(m.graph.Nodes), len(m.graph.Edges))))
	return b.String()
}

func (m *Model) viewFeatures() string {
	features := content.Features()
	cardWidth := max(m.width/2-4, 20)
	cards := make([]string, len(features))
	for i, f := range features {
		cards[i] = m.styles.Card.Width(cardWidth).Render(
			m.styles.Title.Render(f.Title) + "  " + m.styles.Success.Render(f.Stat) + "\n" +
				m.styles.Muted.Render(f.Description),
		)
	}

	rows := make([]string, 0, (len(cards)+1)/2)
	for i := 0; i < len(cards); i += 2 {
		end := min(i+2, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) viewStats() string {
	cards := make([]string, len(m.stats))
	for i, s := range m.stats {
		cards[i] = m.styles.Card.Render(
			m.styles.Stat.Render(s.Display(m.values[i])) + "\n" +
				s.Label + "\n" +
				m.styles.Muted.Render(s.Description),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) viewDemo() string {
	steps := m.selector.Steps()
	cards := make([]string, len(steps))
	for i, s := range steps {
		style := m.styles.Card
		if m.selector.Visible(s.ID) {
			style = m.styles.Selected
		}
		cards[i] = style.Render(
			m.styles.Title.Render(strconv.Itoa(s.ID)+". "+s.Title) + "\n" +
				m.statusStyle(s.Status).Render(s.Status.Label()),
		)
	}

	play := "▶ play"
	if m.selector.Playing() {
		play = "❚❚ pause"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.viewPanel(),
		"",
		m.styles.Muted.Render(play),
	)
}

func (m *Model) statusStyle(s content.StepStatus) lipgloss.Style {
	switch s {
	case content.StatusCompleted:
		return m.styles.Success
	case content.StatusProcessing:
		return m.styles.Accent
	default:
		return m.styles.Muted
	}
}

// viewPanel renders the panel of the selected step.
func (m *Model) viewPanel() string {
	var b strings.Builder
	switch m.selector.Selected() {
	case 1:
		b.WriteString(m.styles.Title.Render("Upload Brain Scan") + "\n")
		for i, s := range content.SampleScans() {
			marker := "  "
			line := fmt.Sprintf("%s (%s, %s)", s.Name, s.Modality, s.Size)
			if i == m.selector.Scan() {
				marker = m.styles.Accent.Render("> ")
				line = m.styles.Accent.Render(line)
			}
			b.WriteString(marker + line + "\n")
		}
	case 2:
		b.WriteString(m.styles.Title.Render("AI Analysis in Progress") + "\n")
		for _, item := range content.ProcessingChecklist() {
			mark := m.styles.Muted.Render("○")
			switch item.State {
			case "done":
				mark = m.styles.Success.Render("✓")
			case "running":
				mark = m.styles.Accent.Render("◌")
			}
			b.WriteString(mark + " " + item.Label + "\n")
		}
		b.WriteString(m.progress.ViewAs(float64(content.ProcessingProgress) / 100))
	case 3:
		b.WriteString(m.styles.Title.Render("Analysis Results") + "\n")
		for _, f := range content.ReportFindings() {
			b.WriteString(fmt.Sprintf("%s: %s %s\n", f.Title, m.styles.Success.Render(f.Value), m.styles.Muted.Render(f.Note)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewFooter() string {
	groups := content.FooterGroups()
	columns := make([]string, 0, len(groups)+1)
	for _, g := range groups {
		var b strings.Builder
		b.WriteString(m.styles.Title.Render(site.CategoryTitle(g.Category)))
		for _, l := range g.Links {
			b.WriteString("\n" + l.Name)
		}
		columns = append(columns, m.styles.Card.Render(b.String()))
	}

	contact := content.ContactDetails()
	columns = append(columns, m.styles.Card.Render(
		m.styles.Title.Render("Contact")+"\n"+contact.Email+"\n"+contact.Phone+"\n"+contact.Location,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.styles.Muted.Render(content.Copyright),
	)
}
