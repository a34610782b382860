// Package views provides the individual views for the TUI.
package views

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/emotionai/internal/analysis"
	"github.com/f3rmion/emotionai/internal/classify"
	"github.com/f3rmion/emotionai/internal/emotion"
	"github.com/f3rmion/emotionai/internal/render"
	"github.com/f3rmion/emotionai/internal/tui/bigchar"
	"go.uber.org/zap"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f1faee"))

	triggerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f1faee")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 2)

	triggerDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true)
)

const (
	inputHeight = 4
	bannerRows  = 4
	bannerCols  = 32
)

// Message types
type analysisDoneMsg struct {
	result emotion.Result
	err    error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// KeyMap holds the analyze view key bindings.
type KeyMap struct {
	Analyze  key.Binding
	Newline  key.Binding
	Copy     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the analyze view key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Analyze:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		Newline:  key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "newline")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy result")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	}
}

// CopyFunc copies text somewhere the user can paste it from.
type CopyFunc func(text string) error

// AnalyzeModel is the text analysis view: input, trigger, results and history.
type AnalyzeModel struct {
	keys    KeyMap
	input   textarea.Model
	spinner spinner.Model
	output  viewport.Model

	session    analysis.Session
	classifier classify.Classifier
	log        *zap.SugaredLogger
	banner     *bigchar.Renderer
	copy       CopyFunc

	copied bool

	width  int
	height int
}

// NewAnalyzeModel creates the analyze view. banner and copyFn may be nil.
func NewAnalyzeModel(c classify.Classifier, log *zap.SugaredLogger, banner *bigchar.Renderer, copyFn CopyFunc) AnalyzeModel {
	keys := DefaultKeyMap()

	ta := textarea.New()
	ta.Placeholder = "Enter your text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.SetWidth(60)
	ta.KeyMap.InsertNewline = keys.Newline
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	vp := viewport.New(60, 10)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   keys.PageUp,
		PageDown: keys.PageDown,
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	m := AnalyzeModel{
		keys:       keys,
		input:      ta,
		spinner:    sp,
		output:     vp,
		session:    analysis.NewSession(),
		classifier: c,
		log:        log,
		banner:     banner,
		copy:       copyFn,
	}
	m.refreshOutput()
	return m
}

// WithSession replaces the session, mainly so tests can fix the clock.
func (m AnalyzeModel) WithSession(s analysis.Session) AnalyzeModel {
	m.session = s
	m.refreshOutput()
	return m
}

// Session returns the current analysis state.
func (m AnalyzeModel) Session() analysis.Session {
	return m.session
}

// Keys returns the view's key bindings.
func (m AnalyzeModel) Keys() KeyMap {
	return m.keys
}

// SetSize updates the view dimensions.
func (m *AnalyzeModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.input.SetWidth(width)

	// title, input, blank line, trigger, blank line
	outputHeight := height - (inputHeight + 4)
	if outputHeight < 3 {
		outputHeight = 3
	}
	m.output.Width = width
	m.output.Height = outputHeight
	m.refreshOutput()
}

// Init starts the cursor blinking.
func (m AnalyzeModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m AnalyzeModel) Update(msg tea.Msg) (AnalyzeModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Analyze):
			return m.submit()
		case key.Matches(msg, m.keys.Copy):
			return m.copyResult()
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case analysisDoneMsg:
		if msg.err != nil {
			m.log.Errorw("analysis failed",
				"error", msg.err,
				"chars", len([]rune(m.session.Pending())),
			)
			m.session.Fail()
		} else {
			m.session.Resolve(msg.result)
			m.log.Debugw("analysis done",
				"emotion", msg.result.Emotion,
				"confidence", msg.result.Confidence,
				"history", m.session.History().Len(),
			)
			m.output.GotoTop()
		}
		m.refreshOutput()
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.session.SetInput(m.input.Value())

	return m, tea.Batch(cmds...)
}

// submit starts an analysis of the current input if the trigger is enabled.
func (m AnalyzeModel) submit() (AnalyzeModel, tea.Cmd) {
	m.session.SetInput(m.input.Value())

	text, ok := m.session.Submit()
	if !ok {
		return m, nil
	}
	m.log.Debugw("analysis started", "chars", len([]rune(text)))

	c := m.classifier
	classifyCmd := func() tea.Msg {
		res, err := c.Classify(context.Background(), text)
		return analysisDoneMsg{result: res, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, classifyCmd)
}

func (m AnalyzeModel) copyResult() (AnalyzeModel, tea.Cmd) {
	res := m.session.Result()
	if res == nil || m.copy == nil {
		return m, nil
	}

	if err := m.copy(render.Summary(*res)); err != nil {
		m.log.Warnw("copy to clipboard failed", "error", err)
		return m, nil
	}
	m.copied = true
	return m, clearCopiedAfter(2 * time.Second)
}

// refreshOutput re-renders the result and history into the viewport.
func (m *AnalyzeModel) refreshOutput() {
	var parts []string

	if res := m.session.Result(); res != nil {
		var banner string
		if cols := min(bannerCols, m.width/2-10); m.banner != nil && cols >= 12 {
			banner = m.banner.Render(res.Emotion.String(), cols, bannerRows)
		}
		parts = append(parts, render.Result(res, render.Options{Width: m.width, Banner: banner}))
	}
	if history := render.History(m.session.History(), m.width); history != "" {
		parts = append(parts, history)
	}

	if len(parts) == 0 {
		m.output.SetContent(placeholderStyle.Render("Results will appear here."))
		return
	}
	m.output.SetContent(strings.Join(parts, "\n\n"))
}

// View renders the analyze view.
func (m AnalyzeModel) View() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Analyze Text"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderTrigger())
	if m.copied {
		b.WriteString("  ")
		b.WriteString(copiedStyle.Render("Copied!"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.output.View())

	return b.String()
}

func (m AnalyzeModel) renderTrigger() string {
	switch {
	case m.session.Loading():
		return m.spinner.View() + " " + loadingStyle.Render("Analyzing...")
	case m.session.CanSubmit():
		return triggerStyle.Render("➤ Analyze Emotions")
	default:
		return triggerDisabledStyle.Render("➤ Analyze Emotions")
	}
}
