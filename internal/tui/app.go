package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/emotionai/internal/classify"
	"github.com/f3rmion/emotionai/internal/tui/bigchar"
	"github.com/f3rmion/emotionai/internal/tui/views"
	"go.uber.org/zap"
)

// headerHeight is the number of lines used by the title block.
const headerHeight = 4

// Options configures the application.
type Options struct {
	Classifier classify.Classifier
	Logger     *zap.SugaredLogger
	Banner     *bigchar.Renderer // nil disables banner art
	Copy       views.CopyFunc    // nil disables copying
}

// appKeys are the global key bindings.
type appKeys struct {
	Quit key.Binding
	Help key.Binding
}

// keyMap combines global and view bindings for the help footer.
type keyMap struct {
	app  appKeys
	view views.KeyMap
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.view.Analyze, k.view.Newline, k.view.Copy, k.app.Help, k.app.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.view.Analyze, k.view.Newline, k.view.Copy},
		{k.view.PageUp, k.view.PageDown},
		{k.app.Help, k.app.Quit},
	}
}

// AppModel is the main TUI model.
type AppModel struct {
	keys keyMap
	help help.Model
	log  *zap.SugaredLogger

	// Layout state
	width  int
	height int
	ready  bool

	analyzeView views.AnalyzeModel

	// Help overlay
	showHelp bool
}

// NewApp creates a new TUI application.
func NewApp(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	view := views.NewAnalyzeModel(opts.Classifier, log, opts.Banner, opts.Copy)

	return AppModel{
		keys: keyMap{
			app: appKeys{
				Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
				Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
			},
			view: view.Keys(),
		},
		help:        help.New(),
		log:         log,
		analyzeView: view,
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	m.log.Infow("session started")
	return m.analyzeView.Init()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.app.Quit):
			m.log.Infow("session ended", "history", m.analyzeView.Session().History().Len())
			return m, tea.Quit
		case key.Matches(msg, m.keys.app.Help):
			m.showHelp = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width

		// padding plus help footer
		m.analyzeView.SetSize(m.width-4, m.height-headerHeight-4)
		return m, nil
	}

	var cmd tea.Cmd
	m.analyzeView, cmd = m.analyzeView.Update(msg)
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.analyzeView.View(),
		m.help.View(m.keys),
	)

	return ContentStyle.
		Width(m.width).
		MaxHeight(m.height).
		Render(content)
}

func (m AppModel) renderHeader() string {
	title := TitleStyle.Render("✨ Emotion") + TitleAccentStyle.Render("AI")
	subtitle := SubtitleStyle.Render("Understand the emotions behind your text")
	features := FeatureStyle.Render("AI-powered analysis • Real-time processing • Primary and secondary emotions")
	return title + "\n" + subtitle + "\n" + features + "\n"
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("EmotionAI") + "\n"

	helpText += HelpSectionStyle.Render("Analyze") + "\n"
	for _, b := range []key.Binding{m.keys.view.Analyze, m.keys.view.Newline, m.keys.view.Copy, m.keys.view.PageUp, m.keys.view.PageDown} {
		helpText += HelpKeyStyle.Render(b.Help().Key) + HelpDescStyle.Render(b.Help().Desc) + "\n"
	}

	helpText += HelpSectionStyle.Render("Global") + "\n"
	for _, b := range []key.Binding{m.keys.app.Help, m.keys.app.Quit} {
		helpText += HelpKeyStyle.Render(b.Help().Key) + HelpDescStyle.Render(b.Help().Desc) + "\n"
	}

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
