package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cavyn/internal/audio"
	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn"
)

// Options configures a game session.
type Options struct {
	Game    *cavyn.Game
	Runtime core.RuntimeConfig
	Sink    audio.Sink                // Optional; nil plays silent
	Watcher *config.Watcher           // Optional; hot-reloads tunables
	Tune    func(*config.CavynConfig) // Optional; applied to every reloaded config
	Logger  *log.Logger               // Optional; nil discards
}

// configMsg carries a reloaded config from the watcher goroutine.
type configMsg struct{ cfg config.CavynConfig }

// configErrMsg carries a watcher failure.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model running one Cavyn session.
type Model struct {
	game     *cavyn.Game
	screen   *core.Screen
	runtime  core.RuntimeConfig
	keys     KeyMap
	holds    *HoldTracker
	help     help.Model
	sink     audio.Sink
	watcher  *config.Watcher
	tune     func(*config.CavynConfig)
	log      *log.Logger
	state    core.GameState
	width    int
	height   int
	quitting bool
}

// NewModel creates the session model and starts a run.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	sink := opts.Sink
	if sink == nil {
		sink = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts.Game.Reset(cfg)

	m := Model{
		game:    opts.Game,
		runtime: cfg,
		keys:    DefaultKeyMap(),
		holds:   NewHoldTracker(firstHoldTimeout, repeatHoldTimeout),
		help:    help.New(),
		sink:    sink,
		watcher: opts.Watcher,
		tune:    opts.Tune,
		log:     logger,
		state:   opts.Game.State(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.fieldHeight())
	m.help.Width = m.width
	return m
}

// fieldHeight is the screen height left after the help line.
func (m Model) fieldHeight() int {
	return max(1, m.height-1)
}

// Init starts the tick loop and the config listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher), waitForConfigErr(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForConfig blocks on the watcher until a new config arrives.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-w.Configs
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

func waitForConfigErr(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-w.Errors
		if !ok {
			return nil
		}
		return configErrMsg{err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		cfg := msg.cfg
		if m.tune != nil {
			m.tune(&cfg)
		}
		m.game.SetConfig(cfg)
		m.log.Info("config reloaded; applies from the next run", "path", m.watcher.Path())
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.log.Warn("config reload failed", "err", msg.err)
		return m, waitForConfigErr(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("cannot save screenshot", "err", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	now := time.Now()
	for _, a := range m.keys.Actions(msg) {
		m.holds.Press(a, now)
	}
	return m, nil
}

// handleResize keeps the run going; the renderer reports a too-small
// terminal instead of resetting.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(m.width, m.fieldHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and plays its sounds.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasOver := m.state.GameOver

	result := m.game.Step(m.holds.Frame(now))
	for _, s := range result.Sounds {
		m.sink.Play(s)
	}
	m.state = result.State

	if wasOver && !m.state.GameOver {
		// A restart drops keys still held from the previous run.
		m.holds.Reset()
		m.log.Debug("run restarted")
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: no home directory: %w", err)
	}
	dir := filepath.Join(home, ".cavyn", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write %s: %w", path, err)
	}
	m.log.Info("screenshot saved", "path", path)
	return nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.help.ShowAll {
		return helpStyle.Render(m.help.View(m.keys))
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last simulated game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for a session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if model.sink != nil {
		model.sink.Close()
	}
	return err
}
