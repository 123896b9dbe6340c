package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cavyn/internal/audio"
	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/storage"
)

// ShopKeyMap defines the key bindings for the upgrade shop.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Buy, k.Quit}}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "leave"),
		),
	}
}

// ShopModel is the Bubble Tea model for the upgrade shop.
type ShopModel struct {
	store    *storage.Store
	tracks   []config.UpgradeConfig
	sink     audio.Sink
	table    table.Model
	help     help.Model
	keys     ShopKeyMap
	status   string
	failed   bool
	width    int
	height   int
	quitting bool
}

// NewShopModel creates the shop over the given save and upgrade tracks.
func NewShopModel(store *storage.Store, tracks []config.UpgradeConfig, sink audio.Sink, width, height int) ShopModel {
	if sink == nil {
		sink = audio.Silent{}
	}
	m := ShopModel{
		store:  store,
		tracks: tracks,
		sink:   sink,
		help:   help.New(),
		keys:   DefaultShopKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the upgrade table.
func (m *ShopModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Upgrade", Width: 18},
		{Title: "Level", Width: 10},
		{Title: "Next", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(m.tracks)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows refreshes levels and prices from the save.
func (m *ShopModel) updateTableRows() {
	rows := make([]table.Row, len(m.tracks))
	for i, tr := range m.tracks {
		lv := m.store.Level(tr.ID)
		next := "max"
		if cost, ok := m.store.NextCost(tr.ID); ok {
			next = fmt.Sprintf("%d", cost)
		}
		rows[i] = table.Row{
			tr.Title,
			fmt.Sprintf("%d / %d", lv, tr.MaxLevel),
			next,
		}
	}
	m.table.SetRows(rows)
}

// buy purchases the selected upgrade.
func (m *ShopModel) buy() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tracks) {
		return
	}
	tr := m.tracks[i]
	lv, err := m.store.Purchase(tr.ID)
	switch {
	case err == nil:
		m.status = fmt.Sprintf("%s is now level %d", tr.Title, lv)
		m.failed = false
		m.sink.Play("upgrade")
	case errors.Is(err, storage.ErrMaxLevel):
		m.status = fmt.Sprintf("%s is already at max level", tr.Title)
		m.failed = true
	case errors.Is(err, storage.ErrInsufficientFunds):
		cost, _ := m.store.NextCost(tr.ID)
		m.status = fmt.Sprintf("%s costs %d coins", tr.Title, cost)
		m.failed = true
	default:
		m.status = err.Error()
		m.failed = true
	}
	m.updateTableRows()
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Buy):
			m.buy()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("UPGRADE SHOP", m.width)))
	b.WriteString("\n")

	data := m.store.Data()
	wallet := fmt.Sprintf("Banked %d coins   Best run %d", data.BankedCoins, data.HighScore)
	b.WriteString(centerText(wallet, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		if m.failed {
			statusStyle = statusStyle.Foreground(lipgloss.Color("9"))
		}
		b.WriteString(statusStyle.Render(centerText(m.status, m.width)))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Status returns the outcome of the last purchase.
func (m ShopModel) Status() string {
	return m.status
}

// centerText pads text to the middle of the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunShop runs the upgrade shop screen.
func RunShop(store *storage.Store, tracks []config.UpgradeConfig, sink audio.Sink, width, height int) error {
	model := NewShopModel(store, tracks, sink, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
