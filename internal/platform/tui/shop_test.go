package tui

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cavyn/internal/audio"
	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/storage"
)

func newShop(t *testing.T, coins int) (ShopModel, *storage.Store, *audio.Recorder) {
	t.Helper()
	tracks := config.DefaultCavynConfig().Upgrades
	store, err := storage.Open(filepath.Join(t.TempDir(), "save.yaml"), tracks, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Bank(coins); err != nil {
		t.Fatal(err)
	}
	rec := &audio.Recorder{}
	return NewShopModel(store, tracks, rec, 80, 24), store, rec
}

func TestShopPurchase(t *testing.T) {
	m, store, rec := newShop(t, 100)

	// First row is the extra jump at 150.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ShopModel)
	if !strings.Contains(m.Status(), "costs 150") {
		t.Errorf("Status() = %q, expected the missing price", m.Status())
	}
	if store.Level("jumps") != 0 {
		t.Error("jumps bought without funds")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ShopModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ShopModel)

	if store.Level("speed") != 1 {
		t.Errorf("Level(speed) = %d, expected 1", store.Level("speed"))
	}
	if store.Data().BankedCoins != 50 {
		t.Errorf("BankedCoins = %d, expected 50", store.Data().BankedCoins)
	}
	if got := rec.Played(); !slices.Equal(got, []core.Sound{"upgrade"}) {
		t.Errorf("Played() = %v, expected [upgrade]", got)
	}
	if !strings.Contains(m.View(), "1 / 5") {
		t.Error("View() does not show the new speed level")
	}
}

func TestShopView(t *testing.T) {
	m, _, _ := newShop(t, 42)
	view := m.View()
	for _, want := range []string{"UPGRADE SHOP", "Banked 42 coins", "Coin magnet"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit the shop")
	}
	if next.(ShopModel).View() != "" {
		t.Error("View() after quitting should be empty")
	}
}
