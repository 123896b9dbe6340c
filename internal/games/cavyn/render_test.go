package cavyn

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

func TestRenderTooSmall(t *testing.T) {
	g := newQuietGame(t)
	scr := core.NewScreen(40, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Errorf("Render() on 40x10 = %q, expected a size warning", scr.String())
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newQuietGame(t)
	w, h := g.MinScreen()
	if w != 75 || h != 23 {
		t.Errorf("MinScreen() = %dx%d, expected 75x23", w, h)
	}

	g.grid.Set(3, 10, world.NewTile(world.KindChest))
	g.run.Coins = 12
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"CAVYN", "Coins  12", "Biome  cavern", "@", "■"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Contains(out, "?") {
		t.Error("Render() drew an unknown sprite")
	}
}

func TestRenderOfferAndDeath(t *testing.T) {
	g := newQuietGame(t)
	g.run.Coins = g.cfg.Perks.Threshold
	g.checkPerkOffer()
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Choose a perk") {
		t.Error("offer box not drawn")
	}
	if !strings.Contains(out, "> "+g.Offer().Selected().String()) {
		t.Error("selected perk not highlighted")
	}

	g = newQuietGame(t)
	g.kill(causeCrush)
	g.Step(idle())
	g.Render(scr)
	out = scr.String()
	if !strings.Contains(out, "YOU DIED") || !strings.Contains(out, "R to restart") {
		t.Errorf("death screen = %q", out)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		frac     float64
		expected string
	}{
		{0, "[····]"},
		{0.5, "[██··]"},
		{1, "[████]"},
		{2, "[████]"},
		{-1, "[····]"},
	}
	for _, tt := range tests {
		if got := bar(tt.frac, 4); got != tt.expected {
			t.Errorf("bar(%v, 4) = %q, expected %q", tt.frac, got, tt.expected)
		}
	}
}
