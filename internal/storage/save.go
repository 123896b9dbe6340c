// Package storage persists the meta progression: a flat YAML save blob with
// banked coins, upgrade levels and the best run.
package storage

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cavyn/internal/config"
)

// DefaultPath is the save location used when none is given.
const DefaultPath = "~/.cavyn/save.yaml"

var (
	ErrUnknownUpgrade    = errors.New("storage: unknown upgrade")
	ErrMaxLevel          = errors.New("storage: upgrade already at max level")
	ErrInsufficientFunds = errors.New("storage: insufficient funds")
)

// Save is the on-disk blob. Keys this version does not know are kept in
// Extra and written back unchanged.
type Save struct {
	BankedCoins int            `yaml:"banked_coins"`
	Upgrades    map[string]int `yaml:"upgrades"`
	HighScore   int            `yaml:"high_score"`
	Extra       map[string]any `yaml:",inline"`
}

// Store guards the save blob and writes it through on every change.
type Store struct {
	mu     sync.Mutex
	path   string
	tracks []config.UpgradeConfig
	data   Save
	log    *log.Logger
}

// Open loads the save at path, creating it with defaults when missing.
// A file that cannot be parsed is replaced by defaults. Upgrade levels are
// back-filled and clamped to the given tracks.
func Open(path string, tracks []config.UpgradeConfig, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	s := &Store{path: path, tracks: tracks, log: logger}
	dirty := false

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		dirty = true
	case err != nil:
		return nil, fmt.Errorf("storage: cannot read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &s.data); err != nil {
			logger.Warn("corrupt save replaced with defaults", "path", path, "err", err)
			s.data = Save{}
			dirty = true
		}
	}

	if s.backfill() {
		dirty = true
	}
	if dirty {
		if err := s.write(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// backfill fills missing upgrade keys and clamps values into range.
// It reports whether anything changed.
func (s *Store) backfill() bool {
	changed := false
	if s.data.Upgrades == nil {
		s.data.Upgrades = make(map[string]int, len(s.tracks))
		changed = true
	}
	for _, t := range s.tracks {
		lv, ok := s.data.Upgrades[t.ID]
		clamped := max(0, min(lv, t.MaxLevel))
		if !ok || clamped != lv {
			s.data.Upgrades[t.ID] = clamped
			changed = true
		}
	}
	if s.data.BankedCoins < 0 {
		s.data.BankedCoins = 0
		changed = true
	}
	if s.data.HighScore < 0 {
		s.data.HighScore = 0
		changed = true
	}
	return changed
}

// Path returns the resolved file location.
func (s *Store) Path() string {
	return s.path
}

// Data returns a copy of the blob.
func (s *Store) Data() Save {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.data
	out.Upgrades = maps.Clone(s.data.Upgrades)
	out.Extra = maps.Clone(s.data.Extra)
	return out
}

// Level returns the purchased level of an upgrade.
func (s *Store) Level(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Upgrades[id]
}

// Bank adds a finished run's coins and records the best run.
func (s *Store) Bank(coins int) error {
	if coins < 0 {
		return fmt.Errorf("storage: cannot bank %d coins", coins)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.BankedCoins += coins
	if coins > s.data.HighScore {
		s.data.HighScore = coins
	}
	return s.write()
}

// Purchase buys the next level of an upgrade with banked coins and returns
// the new level.
func (s *Store) Purchase(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	track, ok := s.track(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	cur := s.data.Upgrades[id]
	cost, ok := track.Cost(cur)
	if !ok {
		return cur, fmt.Errorf("%w: %s is level %d", ErrMaxLevel, id, cur)
	}
	if s.data.BankedCoins < cost {
		return cur, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, id, cost, s.data.BankedCoins)
	}

	s.data.BankedCoins -= cost
	s.data.Upgrades[id] = cur + 1
	s.log.Info("upgrade purchased", "upgrade", id, "level", cur+1, "cost", cost)
	return cur + 1, s.write()
}

// NextCost returns the price of the next level, or false at max level or for
// an unknown upgrade.
func (s *Store) NextCost(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	track, ok := s.track(id)
	if !ok {
		return 0, false
	}
	return track.Cost(s.data.Upgrades[id])
}

func (s *Store) track(id string) (config.UpgradeConfig, bool) {
	for _, t := range s.tracks {
		if t.ID == id {
			return t, true
		}
	}
	return config.UpgradeConfig{}, false
}

// write replaces the file atomically through a temp file in the same
// directory. Callers hold mu or own s exclusively.
func (s *Store) write() error {
	out, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	name := tmp.Name()
	defer os.Remove(name) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot sync save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close save: %w", err)
	}
	if err := os.Rename(name, s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
