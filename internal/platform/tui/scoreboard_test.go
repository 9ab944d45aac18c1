package tui_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slingshot/internal/platform/tui"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
	"github.com/vovakirdan/tui-slingshot/internal/storage"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{} })
}

type fakeScores struct {
	entries map[string][]storage.ScoreEntry
	err     error
	limits  []int
}

func (f *fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[gameID], nil
}

func (f *fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	e := f.entries[gameID]
	stats := &storage.GameStats{GameID: gameID, GamesCount: len(e)}
	for _, s := range e {
		stats.HighScore = max(stats.HighScore, s.Score)
		stats.BestLevel = max(stats.BestLevel, s.Level)
	}
	return stats, nil
}

func TestScoreboardShowsScores(t *testing.T) {
	store := &fakeScores{entries: map[string][]storage.ScoreEntry{
		"scripted": {
			{Score: 900, Level: 5, Player: "alice", CreatedAt: time.Now()},
			{Score: 300, Level: 2, Player: "local", CreatedAt: time.Now()},
		},
	}}

	m := tui.NewScoreboardModel(store, 5, 100, 30)
	if len(m.Scores()) != 2 {
		t.Fatalf("scores = %d, want 2", len(m.Scores()))
	}
	if store.limits[0] != 5 {
		t.Errorf("limit = %d, want 5", store.limits[0])
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Scripted", "900", "alice", "best level 5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := tui.NewScoreboardModel(&fakeScores{}, 10, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty table message missing")
	}

	m = tui.NewScoreboardModel(&fakeScores{err: errors.New("boom")}, 10, 80, 24)
	if !strings.Contains(m.View(), "boom") {
		t.Error("read error not shown")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := tui.NewScoreboardModel(&fakeScores{}, 10, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}
