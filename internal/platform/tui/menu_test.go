package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func menuKeys(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelectsModeAndDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m = menuKeys(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	result := m.Result()
	if result.GameID != "tetris_bag" {
		t.Errorf("Expected tetris_bag, got %q", result.GameID)
	}
	if result.Difficulty != "normal" {
		t.Errorf("Expected normal difficulty, got %q", result.Difficulty)
	}
	if result.Quit {
		t.Error("Selecting a mode is not quitting")
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = menuKeys(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	if got := m.Difficulty(); got != "fixed" {
		t.Errorf("Expected wrap to fixed, got %q", got)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKeys(t, NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("Tab should open the scoreboard")
	}
	if got := m.Result().GameID; got != "tetris" {
		t.Errorf("Scoreboard should open at the highlighted mode, got %q", got)
	}

	m = menuKeys(t, NewMenuModel(nil, core.DefaultConfig()), runeKey("q"))
	if !m.Result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(storage.Result{Mode: "tetris", Score: 4200}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	if m.items[0].GameID != "tetris" || m.items[0].Best != 4200 {
		t.Errorf("Unexpected first item: %+v", m.items[0])
	}
}
