package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

func newBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.Run{
		{GameID: "alpha", Score: 300, Level: 3, MaxCombo: 7, Duration: 75, Source: storage.SourceSSH},
		{GameID: "alpha", Score: 900, Level: 5, MaxCombo: 12, Duration: 130},
		{GameID: "alpha", Score: 100, Level: 1, MaxCombo: 2, Duration: 20, Source: storage.SourceBot},
		{GameID: "beta", Score: 55, Level: 1, MaxCombo: 3, Duration: 40, Source: storage.SourceWeb},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	return store
}

func newBoard(t *testing.T) ScoreboardModel {
	t.Helper()
	m := NewScoreboardModel(newBoardStore(t), 100, 30)
	m.games = []registry.GameInfo{{ID: "alpha", Title: "Alpha"}, {ID: "beta", Title: "Beta"}}
	m.reload()
	return m
}

func boardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb, cmd
}

func scores(runs []storage.Run) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Score
	}
	return out
}

func TestScoreboardTopAndRecent(t *testing.T) {
	m := newBoard(t)
	if got := scores(m.runs); len(got) != 3 || got[0] != 900 || got[2] != 100 {
		t.Fatalf("top runs = %v, want best first", got)
	}
	if m.stats == nil || m.stats.GamesCount != 3 || m.stats.HighScore != 900 {
		t.Errorf("stats = %+v", m.stats)
	}

	m, _ = boardUpdate(t, m, keyMsg("v"))
	if m.view != viewRecent {
		t.Fatal("v should switch to recent runs")
	}
	if got := scores(m.runs); got[0] != 100 || got[2] != 300 {
		t.Errorf("recent runs = %v, want newest first", got)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("view title should follow the board")
	}

	m, _ = boardUpdate(t, m, keyMsg("v"))
	if m.view != viewTop {
		t.Error("v should toggle back to high scores")
	}
}

func TestScoreboardSwitchesGame(t *testing.T) {
	m := newBoard(t)

	m, _ = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.game != 1 || len(m.runs) != 1 || m.runs[0].Source != storage.SourceWeb {
		t.Fatalf("after right: game %d runs %+v", m.game, m.runs)
	}

	m, _ = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.game != 0 {
		t.Errorf("right should wrap to the first game, got %d", m.game)
	}
	m, _ = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.game != 1 {
		t.Errorf("left should wrap to the last game, got %d", m.game)
	}
}

func TestScoreboardRows(t *testing.T) {
	rows := runRows([]storage.Run{{Score: 900, Level: 5, MaxCombo: 12, Duration: 130, Source: storage.SourceSSH}})
	want := []string{"1", "900", "5", "x12", "2:10", storage.SourceSSH}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %s = %q, want %q", runColumns[i].Title, rows[0][i], w)
		}
	}
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	m.embedded = true
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}

	m, cmd := boardUpdate(t, m, keyMsg("esc"))
	if !m.IsGoingBack() || cmd != nil {
		t.Error("embedded back should return to the parent without quitting")
	}
	if m.View() != "" {
		t.Error("view should blank once leaving")
	}
}
