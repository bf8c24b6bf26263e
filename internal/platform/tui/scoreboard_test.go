package tui

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bakery/internal/storage"
)

func TestScoreboardLoadsSessions(t *testing.T) {
	store := openStore(t)
	store.SaveSession(storage.SessionRecord{SessionID: uuid.NewString(), GameID: "bakery", Score: 2, Duration: 60})
	store.SaveSession(storage.SessionRecord{SessionID: uuid.NewString(), GameID: "bakery", Score: 4, Duration: 60})

	m := NewScoreboardModel(store, 100, 30)
	m.loadScores("bakery")

	if len(m.scores) != 2 || m.scores[0].Score != 4 {
		t.Fatalf("scores = %+v", m.scores)
	}
	line := m.statsLine()
	for _, want := range []string{"2 sessions", "3.0 cakes", "2m0s"} {
		if !strings.Contains(line, want) {
			t.Errorf("stats line %q lacks %q", line, want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	m.loadScores("bakery")
	if m.scores != nil || m.statsLine() != "" {
		t.Error("expected an empty board")
	}
	if m.showSidebar {
		t.Error("narrow screens have no sidebar")
	}
}

func TestShortSession(t *testing.T) {
	if got := shortSession("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortSession = %q", got)
	}
	if got := shortSession("abc"); got != "abc" {
		t.Errorf("shortSession = %q", got)
	}
}
