package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"k", runeKey('k'), core.ActionUp, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"restart r", runeKey('r'), core.ActionRestart, false},
		{"restart n", runeKey('n'), core.ActionRestart, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v/%v, want %v/%v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestSwipeTracker(t *testing.T) {
	area := core.NewRect(10, 5, 20, 10)

	tests := []struct {
		name       string
		start, end [2]int
		want       core.Action
		ok         bool
	}{
		{"drag left", [2]int{25, 10}, [2]int{15, 10}, core.ActionLeft, true},
		{"drag right", [2]int{12, 10}, [2]int{20, 11}, core.ActionRight, true},
		{"drag up", [2]int{15, 13}, [2]int{15, 6}, core.ActionUp, true},
		{"drag down", [2]int{15, 6}, [2]int{16, 12}, core.ActionDown, true},
		{"click", [2]int{15, 10}, [2]int{16, 10}, core.ActionNone, false},
		{"at threshold", [2]int{15, 10}, [2]int{17, 10}, core.ActionNone, false},
		{"starts outside board", [2]int{2, 2}, [2]int{2, 20}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SwipeTracker{Threshold: 2, Area: area}

			if _, ok := s.Handle(mouse(tea.MouseActionPress, tea.MouseButtonLeft, tt.start[0], tt.start[1])); ok {
				t.Fatal("press alone should not produce a move")
			}
			s.Handle(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, tt.end[0], tt.end[1]))

			got, ok := s.Handle(mouse(tea.MouseActionRelease, tea.MouseButtonNone, tt.end[0], tt.end[1]))
			if got != tt.want || ok != tt.ok {
				t.Errorf("swipe %v -> %v = %v/%v, want %v/%v", tt.start, tt.end, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSwipeTrackerIgnoresRightButton(t *testing.T) {
	s := &SwipeTracker{Threshold: 2, Area: core.NewRect(0, 0, 50, 50)}

	s.Handle(mouse(tea.MouseActionPress, tea.MouseButtonRight, 30, 10))
	if _, ok := s.Handle(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 10, 10)); ok {
		t.Error("right button drags should not move")
	}
}
