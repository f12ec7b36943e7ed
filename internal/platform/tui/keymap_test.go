package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{" ", core.ActionFire, false},
		{"up", core.ActionFire, false},
		{"w", core.ActionFire, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"enter", core.ActionConfirm, false},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.key, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestIsHeld(t *testing.T) {
	held := map[core.Action]bool{
		core.ActionLeft:    true,
		core.ActionRight:   true,
		core.ActionFire:    true,
		core.ActionPause:   false,
		core.ActionRestart: false,
		core.ActionQuit:    false,
	}
	for a, want := range held {
		if got := IsHeld(a); got != want {
			t.Errorf("IsHeld(%v) = %v, expected %v", a, got, want)
		}
	}
}
