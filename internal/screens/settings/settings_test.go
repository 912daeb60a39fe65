package settings

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func openTestSettings(t *testing.T) *SettingsScreen {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "lexiz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(st.Settings(), st.Credentials())
}

func TestToggleExternalEmitsChange(t *testing.T) {
	s := openTestSettings(t)
	if s.useExternal {
		t.Fatal("expected extended lookups off by default")
	}

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SettingsScreen)

	if !s.useExternal {
		t.Error("expected toggle to turn extended lookups on")
	}
	if cmd == nil {
		t.Fatal("expected a change notification command")
	}
	msg, ok := cmd().(ExternalChangedMsg)
	if !ok {
		t.Fatalf("expected ExternalChangedMsg, got %T", cmd())
	}
	if !msg.Enabled {
		t.Error("expected Enabled=true")
	}
}

func TestToggleSurvivesReopen(t *testing.T) {
	s := openTestSettings(t)
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SettingsScreen)

	reopened := New(s.settings, s.credentials)
	if !reopened.useExternal {
		t.Error("expected the toggle to persist")
	}
}

func TestSaveAPIKey(t *testing.T) {
	s := openTestSettings(t)

	// Move to the key row and start editing.
	updated, _ := s.Update(keyPress('j'))
	s = updated.(*SettingsScreen)
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SettingsScreen)
	if !s.editingKey {
		t.Fatal("expected key editing mode")
	}

	for _, r := range "sk-test-1234" {
		updated, _ = s.Update(keyPress(r))
		s = updated.(*SettingsScreen)
	}
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SettingsScreen)

	if s.editingKey {
		t.Error("expected editing mode to end")
	}
	if !s.hasKey {
		t.Error("expected a stored key")
	}
	key, ok := s.credentials.Get()
	if !ok || key != "sk-test-1234" {
		t.Errorf("expected stored key %q, got %q (ok=%v)", "sk-test-1234", key, ok)
	}
}

func TestBlankKeyRejected(t *testing.T) {
	s := openTestSettings(t)

	updated, _ := s.Update(keyPress('j'))
	s = updated.(*SettingsScreen)
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SettingsScreen)
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SettingsScreen)

	if s.hasKey {
		t.Error("expected blank key to be rejected")
	}
}

func TestClearAPIKey(t *testing.T) {
	s := openTestSettings(t)
	s.credentials.Set("sk-test-1234")
	s.hasKey = true

	s.selected = rowClearKey
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SettingsScreen)

	if s.hasKey {
		t.Error("expected key state cleared")
	}
	if _, ok := s.credentials.Get(); ok {
		t.Error("expected stored key removed")
	}
}

func TestEscapePops(t *testing.T) {
	s := openTestSettings(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on escape")
	}
}
