package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// ExternalChangedMsg tells the app the extended-lookup toggle flipped.
type ExternalChangedMsg struct {
	Enabled bool
}

const (
	rowExternal = iota
	rowSetKey
	rowClearKey
	rowCount
)

// SettingsScreen lets the learner flip extended dictionary lookups on or
// off and manage the stored API key.
type SettingsScreen struct {
	settings    *store.SettingsRepo
	credentials *store.Credentials

	selected    int
	editingKey  bool
	keyInput    components.TextInput
	useExternal bool
	hasKey      bool
	notice      string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(settings *store.SettingsRepo, credentials *store.Credentials) *SettingsScreen {
	s := &SettingsScreen{
		settings:    settings,
		credentials: credentials,
	}
	if settings != nil {
		s.useExternal, _ = settings.GetBool(context.Background(), store.SettingUseExternal)
	}
	if credentials != nil {
		_, s.hasKey = credentials.Get()
	}
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editingKey {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.editingKey {
		switch kmsg.String() {
		case "enter":
			return s.saveKey()
		case "esc":
			s.editingKey = false
			return s, nil
		}
		var cmd tea.Cmd
		s.keyInput, cmd = s.keyInput.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "enter":
		return s.activate()
	}
	return s, nil
}

func (s *SettingsScreen) activate() (screen.Screen, tea.Cmd) {
	switch s.selected {
	case rowExternal:
		s.useExternal = !s.useExternal
		if s.settings != nil {
			if err := s.settings.SetBool(context.Background(), store.SettingUseExternal, s.useExternal); err != nil {
				s.notice = "Could not save setting: " + err.Error()
				s.useExternal = !s.useExternal
				return s, nil
			}
		}
		s.notice = ""
		enabled := s.useExternal
		return s, func() tea.Msg { return ExternalChangedMsg{Enabled: enabled} }

	case rowSetKey:
		s.editingKey = true
		s.notice = ""
		s.keyInput = components.NewTextInput("Paste your API key...", 128)
		return s, s.keyInput.Init()

	case rowClearKey:
		if s.credentials != nil {
			s.credentials.Clear()
		}
		s.hasKey = false
		s.notice = "API key cleared."
	}
	return s, nil
}

func (s *SettingsScreen) saveKey() (screen.Screen, tea.Cmd) {
	value := s.keyInput.Value()
	if s.credentials != nil && s.credentials.Set(value) {
		s.hasKey = true
		s.notice = "API key saved."
	} else {
		s.notice = "API key cannot be blank."
	}
	s.editingKey = false
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	external := "off"
	if s.useExternal {
		external = "on"
	}
	keyState := "not set"
	if s.hasKey {
		keyState = "set"
	}

	rows := []string{
		fmt.Sprintf("Extended lookups: %s", external),
		fmt.Sprintf("Set API key (%s)", keyState),
		"Clear API key",
	}

	var b strings.Builder
	b.WriteString("\n\n")

	for i, row := range rows {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected && !s.editingKey {
			prefix = "  ▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+row)))
		b.WriteString("\n")
	}

	if s.editingKey {
		b.WriteString("\n")
		inputBox := theme.Card.Width(minInt(width-8, 64)).Render(s.keyInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inputBox))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.notice)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Extended lookups read entries from your own dictionary file.")))

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
