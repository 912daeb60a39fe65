package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/engine"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// phase tracks where the learner is in the word → sentence → feedback loop.
type phase int

const (
	phaseWord phase = iota
	phaseSentence
	phaseResult
)

// evaluationDoneMsg carries the engine verdict back to the screen.
type evaluationDoneMsg struct {
	Result engine.EvaluationResult
	Err    error
}

// EvaluationRecordedMsg is broadcast after an evaluation is saved so the
// app can refresh its header stats.
type EvaluationRecordedMsg struct{}

// PracticeScreen walks the learner through one evaluation round:
// pick a word, use it in a sentence, read the feedback.
type PracticeScreen struct {
	eng         *engine.Engine
	evaluations *store.EvaluationRepo
	settings    *store.SettingsRepo

	phase    phase
	input    components.TextInput
	word     string
	sentence string
	result   engine.EvaluationResult
	errMsg   string
	busy     bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a new PracticeScreen.
func New(eng *engine.Engine, evaluations *store.EvaluationRepo, settings *store.SettingsRepo) *PracticeScreen {
	return &PracticeScreen{
		eng:         eng,
		evaluations: evaluations,
		settings:    settings,
		input:       components.NewTextInput("Type a word to practice...", 64),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseResult:
		return []layout.KeyHint{
			{Key: "N", Description: "Next word"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluationDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.result = msg.Result
		s.phase = phaseResult
		return s, func() tea.Msg { return EvaluationRecordedMsg{} }

	case tea.KeyMsg:
		switch s.phase {
		case phaseResult:
			switch msg.String() {
			case "n", "N", "enter":
				fresh := New(s.eng, s.evaluations, s.settings)
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: fresh} }
			case "esc":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil

		default:
			if msg.String() == "enter" {
				return s.submit()
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit advances the input phase, kicking off the evaluation once both
// the word and the sentence are in.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	value := s.input.Value()

	switch s.phase {
	case phaseWord:
		if value == "" {
			return s, nil
		}
		s.word = value
		s.phase = phaseSentence
		s.input = components.NewTextInput(fmt.Sprintf("Use %q in a sentence...", s.word), 200)
		return s, s.input.Init()

	case phaseSentence:
		if value == "" {
			return s, nil
		}
		s.sentence = value
		s.busy = true
		s.errMsg = ""
		return s, s.evaluateCmd(s.word, s.sentence)
	}
	return s, nil
}

func (s *PracticeScreen) evaluateCmd(word, sentence string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		useExternal := false
		if s.settings != nil {
			useExternal, _ = s.settings.GetBool(ctx, store.SettingUseExternal)
		}

		result := s.eng.Evaluate(ctx, word, sentence, useExternal)

		if s.evaluations != nil {
			// History is best effort. The feedback still shows on failure.
			_ = s.evaluations.Append(ctx, store.Evaluation{
				Word:              word,
				Sentence:          sentence,
				Status:            result.SentenceFeedback.Status,
				Explanation:       result.SentenceFeedback.Explanation,
				CorrectedSentence: result.SentenceFeedback.CorrectedSentence,
				CreatedAt:         time.Now().UTC(),
			})
		}

		return evaluationDoneMsg{Result: result}
	}
}

func (s *PracticeScreen) View(width, height int) string {
	if s.phase == phaseResult {
		return s.viewResult(width)
	}
	return s.viewInput(width)
}

func (s *PracticeScreen) viewInput(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	prompt := "Which word would you like to practice?"
	if s.phase == phaseSentence {
		prompt = fmt.Sprintf("Now use %q in a sentence of your own.", s.word)
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render(prompt)))
	b.WriteString("\n\n")

	inputBox := theme.Card.Width(minInt(width-8, 64)).Render(s.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inputBox))
	b.WriteString("\n")

	if s.busy {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Checking your sentence...")))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)))
	}

	return b.String()
}

func (s *PracticeScreen) viewResult(width int) string {
	analysis := s.result.WordAnalysis
	feedback := s.result.SentenceFeedback

	var card strings.Builder

	card.WriteString(theme.Label.Render(strings.ToUpper(s.word)))
	card.WriteString("  ")
	card.WriteString(theme.Hint.Render(string(analysis.Difficulty)))
	card.WriteString("\n\n")

	card.WriteString(theme.Body.Render(analysis.Meaning))
	card.WriteString("\n")

	if len(analysis.Synonyms) > 0 {
		card.WriteString("\n")
		card.WriteString(theme.Hint.Render("Synonyms: " + strings.Join(analysis.Synonyms, ", ")))
		card.WriteString("\n")
	}
	if len(analysis.Examples) > 0 {
		card.WriteString("\n")
		card.WriteString(theme.Label.Render("Examples"))
		card.WriteString("\n")
		for _, ex := range analysis.Examples {
			card.WriteString(theme.Body.Render("  • " + ex))
			card.WriteString("\n")
		}
	}

	card.WriteString("\n")
	card.WriteString(statusStyle(feedback.Status).Render(statusLabel(feedback.Status)))
	card.WriteString("\n")
	card.WriteString(theme.Body.Render(feedback.Explanation))
	card.WriteString("\n")

	if feedback.CorrectedSentence != "" {
		card.WriteString("\n")
		card.WriteString(theme.Hint.Render("Try: " + feedback.CorrectedSentence))
		card.WriteString("\n")
	}

	box := theme.Card.Width(minInt(width-8, 76)).Render(card.String())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press N for another word, Esc to go back")))
	return b.String()
}

func statusLabel(v engine.Verdict) string {
	switch v {
	case engine.VerdictCorrect:
		return "✓ Correct"
	case engine.VerdictMostlyCorrect:
		return "~ Mostly correct"
	default:
		return "✗ Incorrect"
	}
}

func statusStyle(v engine.Verdict) lipgloss.Style {
	switch v {
	case engine.VerdictCorrect:
		return theme.Correct
	case engine.VerdictMostlyCorrect:
		return theme.MostlyCorrect
	default:
		return theme.Incorrect
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
