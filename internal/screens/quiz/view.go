package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/tensequiz/internal/quiz"
	"github.com/abhisek/tensequiz/internal/ui/components"
	"github.com/abhisek/tensequiz/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	d := q.session.Display()
	cw := components.ContentWidth(width)

	var content string
	if d.Completed {
		content = renderCompleted(d.Stats, cw)
	} else {
		content = q.renderQuestion(d, cw)
	}

	if q.notice != "" {
		content += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			Render(q.notice)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuestion renders the flashcard, the answer area and progress.
func (q *QuizScreen) renderQuestion(d qz.Display, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	card := strings.Join([]string{
		label.Render(d.PromptLabel),
		"",
		theme.PromptWord.Render(d.PromptWord),
		lipgloss.NewStyle().Foreground(theme.Text).Render(d.Translation),
	}, "\n")

	var b strings.Builder
	b.WriteString(components.Card(card, cw, lipgloss.NewStyle().BorderForeground(theme.Primary)))
	b.WriteString("\n\n")
	b.WriteString(label.Render(d.AnswerLabel))
	b.WriteString("\n")
	b.WriteString(q.input.View())
	b.WriteString("\n\n")

	switch d.Status {
	case qz.StatusCorrect:
		b.WriteString(renderCorrect(d, cw))
	case qz.StatusIncorrect:
		b.WriteString(renderIncorrect(d))
	default:
		b.WriteString(components.NewButton("Check", "Enter", d.Input != "").View())
	}

	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar(d.ProgressText, d.Progress, false, cw).View())

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(b.String())
}

func renderCorrect(d qz.Display, cw int) string {
	forms := fmt.Sprintf("%s  →  %s", d.Present, d.Past)

	panel := strings.Join([]string{
		theme.Correct.Render("Correct! 🎉"),
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(forms),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			components.NewButton("🔊 Present", "1", true).View(),
			"  ",
			components.NewButton("🔊 Past", "2", true).View(),
		),
	}, "\n")

	next := components.Button{Label: "Next Word", Key: "Enter", Active: true, Style: theme.ButtonSuccess}
	return components.Card(panel, cw, lipgloss.NewStyle().BorderForeground(theme.Success)) +
		"\n\n" + next.View()
}

func renderIncorrect(d qz.Display) string {
	lines := []string{theme.Incorrect.Render("Try again!"), ""}
	if d.Hint != "" {
		lines = append(lines, theme.HintBox.Render("Hint: "+d.Hint))
	} else {
		lines = append(lines, components.NewButton("Show Hint", "Tab", true).View())
	}
	return strings.Join(lines, "\n")
}

// renderCompleted renders the end-of-run summary.
func renderCompleted(st qz.Stats, cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	lines := []string{
		theme.Correct.Render("🏆 Congratulations!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("You finished all %d words.", st.Words)),
		"",
		dim.Render("First try  ") + value.Render(fmt.Sprintf("%d / %d", st.FirstTryCorrect, st.Words)),
		dim.Render("Attempts   ") + value.Render(fmt.Sprintf("%d", st.Attempts)),
		"",
		components.NewButton("Start Over", "Enter", true).View(),
	}
	return components.Card(strings.Join(lines, "\n"), cw, lipgloss.NewStyle().BorderForeground(theme.Accent))
}
