package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/obinna/studymate/internal/store"
	"github.com/obinna/studymate/internal/ui/components"
	"github.com/obinna/studymate/internal/ui/theme"
)

const heroTitleFull = "S T U D Y M A T E"

const heroTitleCompact = "StudyMate"

const heroTagline = "Your intelligent study companion for Computer Science\nat Kaduna Polytechnic"

// renderHero returns the styled title block or compact fallback.
func renderHero(cw int, compact bool) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(title.Render(heroTitleCompact))
	}

	block := title.Render(heroTitleFull) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(heroTitleFull))) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(heroTagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders the learner stats in a bordered box matching content width.
func renderStatsBar(up store.UserProgress, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	courseStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", up.Level)),
			xpStyle.Render(fmt.Sprintf("⚡%d", up.XP)),
			streakStyle.Render(fmt.Sprintf("★%d", up.StudyStreak)),
			courseStyle.Render(fmt.Sprintf("✔%d/%d", up.CoursesCompleted, up.TotalCourses)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d", up.Level)),
			xpStyle.Render(fmt.Sprintf("⚡ %d XP", up.XP)),
			streakStyle.Render(fmt.Sprintf("★ %d DAY STREAK", up.StudyStreak)),
			courseStyle.Render(fmt.Sprintf("✔ %d/%d COURSES", up.CoursesCompleted, up.TotalCourses)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.MenuButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable the AI assistant (see studymate --help)")
}
