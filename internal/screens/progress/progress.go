package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/studymate/internal/achievements"
	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/screen"
	"github.com/obinna/studymate/internal/store"
	"github.com/obinna/studymate/internal/ui/components"
	"github.com/obinna/studymate/internal/ui/theme"
)

// ProgressScreen is the learner dashboard: level, courses, weekly
// activity and achievements.
type ProgressScreen struct {
	engine *progress.Engine
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the dashboard screen.
func New(engine *progress.Engine) *ProgressScreen {
	return &ProgressScreen{engine: engine}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	if p.engine == nil {
		return ""
	}

	up := p.engine.UserProgress()
	courses := p.engine.Courses()
	unlocked := p.engine.Achievements()
	weekly := p.engine.WeeklyActivity()

	cw := min(width-10, 76)

	sections := []string{
		p.viewSummary(up, cw),
		p.viewCourses(courses, cw),
		p.viewWeekly(weekly, cw),
		p.viewAchievements(unlocked, cw),
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(strings.Join(sections, "\n\n"))
}

func (p *ProgressScreen) viewSummary(up store.UserProgress, cw int) string {
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	levelLine := fmt.Sprintf("%s   %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("Level %d", up.Level)),
		dimStyle.Render(fmt.Sprintf("%d XP · %d to next level", up.XP, up.XPToNext)))

	// XP toward the next level, scaled over the current 100 XP band.
	intoLevel := up.XP - (up.Level-1)*progress.XPPerLevel
	bar := components.NewProgressBar("", float64(intoLevel)/float64(progress.XPPerLevel), true, cw)

	statLine := dimStyle.Render(fmt.Sprintf(
		"★ %d day streak   ✔ %d/%d courses   Ø %d%% avg score   %d questions asked",
		up.StudyStreak, up.CoursesCompleted, up.TotalCourses, up.AverageScore, up.QuestionsAsked))

	return levelLine + "\n" + bar.View() + "\n" + statLine
}

func (p *ProgressScreen) viewCourses(courses []store.CourseProgress, cw int) string {
	header := theme.Selected.Render("Courses")

	var rows []string
	for _, c := range courses {
		bar := components.NewProgressBar("", float64(c.Progress)/100, false, cw/2)

		scoreText := "—"
		if c.Score != nil {
			scoreText = fmt.Sprintf("%d%%", *c.Score)
		}

		var statusStyle lipgloss.Style
		switch c.Status {
		case store.StatusCompleted:
			statusStyle = theme.Correct
		case store.StatusInProgress:
			statusStyle = lipgloss.NewStyle().Foreground(theme.Accent)
		default:
			statusStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		rows = append(rows, fmt.Sprintf("%-26s %s %3d%%  score %s  %s",
			c.Name, bar.View(), c.Progress, scoreText,
			statusStyle.Render(string(c.Status))))
	}

	return header + "\n" + strings.Join(rows, "\n")
}

// weeklyBarHeight is how many rows tall the activity chart is.
const weeklyBarHeight = 4

func (p *ProgressScreen) viewWeekly(weekly []store.DayActivity, cw int) string {
	header := theme.Selected.Render("This week")
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	maxHours := 0.0
	for _, d := range weekly {
		if d.Hours > maxHours {
			maxHours = d.Hours
		}
	}

	// Vertical bars, one column per day.
	var chart strings.Builder
	for row := weeklyBarHeight; row >= 1; row-- {
		for _, d := range weekly {
			filled := 0
			if maxHours > 0 {
				filled = int(d.Hours / maxHours * weeklyBarHeight)
			}
			if filled >= row {
				chart.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(" ██  "))
			} else {
				chart.WriteString(dimStyle.Render(" ··  "))
			}
		}
		chart.WriteString("\n")
	}

	var labels, hours, quizzes strings.Builder
	for _, d := range weekly {
		labels.WriteString(fmt.Sprintf(" %-4s", d.Day))
		hours.WriteString(dimStyle.Render(fmt.Sprintf(" %-4s", formatHours(d.Hours))))
		quizzes.WriteString(dimStyle.Render(fmt.Sprintf(" %-4s", formatQuizzes(d.Quizzes))))
	}

	return header + "\n" + chart.String() + labels.String() + "\n" +
		hours.String() + "\n" + quizzes.String()
}

func formatHours(h float64) string {
	if h == 0 {
		return "·"
	}
	return fmt.Sprintf("%.1fh", h)
}

func formatQuizzes(q int) string {
	if q == 0 {
		return ""
	}
	return fmt.Sprintf("%dq", q)
}

// iconGlyphs maps stored icon names to terminal glyphs.
var iconGlyphs = map[string]string{
	"Trophy":     "🏆",
	"Calendar":   "📅",
	"Star":       "⭐",
	"TrendingUp": "📈",
	"Bot":        "🤖",
}

func (p *ProgressScreen) viewAchievements(unlocked []store.Achievement, cw int) string {
	header := theme.Selected.Render("Achievements")
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	byID := make(map[string]store.Achievement, len(unlocked))
	for _, a := range unlocked {
		byID[a.ID] = a
	}

	var rows []string
	for _, def := range achievements.Catalog() {
		glyph := iconGlyphs[def.Icon]
		if glyph == "" {
			glyph = "•"
		}
		if got, ok := byID[def.ID]; ok {
			rows = append(rows, fmt.Sprintf("%s %s — %s  %s",
				glyph,
				lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(def.Title),
				def.Description,
				dimStyle.Render(got.UnlockedAt.Format("Jan 2"))))
		} else {
			rows = append(rows, dimStyle.Render(fmt.Sprintf("🔒 %s — %s", def.Title, def.Description)))
		}
	}

	return header + "\n" + strings.Join(rows, "\n")
}

func (p *ProgressScreen) Title() string {
	return "My Progress"
}
