package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := progress.New(st.StateRepo(), time.Now)

		up := engine.UserProgress()
		fmt.Printf("Level %d  (%d XP, %d to next level)\n", up.Level, up.XP, up.XPToNext)
		fmt.Printf("Streak: %d day(s)   Courses: %d/%d   Avg score: %d%%   Questions asked: %d\n\n",
			up.StudyStreak, up.CoursesCompleted, up.TotalCourses, up.AverageScore, up.QuestionsAsked)

		fmt.Println("Courses")
		fmt.Println(strings.Repeat("─", 64))
		for _, c := range engine.Courses() {
			score := "—"
			if c.Score != nil {
				score = fmt.Sprintf("%d%%", *c.Score)
			}
			fmt.Printf("%-28s %3d%%  score %-4s  %-12s quizzes %d\n",
				c.Name, c.Progress, score, c.Status, c.QuizzesCompleted)
		}

		achievements := engine.Achievements()
		if len(achievements) > 0 {
			fmt.Println("\nAchievements")
			fmt.Println(strings.Repeat("─", 64))
			for _, a := range achievements {
				fmt.Printf("%-22s %s  (%s)\n", a.Title, a.Description,
					a.UnlockedAt.Local().Format("2006-01-02"))
			}
		}

		fmt.Println("\nWeekly activity")
		fmt.Println(strings.Repeat("─", 64))
		for _, d := range engine.WeeklyActivity() {
			fmt.Printf("%-4s %4.1fh  %d quiz(es)\n", d.Day, d.Hours, d.Quizzes)
		}

		return nil
	},
}
