package progress

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/obinna/studymate/internal/achievements"
	"github.com/obinna/studymate/internal/store"
)

// XPPerLevel is the fixed level width: level == floor(xp/100) + 1.
const XPPerLevel = 100

// XP awards for the chat relay.
const (
	ChatAskXP   = 2
	ChatReplyXP = 3
)

// Engine owns the authoritative learner state. All mutation goes through
// its methods; every public mutation ends with a full-state write to the
// repo. Not safe for concurrent use — the app drives it from a single
// event loop.
type Engine struct {
	repo  store.StateRepo
	now   func() time.Time
	state *store.State
}

// New creates an Engine hydrated from repo. A missing snapshot starts from
// defaults; a corrupt one logs a warning and also falls back to defaults.
// now supplies the calendar date for streak and weekday bookkeeping; nil
// means time.Now.
func New(repo store.StateRepo, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	e := &Engine{repo: repo, now: now, state: DefaultState()}

	if repo != nil {
		saved, err := repo.Load(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not load saved progress, starting fresh:", err)
		} else if saved != nil {
			e.state = normalize(saved)
		}
	}
	return e
}

// normalize repairs a loaded snapshot whose fixed-size collections are
// missing or truncated (e.g. written by an older build).
func normalize(s *store.State) *store.State {
	def := DefaultState()
	if len(s.CourseProgress) != len(def.CourseProgress) {
		s.CourseProgress = def.CourseProgress
	}
	if len(s.WeeklyActivity) != len(def.WeeklyActivity) {
		s.WeeklyActivity = def.WeeklyActivity
	}
	if s.UserProgress.TotalCourses == 0 {
		s.UserProgress.TotalCourses = len(CourseNames)
	}
	if s.UserProgress.Level == 0 {
		s.UserProgress = def.UserProgress
	}
	return s
}

// AddXP adds experience points and recomputes the derived level fields.
func (e *Engine) AddXP(amount int) {
	e.applyXP(amount)
	e.persist()
}

// UpdateCourseProgress sets a course's progress percentage and optionally
// its score. Unknown course names are ignored. Progress gains award 5 XP
// per 10%; the first transition into completed awards a flat 50 XP bonus.
func (e *Engine) UpdateCourseProgress(courseName string, progress int, score *int) {
	c := e.course(courseName)
	if c == nil {
		return
	}

	newStatus := statusFor(progress)
	wasCompleted := c.Status == store.StatusCompleted

	if progress > c.Progress {
		e.applyXP((progress - c.Progress) / 10 * 5)
	}
	if newStatus == store.StatusCompleted && !wasCompleted {
		e.applyXP(50)
		e.state.UserProgress.CoursesCompleted++
	}

	c.Progress = progress
	if score != nil {
		// Unconditional overwrite, as the web version did. CompleteQuiz is
		// the path that keeps the best score.
		sc := *score
		c.Score = &sc
	}
	c.Status = newStatus

	e.recomputeAverageScore()
	e.persist()
}

// CompleteQuiz records a finished quiz for a course: score-based XP, quiz
// counters, today's activity bucket, the perfect-score achievement and the
// study streak. Unknown course names are ignored.
func (e *Engine) CompleteQuiz(courseName string, score int) {
	c := e.course(courseName)
	if c == nil {
		return
	}

	e.applyXP(score / 10 * 2)

	c.QuizzesCompleted++
	if c.Score == nil || score > *c.Score {
		sc := score
		c.Score = &sc
	}
	e.recomputeAverageScore()

	e.state.WeeklyActivity[e.todayIndex()].Quizzes++

	if score == 100 {
		e.unlock(achievements.IDPerfectScore)
	}
	e.updateStudyStreak()
	e.persist()
}

// AddStudyTime logs study minutes into today's activity bucket, awards
// 1 XP per 10 minutes and updates the study streak.
func (e *Engine) AddStudyTime(minutes int) {
	if minutes <= 0 {
		return
	}
	e.state.WeeklyActivity[e.todayIndex()].Hours += float64(minutes) / 60
	e.applyXP(minutes / 10)
	e.updateStudyStreak()
	e.persist()
}

// UnlockAchievement unlocks the named achievement if it is in the catalog
// and not yet unlocked. Unlocking awards a flat 25 XP.
func (e *Engine) UnlockAchievement(id string) {
	if e.unlock(id) {
		e.persist()
	}
}

// RecordChatQuestion awards the ask XP, counts the question toward the
// chat-enthusiast achievement and persists.
func (e *Engine) RecordChatQuestion() {
	e.applyXP(ChatAskXP)
	e.state.UserProgress.QuestionsAsked++
	if e.state.UserProgress.QuestionsAsked >= achievements.ChatEnthusiastThreshold {
		e.unlock(achievements.IDChatEnthusiast)
	}
	e.persist()
}

// RecordChatReply awards the reply XP once the assistant has answered.
func (e *Engine) RecordChatReply() {
	e.applyXP(ChatReplyXP)
	e.persist()
}

// UserProgress returns a copy of the overall progress record.
func (e *Engine) UserProgress() store.UserProgress {
	return e.state.UserProgress
}

// Courses returns a copy of the per-course progress records.
func (e *Engine) Courses() []store.CourseProgress {
	out := make([]store.CourseProgress, len(e.state.CourseProgress))
	copy(out, e.state.CourseProgress)
	return out
}

// Achievements returns a copy of the unlocked achievement records.
func (e *Engine) Achievements() []store.Achievement {
	out := make([]store.Achievement, len(e.state.Achievements))
	copy(out, e.state.Achievements)
	return out
}

// WeeklyActivity returns a copy of the Mon..Sun activity histogram.
func (e *Engine) WeeklyActivity() []store.DayActivity {
	out := make([]store.DayActivity, len(e.state.WeeklyActivity))
	copy(out, e.state.WeeklyActivity)
	return out
}

// applyXP mutates the XP scalar and the fields derived from it.
func (e *Engine) applyXP(amount int) {
	up := &e.state.UserProgress
	up.XP += amount
	up.Level = up.XP/XPPerLevel + 1
	up.TotalXP = up.Level * XPPerLevel
	up.XPToNext = up.TotalXP - up.XP
}

// unlock appends a new achievement record when the evaluator allows it.
// Reports whether anything changed.
func (e *Engine) unlock(id string) bool {
	rec, ok := achievements.Evaluate(e.state.Achievements, id, e.now())
	if !ok {
		return false
	}
	e.state.Achievements = append(e.state.Achievements, *rec)
	e.state.UserProgress.Achievements++
	e.applyXP(achievements.UnlockXP)
	return true
}

// updateStudyStreak advances the consecutive-day counter. At most one
// increment per calendar day; a gap of two or more days resets to 1.
func (e *Engine) updateStudyStreak() {
	today := dateOnly(e.now())
	yesterday := dateOnly(e.now().AddDate(0, 0, -1))

	up := &e.state.UserProgress
	switch up.LastStudyDate {
	case today:
		// Already counted today.
	case yesterday:
		up.StudyStreak++
		if up.StudyStreak == 7 {
			e.unlock(achievements.IDStudyStreak7)
		}
		if up.StudyStreak == 15 {
			e.unlock(achievements.IDStudyStreak15)
		}
		up.LastStudyDate = today
	default:
		up.StudyStreak = 1
		up.LastStudyDate = today
	}
}

// recomputeAverageScore updates the rounded mean over courses that have a
// score, or 0 when none do.
func (e *Engine) recomputeAverageScore() {
	sum, n := 0, 0
	for _, c := range e.state.CourseProgress {
		if c.Score != nil {
			sum += *c.Score
			n++
		}
	}
	if n == 0 {
		e.state.UserProgress.AverageScore = 0
		return
	}
	e.state.UserProgress.AverageScore = int(math.Round(float64(sum) / float64(n)))
}

// persist writes the full state snapshot. Failures are logged, never fatal.
func (e *Engine) persist() {
	if e.repo == nil {
		return
	}
	if err := e.repo.Save(context.Background(), e.state); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save progress:", err)
	}
}

func (e *Engine) course(name string) *store.CourseProgress {
	for i := range e.state.CourseProgress {
		if e.state.CourseProgress[i].Name == name {
			return &e.state.CourseProgress[i]
		}
	}
	return nil
}

// todayIndex maps the current weekday onto the Mon-first bucket order.
func (e *Engine) todayIndex() int {
	return (int(e.now().Weekday()) + 6) % 7
}

func statusFor(progress int) string {
	switch {
	case progress == 100:
		return store.StatusCompleted
	case progress > 0:
		return store.StatusInProgress
	default:
		return store.StatusNotStarted
	}
}

func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
