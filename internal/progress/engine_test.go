package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/obinna/studymate/internal/store"
)

// memRepo is an in-memory StateRepo capturing every save.
type memRepo struct {
	saved   *store.State
	saves   int
	loadErr error
}

func (r *memRepo) Load(context.Context) (*store.State, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.saved, nil
}

func (r *memRepo) Save(_ context.Context, s *store.State) error {
	// Deep-ish copy via the snapshot layout so later mutations don't alias.
	cp := *s
	cp.CourseProgress = append([]store.CourseProgress(nil), s.CourseProgress...)
	cp.Achievements = append([]store.Achievement(nil), s.Achievements...)
	cp.WeeklyActivity = append([]store.DayActivity(nil), s.WeeklyActivity...)
	r.saved = &cp
	r.saves++
	return nil
}

func (r *memRepo) Clear(context.Context) error {
	r.saved = nil
	return nil
}

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Monday 2026-06-01.
var monday = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLevelFormula(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantTotal int
	}{
		{0, 1, 100},
		{1, 1, 100},
		{99, 1, 100},
		{100, 2, 200},
		{250, 3, 300},
		{999, 10, 1000},
		{1000, 11, 1100},
	}

	for _, tt := range tests {
		e := New(nil, clockAt(monday))
		e.AddXP(tt.xp)
		up := e.UserProgress()
		if up.Level != tt.wantLevel {
			t.Errorf("xp=%d: level = %d, want %d", tt.xp, up.Level, tt.wantLevel)
		}
		if up.TotalXP != tt.wantTotal {
			t.Errorf("xp=%d: totalXp = %d, want %d", tt.xp, up.TotalXP, tt.wantTotal)
		}
		if up.XPToNext != tt.wantTotal-tt.xp {
			t.Errorf("xp=%d: xpToNext = %d, want %d", tt.xp, up.XPToNext, tt.wantTotal-tt.xp)
		}
	}
}

func TestAddXPAdditive(t *testing.T) {
	a := New(nil, clockAt(monday))
	a.AddXP(37)
	a.AddXP(85)

	b := New(nil, clockAt(monday))
	b.AddXP(122)

	if a.UserProgress() != b.UserProgress() {
		t.Errorf("split award diverged:\n got  %+v\n want %+v", a.UserProgress(), b.UserProgress())
	}
}

func TestUpdateCourseProgressXPAndStatus(t *testing.T) {
	e := New(nil, clockAt(monday))
	e.UpdateCourseProgress("Web Development", 45, nil)

	c := findCourse(t, e, "Web Development")
	if c.Progress != 45 || c.Status != store.StatusInProgress {
		t.Errorf("course = %+v, want progress 45 in-progress", c)
	}
	// 45% gain = floor(45/10)*5 = 20 XP.
	if got := e.UserProgress().XP; got != 20 {
		t.Errorf("xp = %d, want 20", got)
	}
}

func TestUpdateCourseProgressCompletionBonusOnce(t *testing.T) {
	e := New(nil, clockAt(monday))
	e.UpdateCourseProgress("Cybersecurity", 100, nil)

	up := e.UserProgress()
	if up.CoursesCompleted != 1 {
		t.Fatalf("coursesCompleted = %d, want 1", up.CoursesCompleted)
	}
	// floor(100/10)*5 + 50 completion bonus.
	if up.XP != 100 {
		t.Fatalf("xp = %d, want 100", up.XP)
	}

	// Repeat at 100: no progress delta, no second bonus.
	e.UpdateCourseProgress("Cybersecurity", 100, nil)
	up = e.UserProgress()
	if up.CoursesCompleted != 1 || up.XP != 100 {
		t.Errorf("repeat completion changed state: completed=%d xp=%d", up.CoursesCompleted, up.XP)
	}
}

func TestUpdateCourseProgressUnknownCourse(t *testing.T) {
	repo := &memRepo{}
	e := New(repo, clockAt(monday))
	saves := repo.saves

	e.UpdateCourseProgress("Quantum Computing", 80, nil)

	if e.UserProgress().XP != 0 {
		t.Errorf("unknown course awarded XP: %d", e.UserProgress().XP)
	}
	if repo.saves != saves {
		t.Errorf("unknown course triggered persistence")
	}
}

func TestScoreOverwriteVsBestScore(t *testing.T) {
	e := New(nil, clockAt(monday))

	e.CompleteQuiz("Computer Networks", 90)
	c := findCourse(t, e, "Computer Networks")
	if c.Score == nil || *c.Score != 90 {
		t.Fatalf("score = %v, want 90", c.Score)
	}

	// CompleteQuiz keeps the best score.
	e.CompleteQuiz("Computer Networks", 70)
	c = findCourse(t, e, "Computer Networks")
	if *c.Score != 90 {
		t.Errorf("best score regressed to %d", *c.Score)
	}

	// UpdateCourseProgress overwrites unconditionally.
	low := 40
	e.UpdateCourseProgress("Computer Networks", 50, &low)
	c = findCourse(t, e, "Computer Networks")
	if *c.Score != 40 {
		t.Errorf("overwrite path gave %d, want 40", *c.Score)
	}
}

func TestCompleteQuizPerfectScoreOnce(t *testing.T) {
	e := New(nil, clockAt(monday))

	e.CompleteQuiz("Programming Fundamentals", 100)
	e.CompleteQuiz("Programming Fundamentals", 100)

	var count int
	for _, a := range e.Achievements() {
		if a.ID == "perfect-score" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("perfect-score unlocked %d times, want 1", count)
	}
	if e.UserProgress().Achievements != 1 {
		t.Errorf("achievement count = %d, want 1", e.UserProgress().Achievements)
	}
}

func TestCompleteQuizCountsAndBucket(t *testing.T) {
	e := New(nil, clockAt(monday))
	e.CompleteQuiz("Database Management", 80)
	e.CompleteQuiz("Database Management", 60)

	c := findCourse(t, e, "Database Management")
	if c.QuizzesCompleted != 2 {
		t.Errorf("quizzesCompleted = %d, want 2", c.QuizzesCompleted)
	}

	week := e.WeeklyActivity()
	if week[0].Day != "Mon" || week[0].Quizzes != 2 {
		t.Errorf("Monday bucket = %+v, want 2 quizzes", week[0])
	}
	for _, d := range week[1:] {
		if d.Quizzes != 0 {
			t.Errorf("bucket %s unexpectedly touched: %+v", d.Day, d)
		}
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	e := New(nil, clockAt(monday))

	e.UnlockAchievement("quiz-master")
	xpAfterFirst := e.UserProgress().XP
	e.UnlockAchievement("quiz-master")

	if len(e.Achievements()) != 1 {
		t.Errorf("records = %d, want 1", len(e.Achievements()))
	}
	if e.UserProgress().XP != xpAfterFirst {
		t.Errorf("second unlock awarded XP again")
	}
	if xpAfterFirst != 25 {
		t.Errorf("unlock XP = %d, want 25", xpAfterFirst)
	}
}

func TestUnlockAchievementUnknownID(t *testing.T) {
	e := New(nil, clockAt(monday))
	e.UnlockAchievement("polyglot")
	if len(e.Achievements()) != 0 || e.UserProgress().XP != 0 {
		t.Errorf("unknown id mutated state")
	}
}

func TestStreakIncrementAndMilestone(t *testing.T) {
	repo := &memRepo{
		saved: func() *store.State {
			s := DefaultState()
			s.UserProgress.StudyStreak = 6
			s.UserProgress.LastStudyDate = "2026-05-31" // Sunday, the day before
			return s
		}(),
	}
	e := New(repo, clockAt(monday))

	e.CompleteQuiz("Cybersecurity", 80)
	up := e.UserProgress()
	if up.StudyStreak != 7 {
		t.Fatalf("streak = %d, want 7", up.StudyStreak)
	}
	if !hasAchievement(e, "study-streak-7") {
		t.Error("study-streak-7 not unlocked at 7 days")
	}

	// Second action the same day: streak unchanged, XP still accrues.
	xpBefore := up.XP
	e.CompleteQuiz("Cybersecurity", 80)
	up = e.UserProgress()
	if up.StudyStreak != 7 {
		t.Errorf("same-day streak = %d, want 7", up.StudyStreak)
	}
	if up.XP <= xpBefore {
		t.Errorf("same-day quiz awarded no XP")
	}
}

func TestStreakResetAfterGap(t *testing.T) {
	repo := &memRepo{
		saved: func() *store.State {
			s := DefaultState()
			s.UserProgress.StudyStreak = 9
			s.UserProgress.LastStudyDate = "2026-05-28" // four days before
			return s
		}(),
	}
	e := New(repo, clockAt(monday))

	e.AddStudyTime(30)
	up := e.UserProgress()
	if up.StudyStreak != 1 {
		t.Errorf("streak = %d, want 1 after gap", up.StudyStreak)
	}
	if up.LastStudyDate != "2026-06-01" {
		t.Errorf("lastStudyDate = %q, want 2026-06-01", up.LastStudyDate)
	}
}

func TestStreakFirstEver(t *testing.T) {
	e := New(nil, clockAt(monday))
	e.AddStudyTime(10)
	if got := e.UserProgress().StudyStreak; got != 1 {
		t.Errorf("first-ever streak = %d, want 1", got)
	}
}

func TestAddStudyTime(t *testing.T) {
	e := New(nil, clockAt(monday))
	e.AddStudyTime(45)

	week := e.WeeklyActivity()
	if week[0].Hours != 0.75 {
		t.Errorf("Monday hours = %v, want 0.75", week[0].Hours)
	}
	// floor(45/10) = 4 XP.
	if got := e.UserProgress().XP; got != 4 {
		t.Errorf("xp = %d, want 4", got)
	}
}

func TestAverageScore(t *testing.T) {
	e := New(nil, clockAt(monday))
	if e.UserProgress().AverageScore != 0 {
		t.Fatalf("fresh averageScore = %d, want 0", e.UserProgress().AverageScore)
	}

	e.CompleteQuiz("Programming Fundamentals", 80)
	e.CompleteQuiz("Web Development", 91)

	// round((80+91)/2) = 86.
	if got := e.UserProgress().AverageScore; got != 86 {
		t.Errorf("averageScore = %d, want 86", got)
	}
}

func TestChatXPAndEnthusiast(t *testing.T) {
	repo := &memRepo{
		saved: func() *store.State {
			s := DefaultState()
			s.UserProgress.QuestionsAsked = 49
			return s
		}(),
	}
	e := New(repo, clockAt(monday))

	e.RecordChatQuestion()
	e.RecordChatReply()

	up := e.UserProgress()
	if up.QuestionsAsked != 50 {
		t.Errorf("questionsAsked = %d, want 50", up.QuestionsAsked)
	}
	if !hasAchievement(e, "chat-enthusiast") {
		t.Error("chat-enthusiast not unlocked at 50 questions")
	}
	// 2 ask + 25 unlock + 3 reply.
	if up.XP != 30 {
		t.Errorf("xp = %d, want 30", up.XP)
	}
}

func TestPersistAfterEveryMutation(t *testing.T) {
	repo := &memRepo{}
	e := New(repo, clockAt(monday))

	e.AddXP(10)
	e.CompleteQuiz("Web Development", 50)
	e.AddStudyTime(20)
	e.UnlockAchievement("first-quiz")

	if repo.saves != 4 {
		t.Errorf("saves = %d, want 4", repo.saves)
	}
	if repo.saved == nil || repo.saved.UserProgress.XP != e.UserProgress().XP {
		t.Errorf("persisted state out of date")
	}
}

func TestHydrateFallsBackOnLoadError(t *testing.T) {
	repo := &memRepo{loadErr: errors.New("disk corrupt")}
	e := New(repo, clockAt(monday))

	up := e.UserProgress()
	if up.Level != 1 || up.XP != 0 || up.TotalCourses != 6 {
		t.Errorf("defaults not applied after load error: %+v", up)
	}
}

func TestHydrateNormalizesTruncatedSnapshot(t *testing.T) {
	repo := &memRepo{saved: &store.State{UserProgress: store.UserProgress{Level: 2, XP: 150, TotalXP: 200, XPToNext: 50, TotalCourses: 6}}}
	e := New(repo, clockAt(monday))

	if len(e.Courses()) != 6 {
		t.Errorf("courses = %d, want 6", len(e.Courses()))
	}
	if len(e.WeeklyActivity()) != 7 {
		t.Errorf("weekly buckets = %d, want 7", len(e.WeeklyActivity()))
	}
	if e.UserProgress().XP != 150 {
		t.Errorf("hydrated xp = %d, want 150", e.UserProgress().XP)
	}
}

func findCourse(t *testing.T, e *Engine, name string) store.CourseProgress {
	t.Helper()
	for _, c := range e.Courses() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("course %q not found", name)
	return store.CourseProgress{}
}

func hasAchievement(e *Engine, id string) bool {
	for _, a := range e.Achievements() {
		if a.ID == id {
			return true
		}
	}
	return false
}
