package quiz

import "testing"

type recordedReport struct {
	course    string
	score     int
	progress  int
	progScore *int
	completes int
	updates   int
}

func (r *recordedReport) CompleteQuiz(courseName string, score int) {
	r.course = courseName
	r.score = score
	r.completes++
}

func (r *recordedReport) UpdateCourseProgress(courseName string, progress int, score *int) {
	r.progress = progress
	r.progScore = score
	r.updates++
}

func testQuiz() Quiz {
	return Quiz{
		ID:     "test",
		Course: "Programming Fundamentals",
		Questions: []Question{
			{Prompt: "q1", Options: []string{"a", "b"}, Correct: 0},
			{Prompt: "q2", Options: []string{"a", "b"}, Correct: 1},
			{Prompt: "q3", Options: []string{"a", "b"}, Correct: 1},
		},
	}
}

func TestRunnerWalksSequence(t *testing.T) {
	r := NewRunner(testQuiz(), nil)

	q, ok := r.Current()
	if !ok || q.Prompt != "q1" {
		t.Fatalf("current = %+v, ok=%v", q, ok)
	}

	if done := r.Submit(0); done {
		t.Fatal("completed after first answer")
	}
	if r.Index() != 1 {
		t.Errorf("index = %d, want 1", r.Index())
	}

	r.Submit(1)
	if done := r.Submit(0); !done {
		t.Fatal("expected completion on last answer")
	}
	if !r.Complete() {
		t.Error("runner not terminal after last answer")
	}
	if _, ok := r.Current(); ok {
		t.Error("Current should report no question after completion")
	}
}

func TestRunnerTallyAndReport(t *testing.T) {
	rep := &recordedReport{}
	r := NewRunner(testQuiz(), rep)

	// Correct options are [0,1,1]; answers [0,1,0] → 2 correct → 67%.
	r.Submit(0)
	r.Submit(1)
	r.Submit(0)

	if got := r.CorrectCount(); got != 2 {
		t.Errorf("correct = %d, want 2", got)
	}
	if got := r.Percent(); got != 67 {
		t.Errorf("percent = %d, want 67", got)
	}

	if rep.completes != 1 || rep.updates != 1 {
		t.Fatalf("reported %d completes / %d updates, want 1/1", rep.completes, rep.updates)
	}
	if rep.course != "Programming Fundamentals" || rep.score != 67 {
		t.Errorf("CompleteQuiz(%q, %d), want (Programming Fundamentals, 67)", rep.course, rep.score)
	}
	if rep.progress != 87 {
		t.Errorf("progress credited = %d, want 87 (67+20)", rep.progress)
	}
	if rep.progScore == nil || *rep.progScore != 67 {
		t.Errorf("progress score = %v, want 67", rep.progScore)
	}
}

func TestRunnerProgressBoostCapped(t *testing.T) {
	rep := &recordedReport{}
	r := NewRunner(testQuiz(), rep)

	r.Submit(0)
	r.Submit(1)
	r.Submit(1)

	if rep.score != 100 {
		t.Fatalf("score = %d, want 100", rep.score)
	}
	if rep.progress != 100 {
		t.Errorf("progress = %d, want capped 100", rep.progress)
	}
}

func TestRunnerTerminalUntilReset(t *testing.T) {
	rep := &recordedReport{}
	r := NewRunner(testQuiz(), rep)

	r.Submit(0)
	r.Submit(1)
	r.Submit(1)

	// Extra submissions are ignored; no double report.
	r.Submit(0)
	if rep.completes != 1 {
		t.Errorf("completes = %d after extra submit, want 1", rep.completes)
	}

	r.Reset()
	if r.Complete() || r.Index() != 0 || r.CorrectCount() != 0 {
		t.Errorf("reset did not restore initial state")
	}
	if _, ok := r.Current(); !ok {
		t.Error("no current question after reset")
	}
}

func TestCatalogIntegrity(t *testing.T) {
	quizzes := Catalog()
	if len(quizzes) != 4 {
		t.Fatalf("catalog size = %d, want 4", len(quizzes))
	}
	for _, q := range quizzes {
		if len(q.Questions) == 0 {
			t.Errorf("quiz %s has no questions", q.ID)
		}
		for i, question := range q.Questions {
			if question.Correct < 0 || question.Correct >= len(question.Options) {
				t.Errorf("quiz %s question %d: correct index %d out of range", q.ID, i, question.Correct)
			}
		}
	}

	if _, ok := ByID("network-security"); !ok {
		t.Error("ByID failed for network-security")
	}
	if _, ok := ByID("underwater-basket-weaving"); ok {
		t.Error("ByID resolved unknown id")
	}
}
