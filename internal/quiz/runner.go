package quiz

import "math"

// CompletionProgressBoost is added to the quiz percentage when crediting
// course progress, capped at 100.
const CompletionProgressBoost = 20

// Runner walks a quiz's fixed question sequence, one answer per question.
// No skipping, no going back. When the last answer is submitted the final
// tally is reported into the Reporter and the runner becomes terminal
// until Reset.
type Runner struct {
	quiz     Quiz
	reporter Reporter
	index    int
	answers  []int
	complete bool
}

// NewRunner creates a Runner at the first question.
func NewRunner(quiz Quiz, reporter Reporter) *Runner {
	return &Runner{quiz: quiz, reporter: reporter}
}

// Quiz returns the quiz being run.
func (r *Runner) Quiz() Quiz {
	return r.quiz
}

// Current returns the active question, or false once the quiz is complete.
func (r *Runner) Current() (Question, bool) {
	if r.complete || r.index >= len(r.quiz.Questions) {
		return Question{}, false
	}
	return r.quiz.Questions[r.index], true
}

// Index returns the zero-based position of the active question.
func (r *Runner) Index() int {
	return r.index
}

// Total returns the number of questions in the quiz.
func (r *Runner) Total() int {
	return len(r.quiz.Questions)
}

// Complete reports whether the quiz has finished.
func (r *Runner) Complete() bool {
	return r.complete
}

// Submit records the answer for the current question and advances.
// Submitting the last answer completes the quiz and reports the score.
// Returns true when this submission completed the quiz. Submissions after
// completion are ignored.
func (r *Runner) Submit(choice int) bool {
	if r.complete {
		return false
	}

	r.answers = append(r.answers, choice)

	if r.index < len(r.quiz.Questions)-1 {
		r.index++
		return false
	}

	r.complete = true
	r.report()
	return true
}

// CorrectCount returns how many recorded answers match the designated
// correct option.
func (r *Runner) CorrectCount() int {
	n := 0
	for i, a := range r.answers {
		if a == r.quiz.Questions[i].Correct {
			n++
		}
	}
	return n
}

// Percent returns the rounded score percentage over all questions.
func (r *Runner) Percent() int {
	if len(r.quiz.Questions) == 0 {
		return 0
	}
	return int(math.Round(float64(r.CorrectCount()) / float64(len(r.quiz.Questions)) * 100))
}

// Reset returns the runner to its initial state.
func (r *Runner) Reset() {
	r.index = 0
	r.answers = nil
	r.complete = false
}

func (r *Runner) report() {
	if r.reporter == nil {
		return
	}
	pct := r.Percent()
	r.reporter.CompleteQuiz(r.quiz.Course, pct)

	boosted := pct + CompletionProgressBoost
	if boosted > 100 {
		boosted = 100
	}
	r.reporter.UpdateCourseProgress(r.quiz.Course, boosted, &pct)
}
