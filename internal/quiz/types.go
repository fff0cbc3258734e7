package quiz

// Question is one multiple-choice question in a bank.
type Question struct {
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// Quiz is one entry in the fixed quiz catalog, with its question bank.
type Quiz struct {
	ID            string
	Title         string
	Description   string
	Difficulty    string
	Category      string
	Course        string // course credited in the progress engine
	EstimatedTime string
	Questions     []Question
}

// Reporter receives the outcome of a finished quiz. The progress engine
// satisfies this.
type Reporter interface {
	CompleteQuiz(courseName string, score int)
	UpdateCourseProgress(courseName string, progress int, score *int)
}
