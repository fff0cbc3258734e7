package achievements

// Achievement ids referenced by trigger sites.
const (
	IDFirstQuiz      = "first-quiz"
	IDQuizMaster     = "quiz-master"
	IDStudyStreak7   = "study-streak-7"
	IDStudyStreak15  = "study-streak-15"
	IDPerfectScore   = "perfect-score"
	IDFastLearner    = "fast-learner"
	IDChatEnthusiast = "chat-enthusiast"
)

// ChatEnthusiastThreshold is the question count that unlocks chat-enthusiast.
const ChatEnthusiastThreshold = 50

// Definition describes one achievement in the fixed catalog.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
}

// Catalog is the fixed set of achievement definitions. first-quiz,
// quiz-master and fast-learner have no trigger site yet; they stay in the
// catalog so saved progress referencing them keeps rendering.
var catalog = []Definition{
	{ID: IDFirstQuiz, Title: "First Steps", Description: "Completed your first quiz", Icon: "Trophy", Color: "text-blue-500"},
	{ID: IDQuizMaster, Title: "Quiz Master", Description: "Completed 10 quizzes with 90%+ score", Icon: "Trophy", Color: "text-yellow-500"},
	{ID: IDStudyStreak7, Title: "Study Streak", Description: "7 days consecutive learning", Icon: "Calendar", Color: "text-blue-500"},
	{ID: IDStudyStreak15, Title: "Study Master", Description: "15 days consecutive learning", Icon: "Calendar", Color: "text-purple-500"},
	{ID: IDPerfectScore, Title: "Perfect Score", Description: "Achieved 100% on a quiz", Icon: "Star", Color: "text-purple-500"},
	{ID: IDFastLearner, Title: "Fast Learner", Description: "Completed 3 courses this month", Icon: "TrendingUp", Color: "text-green-500"},
	{ID: IDChatEnthusiast, Title: "Chat Enthusiast", Description: "Asked 50 questions to AI assistant", Icon: "Bot", Color: "text-cyan-500"},
}

// Catalog returns all achievement definitions in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id, or false if id is not in the catalog.
func Lookup(id string) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
