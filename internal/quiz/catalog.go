package quiz

// Difficulty labels shown in the quiz list.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// catalog is the fixed quiz catalog. Content is in-memory sample data;
// there is no delivery pipeline behind it.
var catalog = []Quiz{
	{
		ID:            "programming-fundamentals",
		Title:         "Programming Fundamentals",
		Description:   "Test your knowledge of basic programming concepts, variables, and control structures.",
		Difficulty:    DifficultyBeginner,
		Category:      "Programming",
		Course:        "Programming Fundamentals",
		EstimatedTime: "15 min",
		Questions: []Question{
			{
				Prompt:  "What does OOP stand for?",
				Options: []string{"Object-Oriented Programming", "Only One Program", "Open Office Program", "Optional Output Parameter"},
				Correct: 0,
			},
			{
				Prompt:  "Which of the following is NOT a programming paradigm?",
				Options: []string{"Functional", "Object-Oriented", "Procedural", "Mechanical"},
				Correct: 3,
			},
			{
				Prompt:      "What is the primary purpose of a variable in programming?",
				Options:     []string{"To store data that can be used later", "To display output to the user", "To execute loops", "To define functions"},
				Correct:     0,
				Explanation: "A variable names a storage location so a value can be referenced and changed later.",
			},
			{
				Prompt:      "Which data structure follows the LIFO (Last In First Out) principle?",
				Options:     []string{"Queue", "Stack", "Array", "Linked List"},
				Correct:     1,
				Explanation: "A stack pushes and pops from the same end, so the last element in is the first out.",
			},
			{
				Prompt:      "Which of the following best describes abstraction in programming?",
				Options:     []string{"Hiding implementation details while showing only essential features", "Converting code from one language to another", "Optimizing code for better performance", "Creating backup copies of code"},
				Correct:     0,
				Explanation: "Abstraction hides complex implementation details while exposing only the necessary features.",
			},
		},
	},
	{
		ID:            "database-management",
		Title:         "Database Management Systems",
		Description:   "Assess your understanding of SQL, database design, and relational concepts.",
		Difficulty:    DifficultyIntermediate,
		Category:      "Database",
		Course:        "Database Management",
		EstimatedTime: "20 min",
		Questions: []Question{
			{
				Prompt:      "What does SQL stand for?",
				Options:     []string{"Simple Query Language", "Structured Query Language", "Standard Query Language", "System Query Language"},
				Correct:     1,
				Explanation: "SQL is the Structured Query Language used to define and manipulate relational data.",
			},
			{
				Prompt:      "What is the primary key in a database?",
				Options:     []string{"A duplicate record", "A unique identifier for records", "A password", "A backup key"},
				Correct:     1,
				Explanation: "A primary key uniquely identifies each row in a table.",
			},
			{
				Prompt:  "Which normal form removes partial dependencies on a composite key?",
				Options: []string{"First normal form", "Second normal form", "Third normal form", "Boyce-Codd normal form"},
				Correct: 1,
			},
			{
				Prompt:  "Which SQL clause filters rows returned by a SELECT statement?",
				Options: []string{"ORDER BY", "GROUP BY", "WHERE", "HAVING"},
				Correct: 2,
			},
		},
	},
	{
		ID:            "web-development",
		Title:         "Web Development Basics",
		Description:   "Challenge yourself with HTML, CSS, and JavaScript fundamentals.",
		Difficulty:    DifficultyBeginner,
		Category:      "Web Dev",
		Course:        "Web Development",
		EstimatedTime: "12 min",
		Questions: []Question{
			{
				Prompt:  "Which HTML element holds the visible content of a page?",
				Options: []string{"<head>", "<body>", "<title>", "<meta>"},
				Correct: 1,
			},
			{
				Prompt:  "Which CSS property changes the text color of an element?",
				Options: []string{"font-style", "background", "color", "text-decoration"},
				Correct: 2,
			},
			{
				Prompt:  "Which keyword declares a block-scoped variable in JavaScript?",
				Options: []string{"var", "let", "dim", "def"},
				Correct: 1,
			},
			{
				Prompt:  "What does DOM stand for?",
				Options: []string{"Document Object Model", "Data Object Mapping", "Display Output Module", "Document Order Method"},
				Correct: 0,
			},
		},
	},
	{
		ID:            "network-security",
		Title:         "Network Security",
		Description:   "Test your knowledge of cybersecurity principles and network protection.",
		Difficulty:    DifficultyAdvanced,
		Category:      "Security",
		Course:        "Cybersecurity",
		EstimatedTime: "18 min",
		Questions: []Question{
			{
				Prompt:  "Which of these is an asymmetric encryption algorithm?",
				Options: []string{"AES", "RSA", "DES", "Blowfish"},
				Correct: 1,
			},
			{
				Prompt:  "What does a firewall primarily do?",
				Options: []string{"Encrypts stored files", "Filters network traffic by rules", "Scans documents for viruses", "Backs up network configuration"},
				Correct: 1,
			},
			{
				Prompt:  "A phishing attack primarily targets which weakness?",
				Options: []string{"Unpatched kernels", "Weak encryption keys", "Human trust", "Open network ports"},
				Correct: 2,
			},
			{
				Prompt:  "Which protocol secures HTTP traffic?",
				Options: []string{"FTP", "TLS", "SNMP", "ICMP"},
				Correct: 1,
			},
		},
	},
}

// Catalog returns the fixed quiz list in display order.
func Catalog() []Quiz {
	out := make([]Quiz, len(catalog))
	copy(out, catalog)
	return out
}

// ByID returns the quiz with the given id, or false if absent.
func ByID(id string) (Quiz, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Quiz{}, false
}
