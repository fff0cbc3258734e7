package knowledge

// Level is the programme tier a course belongs to.
type Level string

const (
	LevelND  Level = "ND"
	LevelHND Level = "HND"
)

// Course is one entry in the static knowledge base.
type Course struct {
	ID          string
	Title       string
	Description string
	Level       Level
	Semester    string
	Topics      []string
	Materials   []string
}

var catalog = []Course{
	{
		ID:          "intro-programming",
		Title:       "Introduction to Programming",
		Description: "Learn the fundamentals of programming using languages like C, Java, and Python.",
		Level:       LevelND,
		Semester:    "ND1 First Semester",
		Topics:      []string{"Variables and Data Types", "Control Structures", "Functions", "Arrays", "Object-Oriented Programming"},
		Materials: []string{
			"C Programming Language Fundamentals",
			"Java Object-Oriented Programming Guide",
			"Python for Beginners",
			"Data Structures and Algorithms",
			"Programming Best Practices",
		},
	},
	{
		ID:          "database-management",
		Title:       "Database Management Systems",
		Description: "Understanding database design, SQL, and database administration.",
		Level:       LevelND,
		Semester:    "ND1 Second Semester",
		Topics:      []string{"Database Design", "SQL Queries", "Normalization", "Entity-Relationship Modeling", "Database Security"},
		Materials: []string{
			"SQL Complete Reference",
			"Database Design Principles",
			"MySQL Administration Guide",
			"Data Modeling Techniques",
			"Database Security Handbook",
		},
	},
	{
		ID:          "web-development",
		Title:       "Web Development",
		Description: "Building modern web applications with HTML, CSS, JavaScript, and frameworks.",
		Level:       LevelND,
		Semester:    "ND2 First Semester",
		Topics:      []string{"HTML5 & CSS3", "JavaScript Fundamentals", "DOM Manipulation", "Responsive Design", "Web Frameworks"},
		Materials: []string{
			"HTML5 & CSS3 Complete Guide",
			"JavaScript Modern Features",
			"React.js Fundamentals",
			"Node.js Backend Development",
			"Web Security Best Practices",
		},
	},
	{
		ID:          "computer-networks",
		Title:       "Computer Networks",
		Description: "Network protocols, architecture, and network administration.",
		Level:       LevelHND,
		Semester:    "HND1 First Semester",
		Topics:      []string{"Network Protocols", "TCP/IP", "Network Security", "Routing & Switching", "Network Troubleshooting"},
	},
	{
		ID:          "cybersecurity",
		Title:       "Cybersecurity",
		Description: "Information security, threat analysis, and security implementation.",
		Level:       LevelHND,
		Semester:    "HND1 Second Semester",
		Topics:      []string{"Security Fundamentals", "Cryptography", "Ethical Hacking", "Risk Assessment", "Incident Response"},
	},
	{
		ID:          "computer-architecture",
		Title:       "Computer Architecture",
		Description: "Understanding computer hardware, processors, and system design.",
		Level:       LevelND,
		Semester:    "ND1 First Semester",
		Topics:      []string{"CPU Architecture", "Memory Systems", "Input/Output Systems", "Assembly Language", "Performance Optimization"},
	},
}

// Catalog returns all courses in display order.
func Catalog() []Course {
	out := make([]Course, len(catalog))
	copy(out, catalog)
	return out
}
