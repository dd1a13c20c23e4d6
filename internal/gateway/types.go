package gateway

// Payload types for the PrepNova backend. Each AI-generated content kind
// is a concrete value type rather than an open dictionary: the screens
// consume fixed fields downstream.

// AnalysisReport is the result of a resume/job-description match.
type AnalysisReport struct {
	MatchScore      int      `json:"matchScore"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// Resource is one study link inside a roadmap week.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"`
}

// RoadmapWeek is one week of the learning roadmap.
type RoadmapWeek struct {
	Week      int        `json:"week"`
	Theme     string     `json:"theme"`
	Topics    []string   `json:"topics"`
	Resources []Resource `json:"resources"`
}

// Roadmap is the week-by-week learning plan.
type Roadmap struct {
	Goal  string        `json:"goal"`
	Weeks []RoadmapWeek `json:"weeks"`
}

// TestKind selects the variant of a generated test.
type TestKind string

const (
	TestMCQ        TestKind = "mcq"
	TestCoding     TestKind = "coding"
	TestBehavioral TestKind = "behavioral"
)

// MCQQuestion is a multiple-choice question.
type MCQQuestion struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// CodingChallenge is a coding puzzle with starter code.
type CodingChallenge struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Language    string   `json:"language"`
	StarterCode string   `json:"starterCode"`
	TestCases   []string `json:"testCases"`
}

// BehavioralPrompt is a behavioral interview scenario.
type BehavioralPrompt struct {
	ID        string   `json:"id"`
	Scenario  string   `json:"scenario"`
	Followups []string `json:"followups"`
}

// Test is a generated assessment. Exactly one of the question slices is
// populated, matching Kind.
type Test struct {
	ID         string             `json:"id"`
	Topic      string             `json:"topic"`
	Kind       TestKind           `json:"kind"`
	MCQ        []MCQQuestion      `json:"mcqQuestions,omitempty"`
	Coding     []CodingChallenge  `json:"codingChallenges,omitempty"`
	Behavioral []BehavioralPrompt `json:"behavioralPrompts,omitempty"`
}

// AnswerResult is the grading verdict for a submitted answer.
type AnswerResult struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
	XPAwarded   int    `json:"xpAwarded"`
}

// ChatReply is the mentor's response to a chat message.
type ChatReply struct {
	Reply string `json:"reply"`
}

// TopicStat is per-topic aggregate performance.
type TopicStat struct {
	Topic    string  `json:"topic"`
	Accuracy float64 `json:"accuracy"`
	Attempts int     `json:"attempts"`
}

// AnalyticsReport is the aggregate performance record.
type AnalyticsReport struct {
	TrialsCompleted int         `json:"trialsCompleted"`
	AverageScore    float64     `json:"averageScore"`
	XPEarned        int         `json:"xpEarned"`
	StreakDays      int         `json:"streakDays"`
	Topics          []TopicStat `json:"topics"`
}
