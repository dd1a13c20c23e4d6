package gateway

import (
	"encoding/json"
	"testing"
)

// The substitutes must be indistinguishable in shape from live payloads:
// every one has to pass the same schema the live response is checked
// against.
func TestSubstitutesMatchLiveSchemas(t *testing.T) {
	cases := []struct {
		name    string
		schema  *responseSchema
		payload any
	}{
		{"analysis", analysisSchema, fallbackAnalysis()},
		{"roadmap", roadmapSchema, fallbackRoadmap([]string{"Go"})},
		{"roadmap no skills", roadmapSchema, fallbackRoadmap(nil)},
		{"test mcq", testSchema, fallbackTest("Go", TestMCQ, 5)},
		{"test coding", testSchema, fallbackTest("Go", TestCoding, 2)},
		{"test behavioral", testSchema, fallbackTest("Go", TestBehavioral, 2)},
		{"chat", chatSchema, fallbackChat()},
		{"analytics", analyticsSchema, fallbackAnalytics()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if err := validatePayload(tc.schema, raw); err != nil {
				t.Errorf("substitute fails its own schema: %v", err)
			}
		})
	}
}

func TestFallbackTestTrimsToCount(t *testing.T) {
	got := fallbackTest("Go", TestMCQ, 2)
	if len(got.MCQ) != 2 {
		t.Errorf("expected 2 questions, got %d", len(got.MCQ))
	}
	for _, q := range got.MCQ {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Errorf("correct index out of range: %+v", q)
		}
	}
}

func TestFallbackTestUnknownKindDefaultsToMCQ(t *testing.T) {
	got := fallbackTest("Go", TestKind("essay"), 3)
	if got.Kind != TestMCQ || len(got.MCQ) == 0 {
		t.Errorf("unknown kind should produce an MCQ test, got %+v", got)
	}
}

func TestValidatePayloadRejectsBadShape(t *testing.T) {
	err := validatePayload(chatSchema, []byte(`{"reply": 7}`))
	if err == nil {
		t.Error("expected a schema violation for a numeric reply")
	}
}
