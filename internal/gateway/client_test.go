package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return NewClient(Config{BaseURL: url, Timeout: 2 * time.Second}, nil)
}

func jsonHandler(t *testing.T, path string, payload any) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode response: %v", err)
		}
	})
}

func TestGenerateRoadmapLive(t *testing.T) {
	live := Roadmap{
		Goal: "Backend readiness",
		Weeks: []RoadmapWeek{
			{Week: 1, Theme: "APIs", Topics: []string{"REST"}},
		},
	}
	srv := httptest.NewServer(jsonHandler(t, "/generate-roadmap", live))
	defer srv.Close()

	got := newTestClient(srv.URL).GenerateRoadmap(context.Background(), []string{"Go"})
	if got.Goal != "Backend readiness" || len(got.Weeks) != 1 {
		t.Errorf("expected the live roadmap, got %+v", got)
	}
}

func TestGenerateRoadmapServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := newTestClient(srv.URL).GenerateRoadmap(context.Background(), []string{"Go"})
	want := fallbackRoadmap([]string{"Go"})
	if got.Goal != want.Goal || len(got.Weeks) != len(want.Weeks) {
		t.Errorf("expected the substitute roadmap, got %+v", got)
	}
}

func TestGenerateRoadmapUnreachable(t *testing.T) {
	// A closed port: connection refused rather than an HTTP error.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	got := newTestClient(srv.URL).GenerateRoadmap(context.Background(), nil)
	if got.Goal != fallbackRoadmap(nil).Goal {
		t.Errorf("expected the substitute roadmap, got %+v", got)
	}
}

func TestGenerateRoadmapSchemaViolation(t *testing.T) {
	// Valid JSON, wrong shape: weeks entries missing required fields.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"goal": 42, "weeks": "soon"}`))
	}))
	defer srv.Close()

	got := newTestClient(srv.URL).GenerateRoadmap(context.Background(), nil)
	if got.Goal != fallbackRoadmap(nil).Goal {
		t.Errorf("schema violation should serve the substitute, got %+v", got)
	}
}

func TestGenerateTestLive(t *testing.T) {
	live := Test{
		ID:    "t-1",
		Topic: "Databases",
		Kind:  TestMCQ,
		MCQ: []MCQQuestion{
			{ID: "q-1", Prompt: "?", Options: []string{"a", "b"}, CorrectIndex: 1},
		},
	}
	srv := httptest.NewServer(jsonHandler(t, "/generate-test", live))
	defer srv.Close()

	got := newTestClient(srv.URL).GenerateTest(context.Background(), "Databases", TestMCQ, 1)
	if got.ID != "t-1" || len(got.MCQ) != 1 {
		t.Errorf("expected the live test, got %+v", got)
	}
}

func TestGenerateTestFailureServesRequestedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	c := newTestClient(srv.URL)

	mcq := c.GenerateTest(context.Background(), "Go", TestMCQ, 3)
	if len(mcq.MCQ) != 3 || len(mcq.Coding) != 0 {
		t.Errorf("mcq substitute wrong shape: %+v", mcq)
	}

	coding := c.GenerateTest(context.Background(), "Go", TestCoding, 2)
	if len(coding.Coding) == 0 || len(coding.MCQ) != 0 {
		t.Errorf("coding substitute wrong shape: %+v", coding)
	}

	behavioral := c.GenerateTest(context.Background(), "Go", TestBehavioral, 2)
	if len(behavioral.Behavioral) == 0 {
		t.Errorf("behavioral substitute wrong shape: %+v", behavioral)
	}
}

func TestSubmitAnswerLive(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, "/submit-answer", AnswerResult{
		Correct:     true,
		Explanation: "Right on.",
		XPAwarded:   20,
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).SubmitAnswer(context.Background(), "t-1", "q-1", "O(1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Correct || got.XPAwarded != 20 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestSubmitAnswerPropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SubmitAnswer(context.Background(), "t-1", "q-1", "x")
	if err == nil {
		t.Fatal("grading failures must surface, not be substituted")
	}
}

func TestChatFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not even json"))
	}))
	defer srv.Close()

	got := newTestClient(srv.URL).Chat(context.Background(), "help", "")
	if got.Reply != fallbackChat().Reply {
		t.Errorf("expected the substitute reply, got %+v", got)
	}
}

func TestAnalyticsLive(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, "/analytics", AnalyticsReport{
		TrialsCompleted: 3,
		AverageScore:    0.9,
		XPEarned:        700,
		StreakDays:      2,
		Topics:          []TopicStat{{Topic: "Go", Accuracy: 0.9, Attempts: 3}},
	}))
	defer srv.Close()

	got := newTestClient(srv.URL).Analytics(context.Background())
	if got.TrialsCompleted != 3 || len(got.Topics) != 1 {
		t.Errorf("expected the live report, got %+v", got)
	}
}

func TestAnalyzeResumeSendsMultipart(t *testing.T) {
	var gotJobDesc string
	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotJobDesc = r.FormValue("job_description")
		if f, hdr, err := r.FormFile("resume"); err == nil {
			gotFilename = hdr.Filename
			f.Close()
		} else {
			t.Errorf("missing resume part: %v", err)
		}
		jsonHandler(t, "/analyze-resume", fallbackAnalysis()).ServeHTTP(w, r)
	}))
	defer srv.Close()

	got := newTestClient(srv.URL).AnalyzeResume(context.Background(),
		strings.NewReader("my resume"), "resume.pdf", "Backend engineer")

	if gotJobDesc != "Backend engineer" {
		t.Errorf("job description not sent, got %q", gotJobDesc)
	}
	if gotFilename != "resume.pdf" {
		t.Errorf("filename not sent, got %q", gotFilename)
	}
	if got.MatchScore != fallbackAnalysis().MatchScore {
		t.Errorf("unexpected report: %+v", got)
	}
}
