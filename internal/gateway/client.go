// Package gateway talks to the PrepNova backend. The five informational
// endpoints (resume analysis, roadmap, test generation, chat, analytics)
// never fail from the caller's perspective: any network error, non-2xx
// status, or malformed body yields a static substitute payload of the same
// shape. This degraded-but-available behavior is the designed contract,
// not an error path, so callers can treat these calls as infallible and
// only the freshness of the data varies.
//
// SubmitAnswer is the one graded call and reports errors normally.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

// Client is the HTTP JSON client for the PrepNova API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a Client from the given config. A nil logger defaults
// to zap.NewNop().
func NewClient(cfg Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// AnalyzeResume uploads a resume with a job description and returns the
// skill match analysis, or its substitute.
func (c *Client) AnalyzeResume(ctx context.Context, resume io.Reader, filename, jobDescription string) AnalysisReport {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("resume", filename)
	if err == nil {
		_, err = io.Copy(part, resume)
	}
	if err == nil {
		err = mw.WriteField("job_description", jobDescription)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		c.log.Debug("build resume upload failed, serving substitute", zap.Error(err))
		return fallbackAnalysis()
	}

	var out AnalysisReport
	if err := c.do(ctx, http.MethodPost, "/analyze-resume", &buf, mw.FormDataContentType(), analysisSchema, &out); err != nil {
		c.log.Debug("resume analysis unavailable, serving substitute", zap.Error(err))
		return fallbackAnalysis()
	}
	return out
}

// GenerateRoadmap returns a week-by-week roadmap for the given skills, or
// its substitute.
func (c *Client) GenerateRoadmap(ctx context.Context, skills []string) Roadmap {
	body := map[string]any{"skills": skills}
	var out Roadmap
	if err := c.postJSON(ctx, "/generate-roadmap", body, roadmapSchema, &out); err != nil {
		c.log.Debug("roadmap unavailable, serving substitute", zap.Error(err))
		return fallbackRoadmap(skills)
	}
	return out
}

// GenerateTest returns a generated test of the given kind, or its
// substitute.
func (c *Client) GenerateTest(ctx context.Context, topic string, kind TestKind, count int) Test {
	body := map[string]any{"topic": topic, "type": string(kind), "count": count}
	var out Test
	if err := c.postJSON(ctx, "/generate-test", body, testSchema, &out); err != nil {
		c.log.Debug("test generation unavailable, serving substitute", zap.Error(err))
		return fallbackTest(topic, kind, count)
	}
	return out
}

// SubmitAnswer grades an answer. This is the one call that is not
// informational: failures propagate so the caller can grade locally.
func (c *Client) SubmitAnswer(ctx context.Context, testID, questionID, answer string) (AnswerResult, error) {
	body := map[string]any{"testId": testID, "questionId": questionID, "answer": answer}
	var out AnswerResult
	if err := c.postJSON(ctx, "/submit-answer", body, answerSchema, &out); err != nil {
		return AnswerResult{}, fmt.Errorf("submit answer: %w", err)
	}
	return out, nil
}

// Chat sends a message to the mentor and returns the reply, or its
// substitute.
func (c *Client) Chat(ctx context.Context, message, chatContext string) ChatReply {
	body := map[string]any{"message": message, "context": chatContext}
	var out ChatReply
	if err := c.postJSON(ctx, "/chat", body, chatSchema, &out); err != nil {
		c.log.Debug("chat unavailable, serving substitute", zap.Error(err))
		return fallbackChat()
	}
	return out
}

// Analytics returns the aggregate performance record, or its substitute.
func (c *Client) Analytics(ctx context.Context) AnalyticsReport {
	var out AnalyticsReport
	if err := c.do(ctx, http.MethodGet, "/analytics", nil, "", analyticsSchema, &out); err != nil {
		c.log.Debug("analytics unavailable, serving substitute", zap.Error(err))
		return fallbackAnalytics()
	}
	return out
}

// postJSON sends a JSON body and decodes a schema-validated JSON response.
func (c *Client) postJSON(ctx context.Context, path string, body any, schema *responseSchema, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(raw), "application/json", schema, out)
}

// do performs a single attempt (no retries) and decodes the response into
// out after schema validation.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, schema *responseSchema, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: HTTP %d", method, path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := validatePayload(schema, raw); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
