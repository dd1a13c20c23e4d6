package gateway

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response schemas. A live payload must validate before it is accepted;
// anything else counts as a malformed response and the caller serves the
// substitute instead. The substitutes validate against these same schemas
// (structural parity is asserted in tests).

var analysisSchema = &responseSchema{
	Name: "analysis-report",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"matchScore", "matchedSkills", "missingSkills", "summary", "recommendations"},
		"properties": map[string]any{
			"matchScore":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"matchedSkills":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"missingSkills":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"summary":         map[string]any{"type": "string"},
			"recommendations": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	},
}

var roadmapSchema = &responseSchema{
	Name: "roadmap",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"goal", "weeks"},
		"properties": map[string]any{
			"goal": map[string]any{"type": "string"},
			"weeks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"week", "theme", "topics"},
					"properties": map[string]any{
						"week":   map[string]any{"type": "integer", "minimum": 1},
						"theme":  map[string]any{"type": "string"},
						"topics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"title", "url"},
								"properties": map[string]any{
									"title": map[string]any{"type": "string"},
									"url":   map[string]any{"type": "string"},
									"kind":  map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	},
}

var testSchema = &responseSchema{
	Name: "test",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"id", "topic", "kind"},
		"properties": map[string]any{
			"id":    map[string]any{"type": "string"},
			"topic": map[string]any{"type": "string"},
			"kind":  map[string]any{"enum": []any{"mcq", "coding", "behavioral"}},
			"mcqQuestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "prompt", "options", "correctIndex"},
					"properties": map[string]any{
						"id":           map[string]any{"type": "string"},
						"prompt":       map[string]any{"type": "string"},
						"options":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"correctIndex": map[string]any{"type": "integer", "minimum": 0},
						"explanation":  map[string]any{"type": "string"},
					},
				},
			},
			"codingChallenges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "prompt", "language", "starterCode"},
					"properties": map[string]any{
						"id":          map[string]any{"type": "string"},
						"prompt":      map[string]any{"type": "string"},
						"language":    map[string]any{"type": "string"},
						"starterCode": map[string]any{"type": "string"},
						"testCases":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
				},
			},
			"behavioralPrompts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "scenario"},
					"properties": map[string]any{
						"id":        map[string]any{"type": "string"},
						"scenario":  map[string]any{"type": "string"},
						"followups": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
				},
			},
		},
	},
}

var answerSchema = &responseSchema{
	Name: "answer-result",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"correct", "explanation"},
		"properties": map[string]any{
			"correct":     map[string]any{"type": "boolean"},
			"explanation": map[string]any{"type": "string"},
			"xpAwarded":   map[string]any{"type": "integer", "minimum": 0},
		},
	},
}

var chatSchema = &responseSchema{
	Name: "chat-reply",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"reply"},
		"properties": map[string]any{
			"reply": map[string]any{"type": "string"},
		},
	},
}

var analyticsSchema = &responseSchema{
	Name: "analytics-report",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"trialsCompleted", "averageScore", "xpEarned", "streakDays", "topics"},
		"properties": map[string]any{
			"trialsCompleted": map[string]any{"type": "integer", "minimum": 0},
			"averageScore":    map[string]any{"type": "number", "minimum": 0},
			"xpEarned":        map[string]any{"type": "integer", "minimum": 0},
			"streakDays":      map[string]any{"type": "integer", "minimum": 0},
			"topics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"topic", "accuracy", "attempts"},
					"properties": map[string]any{
						"topic":    map[string]any{"type": "string"},
						"accuracy": map[string]any{"type": "number"},
						"attempts": map[string]any{"type": "integer"},
					},
				},
			},
		},
	},
}

// responseSchema pairs a schema name with its JSON Schema definition.
type responseSchema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validatePayload validates raw JSON against the given schema.
func validatePayload(schema *responseSchema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *responseSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
