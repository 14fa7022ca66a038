package evaluate

import "github.com/abhisek/skillforge/internal/llm"

// FeedbackSchema defines the JSON schema for AI-graded feedback.
var FeedbackSchema = &llm.Schema{
	Name:        "exercise-feedback",
	Description: "Graded feedback for an open-form exercise submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"correct", "incorrect", "partial"},
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall score on a 0-100 scale",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Short explanation of the grade, addressed to the learner",
			},
			"suggestion": map[string]any{
				"type":        "string",
				"description": "One concrete improvement suggestion",
			},
		},
		"required":             []any{"verdict", "score", "message"},
		"additionalProperties": false,
	},
}
