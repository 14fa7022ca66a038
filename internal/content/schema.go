package content

import "github.com/abhisek/skillforge/internal/llm"

// LessonContentSchema defines the JSON schema for generated lesson
// documents: an ordered array of text and quiz sections.
var LessonContentSchema = &llm.Schema{
	Name:        "lesson-content",
	Description: "Ordered lesson sections, each a text block or a quiz",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type": map[string]any{
					"type": "string",
					"enum": []any{"text", "quiz"},
				},
				"title": map[string]any{
					"type":        "string",
					"description": "Short section title",
				},
				"body": map[string]any{
					"type":        "string",
					"description": "Markdown body; required for text sections",
				},
				"questions": map[string]any{
					"type":        "array",
					"description": "Quiz questions; required for quiz sections",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{
								"type":        "string",
								"description": "The question text",
							},
							"options": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 2,
							},
							"correct_answer": map[string]any{
								"type":        "string",
								"description": "Must repeat one of the options verbatim",
							},
							"explanation": map[string]any{
								"type":        "string",
								"description": "Brief explanation of the correct answer",
							},
						},
						"required":             []any{"prompt", "options", "correct_answer"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"type"},
			"additionalProperties": false,
		},
	},
}
