package quiz

import "github.com/amink/durus/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "study-quiz",
	Description: "A quiz with mixed question types for a student",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short quiz title in the requested language",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "true_false", "fill_blank", "short_answer", "matching", "table"},
						},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{"type": "string"},
						"matchingPairs": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"left":  map[string]any{"type": "string"},
									"right": map[string]any{"type": "string"},
								},
								"required": []any{"left", "right"},
							},
						},
						"tableHeaders": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"tableRows": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"question", "type"},
				},
			},
		},
		"required": []any{"title", "questions"},
	},
}

// FeedbackSchema defines the JSON schema for post-quiz evaluation responses.
var FeedbackSchema = &llm.Schema{
	Name:        "quiz-feedback",
	Description: "Performance analysis after a graded quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"note": map[string]any{
				"type":        "string",
				"description": "An encouraging note and general observation about the performance",
			},
			"reviewTopics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific topics the student needs to review based on mistakes",
			},
		},
		"required": []any{"note", "reviewTopics"},
	},
}
