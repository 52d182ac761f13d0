package pool

// poolSchema is the JSON schema a question-pool file must satisfy.
// Payload contents are deliberately unconstrained; the engine never
// inspects them.
var poolSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"topic_id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"concept_tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"payload": map[string]any{},
		},
		"required":             []any{"id", "topic_id", "difficulty", "answer"},
		"additionalProperties": false,
	},
}
