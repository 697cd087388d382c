// internal/ideas/schema.go
package ideas

// ToolName is the function the model is forced to call.
const ToolName = "return_content_ideas"

// ToolDescription is sent with the tool definition.
const ToolDescription = "Return generated content ideas based on cross-reference analysis"

// IdeasToolSchema is the JSON Schema for the forced tool call. It is sent
// to the gateway as the function's parameters and re-used verbatim to
// validate the decoded tool-call arguments before they are passed through.
var IdeasToolSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"ideas": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title": map[string]interface{}{
						"type":        "string",
						"description": "SEO-friendly content title",
					},
					"type": map[string]interface{}{
						"type": "string",
						"enum": []interface{}{"blog_post", "newsletter", "training_material"},
					},
					"confidence": map[string]interface{}{
						"type":        "number",
						"description": "0.0-1.0 confidence score",
					},
					"estimatedImpact": map[string]interface{}{
						"type": "string",
						"enum": []interface{}{"high", "medium", "low"},
					},
					"reasoning": map[string]interface{}{
						"type":        "string",
						"description": "Why this content matters, citing specific data",
					},
					"sources": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"type": map[string]interface{}{
									"type": "string",
									"enum": []interface{}{"conversation", "document", "correction", "trend"},
								},
								"label": map[string]interface{}{
									"type": "string",
								},
							},
							"required":             []interface{}{"type", "label"},
							"additionalProperties": false,
						},
					},
					"suggestedOutline": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "4-6 outline items",
					},
				},
				"required":             []interface{}{"title", "type", "confidence", "estimatedImpact", "reasoning", "sources", "suggestedOutline"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []interface{}{"ideas"},
	"additionalProperties": false,
}
