package service

// adviceResponseFormat builds the JSON-schema hint sent to the backend so it
// constrains decoding to the advice shape. Backends without schema support
// ignore it; the normalizer validates the payload either way.
func adviceResponseFormat() map[string]any {
	number := map[string]any{"type": "number"}
	str := map[string]any{"type": "string"}

	recommendation := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       str,
			"description": str,
			"priority": map[string]any{
				"type": "string",
				"enum": []string{"critical", "high", "medium", "low"},
			},
			"category": map[string]any{
				"type": "string",
				"enum": []string{"insulation", "heating_cooling", "windows", "appliances", "renewable_energy", "behavioral", "other"},
			},
			"estimated_savings_annual": number,
			"estimated_cost":           number,
			"payback_period_years":     number,
			"implementation_difficulty": map[string]any{
				"type": "string",
				"enum": []string{"easy", "moderate", "difficult"},
			},
		},
		"required": []string{"title", "description", "priority", "category"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": str,
			"recommendations": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 8,
				"items":    recommendation,
			},
			"estimated_total_annual_savings": number,
		},
		"required": []string{"summary", "recommendations"},
	}
}
