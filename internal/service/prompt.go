package service

import (
	"errors"
	"fmt"

	"home-energy-advisor/internal/llm"
	"home-energy-advisor/internal/models"
)

// ErrInvalidInput is returned when a pipeline step receives input it cannot
// work with, e.g. a nil home profile at prompt compile time.
var ErrInvalidInput = errors.New("invalid input")

const adviceSystemPrompt = `You are an expert energy efficiency consultant with deep knowledge of:
- Building science and thermal dynamics
- HVAC systems and heating/cooling efficiency
- Insulation materials and techniques
- Renewable energy systems
- Energy-efficient appliances and technologies
- Cost-benefit analysis for energy improvements
- Regional climate considerations

Provide accurate, practical, and cost-effective recommendations tailored to each home's unique characteristics.`

const adviceOutputInstructions = `
Based on this information, provide a comprehensive energy efficiency analysis with the following structure:

1. SUMMARY: A brief 2-3 sentence overview of the home's current energy efficiency status and potential for improvement. Include the estimated total annual savings if all recommendations are implemented.

2. RECOMMENDATIONS: Provide 5-8 prioritized recommendations as a JSON object with this exact shape:
{
  "summary": string,
  "estimated_total_annual_savings": number,
  "recommendations": [
    {
      "title": string,
      "description": string,
      "priority": "critical" | "high" | "medium" | "low",
      "category": "insulation" | "heating_cooling" | "windows" | "appliances" | "renewable_energy" | "behavioral" | "other",
      "estimated_savings_annual": number,
      "estimated_cost": number,
      "payback_period_years": number,
      "implementation_difficulty": "easy" | "moderate" | "difficult"
    }
  ]
}

IMPORTANT GUIDELINES:
- Prioritize recommendations by impact and cost-effectiveness
- Consider the home's age and current features when making suggestions
- Provide realistic cost estimates and savings projections
- Include both quick wins (low-cost, high-impact) and long-term investments
- Make recommendations specific to this home's characteristics
- Ensure all recommendations are actionable and practical
- Return ONLY valid JSON, no markdown formatting, no code blocks
- All numeric values must be numbers, not strings
- Fill in estimated_savings_annual for each recommendation (estimated_cost / payback_period_years) and estimated_total_annual_savings as the sum of all recommendation savings`

// BuildAdvicePrompt turns a home profile into the ordered message sequence
// for the completion backend: a fixed system persona followed by one user
// message with the profile details and the output-format instructions.
// Pure function; deterministic for a given profile.
func BuildAdvicePrompt(home *models.HomeProfile) ([]llm.ChatMessage, error) {
	if home == nil {
		return nil, fmt.Errorf("%w: home profile must be set before building the prompt", ErrInvalidInput)
	}

	return []llm.ChatMessage{
		{Role: llm.RoleSystem, Content: adviceSystemPrompt},
		{Role: llm.RoleUser, Content: home.PromptDetails() + "\n" + adviceOutputInstructions},
	}, nil
}
