package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"home-energy-advisor/internal/llm"
	"home-energy-advisor/internal/models"
)

// recommendationPayload mirrors one element of the backend's recommendations
// array. Pointers distinguish absent fields from zero values.
type recommendationPayload struct {
	Title                    *string  `json:"title"`
	Description              *string  `json:"description"`
	Priority                 *string  `json:"priority"`
	Category                 *string  `json:"category"`
	EstimatedSavingsAnnual   *float64 `json:"estimated_savings_annual"`
	EstimatedCost            *float64 `json:"estimated_cost"`
	PaybackPeriodYears       *float64 `json:"payback_period_years"`
	ImplementationDifficulty *string  `json:"implementation_difficulty"`
}

type advicePayload struct {
	Summary                     string                  `json:"summary"`
	Recommendations             []recommendationPayload `json:"recommendations"`
	EstimatedTotalAnnualSavings *float64                `json:"estimated_total_annual_savings"`
}

// normalizeAdvice parses the raw completion text, repairs the numeric fields
// the model may have omitted or gotten wrong, and constructs a validated
// EnergyAdvice. The repair is a fixed point: normalizing an already-repaired
// payload yields the same advice.
func normalizeAdvice(raw, homeID, provider string) (*models.EnergyAdvice, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))

	var payload advicePayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		// The parse detail is for logs only, never echoed to clients.
		return nil, fmt.Errorf("%w: failed to parse response as JSON: %v", llm.ErrResponseValidation, err)
	}

	recommendations := make([]models.Recommendation, 0, len(payload.Recommendations))
	for i, rec := range payload.Recommendations {
		normalized, err := normalizeRecommendation(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: recommendation %d: %v", llm.ErrResponseValidation, i, err)
		}
		recommendations = append(recommendations, normalized)
	}

	return &models.EnergyAdvice{
		HomeID:                      homeID,
		Recommendations:             recommendations,
		Summary:                     payload.Summary,
		EstimatedTotalAnnualSavings: totalAnnualSavings(payload.EstimatedTotalAnnualSavings, recommendations),
		GeneratedAt:                 time.Now().UTC(),
		LLMProvider:                 provider,
	}, nil
}

func normalizeRecommendation(rec recommendationPayload) (models.Recommendation, error) {
	var out models.Recommendation

	if rec.Title == nil || *rec.Title == "" {
		return out, fmt.Errorf("missing required field %q", "title")
	}
	if rec.Description == nil || *rec.Description == "" {
		return out, fmt.Errorf("missing required field %q", "description")
	}
	if rec.Priority == nil {
		return out, fmt.Errorf("missing required field %q", "priority")
	}
	if rec.Category == nil {
		return out, fmt.Errorf("missing required field %q", "category")
	}

	priority := models.Priority(*rec.Priority)
	if !models.ValidPriorities[priority] {
		return out, fmt.Errorf("invalid priority %q", *rec.Priority)
	}
	category := models.RecommendationCategory(*rec.Category)
	if !models.ValidCategories[category] {
		return out, fmt.Errorf("invalid category %q", *rec.Category)
	}

	difficulty := models.DifficultyModerate
	if rec.ImplementationDifficulty != nil && *rec.ImplementationDifficulty != "" {
		difficulty = models.ImplementationDifficulty(*rec.ImplementationDifficulty)
		if !models.ValidDifficulties[difficulty] {
			return out, fmt.Errorf("invalid implementation_difficulty %q", *rec.ImplementationDifficulty)
		}
	}

	// Non-positive financial figures count as absent, never as errors.
	savings := positiveOrNil(rec.EstimatedSavingsAnnual)
	cost := positiveOrNil(rec.EstimatedCost)
	payback := positiveOrNil(rec.PaybackPeriodYears)

	// Derive annual savings from cost and payback when the model left it out.
	if savings == nil && cost != nil && payback != nil {
		derived := *cost / *payback
		savings = &derived
	}

	out = models.Recommendation{
		Title:                    *rec.Title,
		Description:              *rec.Description,
		Priority:                 priority,
		Category:                 category,
		EstimatedSavingsAnnual:   savings,
		EstimatedCost:            cost,
		PaybackPeriodYears:       payback,
		ImplementationDifficulty: difficulty,
	}
	return out, nil
}

// totalAnnualSavings keeps a supplied positive total verbatim; a missing or
// non-positive total is recomputed as the sum of recommendation savings, and
// stays absent when that sum is not positive either.
func totalAnnualSavings(supplied *float64, recommendations []models.Recommendation) *float64 {
	if supplied != nil && *supplied > 0 {
		return supplied
	}

	var sum float64
	for _, rec := range recommendations {
		if rec.EstimatedSavingsAnnual != nil {
			sum += *rec.EstimatedSavingsAnnual
		}
	}
	if sum > 0 {
		return &sum
	}
	return nil
}

func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

// stripCodeFence unwraps a ```json ... ``` block; models wrap their output in
// markdown fences often enough even when asked for bare JSON.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
