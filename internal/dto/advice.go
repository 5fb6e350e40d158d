package dto

import (
	"time"

	"home-energy-advisor/internal/models"
)

type RecommendationResponse struct {
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	Priority                 string   `json:"priority"`
	Category                 string   `json:"category"`
	EstimatedSavingsAnnual   *float64 `json:"estimated_savings_annual,omitempty"`
	EstimatedCost            *float64 `json:"estimated_cost,omitempty"`
	PaybackPeriodYears       *float64 `json:"payback_period_years,omitempty"`
	ImplementationDifficulty string   `json:"implementation_difficulty"`
}

type EnergyAdviceResponse struct {
	HomeID                      string                   `json:"home_id"`
	Recommendations             []RecommendationResponse `json:"recommendations"`
	Summary                     string                   `json:"summary"`
	EstimatedTotalAnnualSavings *float64                 `json:"estimated_total_annual_savings,omitempty"`
	GeneratedAt                 time.Time                `json:"generated_at"`
	LLMProvider                 string                   `json:"llm_provider"`
}

func NewEnergyAdviceResponse(a *models.EnergyAdvice) EnergyAdviceResponse {
	recs := make([]RecommendationResponse, 0, len(a.Recommendations))
	for _, rec := range a.Recommendations {
		recs = append(recs, RecommendationResponse{
			Title:                    rec.Title,
			Description:              rec.Description,
			Priority:                 string(rec.Priority),
			Category:                 string(rec.Category),
			EstimatedSavingsAnnual:   rec.EstimatedSavingsAnnual,
			EstimatedCost:            rec.EstimatedCost,
			PaybackPeriodYears:       rec.PaybackPeriodYears,
			ImplementationDifficulty: string(rec.ImplementationDifficulty),
		})
	}
	return EnergyAdviceResponse{
		HomeID:                      a.HomeID,
		Recommendations:             recs,
		Summary:                     a.Summary,
		EstimatedTotalAnnualSavings: a.EstimatedTotalAnnualSavings,
		GeneratedAt:                 a.GeneratedAt,
		LLMProvider:                 a.LLMProvider,
	}
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
