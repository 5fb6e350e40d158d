package models

import "time"

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

type RecommendationCategory string

const (
	CategoryInsulation      RecommendationCategory = "insulation"
	CategoryHeatingCooling  RecommendationCategory = "heating_cooling"
	CategoryWindows         RecommendationCategory = "windows"
	CategoryAppliances      RecommendationCategory = "appliances"
	CategoryRenewableEnergy RecommendationCategory = "renewable_energy"
	CategoryBehavioral      RecommendationCategory = "behavioral"
	CategoryOther           RecommendationCategory = "other"
)

type ImplementationDifficulty string

const (
	DifficultyEasy      ImplementationDifficulty = "easy"
	DifficultyModerate  ImplementationDifficulty = "moderate"
	DifficultyDifficult ImplementationDifficulty = "difficult"
)

var (
	ValidPriorities = map[Priority]bool{
		PriorityCritical: true, PriorityHigh: true, PriorityMedium: true, PriorityLow: true,
	}
	ValidCategories = map[RecommendationCategory]bool{
		CategoryInsulation: true, CategoryHeatingCooling: true, CategoryWindows: true,
		CategoryAppliances: true, CategoryRenewableEnergy: true, CategoryBehavioral: true,
		CategoryOther: true,
	}
	ValidDifficulties = map[ImplementationDifficulty]bool{
		DifficultyEasy: true, DifficultyModerate: true, DifficultyDifficult: true,
	}
)

// Recommendation is one suggested energy-saving action. The financial fields
// are pointers because the model may legitimately omit them; when present
// they are always strictly positive.
type Recommendation struct {
	Title                    string                   `json:"title"`
	Description              string                   `json:"description"`
	Priority                 Priority                 `json:"priority"`
	Category                 RecommendationCategory   `json:"category"`
	EstimatedSavingsAnnual   *float64                 `json:"estimated_savings_annual,omitempty"`
	EstimatedCost            *float64                 `json:"estimated_cost,omitempty"`
	PaybackPeriodYears       *float64                 `json:"payback_period_years,omitempty"`
	ImplementationDifficulty ImplementationDifficulty `json:"implementation_difficulty"`
}

// EnergyAdvice is the aggregate result of one advice generation. It is built
// fresh for every request and never persisted.
type EnergyAdvice struct {
	HomeID                      string           `json:"home_id"`
	Recommendations             []Recommendation `json:"recommendations"`
	Summary                     string           `json:"summary"`
	EstimatedTotalAnnualSavings *float64         `json:"estimated_total_annual_savings,omitempty"`
	GeneratedAt                 time.Time        `json:"generated_at"`
	LLMProvider                 string           `json:"llm_provider"`
}
