package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validRequest() CreateHomeRequest {
	return CreateHomeRequest{
		SizeSqft:       2000,
		AgeYears:       15,
		HeatingType:    "gas",
		InsulationType: "moderate",
		WindowType:     "double_pane",
		NumFloors:      2,
		NumOccupants:   4,
	}
}

func TestValidateMinimalRequest(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())
}

func TestValidateFullRequest(t *testing.T) {
	req := validRequest()
	req.Country = ptr("United States")
	req.ZipCode = ptr("94105")
	req.ClimateZone = ptr("cold")
	req.PrimaryEnergySource = ptr("natural_gas")
	req.AvgMonthlyEnergyCost = ptr(250.50)
	req.AvgMonthlyKwh = ptr(900.0)
	req.HvacAgeYears = ptr(8)
	req.RoofType = ptr("asphalt_shingle")
	req.RoofAgeYears = ptr(10)
	req.BudgetRange = ptr("medium")
	req.PlanningToSellYears = ptr(5)
	require.NoError(t, req.Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateHomeRequest)
	}{
		{"zero size", func(r *CreateHomeRequest) { r.SizeSqft = 0 }},
		{"oversized", func(r *CreateHomeRequest) { r.SizeSqft = 50001 }},
		{"negative age", func(r *CreateHomeRequest) { r.AgeYears = -1 }},
		{"ancient", func(r *CreateHomeRequest) { r.AgeYears = 301 }},
		{"bad heating", func(r *CreateHomeRequest) { r.HeatingType = "coal" }},
		{"bad insulation", func(r *CreateHomeRequest) { r.InsulationType = "amazing" }},
		{"bad windows", func(r *CreateHomeRequest) { r.WindowType = "quad_pane" }},
		{"zero floors", func(r *CreateHomeRequest) { r.NumFloors = 0 }},
		{"too many floors", func(r *CreateHomeRequest) { r.NumFloors = 11 }},
		{"zero occupants", func(r *CreateHomeRequest) { r.NumOccupants = 0 }},
		{"bad zip", func(r *CreateHomeRequest) { r.ZipCode = ptr("abc123") }},
		{"long zip", func(r *CreateHomeRequest) { r.ZipCode = ptr("12345-67890") }},
		{"bad climate", func(r *CreateHomeRequest) { r.ClimateZone = ptr("tropical") }},
		{"bad energy source", func(r *CreateHomeRequest) { r.PrimaryEnergySource = ptr("coal") }},
		{"negative cost", func(r *CreateHomeRequest) { r.AvgMonthlyEnergyCost = ptr(-1.0) }},
		{"old hvac", func(r *CreateHomeRequest) { r.HvacAgeYears = ptr(51) }},
		{"bad roof", func(r *CreateHomeRequest) { r.RoofType = ptr("thatched") }},
		{"old roof", func(r *CreateHomeRequest) { r.RoofAgeYears = ptr(101) }},
		{"bad budget", func(r *CreateHomeRequest) { r.BudgetRange = ptr("unlimited") }},
		{"sell horizon", func(r *CreateHomeRequest) { r.PlanningToSellYears = ptr(51) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	req := validRequest()
	req.SizeSqft = 0
	req.HeatingType = "coal"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size_sqft")
	assert.Contains(t, err.Error(), "heating_type")
}
