package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"home-energy-advisor/internal/models"
)

// CreateHomeRequest carries a new home profile over the wire. Field bounds
// match the domain limits; enum values are checked before anything reaches
// the store.
type CreateHomeRequest struct {
	SizeSqft           int    `json:"size_sqft"`
	AgeYears           int    `json:"age_years"`
	HeatingType        string `json:"heating_type"`
	InsulationType     string `json:"insulation_type"`
	WindowType         string `json:"window_type"`
	NumFloors          int    `json:"num_floors"`
	NumOccupants       int    `json:"num_occupants"`
	HasBasement        bool   `json:"has_basement"`
	HasAttic           bool   `json:"has_attic"`
	HasSolarPanels     bool   `json:"has_solar_panels"`
	HasSmartThermostat bool   `json:"has_smart_thermostat"`

	Country     *string `json:"country,omitempty"`
	ZipCode     *string `json:"zip_code,omitempty"`
	ClimateZone *string `json:"climate_zone,omitempty"`

	PrimaryEnergySource  *string  `json:"primary_energy_source,omitempty"`
	AvgMonthlyEnergyCost *float64 `json:"avg_monthly_energy_cost,omitempty"`
	AvgMonthlyKwh        *float64 `json:"avg_monthly_kwh,omitempty"`
	HvacAgeYears         *int     `json:"hvac_age_years,omitempty"`

	RoofType     *string `json:"roof_type,omitempty"`
	RoofAgeYears *int    `json:"roof_age_years,omitempty"`

	BudgetRange         *string `json:"budget_range,omitempty"`
	PlanningToSellYears *int    `json:"planning_to_sell_years,omitempty"`
}

// UpdateHomeRequest replaces the whole profile; same shape and rules as
// creation.
type UpdateHomeRequest = CreateHomeRequest

func (r *CreateHomeRequest) Validate() error {
	var errs []string

	if r.SizeSqft <= 0 || r.SizeSqft > 50000 {
		errs = append(errs, "size_sqft must be between 1 and 50000")
	}
	if r.AgeYears < 0 || r.AgeYears > 300 {
		errs = append(errs, "age_years must be between 0 and 300")
	}
	if !models.ValidHeatingTypes[models.HeatingType(r.HeatingType)] {
		errs = append(errs, fmt.Sprintf("invalid heating_type %q", r.HeatingType))
	}
	if !models.ValidInsulationTypes[models.InsulationType(r.InsulationType)] {
		errs = append(errs, fmt.Sprintf("invalid insulation_type %q", r.InsulationType))
	}
	if !models.ValidWindowTypes[models.WindowType(r.WindowType)] {
		errs = append(errs, fmt.Sprintf("invalid window_type %q", r.WindowType))
	}
	if r.NumFloors < 1 || r.NumFloors > 10 {
		errs = append(errs, "num_floors must be between 1 and 10")
	}
	if r.NumOccupants < 1 || r.NumOccupants > 20 {
		errs = append(errs, "num_occupants must be between 1 and 20")
	}

	if r.Country != nil && len(*r.Country) > 100 {
		errs = append(errs, "country must be at most 100 characters")
	}
	if r.ZipCode != nil {
		if len(*r.ZipCode) > 10 {
			errs = append(errs, "zip_code must be at most 10 characters")
		}
		if !zipCodeValid(*r.ZipCode) {
			errs = append(errs, "zip_code must contain only digits and hyphens")
		}
	}
	if r.ClimateZone != nil && !models.ValidClimateZones[models.ClimateZone(*r.ClimateZone)] {
		errs = append(errs, fmt.Sprintf("invalid climate_zone %q", *r.ClimateZone))
	}
	if r.PrimaryEnergySource != nil && !models.ValidEnergySources[models.EnergySource(*r.PrimaryEnergySource)] {
		errs = append(errs, fmt.Sprintf("invalid primary_energy_source %q", *r.PrimaryEnergySource))
	}
	if r.AvgMonthlyEnergyCost != nil && *r.AvgMonthlyEnergyCost < 0 {
		errs = append(errs, "avg_monthly_energy_cost must not be negative")
	}
	if r.AvgMonthlyKwh != nil && *r.AvgMonthlyKwh < 0 {
		errs = append(errs, "avg_monthly_kwh must not be negative")
	}
	if r.HvacAgeYears != nil && (*r.HvacAgeYears < 0 || *r.HvacAgeYears > 50) {
		errs = append(errs, "hvac_age_years must be between 0 and 50")
	}
	if r.RoofType != nil && !models.ValidRoofTypes[models.RoofType(*r.RoofType)] {
		errs = append(errs, fmt.Sprintf("invalid roof_type %q", *r.RoofType))
	}
	if r.RoofAgeYears != nil && (*r.RoofAgeYears < 0 || *r.RoofAgeYears > 100) {
		errs = append(errs, "roof_age_years must be between 0 and 100")
	}
	if r.BudgetRange != nil && !models.ValidBudgetRanges[models.BudgetRange(*r.BudgetRange)] {
		errs = append(errs, fmt.Sprintf("invalid budget_range %q", *r.BudgetRange))
	}
	if r.PlanningToSellYears != nil && (*r.PlanningToSellYears < 0 || *r.PlanningToSellYears > 50) {
		errs = append(errs, "planning_to_sell_years must be between 0 and 50")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func zipCodeValid(zip string) bool {
	for _, c := range zip {
		if (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return true
}

type HomeResponse struct {
	ID                 string `json:"id"`
	SizeSqft           int    `json:"size_sqft"`
	AgeYears           int    `json:"age_years"`
	HeatingType        string `json:"heating_type"`
	InsulationType     string `json:"insulation_type"`
	WindowType         string `json:"window_type"`
	NumFloors          int    `json:"num_floors"`
	NumOccupants       int    `json:"num_occupants"`
	HasBasement        bool   `json:"has_basement"`
	HasAttic           bool   `json:"has_attic"`
	HasSolarPanels     bool   `json:"has_solar_panels"`
	HasSmartThermostat bool   `json:"has_smart_thermostat"`

	Country     *string `json:"country,omitempty"`
	ZipCode     *string `json:"zip_code,omitempty"`
	ClimateZone *string `json:"climate_zone,omitempty"`

	PrimaryEnergySource  *string  `json:"primary_energy_source,omitempty"`
	AvgMonthlyEnergyCost *float64 `json:"avg_monthly_energy_cost,omitempty"`
	AvgMonthlyKwh        *float64 `json:"avg_monthly_kwh,omitempty"`
	HvacAgeYears         *int     `json:"hvac_age_years,omitempty"`

	RoofType     *string `json:"roof_type,omitempty"`
	RoofAgeYears *int    `json:"roof_age_years,omitempty"`

	BudgetRange         *string `json:"budget_range,omitempty"`
	PlanningToSellYears *int    `json:"planning_to_sell_years,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewHomeResponse(h *models.HomeProfile) HomeResponse {
	return HomeResponse{
		ID:                   h.ID.String(),
		SizeSqft:             h.SizeSqft,
		AgeYears:             h.AgeYears,
		HeatingType:          string(h.HeatingType),
		InsulationType:       string(h.InsulationType),
		WindowType:           string(h.WindowType),
		NumFloors:            h.NumFloors,
		NumOccupants:         h.NumOccupants,
		HasBasement:          h.HasBasement,
		HasAttic:             h.HasAttic,
		HasSolarPanels:       h.HasSolarPanels,
		HasSmartThermostat:   h.HasSmartThermostat,
		Country:              h.Country,
		ZipCode:              h.ZipCode,
		ClimateZone:          enumString(h.ClimateZone),
		PrimaryEnergySource:  enumString(h.PrimaryEnergySource),
		AvgMonthlyEnergyCost: h.AvgMonthlyEnergyCost,
		AvgMonthlyKwh:        h.AvgMonthlyKwh,
		HvacAgeYears:         h.HvacAgeYears,
		RoofType:             enumString(h.RoofType),
		RoofAgeYears:         h.RoofAgeYears,
		BudgetRange:          enumString(h.BudgetRange),
		PlanningToSellYears:  h.PlanningToSellYears,
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
	}
}

func enumString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
