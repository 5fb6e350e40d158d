package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type HeatingType string

const (
	HeatingGas      HeatingType = "gas"
	HeatingElectric HeatingType = "electric"
	HeatingOil      HeatingType = "oil"
	HeatingHeatPump HeatingType = "heat_pump"
	HeatingSolar    HeatingType = "solar"
	HeatingWood     HeatingType = "wood"
	HeatingOther    HeatingType = "other"
)

type InsulationType string

const (
	InsulationNone      InsulationType = "none"
	InsulationBasic     InsulationType = "basic"
	InsulationModerate  InsulationType = "moderate"
	InsulationGood      InsulationType = "good"
	InsulationExcellent InsulationType = "excellent"
)

type WindowType string

const (
	WindowSinglePane WindowType = "single_pane"
	WindowDoublePane WindowType = "double_pane"
	WindowTriplePane WindowType = "triple_pane"
	WindowLowE       WindowType = "low_e"
)

type ClimateZone string

const (
	ClimateHotHumid   ClimateZone = "hot_humid"
	ClimateHotDry     ClimateZone = "hot_dry"
	ClimateMixedHumid ClimateZone = "mixed_humid"
	ClimateMixedDry   ClimateZone = "mixed_dry"
	ClimateCold       ClimateZone = "cold"
	ClimateVeryCold   ClimateZone = "very_cold"
	ClimateSubarctic  ClimateZone = "subarctic"
	ClimateMarine     ClimateZone = "marine"
)

type EnergySource string

const (
	EnergyElectricity EnergySource = "electricity"
	EnergyNaturalGas  EnergySource = "natural_gas"
	EnergyPropane     EnergySource = "propane"
	EnergyOil         EnergySource = "oil"
	EnergyMixed       EnergySource = "mixed"
)

type RoofType string

const (
	RoofAsphaltShingle RoofType = "asphalt_shingle"
	RoofMetal          RoofType = "metal"
	RoofTile           RoofType = "tile"
	RoofSlate          RoofType = "slate"
	RoofFlat           RoofType = "flat"
	RoofWoodShake      RoofType = "wood_shake"
)

type BudgetRange string

const (
	BudgetLow     BudgetRange = "low"     // under $2,000
	BudgetMedium  BudgetRange = "medium"  // $2,000 - $10,000
	BudgetHigh    BudgetRange = "high"    // $10,000 - $30,000
	BudgetPremium BudgetRange = "premium" // over $30,000
)

// HomeProfile describes one dwelling's energy-relevant characteristics.
// The advice pipeline only ever reads it; mutation happens through the
// repository on explicit update requests.
type HomeProfile struct {
	ID uuid.UUID `db:"id"`

	// Basic information
	SizeSqft           int            `db:"size_sqft"`
	AgeYears           int            `db:"age_years"`
	HeatingType        HeatingType    `db:"heating_type"`
	InsulationType     InsulationType `db:"insulation_type"`
	WindowType         WindowType     `db:"window_type"`
	NumFloors          int            `db:"num_floors"`
	NumOccupants       int            `db:"num_occupants"`
	HasBasement        bool           `db:"has_basement"`
	HasAttic           bool           `db:"has_attic"`
	HasSolarPanels     bool           `db:"has_solar_panels"`
	HasSmartThermostat bool           `db:"has_smart_thermostat"`

	// Location & climate
	Country     *string      `db:"country"`
	ZipCode     *string      `db:"zip_code"`
	ClimateZone *ClimateZone `db:"climate_zone"`

	// Energy details
	PrimaryEnergySource  *EnergySource `db:"primary_energy_source"`
	AvgMonthlyEnergyCost *float64      `db:"avg_monthly_energy_cost"`
	AvgMonthlyKwh        *float64      `db:"avg_monthly_kwh"`
	HvacAgeYears         *int          `db:"hvac_age_years"`

	// Building characteristics
	RoofType     *RoofType `db:"roof_type"`
	RoofAgeYears *int      `db:"roof_age_years"`

	// Preferences
	BudgetRange         *BudgetRange `db:"budget_range"`
	PlanningToSellYears *int         `db:"planning_to_sell_years"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// PromptDetails renders the profile as label:value lines for the LLM prompt.
// Optional fields are omitted when unset.
func (h *HomeProfile) PromptDetails() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Home Profile:\n")
	fmt.Fprintf(&b, "- Size: %d square feet\n", h.SizeSqft)
	fmt.Fprintf(&b, "- Age: %d years old\n", h.AgeYears)
	fmt.Fprintf(&b, "- Heating Type: %s\n", h.HeatingType)
	fmt.Fprintf(&b, "- Insulation: %s\n", h.InsulationType)
	fmt.Fprintf(&b, "- Windows: %s\n", h.WindowType)
	fmt.Fprintf(&b, "- Floors: %d\n", h.NumFloors)
	fmt.Fprintf(&b, "- Occupants: %d\n", h.NumOccupants)
	fmt.Fprintf(&b, "- Basement: %s\n", yesNo(h.HasBasement))
	fmt.Fprintf(&b, "- Attic: %s\n", yesNo(h.HasAttic))
	fmt.Fprintf(&b, "- Solar Panels: %s\n", yesNo(h.HasSolarPanels))
	fmt.Fprintf(&b, "- Smart Thermostat: %s", yesNo(h.HasSmartThermostat))

	if h.Country != nil {
		fmt.Fprintf(&b, "\n- Country: %s", *h.Country)
	}
	if h.ZipCode != nil {
		fmt.Fprintf(&b, "\n- Zip Code: %s", *h.ZipCode)
	}
	if h.ClimateZone != nil {
		fmt.Fprintf(&b, "\n- Climate Zone: %s", *h.ClimateZone)
	}
	if h.PrimaryEnergySource != nil {
		fmt.Fprintf(&b, "\n- Primary Energy Source: %s", *h.PrimaryEnergySource)
	}
	if h.AvgMonthlyEnergyCost != nil {
		fmt.Fprintf(&b, "\n- Average Monthly Energy Cost: $%.2f", *h.AvgMonthlyEnergyCost)
	}
	if h.AvgMonthlyKwh != nil {
		fmt.Fprintf(&b, "\n- Average Monthly Electricity Usage: %.1f kWh", *h.AvgMonthlyKwh)
	}
	if h.HvacAgeYears != nil {
		fmt.Fprintf(&b, "\n- HVAC System Age: %d years", *h.HvacAgeYears)
	}
	if h.RoofType != nil {
		fmt.Fprintf(&b, "\n- Roof Type: %s", *h.RoofType)
	}
	if h.RoofAgeYears != nil {
		fmt.Fprintf(&b, "\n- Roof Age: %d years", *h.RoofAgeYears)
	}
	if h.BudgetRange != nil {
		fmt.Fprintf(&b, "\n- Budget Range: %s", *h.BudgetRange)
	}
	if h.PlanningToSellYears != nil {
		fmt.Fprintf(&b, "\n- Planning to Sell Within: %d years", *h.PlanningToSellYears)
	}

	return b.String()
}

// ValidHeatingTypes and friends are used by the transport layer to reject
// unknown enum values before they reach the store.
var (
	ValidHeatingTypes = map[HeatingType]bool{
		HeatingGas: true, HeatingElectric: true, HeatingOil: true,
		HeatingHeatPump: true, HeatingSolar: true, HeatingWood: true, HeatingOther: true,
	}
	ValidInsulationTypes = map[InsulationType]bool{
		InsulationNone: true, InsulationBasic: true, InsulationModerate: true,
		InsulationGood: true, InsulationExcellent: true,
	}
	ValidWindowTypes = map[WindowType]bool{
		WindowSinglePane: true, WindowDoublePane: true, WindowTriplePane: true, WindowLowE: true,
	}
	ValidClimateZones = map[ClimateZone]bool{
		ClimateHotHumid: true, ClimateHotDry: true, ClimateMixedHumid: true,
		ClimateMixedDry: true, ClimateCold: true, ClimateVeryCold: true,
		ClimateSubarctic: true, ClimateMarine: true,
	}
	ValidEnergySources = map[EnergySource]bool{
		EnergyElectricity: true, EnergyNaturalGas: true, EnergyPropane: true,
		EnergyOil: true, EnergyMixed: true,
	}
	ValidRoofTypes = map[RoofType]bool{
		RoofAsphaltShingle: true, RoofMetal: true, RoofTile: true,
		RoofSlate: true, RoofFlat: true, RoofWoodShake: true,
	}
	ValidBudgetRanges = map[BudgetRange]bool{
		BudgetLow: true, BudgetMedium: true, BudgetHigh: true, BudgetPremium: true,
	}
)
