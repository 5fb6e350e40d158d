package service

import (
	"strings"
	"testing"

	"home-energy-advisor/internal/llm"
	"home-energy-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func baseProfile() *models.HomeProfile {
	return &models.HomeProfile{
		SizeSqft:       2000,
		AgeYears:       15,
		HeatingType:    models.HeatingGas,
		InsulationType: models.InsulationModerate,
		WindowType:     models.WindowDoublePane,
		NumFloors:      2,
		NumOccupants:   4,
	}
}

func TestBuildAdvicePromptShape(t *testing.T) {
	messages, err := BuildAdvicePrompt(baseProfile())
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, adviceSystemPrompt, messages[0].Content)
	assert.Equal(t, llm.RoleUser, messages[1].Role)
}

func TestBuildAdvicePromptIncludesSetFields(t *testing.T) {
	home := baseProfile()
	home.HasBasement = true
	home.Country = ptr("Germany")
	home.AvgMonthlyEnergyCost = ptr(250.5)
	home.AvgMonthlyKwh = ptr(900.0)
	home.HvacAgeYears = ptr(8)

	messages, err := BuildAdvicePrompt(home)
	require.NoError(t, err)

	user := messages[1].Content
	assert.Contains(t, user, "- Size: 2000 square feet")
	assert.Contains(t, user, "- Age: 15 years old")
	assert.Contains(t, user, "- Heating Type: gas")
	assert.Contains(t, user, "- Insulation: moderate")
	assert.Contains(t, user, "- Windows: double_pane")
	assert.Contains(t, user, "- Floors: 2")
	assert.Contains(t, user, "- Occupants: 4")
	assert.Contains(t, user, "- Basement: Yes")
	assert.Contains(t, user, "- Country: Germany")
	assert.Contains(t, user, "- Average Monthly Energy Cost: $250.50")
	assert.Contains(t, user, "- Average Monthly Electricity Usage: 900.0 kWh")
	assert.Contains(t, user, "- HVAC System Age: 8 years")

	// Output-format instructions ride along in the same user message.
	assert.Contains(t, user, "Return ONLY valid JSON")
	assert.Contains(t, user, "5-8 prioritized recommendations")
}

func TestBuildAdvicePromptOmitsUnsetOptionals(t *testing.T) {
	messages, err := BuildAdvicePrompt(baseProfile())
	require.NoError(t, err)

	user := messages[1].Content
	for _, label := range []string{
		"Country", "Zip Code", "Climate Zone", "Primary Energy Source",
		"Average Monthly Energy Cost", "Average Monthly Electricity Usage",
		"HVAC System Age", "Roof Type", "Roof Age", "Budget Range",
		"Planning to Sell",
	} {
		assert.False(t, strings.Contains(user, label), "unset field %q should be omitted", label)
	}
}

func TestBuildAdvicePromptDeterministic(t *testing.T) {
	home := baseProfile()
	first, err := BuildAdvicePrompt(home)
	require.NoError(t, err)
	second, err := BuildAdvicePrompt(home)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildAdvicePromptNilProfile(t *testing.T) {
	_, err := BuildAdvicePrompt(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
