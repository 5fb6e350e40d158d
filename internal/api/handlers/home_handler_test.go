package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"home-energy-advisor/internal/dto"
	"home-energy-advisor/internal/models"
	"home-energy-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubHomeManager struct {
	home *models.HomeProfile
	err  error
}

func (s *stubHomeManager) CreateHome(context.Context, *dto.CreateHomeRequest) (*models.HomeProfile, error) {
	return s.home, s.err
}

func (s *stubHomeManager) GetHome(context.Context, uuid.UUID) (*models.HomeProfile, error) {
	return s.home, s.err
}

func (s *stubHomeManager) UpdateHome(context.Context, uuid.UUID, *dto.UpdateHomeRequest) (*models.HomeProfile, error) {
	return s.home, s.err
}

func (s *stubHomeManager) DeleteHome(context.Context, uuid.UUID) error { return s.err }

func homeApp(mgr HomeManager) *fiber.App {
	handler := NewHomeHandler(mgr, zap.NewNop())
	app := fiber.New()
	app.Post("/api/homes", handler.CreateHome)
	app.Get("/api/homes/:id", handler.GetHome)
	app.Put("/api/homes/:id", handler.UpdateHome)
	app.Delete("/api/homes/:id", handler.DeleteHome)
	return app
}

func sampleHome() *models.HomeProfile {
	now := time.Now().UTC()
	return &models.HomeProfile{
		ID:             uuid.New(),
		SizeSqft:       2000,
		AgeYears:       15,
		HeatingType:    models.HeatingGas,
		InsulationType: models.InsulationModerate,
		WindowType:     models.WindowDoublePane,
		NumFloors:      2,
		NumOccupants:   4,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func homeRequestBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(dto.CreateHomeRequest{
		SizeSqft:       2000,
		AgeYears:       15,
		HeatingType:    "gas",
		InsulationType: "moderate",
		WindowType:     "double_pane",
		NumFloors:      2,
		NumOccupants:   4,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestCreateHome(t *testing.T) {
	home := sampleHome()
	app := homeApp(&stubHomeManager{home: home})

	req := httptest.NewRequest("POST", "/api/homes", homeRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body dto.HomeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, home.ID.String(), body.ID)
	assert.Equal(t, "gas", body.HeatingType)
}

func TestCreateHomeRejectsInvalidPayload(t *testing.T) {
	app := homeApp(&stubHomeManager{})

	req := httptest.NewRequest("POST", "/api/homes", bytes.NewReader([]byte(`{"size_sqft": -5}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Validation Error", body.Error)
	assert.Contains(t, body.Detail, "size_sqft")
}

func TestGetHome(t *testing.T) {
	home := sampleHome()
	app := homeApp(&stubHomeManager{home: home})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/homes/"+home.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetHomeNotFound(t *testing.T) {
	app := homeApp(&stubHomeManager{home: nil})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/homes/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetHomeInvalidID(t *testing.T) {
	app := homeApp(&stubHomeManager{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/homes/1234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateHomeNotFound(t *testing.T) {
	app := homeApp(&stubHomeManager{err: service.ErrHomeNotFound})

	req := httptest.NewRequest("PUT", "/api/homes/"+uuid.NewString(), homeRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteHome(t *testing.T) {
	app := homeApp(&stubHomeManager{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/homes/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDeleteHomeNotFound(t *testing.T) {
	app := homeApp(&stubHomeManager{err: service.ErrHomeNotFound})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/homes/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
