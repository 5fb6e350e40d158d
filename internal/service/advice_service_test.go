package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"home-energy-advisor/internal/llm"
	"home-energy-advisor/internal/models"
	"home-energy-advisor/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeHomeStore struct {
	homes map[uuid.UUID]*models.HomeProfile
	err   error
}

func (f *fakeHomeStore) GetByID(_ context.Context, id uuid.UUID) (*models.HomeProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.homes[id], nil
}

type fakeBackend struct {
	response string
	err      error
	calls    int
	lastReq  llm.CompletionRequest
}

func (f *fakeBackend) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeBackend) Name() string { return testProvider }

func (f *fakeBackend) Healthy(context.Context) bool { return true }

func adviceTestConfig() *config.OllamaConfig {
	return &config.OllamaConfig{
		Model:       "llama3.2",
		Temperature: 0.7,
		MaxTokens:   4000,
	}
}

func TestGenerateAdviceEndToEnd(t *testing.T) {
	id := uuid.New()
	store := &fakeHomeStore{homes: map[uuid.UUID]*models.HomeProfile{
		id: baseProfile(),
	}}
	backend := &fakeBackend{response: `{
		"summary": "Solid home with room to improve.",
		"recommendations": [{
			"title": "Upgrade Attic Insulation",
			"description": "Add blown-in insulation.",
			"priority": "high",
			"category": "insulation",
			"estimated_cost": 2000,
			"payback_period_years": 4
		}]
	}`}

	svc := NewAdviceService(store, backend, adviceTestConfig(), zap.NewNop())
	advice, err := svc.GenerateAdvice(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id.String(), advice.HomeID)
	assert.Equal(t, testProvider, advice.LLMProvider)
	require.Len(t, advice.Recommendations, 1)
	require.NotNil(t, advice.Recommendations[0].EstimatedSavingsAnnual)
	assert.InDelta(t, 500.0, *advice.Recommendations[0].EstimatedSavingsAnnual, 1e-9)
	require.NotNil(t, advice.EstimatedTotalAnnualSavings)
	assert.InDelta(t, 500.0, *advice.EstimatedTotalAnnualSavings, 1e-9)

	// Sampling parameters and the schema hint come from configuration.
	assert.Equal(t, 0.7, backend.lastReq.Temperature)
	assert.Equal(t, 4000, backend.lastReq.MaxTokens)
	assert.NotNil(t, backend.lastReq.Format)
	require.Len(t, backend.lastReq.Messages, 2)
}

func TestGenerateAdviceNotFoundSkipsBackend(t *testing.T) {
	store := &fakeHomeStore{homes: map[uuid.UUID]*models.HomeProfile{}}
	backend := &fakeBackend{response: "{}"}

	svc := NewAdviceService(store, backend, adviceTestConfig(), zap.NewNop())
	_, err := svc.GenerateAdvice(context.Background(), uuid.New())

	require.ErrorIs(t, err, ErrHomeNotFound)
	assert.Zero(t, backend.calls, "no backend call may happen for a missing profile")
}

func TestGenerateAdviceBackendErrorsPropagate(t *testing.T) {
	id := uuid.New()
	store := &fakeHomeStore{homes: map[uuid.UUID]*models.HomeProfile{id: baseProfile()}}

	for _, sentinel := range []error{
		llm.ErrBackendTimeout,
		llm.ErrBackendUnreachable,
		llm.ErrBackendUnavailable,
	} {
		backend := &fakeBackend{err: fmt.Errorf("%w: boom", sentinel)}
		svc := NewAdviceService(store, backend, adviceTestConfig(), zap.NewNop())

		_, err := svc.GenerateAdvice(context.Background(), id)
		require.ErrorIs(t, err, sentinel)
	}
}

func TestGenerateAdviceValidationErrorPropagates(t *testing.T) {
	id := uuid.New()
	store := &fakeHomeStore{homes: map[uuid.UUID]*models.HomeProfile{id: baseProfile()}}
	backend := &fakeBackend{response: "not json"}

	svc := NewAdviceService(store, backend, adviceTestConfig(), zap.NewNop())
	_, err := svc.GenerateAdvice(context.Background(), id)
	require.ErrorIs(t, err, llm.ErrResponseValidation)
}

func TestGenerateAdviceStoreErrorPassesThrough(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &fakeHomeStore{err: storeErr}
	backend := &fakeBackend{}

	svc := NewAdviceService(store, backend, adviceTestConfig(), zap.NewNop())
	_, err := svc.GenerateAdvice(context.Background(), uuid.New())

	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrHomeNotFound)
	assert.Zero(t, backend.calls)
}
