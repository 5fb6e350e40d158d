package service

import (
	"context"
	"errors"
	"fmt"

	"home-energy-advisor/internal/llm"
	"home-energy-advisor/internal/models"
	"home-energy-advisor/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrHomeNotFound distinguishes a missing profile from every LLM-related
// failure so the API layer can map it to 404.
var ErrHomeNotFound = errors.New("home profile not found")

// HomeStore is the read capability the advice pipeline needs from the
// profile store. An absent profile is (nil, nil); errors are store failures.
type HomeStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.HomeProfile, error)
}

// CompletionBackend is the pluggable LLM capability.
type CompletionBackend interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
	Name() string
	Healthy(ctx context.Context) bool
}

// AdviceService orchestrates the advice pipeline:
// lookup -> compile -> complete -> normalize.
type AdviceService struct {
	homes   HomeStore
	backend CompletionBackend
	cfg     *config.OllamaConfig
	logger  *zap.Logger
}

func NewAdviceService(homes HomeStore, backend CompletionBackend, cfg *config.OllamaConfig, logger *zap.Logger) *AdviceService {
	return &AdviceService{
		homes:   homes,
		backend: backend,
		cfg:     cfg,
		logger:  logger,
	}
}

// GenerateAdvice runs the full pipeline for one home. Either a fully
// constructed advice is returned or an error; backend and validation errors
// propagate untouched for the API layer to map.
func (s *AdviceService) GenerateAdvice(ctx context.Context, homeID uuid.UUID) (*models.EnergyAdvice, error) {
	home, err := s.homes.GetByID(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load home profile: %w", err)
	}
	if home == nil {
		return nil, fmt.Errorf("%w: id %q", ErrHomeNotFound, homeID)
	}

	messages, err := BuildAdvicePrompt(home)
	if err != nil {
		return nil, err
	}

	raw, err := s.backend.Complete(ctx, llm.CompletionRequest{
		Messages:    messages,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		Format:      adviceResponseFormat(),
	})
	if err != nil {
		return nil, err
	}

	advice, err := normalizeAdvice(raw, homeID.String(), s.backend.Name())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Energy advice generated",
		zap.String("home_id", homeID.String()),
		zap.Int("recommendations", len(advice.Recommendations)),
		zap.String("provider", advice.LLMProvider),
	)

	return advice, nil
}

// BackendHealthy reports whether the completion backend answers its health
// probe.
func (s *AdviceService) BackendHealthy(ctx context.Context) bool {
	return s.backend.Healthy(ctx)
}
