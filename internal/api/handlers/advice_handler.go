package handlers

import (
	"context"
	"errors"

	"home-energy-advisor/internal/dto"
	"home-energy-advisor/internal/llm"
	"home-energy-advisor/internal/models"
	"home-energy-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdviceGenerator is what the advice handler needs from the orchestrator.
type AdviceGenerator interface {
	GenerateAdvice(ctx context.Context, homeID uuid.UUID) (*models.EnergyAdvice, error)
	BackendHealthy(ctx context.Context) bool
}

type AdviceHandler struct {
	advice AdviceGenerator
	logger *zap.Logger
}

func NewAdviceHandler(advice AdviceGenerator, logger *zap.Logger) *AdviceHandler {
	return &AdviceHandler{
		advice: advice,
		logger: logger,
	}
}

// GenerateAdvice godoc
// @Summary Generate energy-saving recommendations
// @Description Run the LLM advice pipeline for one home profile
// @Tags energy-advice
// @Produce json
// @Param id path string true "Home ID"
// @Success 200 {object} dto.EnergyAdviceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /api/homes/{id}/advice [post]
func (h *AdviceHandler) GenerateAdvice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid home ID",
		})
	}

	advice, err := h.advice.GenerateAdvice(c.Context(), id)
	if err != nil {
		return h.mapAdviceError(c, id, err)
	}

	return c.JSON(dto.NewEnergyAdviceResponse(advice))
}

// mapAdviceError translates pipeline errors into transport signals. Client
// messages stay generic; the technical detail goes to the log only.
func (h *AdviceHandler) mapAdviceError(c *fiber.Ctx, id uuid.UUID, err error) error {
	switch {
	case isNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Home profile not found",
		})
	case errors.Is(err, llm.ErrBackendTimeout):
		h.logger.Warn("Advice generation timed out", zap.String("home_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{
			Error: "Energy advice generation timed out",
		})
	case errors.Is(err, llm.ErrBackendUnreachable), errors.Is(err, llm.ErrBackendUnavailable):
		h.logger.Warn("Advice backend unavailable", zap.String("home_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: "Energy advice service is temporarily unavailable",
		})
	case errors.Is(err, llm.ErrResponseValidation):
		h.logger.Warn("Advice response failed validation", zap.String("home_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: "The generated advice could not be validated",
		})
	default:
		h.logger.Error("Failed to generate energy advice", zap.String("home_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to generate energy advice",
		})
	}
}

// LLMHealth godoc
// @Summary Completion backend availability
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/llm [get]
func (h *AdviceHandler) LLMHealth(c *fiber.Ctx) error {
	available := h.advice.BackendHealthy(c.Context())
	return c.JSON(fiber.Map{
		"status":    "ok",
		"available": available,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrHomeNotFound)
}
