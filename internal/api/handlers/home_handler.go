package handlers

import (
	"context"

	"home-energy-advisor/internal/dto"
	"home-energy-advisor/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HomeManager is what the home handlers need from the home service.
type HomeManager interface {
	CreateHome(ctx context.Context, req *dto.CreateHomeRequest) (*models.HomeProfile, error)
	GetHome(ctx context.Context, id uuid.UUID) (*models.HomeProfile, error)
	UpdateHome(ctx context.Context, id uuid.UUID, req *dto.UpdateHomeRequest) (*models.HomeProfile, error)
	DeleteHome(ctx context.Context, id uuid.UUID) error
}

type HomeHandler struct {
	homes  HomeManager
	logger *zap.Logger
}

func NewHomeHandler(homes HomeManager, logger *zap.Logger) *HomeHandler {
	return &HomeHandler{
		homes:  homes,
		logger: logger,
	}
}

// CreateHome godoc
// @Summary Create a new home profile
// @Description Create a new home profile with energy-related characteristics
// @Tags homes
// @Accept json
// @Produce json
// @Param request body dto.CreateHomeRequest true "Home profile"
// @Success 201 {object} dto.HomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/homes [post]
func (h *HomeHandler) CreateHome(c *fiber.Ctx) error {
	var req dto.CreateHomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:  "Validation Error",
			Detail: err.Error(),
		})
	}

	home, err := h.homes.CreateHome(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create home profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to create home profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewHomeResponse(home))
}

// GetHome godoc
// @Summary Get a home profile by ID
// @Tags homes
// @Produce json
// @Param id path string true "Home ID"
// @Success 200 {object} dto.HomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/homes/{id} [get]
func (h *HomeHandler) GetHome(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid home ID",
		})
	}

	home, err := h.homes.GetHome(c.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load home profile", zap.String("home_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to load home profile",
		})
	}
	if home == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Home profile not found",
		})
	}

	return c.JSON(dto.NewHomeResponse(home))
}

// UpdateHome godoc
// @Summary Replace a home profile
// @Tags homes
// @Accept json
// @Produce json
// @Param id path string true "Home ID"
// @Param request body dto.UpdateHomeRequest true "Home profile"
// @Success 200 {object} dto.HomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/homes/{id} [put]
func (h *HomeHandler) UpdateHome(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid home ID",
		})
	}

	var req dto.UpdateHomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:  "Validation Error",
			Detail: err.Error(),
		})
	}

	home, err := h.homes.UpdateHome(c.Context(), id, &req)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Home profile not found",
			})
		}
		h.logger.Error("Failed to update home profile", zap.String("home_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to update home profile",
		})
	}

	return c.JSON(dto.NewHomeResponse(home))
}

// DeleteHome godoc
// @Summary Delete a home profile
// @Tags homes
// @Param id path string true "Home ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/homes/{id} [delete]
func (h *HomeHandler) DeleteHome(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid home ID",
		})
	}

	if err := h.homes.DeleteHome(c.Context(), id); err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Home profile not found",
			})
		}
		h.logger.Error("Failed to delete home profile", zap.String("home_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to delete home profile",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
