package service

import (
	"context"
	"fmt"
	"time"

	"home-energy-advisor/internal/dto"
	"home-energy-advisor/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HomeRepository is the persistence surface for home profiles. GetByID
// reports an absent profile as (nil, nil); Delete reports whether a row was
// removed.
type HomeRepository interface {
	Create(ctx context.Context, home *models.HomeProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HomeProfile, error)
	Update(ctx context.Context, home *models.HomeProfile) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type HomeService struct {
	repo   HomeRepository
	logger *zap.Logger
}

func NewHomeService(repo HomeRepository, logger *zap.Logger) *HomeService {
	return &HomeService{
		repo:   repo,
		logger: logger,
	}
}

func (s *HomeService) CreateHome(ctx context.Context, req *dto.CreateHomeRequest) (*models.HomeProfile, error) {
	home := homeFromRequest(req)
	home.ID = uuid.New()
	now := time.Now().UTC()
	home.CreatedAt = now
	home.UpdatedAt = now

	if err := s.repo.Create(ctx, home); err != nil {
		return nil, fmt.Errorf("failed to create home profile: %w", err)
	}

	s.logger.Info("Home profile created", zap.String("home_id", home.ID.String()))
	return home, nil
}

// GetHome returns (nil, nil) when the profile does not exist; the caller
// decides how to surface that.
func (s *HomeService) GetHome(ctx context.Context, id uuid.UUID) (*models.HomeProfile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HomeService) UpdateHome(ctx context.Context, id uuid.UUID, req *dto.UpdateHomeRequest) (*models.HomeProfile, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load home profile: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: id %q", ErrHomeNotFound, id)
	}

	home := homeFromRequest(req)
	home.ID = id
	home.CreatedAt = existing.CreatedAt
	home.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, home); err != nil {
		return nil, fmt.Errorf("failed to update home profile: %w", err)
	}

	s.logger.Info("Home profile updated", zap.String("home_id", id.String()))
	return home, nil
}

func (s *HomeService) DeleteHome(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete home profile: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: id %q", ErrHomeNotFound, id)
	}

	s.logger.Info("Home profile deleted", zap.String("home_id", id.String()))
	return nil
}

func homeFromRequest(req *dto.CreateHomeRequest) *models.HomeProfile {
	return &models.HomeProfile{
		SizeSqft:             req.SizeSqft,
		AgeYears:             req.AgeYears,
		HeatingType:          models.HeatingType(req.HeatingType),
		InsulationType:       models.InsulationType(req.InsulationType),
		WindowType:           models.WindowType(req.WindowType),
		NumFloors:            req.NumFloors,
		NumOccupants:         req.NumOccupants,
		HasBasement:          req.HasBasement,
		HasAttic:             req.HasAttic,
		HasSolarPanels:       req.HasSolarPanels,
		HasSmartThermostat:   req.HasSmartThermostat,
		Country:              req.Country,
		ZipCode:              req.ZipCode,
		ClimateZone:          enumPtr[models.ClimateZone](req.ClimateZone),
		PrimaryEnergySource:  enumPtr[models.EnergySource](req.PrimaryEnergySource),
		AvgMonthlyEnergyCost: req.AvgMonthlyEnergyCost,
		AvgMonthlyKwh:        req.AvgMonthlyKwh,
		HvacAgeYears:         req.HvacAgeYears,
		RoofType:             enumPtr[models.RoofType](req.RoofType),
		RoofAgeYears:         req.RoofAgeYears,
		BudgetRange:          enumPtr[models.BudgetRange](req.BudgetRange),
		PlanningToSellYears:  req.PlanningToSellYears,
	}
}

func enumPtr[T ~string](v *string) *T {
	if v == nil {
		return nil
	}
	t := T(*v)
	return &t
}
