package repository

import (
	"context"
	"errors"

	"home-energy-advisor/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var homeColumns = []string{
	"id", "size_sqft", "age_years", "heating_type", "insulation_type", "window_type",
	"num_floors", "num_occupants", "has_basement", "has_attic", "has_solar_panels",
	"has_smart_thermostat", "country", "zip_code", "climate_zone",
	"primary_energy_source", "avg_monthly_energy_cost", "avg_monthly_kwh",
	"hvac_age_years", "roof_type", "roof_age_years", "budget_range",
	"planning_to_sell_years", "created_at", "updated_at",
}

type HomeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHomeRepository(db *pgxpool.Pool, logger *zap.Logger) *HomeRepository {
	return &HomeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *HomeRepository) Create(ctx context.Context, home *models.HomeProfile) error {
	query := squirrel.Insert("homes").
		Columns(homeColumns...).
		Values(homeValues(home)...).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *HomeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HomeProfile, error) {
	query := squirrel.Select(homeColumns...).
		From("homes").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var home models.HomeProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(homeScanTargets(&home)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &home, nil
}

func (r *HomeRepository) Update(ctx context.Context, home *models.HomeProfile) error {
	query := squirrel.Update("homes").
		Where(squirrel.Eq{"id": home.ID}).
		PlaceholderFormat(squirrel.Dollar)

	values := homeValues(home)
	for i, col := range homeColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		query = query.Set(col, values[i])
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *HomeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := squirrel.Delete("homes").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// EnsureSchema creates the homes table when missing. Used by cmd/seed and at
// service startup so a fresh database works without manual migration.
func (r *HomeRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS homes (
	id UUID PRIMARY KEY,
	size_sqft INTEGER NOT NULL,
	age_years INTEGER NOT NULL,
	heating_type TEXT NOT NULL,
	insulation_type TEXT NOT NULL,
	window_type TEXT NOT NULL,
	num_floors INTEGER NOT NULL,
	num_occupants INTEGER NOT NULL,
	has_basement BOOLEAN NOT NULL DEFAULT FALSE,
	has_attic BOOLEAN NOT NULL DEFAULT FALSE,
	has_solar_panels BOOLEAN NOT NULL DEFAULT FALSE,
	has_smart_thermostat BOOLEAN NOT NULL DEFAULT FALSE,
	country TEXT,
	zip_code TEXT,
	climate_zone TEXT,
	primary_energy_source TEXT,
	avg_monthly_energy_cost DOUBLE PRECISION,
	avg_monthly_kwh DOUBLE PRECISION,
	hvac_age_years INTEGER,
	roof_type TEXT,
	roof_age_years INTEGER,
	budget_range TEXT,
	planning_to_sell_years INTEGER,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

	if _, err := r.db.Exec(ctx, ddl); err != nil {
		return err
	}

	r.logger.Debug("Homes schema ensured")
	return nil
}

func homeValues(h *models.HomeProfile) []any {
	return []any{
		h.ID, h.SizeSqft, h.AgeYears, h.HeatingType, h.InsulationType, h.WindowType,
		h.NumFloors, h.NumOccupants, h.HasBasement, h.HasAttic, h.HasSolarPanels,
		h.HasSmartThermostat, h.Country, h.ZipCode, h.ClimateZone,
		h.PrimaryEnergySource, h.AvgMonthlyEnergyCost, h.AvgMonthlyKwh,
		h.HvacAgeYears, h.RoofType, h.RoofAgeYears, h.BudgetRange,
		h.PlanningToSellYears, h.CreatedAt, h.UpdatedAt,
	}
}

func homeScanTargets(h *models.HomeProfile) []any {
	return []any{
		&h.ID, &h.SizeSqft, &h.AgeYears, &h.HeatingType, &h.InsulationType, &h.WindowType,
		&h.NumFloors, &h.NumOccupants, &h.HasBasement, &h.HasAttic, &h.HasSolarPanels,
		&h.HasSmartThermostat, &h.Country, &h.ZipCode, &h.ClimateZone,
		&h.PrimaryEnergySource, &h.AvgMonthlyEnergyCost, &h.AvgMonthlyKwh,
		&h.HvacAgeYears, &h.RoofType, &h.RoofAgeYears, &h.BudgetRange,
		&h.PlanningToSellYears, &h.CreatedAt, &h.UpdatedAt,
	}
}
