package main

import (
	"context"
	"log"

	"home-energy-advisor/internal/dto"
	"home-energy-advisor/internal/repository"
	"home-energy-advisor/internal/service"
	"home-energy-advisor/pkg/config"
	"home-energy-advisor/pkg/logger"
	"home-energy-advisor/pkg/postgres"

	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

// sampleHomes covers the common profile shapes: a minimal record and a fully
// populated one.
var sampleHomes = []dto.CreateHomeRequest{
	{
		SizeSqft:       2000,
		AgeYears:       15,
		HeatingType:    "gas",
		InsulationType: "moderate",
		WindowType:     "double_pane",
		NumFloors:      2,
		NumOccupants:   4,
		HasBasement:    true,
		HasAttic:       true,
	},
	{
		SizeSqft:             3400,
		AgeYears:             42,
		HeatingType:          "oil",
		InsulationType:       "basic",
		WindowType:           "single_pane",
		NumFloors:            3,
		NumOccupants:         5,
		HasBasement:          true,
		HasAttic:             true,
		Country:              ptr("United States"),
		ZipCode:              ptr("94105"),
		ClimateZone:          ptr("cold"),
		PrimaryEnergySource:  ptr("oil"),
		AvgMonthlyEnergyCost: ptr(412.50),
		AvgMonthlyKwh:        ptr(1250.0),
		HvacAgeYears:         ptr(18),
		RoofType:             ptr("asphalt_shingle"),
		RoofAgeYears:         ptr(25),
		BudgetRange:          ptr("high"),
		PlanningToSellYears:  ptr(10),
	},
	{
		SizeSqft:           950,
		AgeYears:           3,
		HeatingType:        "heat_pump",
		InsulationType:     "excellent",
		WindowType:         "triple_pane",
		NumFloors:          1,
		NumOccupants:       2,
		HasSolarPanels:     true,
		HasSmartThermostat: true,
		ClimateZone:        ptr("marine"),
		BudgetRange:        ptr("low"),
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	homeRepo := repository.NewHomeRepository(db, appLogger)
	if err := homeRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	homeService := service.NewHomeService(homeRepo, appLogger)

	appLogger.Info("Seeding sample home profiles...")
	for i := range sampleHomes {
		req := sampleHomes[i]
		if err := req.Validate(); err != nil {
			appLogger.Fatal("Sample profile invalid", zap.Int("index", i), zap.Error(err))
		}
		home, err := homeService.CreateHome(ctx, &req)
		if err != nil {
			appLogger.Fatal("Failed to seed home profile", zap.Int("index", i), zap.Error(err))
		}
		appLogger.Info("Seeded home profile", zap.String("home_id", home.ID.String()))
	}

	appLogger.Info("Seeding completed successfully!")
}
