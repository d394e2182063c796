// seed applies the catalog schema and populates the demo climbing inventory:
// six categories and twelve gear items. Safe to re-run; existing records are
// kept (duplicates are skipped by the store's unique indexes).
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cragworks/gearshop/internal/domain"
	"github.com/cragworks/gearshop/internal/domain/entity"
	"github.com/cragworks/gearshop/internal/infrastructure/postgres"
	"github.com/cragworks/gearshop/pkg/config"
	"github.com/cragworks/gearshop/pkg/logger"
)

type seedGear struct {
	name, brand, description string
	price                    int64
	stock                    int
	category                 string
}

var seedCategories = []string{
	"Ropes", "Harness", "Quickdraws", "Belay Devices", "Carabiners", "Accessories",
}

var seedItems = []seedGear{
	{"Volta", "Petzl", "Ultra-light 9 mm rope for performance rock climbing", 250, 5, "Ropes"},
	{"Velocity", "Sterling", "Sterling's flagship rope and all-rounder for use in virtually any condition", 290, 6, "Ropes"},
	{"Mosquito", "Wild Country", "Extremely lightweight, minimalistic, high-end sport climbing harness", 120, 3, "Harness"},
	{"Venture", "DMM", "Lightweight performance without compromising comfort", 110, 4, "Harness"},
	{"Hirundos", "Petzl", "Slim and lightweight harness giving you total freedom of movement without compromising comfort", 100, 5, "Harness"},
	{"Spirit", "Petzl", "Lightweight and ergonomic, the Spirit quickdraw is THE benchmark for sport climbing and working a route", 23, 50, "Quickdraws"},
	{"Alpha", "DMM", "The quickdraw for sport climbers who prize easy handling and quick clipping", 26, 45, "Quickdraws"},
	{"Grigri", "Petzl", "Designed for all users, the GRIGRI is a belay device with assisted blocking for belaying both in the gym and at the crag", 150, 20, "Belay Devices"},
	{"Pivot", "DMM", "The Pivot belay device delivers confident belaying and effective stopping power whether used in guide mode, or belaying from the waist", 30, 12, "Belay Devices"},
	{"William", "Petzl", "The triple-locking WILLIAM is a large-capacity asymmetrical carabiner made of aluminum", 28, 13, "Carabiners"},
	{"Liteforge", "Black Diamond", "The LiteForge Screwgate Carabiner is our ultra-light keylock screwgates built for light and fast missions", 21, 34, "Carabiners"},
	{"Beta Stick", "Trango", "The Beta Stick Evo features a completely redesigned head with an adjustable wire arm, allowing you to clip both solid and wire gate carabiners", 100, 3, "Accessories"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply schema")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	gearRepo := postgres.NewGearRepository(pool)

	categoryIDs := make(map[string]string, len(seedCategories))
	for _, name := range seedCategories {
		now := time.Now()
		category := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		err := categoryRepo.Create(category)
		if errors.Is(err, domain.ErrDuplicate) {
			existing, gerr := categoryRepo.GetByName(name)
			if gerr != nil {
				log.Fatal().Err(gerr).Str("category", name).Msg("look up existing category")
			}
			categoryIDs[name] = existing.ID
			log.Info().Str("category", name).Msg("category already present")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("create category")
		}
		categoryIDs[name] = category.ID
		log.Info().Str("category", name).Msg("category created")
	}

	for _, item := range seedItems {
		now := time.Now()
		gear := &entity.Gear{
			ID:            uuid.New().String(),
			Name:          item.name,
			Brand:         item.brand,
			Description:   item.description,
			Price:         decimal.NewFromInt(item.price),
			NumberInStock: item.stock,
			CategoryID:    categoryIDs[item.category],
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		err := gearRepo.Create(gear)
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("gear", item.name).Msg("gear already present")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("gear", item.name).Msg("create gear")
		}
		log.Info().Str("gear", item.name).Str("category", item.category).Msg("gear created")
	}

	log.Info().Msg("seed complete")
}
