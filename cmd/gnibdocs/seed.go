package main

import (
	"context"
	"fmt"

	"gnibdocs/internal/db"
	"gnibdocs/internal/seed"
	"gnibdocs/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Sync the document requirement table into the database",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)
		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logger.Info("Connected to database")

		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}

		requirementRepo := store.NewRequirementRepository(pool)

		logger.Info("Seeding document requirements...")
		if err := seed.SeedRequirements(ctx, logger, requirementRepo); err != nil {
			return fmt.Errorf("failed to seed requirements: %w", err)
		}

		logger.Info("Requirements seeded successfully")

		return nil
	},
}
