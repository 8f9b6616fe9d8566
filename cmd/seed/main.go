// Package main is the catalog seeding tool. It loads demo packages from a
// JSON file and inserts them through the repo layer, so seeded rows go through
// exactly the same SQL as production writes.
//
// Usage:
//
//	go run ./cmd/seed -file data/seeds/packages.json [-truncate]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/jmarek/space-voyages/backend/internal/domain"
	"github.com/jmarek/space-voyages/backend/internal/repo"
)

// seedPackage mirrors the JSON seed format. Departure is stored as an offset
// in days so the demo catalog always departs in the future regardless of when
// it is seeded.
type seedPackage struct {
	Name            string   `json:"name"`
	Destination     string   `json:"destination"`
	Duration        int      `json:"duration"`
	MinPrice        int64    `json:"minPrice"`
	MaxPrice        int64    `json:"maxPrice"`
	Price           int64    `json:"price"`
	Description     string   `json:"description"`
	Amenities       []string `json:"amenities"`
	ImageURL        string   `json:"imageUrl"`
	Gallery         []string `json:"gallery"`
	DepartureInDays int      `json:"departureInDays"`
	Rating          float64  `json:"rating"`
	Capacity        int      `json:"capacity"`
	AvailableSeats  int      `json:"availableSeats"`
	Featured        bool     `json:"featured"`
}

func main() {
	file := flag.String("file", "data/seeds/packages.json", "path to the seed JSON file")
	truncate := flag.Bool("truncate", false, "delete all existing packages before seeding")
	flag.Parse()

	if err := run(*file, *truncate); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(file string, truncate bool) error {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seeds []seedPackage
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	if truncate {
		if _, err := pool.Exec(ctx, `DELETE FROM packages`); err != nil {
			return fmt.Errorf("truncate packages: %w", err)
		}
		slog.Info("existing packages removed")
	}

	packages := repo.NewPackageRepo(pool)
	now := time.Now().UTC()

	for _, s := range seeds {
		created, err := packages.Create(ctx, domain.Package{
			Name:           s.Name,
			Destination:    s.Destination,
			Description:    s.Description,
			Duration:       s.Duration,
			MinPrice:       s.MinPrice,
			MaxPrice:       s.MaxPrice,
			Price:          s.Price,
			Capacity:       s.Capacity,
			AvailableSeats: s.AvailableSeats,
			Amenities:      s.Amenities,
			Gallery:        s.Gallery,
			ImageURL:       s.ImageURL,
			Departure:      now.AddDate(0, 0, s.DepartureInDays),
			Rating:         s.Rating,
			Featured:       s.Featured,
		})
		if err != nil {
			return fmt.Errorf("seed %q: %w", s.Name, err)
		}
		slog.Info("seeded package", "id", created.ID, "name", created.Name)
	}

	slog.Info("seeding complete", "count", len(seeds))
	return nil
}
