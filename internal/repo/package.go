// Package repo contains all database access logic for the Space Voyages API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PackageRepo defines the persistence operations for travel Packages.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows services to be unit-tested with a mock.
type PackageRepo interface {
	// Create inserts a new package and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated). Used by the
	// seeding tool; the API itself never creates packages.
	Create(ctx context.Context, pkg domain.Package) (domain.Package, error)

	// GetByID retrieves a single package by its UUID primary key.
	// Returns domain.ErrNotFound if no package with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error)

	// List returns the full catalog ordered by created_at descending
	// (most recently created first). Filtering and sorting happen in the
	// service layer over this snapshot.
	List(ctx context.Context) ([]domain.Package, error)

	// UpdatePrice sets a package's current price and refreshes updated_at.
	// No other field is touched. Returns domain.ErrNotFound if absent.
	UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error

	// ReserveSeats atomically decrements available_seats by seats.
	// Returns domain.ErrConflict when fewer than seats remain and
	// domain.ErrNotFound when the package does not exist.
	ReserveSeats(ctx context.Context, id uuid.UUID, seats int) (domain.Package, error)
}

// pgPackageRepo is the Postgres implementation of PackageRepo.
type pgPackageRepo struct {
	db db
}

// NewPackageRepo constructs a PackageRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPackageRepo(db db) PackageRepo {
	return &pgPackageRepo{db: db}
}

// packageColumns is the canonical select list shared by every query so that
// scanPackage's positional Scan always matches.
const packageColumns = `id, name, destination, description, duration,
	min_price, max_price, price, capacity, available_seats,
	amenities, gallery, image_url, departure, rating, featured,
	created_at, updated_at`

// Create inserts a new package row and returns the full persisted record.
func (r *pgPackageRepo) Create(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	const q = `
		INSERT INTO packages (name, destination, description, duration,
			min_price, max_price, price, capacity, available_seats,
			amenities, gallery, image_url, departure, rating, featured)
		VALUES (@name, @destination, @description, @duration,
			@min_price, @max_price, @price, @capacity, @available_seats,
			@amenities, @gallery, @image_url, @departure, @rating, @featured)
		RETURNING ` + packageColumns

	args := pgx.NamedArgs{
		"name":            pkg.Name,
		"destination":     pkg.Destination,
		"description":     pkg.Description,
		"duration":        pkg.Duration,
		"min_price":       pkg.MinPrice,
		"max_price":       pkg.MaxPrice,
		"price":           pkg.Price,
		"capacity":        pkg.Capacity,
		"available_seats": pkg.AvailableSeats,
		"amenities":       pkg.Amenities,
		"gallery":         pkg.Gallery,
		"image_url":       pkg.ImageURL,
		"departure":       pkg.Departure,
		"rating":          pkg.Rating,
		"featured":        pkg.Featured,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPackage(row)
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a package by primary key.
func (r *pgPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	const q = `SELECT ` + packageColumns + ` FROM packages WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPackage(row)
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns the whole catalog, most recently created first. The catalog is
// small (tens of packages), so materializing it per request is deliberate.
func (r *pgPackageRepo) List(ctx context.Context) ([]domain.Package, error) {
	const q = `SELECT ` + packageColumns + ` FROM packages ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: %w", err)
	}
	defer rows.Close()

	var pkgs []domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackageRepo.List: scan: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: rows: %w", err)
	}

	return pkgs, nil
}

// UpdatePrice sets price and updated_at, leaving every other column untouched.
// Each call is a single independent statement: the repricing job issues one
// per package with no transaction spanning the batch.
func (r *pgPackageRepo) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error {
	const q = `
		UPDATE packages
		SET price = @price, updated_at = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "price": price})
	if err != nil {
		return fmt.Errorf("repo.PackageRepo.UpdatePrice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackageRepo.UpdatePrice: %w", domain.ErrNotFound)
	}
	return nil
}

// ReserveSeats decrements available_seats behind a guard in a single statement,
// so concurrent bookings can never take the count below zero.
func (r *pgPackageRepo) ReserveSeats(ctx context.Context, id uuid.UUID, seats int) (domain.Package, error) {
	const q = `
		UPDATE packages
		SET available_seats = available_seats - @seats, updated_at = now()
		WHERE id = @id AND available_seats >= @seats
		RETURNING ` + packageColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "seats": seats})
	result, err := scanPackage(row)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.ReserveSeats: %w", err)
	}

	// The guarded UPDATE matched nothing: distinguish "no such package"
	// from "not enough seats".
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		if errors.Is(getErr, domain.ErrNotFound) {
			return domain.Package{}, fmt.Errorf("repo.PackageRepo.ReserveSeats: %w", domain.ErrNotFound)
		}
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.ReserveSeats: %w", getErr)
	}
	return domain.Package{}, fmt.Errorf("repo.PackageRepo.ReserveSeats: %w", domain.ErrConflict)
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanPackage to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPackage maps a single database row into a domain.Package.
func scanPackage(s scanner) (domain.Package, error) {
	var (
		p  domain.Package
		id pgtype.UUID
	)

	err := s.Scan(&id, &p.Name, &p.Destination, &p.Description, &p.Duration,
		&p.MinPrice, &p.MaxPrice, &p.Price, &p.Capacity, &p.AvailableSeats,
		&p.Amenities, &p.Gallery, &p.ImageURL, &p.Departure, &p.Rating, &p.Featured,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Package{}, domain.ErrNotFound
		}
		return domain.Package{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	return p, nil
}
