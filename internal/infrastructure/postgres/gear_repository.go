package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cragworks/gearshop/internal/domain"
	"github.com/cragworks/gearshop/internal/domain/entity"
	"github.com/cragworks/gearshop/internal/domain/repository"
)

var _ repository.GearRepository = (*GearRepo)(nil)

// GearRepo implements the GearRepository port over PostgreSQL (usable with pool or tx).
type GearRepo struct {
	q Querier
}

// NewGearRepository builds the persistence adapter for gear. Pass a pool or tx (Querier).
func NewGearRepository(q Querier) *GearRepo {
	return &GearRepo{q: q}
}

// Create persists a new gear item. The unique index on (lower(name), lower(brand))
// turns a duplicate-create race into domain.ErrDuplicate.
func (r *GearRepo) Create(gear *entity.Gear) error {
	query := `
		INSERT INTO gear (id, name, brand, description, price, number_in_stock, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		gear.ID, gear.Name, gear.Brand, gear.Description,
		gear.Price, gear.NumberInStock, gear.CategoryID, gear.CreatedAt, gear.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert gear: %w", err)
	}
	return nil
}

// GetByID fetches a gear item by ID with its category resolved.
func (r *GearRepo) GetByID(id string) (*entity.Gear, error) {
	query := `
		SELECT g.id, g.name, g.brand, g.description, g.price, g.number_in_stock, g.category_id,
		       g.created_at, g.updated_at, c.id, c.name, c.created_at, c.updated_at
		FROM gear g JOIN categories c ON c.id = g.category_id
		WHERE g.id = $1`
	g, err := scanGearJoined(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gear: %w", err)
	}
	return g, nil
}

// GetByNameAndBrand fetches a gear item by its (name, brand) pair, case-insensitively.
func (r *GearRepo) GetByNameAndBrand(name, brand string) (*entity.Gear, error) {
	query := `
		SELECT g.id, g.name, g.brand, g.description, g.price, g.number_in_stock, g.category_id,
		       g.created_at, g.updated_at, c.id, c.name, c.created_at, c.updated_at
		FROM gear g JOIN categories c ON c.id = g.category_id
		WHERE lower(g.name) = lower($1) AND lower(g.brand) = lower($2)`
	g, err := scanGearJoined(r.q.QueryRow(context.Background(), query, name, brand))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gear by name and brand: %w", err)
	}
	return g, nil
}

// List returns all gear ordered by category name then gear name, categories resolved.
func (r *GearRepo) List() ([]*entity.Gear, error) {
	query := `
		SELECT g.id, g.name, g.brand, g.description, g.price, g.number_in_stock, g.category_id,
		       g.created_at, g.updated_at, c.id, c.name, c.created_at, c.updated_at
		FROM gear g JOIN categories c ON c.id = g.category_id
		ORDER BY c.name ASC, g.name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list gear: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gear
	for rows.Next() {
		g, err := scanGearJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gear: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// ListByCategory returns the gear referencing one category, ordered by name.
// The category is not re-resolved; callers already hold it.
func (r *GearRepo) ListByCategory(categoryID string) ([]*entity.Gear, error) {
	query := `
		SELECT id, name, brand, description, price, number_in_stock, category_id, created_at, updated_at
		FROM gear WHERE category_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list gear by category: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gear
	for rows.Next() {
		var g entity.Gear
		if err := rows.Scan(&g.ID, &g.Name, &g.Brand, &g.Description, &g.Price,
			&g.NumberInStock, &g.CategoryID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gear: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Count returns the total number of gear items.
func (r *GearRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM gear`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count gear: %w", err)
	}
	return n, nil
}

// Update overwrites the record at gear.ID with the new field values. The ID
// itself is never rewritten.
func (r *GearRepo) Update(gear *entity.Gear) error {
	query := `
		UPDATE gear SET name = $2, brand = $3, description = $4, price = $5,
		       number_in_stock = $6, category_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		gear.ID, gear.Name, gear.Brand, gear.Description, gear.Price,
		gear.NumberInStock, gear.CategoryID, gear.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update gear: %w", err)
	}
	return nil
}

// Delete removes a gear item by ID. Nothing references gear, so the delete is unconditional.
func (r *GearRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM gear WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gear: %w", err)
	}
	return nil
}

func scanGearJoined(row pgx.Row) (*entity.Gear, error) {
	var g entity.Gear
	var c entity.Category
	err := row.Scan(&g.ID, &g.Name, &g.Brand, &g.Description, &g.Price,
		&g.NumberInStock, &g.CategoryID, &g.CreatedAt, &g.UpdatedAt,
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.Category = &c
	return &g, nil
}
