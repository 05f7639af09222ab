// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"inkpress/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, created_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	if err := scanner.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// NormalizeName strips a single leading "#" from a raw tag name and trims
// surrounding whitespace. The "#" is only removed when it is the very first
// byte, so " #go" normalizes to "#go" while "#go " normalizes to "go".
// Case is preserved: normalization never changes letter case.
func NormalizeName(raw string) string {
	return strings.TrimSpace(strings.TrimPrefix(raw, "#"))
}

// List returns all categories ordered by name for stable UI listing.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it. The caller is responsible
// for validating the name; a duplicate name fails the unique constraint.
func (s *CategoryStore) Create(name string) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (name) VALUES ($1)
		RETURNING `+categoryColumns,
		name,
	)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// Rename updates a category's name in place and returns the updated row.
// Returns nil if the id does not exist.
func (s *CategoryStore) Rename(id uuid.UUID, name string) (*models.Category, error) {
	row := s.db.QueryRow(`
		UPDATE categories SET name = $1 WHERE id = $2
		RETURNING `+categoryColumns,
		name, id,
	)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rename category: %w", err)
	}
	return c, nil
}

// Delete removes a category by ID and reports whether a row was deleted.
// Join rows referencing it go away via ON DELETE CASCADE; the posts that
// carried those links are never touched.
func (s *CategoryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete category rows affected: %w", err)
	}
	return n > 0, nil
}

// Resolve turns a list of raw tag names into category IDs, creating missing
// categories along the way. Each entry is normalized with NormalizeName;
// empty results are skipped and duplicates within the input collapse to one
// entry. The upsert is keyed on the exact normalized name, so resolving the
// same tag twice always yields the same category row.
func (s *CategoryStore) Resolve(rawNames []string) ([]uuid.UUID, error) {
	seen := make(map[string]bool, len(rawNames))
	var ids []uuid.UUID

	for _, raw := range rawNames {
		name := NormalizeName(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		id, err := s.upsertByName(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// upsertByName creates the category if absent and returns its id either way.
func (s *CategoryStore) upsertByName(name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return uuid.Nil, fmt.Errorf("upsert category %q: %w", name, err)
	}

	// Conflict path: the name already exists, fetch its id.
	err = s.db.QueryRow(`SELECT id FROM categories WHERE name = $1`, name).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("select category %q after upsert: %w", name, err)
	}
	return id, nil
}
