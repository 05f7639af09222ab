// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. Stores return
// (nil, nil) for lookups that find no row; handlers translate that to 404.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkpress/internal/models"
)

// PostStore handles all post-related database operations, including the
// post_categories join rows that link posts to their categories.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, content, cover_image_url, created_at`

// List returns all posts ordered by creation date descending (newest
// first), each with its categories expanded.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.content, p.cover_image_url, p.created_at,
		       c.id, c.name, c.created_at
		FROM posts p
		LEFT JOIN post_categories pc ON pc.post_id = p.id
		LEFT JOIN categories c ON c.id = pc.category_id
		ORDER BY p.created_at DESC, p.id, c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		var p models.Post
		var catID uuid.NullUUID
		var catName sql.NullString
		var catCreated sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.CoverImageURL, &p.CreatedAt,
			&catID, &catName, &catCreated,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}

		// Rows are ordered by post, so consecutive rows with the same id
		// belong to the same post and only add a category.
		if len(items) == 0 || items[len(items)-1].ID != p.ID {
			p.Categories = []models.Category{}
			items = append(items, p)
		}
		if catID.Valid {
			last := &items[len(items)-1]
			last.Categories = append(last.Categories, models.Category{
				ID:        catID.UUID,
				Name:      catName.String,
				CreatedAt: catCreated.Time,
			})
		}
	}
	return items, rows.Err()
}

// FindByID retrieves a post with its categories. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	p := &models.Post{}
	err := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.CoverImageURL, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	cats, err := s.categoriesFor(id)
	if err != nil {
		return nil, err
	}
	p.Categories = cats
	return p, nil
}

// categoriesFor returns the categories linked to a post, ordered by name.
// The slice is never nil so the JSON encoding is always an array.
func (s *PostStore) categoriesFor(postID uuid.UUID) ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.created_at
		FROM categories c
		JOIN post_categories pc ON pc.category_id = c.id
		WHERE pc.post_id = $1
		ORDER BY c.name
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("post categories: %w", err)
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Create inserts a new post and its category links in one transaction, so a
// post never lands without its requested links. created_at is assigned by
// the database. Returns the stored post with categories expanded.
func (s *PostStore) Create(p *models.Post, categoryIDs []uuid.UUID) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id uuid.UUID
	err = tx.QueryRow(`
		INSERT INTO posts (title, content, cover_image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.Title, p.Content, p.CoverImageURL).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := insertLinks(tx, id, categoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create post: %w", err)
	}
	return s.FindByID(id)
}

// PostUpdate carries the fields of a partial post update. Nil pointers mean
// "keep the stored value". A nil CategoryIDs leaves the links untouched; a
// non-nil slice replaces ALL existing links with its contents, so a non-nil
// empty slice clears them.
type PostUpdate struct {
	Title         *string
	Content       *string
	CoverImageURL *string
	CategoryIDs   []uuid.UUID
}

// Update applies a partial update to an existing post. The field update and
// the delete-then-insert of category links run in a single transaction.
// The caller must have checked the post exists.
func (s *PostStore) Update(id uuid.UUID, u PostUpdate) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE posts SET
			title = COALESCE($1, title),
			content = COALESCE($2, content),
			cover_image_url = COALESCE($3, cover_image_url)
		WHERE id = $4
	`, u.Title, u.Content, u.CoverImageURL, id)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	if u.CategoryIDs != nil {
		if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, id); err != nil {
			return nil, fmt.Errorf("clear post categories: %w", err)
		}
		if err := insertLinks(tx, id, u.CategoryIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update post: %w", err)
	}
	return s.FindByID(id)
}

// Delete removes a post by ID and reports whether a row was deleted.
// Its join rows cascade; category rows stay.
func (s *PostStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post rows affected: %w", err)
	}
	return n > 0, nil
}

// insertLinks inserts one join row per category id inside the given
// transaction. ON CONFLICT DO NOTHING makes duplicate ids in the input
// harmless; a nonexistent id fails the foreign key and aborts the
// transaction.
func insertLinks(tx *sql.Tx, postID uuid.UUID, categoryIDs []uuid.UUID) error {
	for _, cid := range categoryIDs {
		_, err := tx.Exec(`
			INSERT INTO post_categories (post_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, postID, cid)
		if err != nil {
			return fmt.Errorf("link post %s to category %s: %w", postID, cid, err)
		}
	}
	return nil
}
