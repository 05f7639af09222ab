package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: two
// categories and two sample posts (one HTML body, one Markdown body) so the
// editor's two modes both have an example. It is a no-op when any posts
// already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	var travelID, techID string
	if err := tx.QueryRow(
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, "Travel",
	).Scan(&travelID); err != nil {
		return fmt.Errorf("seed category travel: %w", err)
	}
	if err := tx.QueryRow(
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, "Tech",
	).Scan(&techID); err != nil {
		return fmt.Errorf("seed category tech: %w", err)
	}

	seedPosts := []struct {
		title, content, cover string
		categoryID            string
	}{
		{
			title:      "Hello from the rich-text editor",
			content:    "<p>This post body is <strong>raw HTML</strong> saved by the rich-text pane.</p>",
			cover:      "https://picsum.photos/seed/inkpress-1/800/400",
			categoryID: travelID,
		},
		{
			title:      "Hello from the Markdown editor",
			content:    "# Markdown source\n\nThis post body is *Markdown* saved by the Markdown pane.\n",
			cover:      "https://picsum.photos/seed/inkpress-2/800/400",
			categoryID: techID,
		},
	}

	for _, sp := range seedPosts {
		var postID string
		if err := tx.QueryRow(`
			INSERT INTO posts (title, content, cover_image_url)
			VALUES ($1, $2, $3)
			RETURNING id
		`, sp.title, sp.content, sp.cover).Scan(&postID); err != nil {
			return fmt.Errorf("seed post %q: %w", sp.title, err)
		}
		if _, err := tx.Exec(`
			INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2)
		`, postID, sp.categoryID); err != nil {
			return fmt.Errorf("seed link %q: %w", sp.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample posts and categories")
	return nil
}
