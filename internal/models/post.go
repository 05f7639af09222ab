// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the database entities shared across stores and
// handlers. JSON field names follow the wire format the frontend consumes.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article. Content holds either raw HTML (rich-text editor)
// or Markdown source — the two editor modes write to the same field and the
// string is never converted between formats. CoverImageURL is stored as
// pasted; it is not checked for reachability.
type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"coverImageURL"`
	CreatedAt     time.Time  `json:"createdAt"`
	Categories    []Category `json:"categories"`
}
