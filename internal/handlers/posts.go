// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkpress/internal/models"
	"inkpress/internal/store"
)

// Posts groups the post API handlers and their dependencies.
type Posts struct {
	posts      *store.PostStore
	categories *store.CategoryStore
}

// NewPosts creates a new Posts handler group.
func NewPosts(posts *store.PostStore, categories *store.CategoryStore) *Posts {
	return &Posts{posts: posts, categories: categories}
}

// postRequest is the body of post create and update calls. Nil pointers on
// update mean "keep the stored value". CategoryNames wins over CategoryIDs
// when both are present.
type postRequest struct {
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	CoverImageURL *string  `json:"coverImageURL"`
	CategoryNames []string `json:"categoryNames"`
	CategoryIDs   []string `json:"categoryIds"`
}

// resolveCategories turns the request's category list into category ids.
// Names go through the upsert-by-normalized-name path; raw ids are parsed
// and trusted — a nonexistent id is caught later by the foreign key, not
// pre-checked here. The return is nil only when the request carried no
// list at all: a supplied list always yields a non-nil slice, even when
// every entry normalizes to nothing, so the caller can tell "replace with
// this (possibly empty) set" apart from "leave the links alone".
func (h *Posts) resolveCategories(req *postRequest) ([]uuid.UUID, error) {
	switch {
	case len(req.CategoryNames) > 0:
		ids, err := h.categories.Resolve(req.CategoryNames)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []uuid.UUID{}
		}
		return ids, nil
	case len(req.CategoryIDs) > 0:
		ids := make([]uuid.UUID, 0, len(req.CategoryIDs))
		for _, raw := range req.CategoryIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("parse category id %q: %w", raw, err)
			}
			ids = append(ids, id)
		}
		return ids, nil
	default:
		return nil, nil
	}
}

// List returns all posts with expanded categories, newest first.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.posts.List()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch posts")
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns a single post by id. An id that does not parse as a UUID
// cannot resolve to a post, so it gets the same 404 as an unknown one.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		slog.Error("get post failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to fetch post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Create makes a new post. Title, content, and cover image URL are
// required; the category list is resolved and linked in the same
// transaction as the insert.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("create post: bad request body", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	title := deref(req.Title)
	content := deref(req.Content)
	coverImageURL := deref(req.CoverImageURL)
	if msg := validateNewPost(title, content, coverImageURL); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	categoryIDs, err := h.resolveCategories(&req)
	if err != nil {
		slog.Error("create post: resolve categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	post, err := h.posts.Create(&models.Post{
		Title:         title,
		Content:       content,
		CoverImageURL: coverImageURL,
	}, categoryIDs)
	if err != nil {
		logStoreError("create post failed", err)
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// Update applies a partial update. Omitted fields keep their stored value.
// A supplied non-empty category list (names or ids) replaces all existing
// links — even when every name normalizes away, which clears them — while
// an empty or omitted list leaves the links untouched.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	existing, err := h.posts.FindByID(id)
	if err != nil {
		slog.Error("update post: lookup failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("update post: bad request body", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}

	categoryIDs, err := h.resolveCategories(&req)
	if err != nil {
		slog.Error("update post: resolve categories failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}

	post, err := h.posts.Update(id, store.PostUpdate{
		Title:         req.Title,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		CategoryIDs:   categoryIDs,
	})
	if err != nil {
		logStoreError("update post failed", err)
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Delete removes a post. Its category links cascade; category rows stay.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	deleted, err := h.posts.Delete(id)
	if err != nil {
		slog.Error("delete post failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeMessage(w, "post deleted")
}

// deref returns the pointed-to string or "" for nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// logStoreError logs a store failure, flagging constraint violations so
// dangling category ids and duplicate names are findable in logs even
// though the client sees a generic 500.
func logStoreError(msg string, err error) {
	switch {
	case store.IsUniqueViolation(err):
		slog.Error(msg, "error", err, "cause", "unique_violation")
	case store.IsForeignKeyViolation(err):
		slog.Error(msg, "error", err, "cause", "foreign_key_violation")
	default:
		slog.Error(msg, "error", err)
	}
}
