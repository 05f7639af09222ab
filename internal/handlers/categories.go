// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkpress/internal/models"
	"inkpress/internal/store"
)

// Categories groups the category API handlers.
type Categories struct {
	categories *store.CategoryStore
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories *store.CategoryStore) *Categories {
	return &Categories{categories: categories}
}

// categoryRequest is the body of category create and rename calls.
type categoryRequest struct {
	Name string `json:"name"`
}

// List returns all categories ordered by name.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create makes a new category from a raw name. The name is stored exactly
// as sent — direct creation does not go through tag normalization, only
// the resolve path strips "#" and trims. A duplicate name fails the unique
// constraint and lands in the generic 500 bucket.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("create category: bad request body", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	if msg := validateCategoryName(req.Name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.categories.Create(req.Name)
	if err != nil {
		logStoreError("create category failed", err)
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// Rename changes a category's name in place. Validation runs before the
// existence check, so an empty name on an unknown id still returns 400.
func (h *Categories) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("rename category: bad request body", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update category")
		return
	}

	if msg := validateCategoryName(req.Name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.categories.Rename(id, req.Name)
	if err != nil {
		logStoreError("rename category failed", err)
		writeError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Delete removes a category and, via cascade, every join row referencing
// it. Posts that carried the category are untouched.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	deleted, err := h.categories.Delete(id)
	if err != nil {
		slog.Error("delete category failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeMessage(w, "category deleted")
}
