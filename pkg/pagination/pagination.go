// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
//
// Postgres rejects a negative OFFSET, so pages at or below 1 map to 0.
// An out-of-range positive page simply yields an empty result set.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Nudge applies the single-step page self-correction used by admin listings.
//
// A page past the end is decremented ONCE; a page below 1 is incremented
// ONCE. This is deliberately not a clamp: page 5 of a 2-page result becomes
// page 4, and page -5 becomes page -4. Callers re-fetch with the corrected
// number and repeat correction on subsequent requests.
func Nudge(page, totalPages int) int {
	if page > totalPages {
		page--
	}
	if page < 1 {
		page++
	}
	return page
}

// FromAdminRequest parses "pageNumber" and "pageSize" query parameters.
//
// It performs NO clamping on the page: the raw page number (even a negative
// one) is preserved so the admin listing's [Nudge] correction can observe
// it. Missing or unparsable values fall back to the defaults.
func FromAdminRequest(r *http.Request, defaultPageSize int) Params {
	page := parseIntParam(r, "pageNumber", DefaultPage)
	limit := parseIntParam(r, "pageSize", defaultPageSize)

	if limit < 1 || limit > MaxLimit {
		limit = defaultPageSize
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
