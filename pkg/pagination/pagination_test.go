// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-app/inkwell/pkg/pagination"
)

/*
TestNudge verifies the single-step page self-correction.

The correction moves the page one step toward the valid range, it never
clamps: far out-of-range pages stay out of range after one call.
*/
func TestNudge(t *testing.T) {
	testCases := []struct {
		name       string
		page       int
		totalPages int
		expected   int
	}{
		{name: "in range untouched", page: 2, totalPages: 4, expected: 2},
		{name: "one past end steps back", page: 3, totalPages: 2, expected: 2},
		{name: "far past end steps back once", page: 5, totalPages: 2, expected: 4},
		{name: "zero steps forward", page: 0, totalPages: 2, expected: 1},
		{name: "far negative steps forward once", page: -5, totalPages: 2, expected: -4},
		{name: "first page of empty result", page: 1, totalPages: 0, expected: 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, pagination.Nudge(testCase.page, testCase.totalPages))
		})
	}
}

/*
TestOffset verifies SQL OFFSET derivation.
*/
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 3}.Offset())
	assert.Equal(t, 3, pagination.Params{Page: 2, Limit: 3}.Offset())
	assert.Equal(t, 6, pagination.Params{Page: 3, Limit: 3}.Offset())

	// Negative pages floor at zero since Postgres rejects negative OFFSET.
	assert.Equal(t, 0, pagination.Params{Page: -4, Limit: 3}.Offset())
}

/*
TestFromAdminRequest verifies raw page parsing without clamping.
*/
func TestFromAdminRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/admin/tags?pageNumber=-5&pageSize=3", nil)
	params := pagination.FromAdminRequest(request, 3)

	assert.Equal(t, -5, params.Page)
	assert.Equal(t, 3, params.Limit)

	request = httptest.NewRequest("GET", "/admin/tags", nil)
	params = pagination.FromAdminRequest(request, 3)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 3, params.Limit)
}

/*
TestNewMeta verifies total page calculation.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 3, 7)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.Limit)
	assert.Equal(t, 7, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
