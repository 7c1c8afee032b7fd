// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/validate"
)

/*
TestValidator_Required verifies empty and whitespace-only values fail.
*/
func TestValidator_Required(t *testing.T) {
	v := &validate.Validator{}
	v.Required("name", "").Required("display_name", "   ").Required("ok", "value")

	err := v.Err()
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 2)
	assert.Equal(t, "name", appError.Details[0].Field)
	assert.Equal(t, "display_name", appError.Details[1].Field)
}

/*
TestValidator_NotEqual verifies the business rule used by the tag form:
a display name equal to the name is rejected with a field-level error.
*/
func TestValidator_NotEqual(t *testing.T) {
	// Equal values fail on the display_name field
	v := &validate.Validator{}
	v.NotEqual("display_name", "x", "x", "Name cannot be the same as DisplayName")

	err := v.Err()
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, "display_name", appError.Details[0].Field)

	// Distinct values pass
	v = &validate.Validator{}
	v.NotEqual("display_name", "y", "x", "Name cannot be the same as DisplayName")
	assert.NoError(t, v.Err())
}

/*
TestValidator_Slug verifies URL-handle format rules.
*/
func TestValidator_Slug(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"my-first-post", true},
		{"post2", true},
		{"Bad Slug", false},
		{"-leading", false},
		{"trailing-", false},
		{"", false},
	}

	for _, c := range cases {
		v := &validate.Validator{}
		v.Slug("url_handle", c.value)
		if c.valid {
			assert.NoError(t, v.Err(), c.value)
		} else {
			assert.Error(t, v.Err(), c.value)
		}
	}
}

/*
TestValidator_UUID verifies UUID parsing is case-insensitive and strict.
*/
func TestValidator_UUID(t *testing.T) {
	v := &validate.Validator{}
	v.UUID("id", "961EB477-EE0E-4B5B-BA42-61A09F2C765C")
	assert.NoError(t, v.Err())

	v = &validate.Validator{}
	v.UUID("id", "not-a-uuid")
	assert.Error(t, v.Err())
}
