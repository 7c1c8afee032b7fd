// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-app/inkwell/pkg/slug"
)

/*
TestFrom verifies slug normalization across accents, casing, and punctuation.
*/
func TestFrom(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Getting Started with Go", "getting-started-with-go"},
		{"Café au Lait!", "cafe-au-lait"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"100% Coverage?", "100-coverage"},
		{"---", ""},
		{"", ""},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, slug.From(testCase.input), "input: %q", testCase.input)
	}
}
