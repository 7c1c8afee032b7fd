// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestBuildListClauses verifies the dynamic WHERE/ORDER BY assembly.

The sort key set is closed: only "Name" and "DisplayName" (compared
case-insensitively) produce an ORDER BY; anything else leaves natural
order. Direction is DESC only for a case-insensitive "Desc".
*/
func TestBuildListClauses(t *testing.T) {
	testCases := []struct {
		name          string
		filter        Filter
		expectedWhere string
		expectedOrder string
		expectedArgs  int
	}{
		{
			name:          "no filter no sort",
			filter:        Filter{},
			expectedWhere: "",
			expectedOrder: "",
			expectedArgs:  0,
		},
		{
			name:          "search matches name or display name",
			filter:        Filter{Search: "go"},
			expectedWhere: " WHERE (name LIKE $1 OR displayname LIKE $1)",
			expectedOrder: "",
			expectedArgs:  1,
		},
		{
			name:          "sort by name ascending by default",
			filter:        Filter{SortBy: "Name"},
			expectedOrder: " ORDER BY name ASC",
		},
		{
			name:          "sort key is case-insensitive",
			filter:        Filter{SortBy: "displayname"},
			expectedOrder: " ORDER BY displayname ASC",
		},
		{
			name:          "desc only on equals-fold Desc",
			filter:        Filter{SortBy: "Name", SortDirection: "dEsC"},
			expectedOrder: " ORDER BY name DESC",
		},
		{
			name:          "unrecognized direction stays ascending",
			filter:        Filter{SortBy: "Name", SortDirection: "descending"},
			expectedOrder: " ORDER BY name ASC",
		},
		{
			name:          "unrecognized sort key yields no order clause",
			filter:        Filter{SortBy: "CreatedAt", SortDirection: "Desc"},
			expectedOrder: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			whereClause, orderClause, args := buildListClauses(testCase.filter)

			assert.Equal(t, testCase.expectedWhere, whereClause)
			assert.Equal(t, testCase.expectedOrder, orderClause)
			assert.Len(t, args, testCase.expectedArgs)
		})
	}
}
