// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-app/inkwell/internal/platform/sec"
)

/*
TestHasRole verifies membership checks against a role set.
*/
func TestHasRole(t *testing.T) {
	roles := []string{sec.RoleUser, sec.RoleAdmin}

	assert.True(t, sec.HasRole(roles, sec.RoleAdmin))
	assert.True(t, sec.HasRole(roles, sec.RoleUser))
	assert.False(t, sec.HasRole(roles, sec.RoleSuperAdmin))
	assert.False(t, sec.HasRole(nil, sec.RoleUser))
}

/*
TestPasswordHash verifies bcrypt round-trips and rejects wrong passwords.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}

/*
TestHashToken verifies token hashing is deterministic and one-way shaped.
*/
func TestHashToken(t *testing.T) {
	token, err := sec.GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.Len(t, token, 64)

	first := sec.HashToken(token)
	second := sec.HashToken(token)

	assert.Equal(t, first, second)
	assert.NotEqual(t, token, first)
}
