// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package sec

// # User Roles

// Role names are membership labels, not a linear hierarchy: an account holds
// zero or more of them and gated routes test for a specific membership.
const (
	// RoleAdmin unlocks the back office (tag and post management).
	RoleAdmin = "Admin"

	// RoleSuperAdmin is reserved for the seeded root account.
	RoleSuperAdmin = "SuperAdmin"

	// RoleUser is the default role assigned to every registration.
	RoleUser = "User"
)

// HasRole reports whether the role set contains the target role.
func HasRole(roles []string, target string) bool {
	for _, role := range roles {
		if role == target {
			return true
		}
	}
	return false
}
