// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkwell-app/inkwell/internal/platform/sec"
)

/*
SeedSuperAdmin ensures the operator account exists at startup.

Description: Idempotent bootstrap of the platform operator. The email and
password arrive as deployment secrets; if an account with that email
already exists, seeding is a no-op. A freshly seeded operator holds every
role (SuperAdmin, Admin, User), since role memberships are independent
and the admin surface checks for the exact roles it requires.

Parameters:
  - context: context.Context
  - email: string (from SEED_ADMIN_EMAIL)
  - password: string (from SEED_ADMIN_PASSWORD)

Returns:
  - error: Hashing or persistence failures
*/
func (service *Service) SeedSuperAdmin(context context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("auth_seed_missing_credentials")
	}

	existing, err := service.accountRepository.FindByEmail(context, email)
	if err == nil {
		service.logger.InfoContext(context, "superadmin_seed_skipped",
			slog.String("account_id", existing.ID),
		)
		return nil
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return fmt.Errorf("auth_seed_hash_failed: %w", err)
	}

	account := &Account{
		ID:           newID(),
		Username:     seedUsername(email),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := service.accountRepository.Create(context, account); err != nil {
		return fmt.Errorf("auth_seed_create_failed: %w", err)
	}

	for _, role := range []string{sec.RoleSuperAdmin, sec.RoleAdmin, sec.RoleUser} {
		if err := service.accountRepository.AssignRole(context, account.ID, role); err != nil {
			return fmt.Errorf("auth_seed_assign_role_failed: %w", err)
		}
	}

	service.logger.InfoContext(context, "superadmin_seeded",
		slog.String("account_id", account.ID),
	)

	return nil
}

// seedUsername derives a username from the seed email's local part.
func seedUsername(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "superadmin"
}
