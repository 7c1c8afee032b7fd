// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

// PostgreSQL implementations of the identity repositories.
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types to avoid leaking storage implementation details.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/database/schema"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
)

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// selectAccount builds the shared SELECT head for account lookups.
func selectAccount() string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.UserAccount.ID,
		schema.UserAccount.Username,
		schema.UserAccount.Email,
		schema.UserAccount.Password,
		schema.UserAccount.LastLoginAt,
		schema.UserAccount.CreatedAt,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table,
	)
}

// scanAccount hydrates an Account from a single row. Roles are loaded
// separately by the callers that need them.
func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.LastLoginAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

/*
Create persists a new account record.

Description: Inserts the account row and lets PostgreSQL stamp the
timestamps. Duplicate usernames or emails surface as apperr.Conflict via
the unique constraints.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicates, otherwise execution errors
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID,
		schema.UserAccount.Username,
		schema.UserAccount.Email,
		schema.UserAccount.Password,
		schema.UserAccount.CreatedAt,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		account.ID,
		account.Username,
		account.Email,
		account.PasswordHash,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create_account")
	}

	return nil
}

/*
FindByID retrieves an account by its unique ID, roles included.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	query := selectAccount() + fmt.Sprintf("WHERE %s = $1", schema.UserAccount.ID)

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return repository.withRoles(context, account)
}

/*
FindByEmail retrieves an account by its unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	query := selectAccount() + fmt.Sprintf("WHERE %s = $1", schema.UserAccount.Email)

	account, err := scanAccount(repository.pool.QueryRow(context, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_email_failed: %w", err)
	}

	return repository.withRoles(context, account)
}

/*
FindByUsername retrieves an account by its unique username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	query := selectAccount() + fmt.Sprintf("WHERE %s = $1", schema.UserAccount.Username)

	account, err := scanAccount(repository.pool.QueryRow(context, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_username_failed: %w", err)
	}

	return repository.withRoles(context, account)
}

// withRoles attaches the account's role names before returning it.
func (repository *PostgresAccountRepository) withRoles(context context.Context, account *Account) (*Account, error) {
	roles, err := repository.RolesFor(context, account.ID)
	if err != nil {
		return nil, err
	}
	account.Roles = roles
	return account, nil
}

/*
AssignRole grants the named role to an account.

Description: Resolves the role name to its id and inserts the membership
row. Granting a role the account already holds is a no-op thanks to
ON CONFLICT DO NOTHING on the junction's primary key.

Parameters:
  - context: context.Context
  - accountID: string
  - roleName: string

Returns:
  - error: apperr.NotFound for unknown role names, execution errors otherwise
*/
func (repository *PostgresAccountRepository) AssignRole(context context.Context, accountID, roleName string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, %s FROM %s WHERE %s = $2
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.UserAccountRole.Table,
		schema.UserAccountRole.AccountID, schema.UserAccountRole.RoleID,
		schema.UserRole.ID, schema.UserRole.Table, schema.UserRole.Name,
		schema.UserAccountRole.AccountID, schema.UserAccountRole.RoleID,
	)

	commandTag, err := repository.pool.Exec(context, query, accountID, roleName)
	if err != nil {
		return dberr.Wrap(err, "assign_role")
	}

	// Zero rows means the role name did not resolve (a held role still
	// matches one row in the SELECT and conflicts silently).
	if commandTag.RowsAffected() == 0 {
		var exists bool
		checkQuery := fmt.Sprintf(
			"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
			schema.UserRole.Table, schema.UserRole.Name,
		)
		if err := repository.pool.QueryRow(context, checkQuery, roleName).Scan(&exists); err != nil {
			return fmt.Errorf("postgres_account_repo_role_check_failed: %w", err)
		}
		if !exists {
			return apperr.NotFound("Role")
		}
	}

	return nil
}

/*
RolesFor returns the names of every role the account holds.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - []string: Role names, empty slice when the account holds none
  - error: Database retrieval failures
*/
func (repository *PostgresAccountRepository) RolesFor(context context.Context, accountID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT r.%s
		FROM %s r
		JOIN %s ar ON ar.%s = r.%s
		WHERE ar.%s = $1
		ORDER BY r.%s
	`,
		schema.UserRole.Name,
		schema.UserRole.Table,
		schema.UserAccountRole.Table,
		schema.UserAccountRole.RoleID, schema.UserRole.ID,
		schema.UserAccountRole.AccountID,
		schema.UserRole.Name,
	)

	rows, err := repository.pool.Query(context, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_roles_for_failed: %w", err)
	}
	defer rows.Close()

	roles := make([]string, 0, 3)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("postgres_account_repo_roles_scan_failed: %w", err)
		}
		roles = append(roles, name)
	}

	return roles, rows.Err()
}

/*
UsernamesFor resolves a batch of account ids to usernames in one query.

Description: Powers the comment display path, which must resolve every
commenter's username without issuing a query per comment. Unknown ids
are silently absent from the result map.

Parameters:
  - context: context.Context
  - ids: []string

Returns:
  - map[string]string: accountID -> username
  - error: Database retrieval failures
*/
func (repository *PostgresAccountRepository) UsernamesFor(context context.Context, ids []string) (map[string]string, error) {
	usernames := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = ANY($1)
	`,
		schema.UserAccount.ID, schema.UserAccount.Username,
		schema.UserAccount.Table,
		schema.UserAccount.ID,
	)

	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_usernames_for_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, username string
		if err := rows.Scan(&id, &username); err != nil {
			return nil, fmt.Errorf("postgres_account_repo_usernames_scan_failed: %w", err)
		}
		usernames[id] = username
	}

	return usernames, rows.Err()
}

/*
TouchLastLogin stamps the account's lastloginat to now.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresAccountRepository) TouchLastLogin(context context.Context, accountID string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE %s = $1",
		schema.UserAccount.Table, schema.UserAccount.LastLoginAt, schema.UserAccount.ID,
	)

	_, err := repository.pool.Exec(context, query, accountID, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_repo_touch_last_login_failed: %w", err)
	}
	return nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL implementation of SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

/*
Create persists a new session record.

Description: Records a successful authentication session in persistent storage.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Storage failures
*/
func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		schema.UserSession.Table,
		schema.UserSession.ID,
		schema.UserSession.UserID,
		schema.UserSession.TokenHash,
		schema.UserSession.UserAgent,
		schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt,
		schema.UserSession.IsRevoked,
		schema.UserSession.CreatedAt,
	)

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
		session.IsRevoked,
		session.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_session_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByTokenHash retrieves an active session by its unique token hash.

Description: Securely resolves a refresh token hash into an active session.
Revoked and expired sessions never match.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - *Session: Hydrated session metadata
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > NOW()
	`,
		schema.UserSession.ID,
		schema.UserSession.UserID,
		schema.UserSession.TokenHash,
		schema.UserSession.UserAgent,
		schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt,
		schema.UserSession.IsRevoked,
		schema.UserSession.CreatedAt,
		schema.UserSession.Table,
		schema.UserSession.TokenHash,
		schema.UserSession.IsRevoked,
		schema.UserSession.ExpiresAt,
	)

	session := &Session{}
	err := repository.pool.QueryRow(context, query, tokenHash).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.IsRevoked,
		&session.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("postgres_session_repo_find_failed: %w", err)
	}

	return session, nil
}

/*
Revoke marks a specific session as revoked.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Revocation failures
*/
func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = TRUE, %s = $2 WHERE %s = $1",
		schema.UserSession.Table, schema.UserSession.IsRevoked,
		schema.UserSession.RevokedAt, schema.UserSession.ID,
	)

	_, err := repository.pool.Exec(context, query, sessionID, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_session_repo_revoke_failed: %w", err)
	}
	return nil
}

/*
RevokeAll marks all active sessions for a user as revoked.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Batch revocation failures
*/
func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = TRUE, %s = $2 WHERE %s = $1 AND %s = FALSE",
		schema.UserSession.Table, schema.UserSession.IsRevoked,
		schema.UserSession.RevokedAt, schema.UserSession.UserID,
		schema.UserSession.IsRevoked,
	)

	_, err := repository.pool.Exec(context, query, userID, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_session_repo_revoke_all_failed: %w", err)
	}
	return nil
}

/*
DeleteExpired permanently removes all sessions that have passed their expiration.

Description: Cleanup task to reclaim storage from stale sessions.

Parameters:
  - context: context.Context

Returns:
  - error: Cleanup failures
*/
func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s <= NOW()",
		schema.UserSession.Table, schema.UserSession.ExpiresAt,
	)

	_, err := repository.pool.Exec(context, query)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_delete_expired_failed: %w", err)
	}
	return nil
}
