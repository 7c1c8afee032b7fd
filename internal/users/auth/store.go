// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package auth

import "context"

// # Account Data Access

// AccountRepository defines the data access contract for user accounts.
type AccountRepository interface {

	/*
		FindByID returns the account with the given ID, roles included.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*Account, error)

	/*
		Create persists a brand-new account to the storage.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: Persistence failures, apperr.Conflict on duplicates
	*/
	Create(context context.Context, account *Account) error

	/*
		AssignRole grants the named role to an account. Granting an
		already-held role is a no-op.

		Parameters:
		  - context: context.Context
		  - accountID: string
		  - roleName: string

		Returns:
		  - error: Persistence failures or unknown role names
	*/
	AssignRole(context context.Context, accountID, roleName string) error

	/*
		RolesFor returns the names of every role the account holds.

		Parameters:
		  - context: context.Context
		  - accountID: string

		Returns:
		  - []string: Role names, possibly empty
		  - error: Database retrieval failures
	*/
	RolesFor(context context.Context, accountID string) ([]string, error)

	/*
		UsernamesFor resolves a batch of account ids to usernames in a
		single round trip. Unknown ids are simply absent from the result.

		Parameters:
		  - context: context.Context
		  - ids: []string

		Returns:
		  - map[string]string: accountID -> username
		  - error: Database retrieval failures
	*/
	UsernamesFor(context context.Context, ids []string) (map[string]string, error)

	/*
		TouchLastLogin stamps the account's lastloginat to now.

		Parameters:
		  - context: context.Context
		  - accountID: string

		Returns:
		  - error: Persistence failures
	*/
	TouchLastLogin(context context.Context, accountID string) error
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh-token sessions.
type SessionRepository interface {

	/*
		Create persists a new tracking session for an authenticated login.

		Parameters:
		  - context: context.Context
		  - session: *Session

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, session *Session) error

	/*
		FindByTokenHash returns the active session matching the given token hash.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - *Session: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	/*
		Revoke marks a specific session as permanently invalidated.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - error: Persistence failures
	*/
	Revoke(context context.Context, sessionID string) error

	/*
		RevokeAll revokes every active session belonging to the userID.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Persistence failures
	*/
	RevokeAll(context context.Context, userID string) error

	/*
		DeleteExpired physically removes sessions whose ExpiresAt is in the past.

		Parameters:
		  - context: context.Context

		Returns:
		  - error: Persistence failures
	*/
	DeleteExpired(context context.Context) error
}
