// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package auth

// # Authentication Constraints

const (
	// RefreshTokenLength is the byte length of the random secure token.
	RefreshTokenLength = 32

	// UsernameMinLength is the minimum accepted username length.
	UsernameMinLength = 3

	// UsernameMaxLength is the maximum accepted username length.
	UsernameMaxLength = 32

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8
)
