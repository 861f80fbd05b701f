// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the client-side view of the bearer token's JWT claim set.
//
// The client never verifies the token signature: that is the backend's job.
// Claims are decoded only to show who is logged in and until when.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the login e-mail the backend embeds into its tokens.
	// Empty when the token carries no such claim.
	Email string `json:"email,omitempty"`
}

// ExpiresAtTime returns the expiry time, or the zero time when the token has
// no "exp" claim.
func (c Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Expired reports whether the token carries an expiry that lies before now.
func (c Claims) Expired(now time.Time) bool {
	exp := c.ExpiresAtTime()
	return !exp.IsZero() && exp.Before(now)
}
