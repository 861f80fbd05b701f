// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the persisted form of the client's authenticated session.
type Session struct {
	// Token is the opaque bearer credential issued by the backend at login.
	Token string `json:"token"`

	// SavedAt is the moment the token was stored locally.
	SavedAt time.Time `json:"saved_at"`
}

// Empty reports whether the session holds no credential.
func (s Session) Empty() bool {
	return s.Token == ""
}
