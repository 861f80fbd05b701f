// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the client's bearer credential.
//
// [FileStore] holds the token in memory and mirrors it to a JSON file so
// that a login survives process restarts. The request pipeline reads the
// token through [FileStore.Token] on every outgoing call and tears the
// session down through [FileStore.Logout] when the backend answers 401.
package session
