// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline is the request/response interception layer between client
// code and the danmu backend.
//
// A single [Pipeline] is built at startup from the API configuration and
// passed to every call site. Each outgoing request gets the session's current
// bearer token; each incoming result is checked in two layers:
//
//   - Transport layer: network failures and non-2xx statuses. A 401 tears the
//     session down through [SessionStore.Logout] and moves the [Navigator] to
//     the login screen; timeouts and every other failure are reported through
//     the [Notifier]. The caller gets the original transport error back.
//   - Business layer: a 2xx response whose envelope code is not 200. The
//     envelope message is reported through the [Notifier] and the caller gets
//     an [*Error] carrying the same text.
//
// Successful responses are returned untouched; use [Data] to decode the
// envelope payload at the call site.
package pipeline
