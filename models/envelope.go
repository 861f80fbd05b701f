// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CodeOK is the envelope code the backend uses for business success.
// It is independent of the HTTP status: a 200 OK response may still carry
// a failing envelope code.
const CodeOK = 200

// Envelope is the uniform response wrapper returned by the danmu backend.
//
// Every API response body has the shape
//
//	{"code": 200, "message": "ok", "data": {...}}
//
// where Code is the business status and Data the endpoint-specific payload.
type Envelope[T any] struct {
	// Code is the business status code. Only [CodeOK] means success.
	Code int `json:"code"`

	// Message is a human-readable description of the outcome. It is
	// typically empty on success and set on business failures.
	Message string `json:"message"`

	// Data is the endpoint payload.
	Data T `json:"data"`
}

// RawEnvelope is an [Envelope] whose payload is left undecoded.
type RawEnvelope = Envelope[json.RawMessage]

// OK reports whether the envelope signals business success.
func (e Envelope[T]) OK() bool {
	return e.Code == CodeOK
}
