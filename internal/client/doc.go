// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client provides a typed Go client for the user API.
//
// The [Client] wraps a resty HTTP client, stores the bearer token obtained
// from Login, and maps HTTP error statuses to the sentinel errors defined in
// errors.go, so callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package client
