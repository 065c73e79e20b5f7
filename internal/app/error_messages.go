// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP router and
// the Lambda shim of go-life-records.
//
// Client errors carry the message of the error that caused them. The
// constants here cover the responses that are not derived from an error.
package app

const (
	// MsgMethodNotAllowed answers every method and path combination that
	// has no route.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError replaces the message of any 5xx error so that
	// store and provider internals never reach the client.
	MsgInternalServerError = "Server error"

	// MsgInvalidProxyEvent is returned by the Lambda shim when the proxy
	// event cannot be turned into an HTTP request.
	MsgInvalidProxyEvent = "invalid request"
)
