// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by request handlers and the authentication
// middleware. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyBody is returned when a handler expecting a JSON body receives
	// none or cannot decode it.
	ErrEmptyBody = errors.New("body not specified")

	// ErrInvalidPathID is returned when the {id} path parameter is not a
	// well-formed identifier.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrNoUserInContext is returned when an authenticated route runs without
	// the user identity set by the auth middleware.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)

// Response messages sent to clients.
const (
	msgBodyNotSpecified    = "Body not specified"
	msgUserNotFound        = "User not found"
	msgIncorrectPassword   = "Incorrect password"
	msgForbidden           = "forbidden"
	msgSomethingWentWrong  = "something went wrong"
	msgUnauthorised        = "Unauthorised"
	msgTooManyRequests     = "Too many requests, please try again later."
	msgDeletedSuccessfully = "deleted successfully"
)
