// Package http implements the HTTP transport layer of go-social-api.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Cross-cutting concerns such as request tracing, access logging, CORS,
// per-IP rate limiting and session authentication are handled in this
// package before requests are delegated to the service layer.
package http
