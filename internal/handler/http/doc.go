// Package http implements the HTTP transport layer of the registry.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Requests are validated here, before they reach the service layer.
// Request tracing, access logging, response compression and body integrity
// checks are handled by middleware.
package http
