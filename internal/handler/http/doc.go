// Package http implements the HTTP transport layer of the application.
//
// It maps each method and path to a resource kind, an operation and an
// optional record id, and hands the request to the service layer. Request
// tracing, access logging, panic recovery, response compression, cache
// suppression and caller verification are handled here as middleware.
// Every response is a JSON envelope: {"data": ...} or {"error": ...}.
package http
