// Package http implements the HTTP transport layer of the task API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging, metrics and response
// compression are handled here before requests are delegated to the service
// layer. Protected handlers receive the caller's [models.Principal] as an
// explicit argument.
package http
