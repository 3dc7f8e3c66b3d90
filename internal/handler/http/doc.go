// Package http implements the HTTP transport layer: the chi router, the
// health, auth, and version endpoints, and the request middlewares (trace
// ID, access logging, OAuth availability guard).
//
// Handlers stay thin: they decode the request, delegate to the service
// layer, and translate sentinel errors to HTTP statuses via the package's
// error map.
package http
