// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
//
// Listeners are bound at construction time, not at serve time: a port that
// cannot be bound surfaces as a constructor error, so the deployment
// pipeline can fail the start stage instead of discovering the problem
// after reporting success.
package server
