// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges, and validates the configuration for all
// deployment-gate binaries (migrate, server, healthprobe).
//
// Values are collected from three sources and merged with the following
// priority (highest first): environment variables, command-line flags, an
// optional JSON file. Defaults are applied last, only to fields no source
// has set. Validation runs on the merged result and fails fast — in
// particular, a missing database connection string is rejected before any
// network I/O is attempted, so neither migration nor server start can run
// against an unconfigured database.
package config
