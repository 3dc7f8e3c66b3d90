// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

// Stage marks how far a deployment attempt has progressed. Transitions are
// forward-only; StageFailed is absorbing and permanently blocks
// StageServing for the attempt.
type Stage int

const (
	// StageNotStarted is the initial state before any action has run.
	StageNotStarted Stage = iota

	// StageMigrated is recorded once the schema migration action succeeds.
	StageMigrated

	// StageServing is recorded once the server has bound its listeners.
	StageServing

	// StageFailed is recorded when any action fails. It is terminal.
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageNotStarted:
		return "NOT_STARTED"
	case StageMigrated:
		return "MIGRATED"
	case StageServing:
		return "SERVING"
	case StageFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
