// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline implements the deployment gate: an explicit, ordered
// sequence of side-effecting stage actions (apply migrations, then start the
// server) with short-circuit semantics. The ordering rule that operators
// previously enforced by hand — never start the application after a failed
// migration — lives here as code instead of runbook discipline.
//
// The pipeline is strictly sequential and runs on a single goroutine; no
// stage overlaps another, and a long-running migration simply blocks the
// stages behind it.
package pipeline

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
)

// Action is a single named deployment stage. Run performs the stage's side
// effect and reports failure through its error. Advance is the progress
// marker the pipeline records after Run succeeds; zero (StageNotStarted)
// means the action does not advance progress.
type Action struct {
	Name    string
	Advance Stage
	Run     func(ctx context.Context) error
}

// Pipeline executes its actions in order, aborting on the first failure.
// Failure is terminal for the deployment attempt: the pipeline enters
// StageFailed, subsequent actions are never invoked, and re-running a failed
// pipeline is refused. There are no retries — a half-migrated or
// half-started deployment must stall, not limp forward.
type Pipeline struct {
	actions []Action
	stage   Stage
	logger  *logger.Logger
}

// New constructs a pipeline over the given actions. Actions run in the
// order they are passed.
func New(log *logger.Logger, actions ...Action) *Pipeline {
	return &Pipeline{
		actions: actions,
		stage:   StageNotStarted,
		logger:  log,
	}
}

// Run executes every action in order and returns nil when all succeed.
//
// On the first action error, Run records StageFailed and returns an error
// naming the failed action; the remaining actions are not invoked. A
// pipeline that has already failed returns [ErrPipelineFailed] without
// running anything — StageFailed is absorbing.
//
// Progress markers move forward only: an action whose Advance is at or
// below the current stage leaves the stage untouched.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.stage == StageFailed {
		return ErrPipelineFailed
	}

	for _, action := range p.actions {
		p.logger.Info().Str("action", action.Name).Msg("pipeline action starting")

		if err := action.Run(ctx); err != nil {
			p.stage = StageFailed
			p.logger.Error().Err(err).Str("action", action.Name).Msg("pipeline action failed, aborting")
			return fmt.Errorf("pipeline action %q failed: %w", action.Name, err)
		}

		if action.Advance > p.stage {
			p.stage = action.Advance
		}

		p.logger.Info().
			Str("action", action.Name).
			Str("stage", p.stage.String()).
			Msg("pipeline action completed")
	}

	return nil
}

// Stage returns the last progress marker the pipeline recorded.
func (p *Pipeline) Stage() Stage {
	return p.stage
}
