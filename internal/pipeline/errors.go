// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import "errors"

var (
	// ErrPipelineFailed is returned by [Pipeline.Run] when the pipeline has
	// already recorded a failure. A failed deployment attempt cannot be
	// resumed; the operator starts a fresh one.
	ErrPipelineFailed = errors.New("pipeline has already failed")
)
