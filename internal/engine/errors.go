// Package engine implements the engagement orchestration pipeline: for
// each inbound sales-rep message it persists conversation state, drives a
// simulated customer reply through an LLM, re-derives the conversation
// stage and follow-up suggestions, re-scores the lead, and conditionally
// spawns a draft proposal.
package engine

import (
	"errors"
	"fmt"
)

// ErrValidation marks requests rejected before any I/O; callers can
// resubmit corrected input.
var ErrValidation = errors.New("validation failed")

// ErrCompletion marks turns aborted because the mandatory customer-reply
// completion failed. Suggestion and scoring completions never produce
// this error; those degrade to empty results instead.
var ErrCompletion = errors.New("completion failed")

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func completionErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCompletion, op, err)
}
