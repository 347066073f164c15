// Package fault defines the recoverable error kinds shared across the
// learning flow. None of them is fatal: validation faults re-prompt,
// provider faults fall back to canned values, state faults reject the
// action, persistence faults abort with prior state intact.
package fault

import "fmt"

// Validation indicates missing or malformed user input.
type Validation struct {
	Field string
	Msg   string
}

func (e *Validation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

// Persistence indicates the store was unreachable or rejected a write.
// The operation is aborted with no partial state committed.
type Persistence struct {
	Op  string
	Err error
}

func (e *Persistence) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Persistence) Unwrap() error { return e.Err }

// Provider indicates a generation call failed or returned unusable
// content. Callers recover with a fixed fallback value and proceed.
type Provider struct {
	Purpose string
	Err     error
}

func (e *Provider) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Purpose, e.Err)
}

func (e *Provider) Unwrap() error { return e.Err }

// State indicates an attempt to advance past an incomplete prerequisite
// or re-score a completed assessment. Rejected with no state change.
type State struct {
	Msg string
}

func (e *State) Error() string { return e.Msg }
