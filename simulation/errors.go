package simulation

import "errors"

var (
	// ErrEmptySelection is returned when a run is requested with no products
	// selected. No result is produced and history is left untouched.
	ErrEmptySelection = errors.New("no products selected")

	// ErrScenarioNotFound is returned when a session is asked to select a
	// scenario id that is not in the catalog.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrResultNotFound is returned when replaying a history entry that does
	// not exist (or has been evicted).
	ErrResultNotFound = errors.New("simulation result not found")

	// ErrRunCancelled is reported by a pending run that was cancelled before
	// its processing delay elapsed.
	ErrRunCancelled = errors.New("simulation run cancelled")
)
