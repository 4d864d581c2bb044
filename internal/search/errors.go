package search

import "errors"

// Configuration errors returned by NewProperties.
var (
	ErrEmptyGoal    = errors.New("goal filename cannot be empty")
	ErrInvalidGoal  = errors.New("goal must be a file name, not a path")
	ErrEmptyPattern = errors.New("pattern cannot be empty")
)

// Precondition violations. Node methods panic with these; they indicate a caller bug,
// never a search outcome.
var (
	ErrNotExpanded     = errors.New("Expand must be called before Children")
	ErrAlreadyExpanded = errors.New("Expand already called on this node")
)
