package odds

import "errors"

// Custom errors
var (
	ErrInvalidOdds = errors.New("invalid odds")
)
