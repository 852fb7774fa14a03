package ballot

import "errors"

var (
	ErrIncompleteVote = errors.New("voter id and candidate are required")
)
