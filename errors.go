package grammar

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the input sentence is empty or
// whitespace-only. No classification is attempted.
var ErrEmptyInput = errors.New("empty input: sentence contains no words")

// errRuleExhaustion guards the derivation loop against a rule set edit
// introducing a cycle. It is wrapped with the offending string.
var errRuleExhaustion = errors.New("derivation exceeded iteration cap")

// UnrecognizedTokenError is returned when no subject or verb head can
// be located. Unknown vocabulary never triggers it; only a structurally
// missing constituent does.
type UnrecognizedTokenError struct {
	// Missing names the constituent that could not be found:
	// "subject" or "verb".
	Missing string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unable to identify %s in sentence", e.Missing)
}
