package internal

import (
	"strings"

	"github.com/pkg/errors"
)

// The three error kinds the engine can surface. Every contextual error
// wraps exactly one of them, so callers discriminate with errors.Cause
// (or errors.Is) and read the message for symbol + operand kinds.
var (
	// ErrMalformedRequest is a bind-time (or call-shape) bug: unknown
	// symbol, arity mismatch, or wrong operand count on invoke. Always a
	// compiler/caller defect, never recoverable by retry.
	ErrMalformedRequest = errors.New("malformed operator request")

	// ErrUnsupportedOperation means the symbol is fine but no rule covers
	// the supplied operand kinds. The dominant, expected failure of a
	// dynamically-typed program.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrDivisionByZero is the one value-level arithmetic failure: the
	// operand types admitted a rule, the values did not.
	ErrDivisionByZero = errors.New("division by zero")
)

// unsupported builds the resolver's rejection for a symbol and the
// operands no rule covers, naming the symbol and each operand's kind.
func unsupported(symbol operator, operands ...interface{}) error {
	kinds := make([]string, len(operands))
	for i, o := range operands {
		kinds[i] = kindOf(o).String()
	}
	return errors.Wrapf(ErrUnsupportedOperation, "%s (%s)", symbol, strings.Join(kinds, ", "))
}
