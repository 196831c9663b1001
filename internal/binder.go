package internal

import "github.com/pkg/errors"

// DispatchTarget is the reusable invocable bound to one (symbol, arity)
// pair. It owns no operand state: a call site binds once and invokes any
// number of times, from any number of goroutines.
type DispatchTarget struct {
	symbol    operator
	arity     int
	signature string
	apply     operatorApply
}

// Bind validates the request against the operator table and returns its
// dispatch target. All request validation happens here, before any
// operand exists; resolver-time errors can only ever be about operands.
func Bind(symbol string, arity int) (*DispatchTarget, error) {
	return BindWithSignature(symbol, arity, "")
}

// BindWithSignature additionally records the linkage signature richer
// hosts attach to a call site. The engine stores it untouched.
func BindWithSignature(symbol string, arity int, signature string) (*DispatchTarget, error) {
	op := operator(symbol)
	want, ok := operatorArities[op]
	if !ok {
		return nil, errors.Wrapf(ErrMalformedRequest, "unknown operator %q", symbol)
	}
	if arity != want {
		return nil, errors.Wrapf(ErrMalformedRequest,
			"operator %s takes %d operand(s), requested %d", symbol, want, arity)
	}
	return &DispatchTarget{
		symbol:    op,
		arity:     arity,
		signature: signature,
		apply:     operatorTable[op],
	}, nil
}

func (t *DispatchTarget) Symbol() string { return string(t.symbol) }

func (t *DispatchTarget) Arity() int { return t.arity }

func (t *DispatchTarget) Signature() string { return t.signature }

// Invoke runs the bound operator. The operand count must match the bound
// arity exactly; a mismatch is a call-shape bug, not an operand one.
func (t *DispatchTarget) Invoke(operands ...interface{}) (interface{}, error) {
	if len(operands) != t.arity {
		return nil, errors.Wrapf(ErrMalformedRequest,
			"operator %s invoked with %d operand(s), bound arity is %d",
			t.symbol, len(operands), t.arity)
	}
	return t.apply(operands...)
}
