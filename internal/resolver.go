package internal

import (
	"math/big"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// operatorTable routes every symbol to its rule family. Built once at
// package initialization and never mutated, so concurrent resolution
// needs no locking.
var operatorTable = map[operator]operatorApply{
	opPlus:         applyPlus,
	opMinus:        arithApply(opMinus),
	opTimes:        applyTimes,
	opDivide:       arithApply(opDivide),
	opModulo:       arithApply(opModulo),
	opEquals:       applyEquals,
	opNotEquals:    applyNotEquals,
	opLess:         orderingApply(opLess, func(c int) bool { return c < 0 }),
	opLessOrEquals: orderingApply(opLessOrEquals, func(c int) bool { return c <= 0 }),
	opMore:         orderingApply(opMore, func(c int) bool { return c > 0 }),
	opMoreOrEquals: orderingApply(opMoreOrEquals, func(c int) bool { return c >= 0 }),
	opAnd:          booleanApply(opAnd, func(a, b bool) bool { return a && b }),
	opOr:           booleanApply(opOr, func(a, b bool) bool { return a || b }),
	opNot:          applyNot,
	opIs:           identityApply(true),
	opIsnt:         identityApply(false),
}

// Resolve dispatches symbol against operands in one shot, re-deriving
// the routing on every call. Call sites that run hot should Bind once
// and reuse the target instead.
func Resolve(symbol string, operands ...interface{}) (interface{}, error) {
	target, err := Bind(symbol, len(operands))
	if err != nil {
		return nil, err
	}
	return target.apply(operands...)
}

// applyPlus adds numbers unless either operand is text, in which case it
// concatenates in operand order; text-ness of either side wins over
// numeric addition.
func applyPlus(arguments ...interface{}) (interface{}, error) {
	left, right := arguments[0], arguments[1]
	lk, rk := kindOf(left), kindOf(right)
	if lk == kindString || rk == kindString {
		return text(left) + text(right), nil
	}
	if lk.numeric() && rk.numeric() {
		return numericApply(opPlus, left, right)
	}
	return nil, unsupported(opPlus, left, right)
}

// arithApply covers the numeric-only arithmetic symbols.
func arithApply(symbol operator) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		left, right := arguments[0], arguments[1]
		if !kindOf(left).numeric() || !kindOf(right).numeric() {
			return nil, unsupported(symbol, left, right)
		}
		value, err := numericApply(symbol, left, right)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", symbol)
		}
		return value, nil
	}
}

func applyTimes(arguments ...interface{}) (interface{}, error) {
	left, right := arguments[0], arguments[1]
	lk, rk := kindOf(left), kindOf(right)
	switch {
	case lk == kindString && rk.integral():
		return repeatText(left.(string), right)
	case lk.integral() && rk == kindString:
		return repeatText(right.(string), left)
	case lk.numeric() && rk.numeric():
		return numericApply(opTimes, left, right)
	}
	return nil, unsupported(opTimes, left, right)
}

// repeatText repeats s count times. Negative counts collapse to zero. A
// count whose output no host could materialize, big-integer or fixed,
// has no rule.
func repeatText(s string, count interface{}) (interface{}, error) {
	var n int64
	if b, ok := count.(*big.Int); ok {
		if !b.IsInt64() {
			return nil, unsupported(opTimes, s, count)
		}
		n = b.Int64()
	} else {
		n = toInt64(count)
	}
	if n <= 0 {
		return "", nil
	}
	if len(s) > 0 && n > maxInt/int64(len(s)) {
		return nil, unsupported(opTimes, s, count)
	}
	return strings.Repeat(s, int(n)), nil
}

func applyEquals(arguments ...interface{}) (interface{}, error) {
	return valuesEqual(arguments[0], arguments[1]), nil
}

func applyNotEquals(arguments ...interface{}) (interface{}, error) {
	return !valuesEqual(arguments[0], arguments[1]), nil
}

// valuesEqual is total: any operand pair, null included, compares
// without error. Numeric pairs compare under promotion; everything else
// uses its own equality contract, structurally when Go equality cannot.
func valuesEqual(left, right interface{}) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	lk, rk := kindOf(left), kindOf(right)
	if lk.numeric() && rk.numeric() {
		return numericCompare(left, right) == 0
	}
	lt, rt := reflect.TypeOf(left), reflect.TypeOf(right)
	if lt != rt {
		return false
	}
	if lt.Comparable() {
		return left == right
	}
	return reflect.DeepEqual(left, right)
}

func orderingApply(symbol operator, want func(int) bool) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		cmp, err := compareValues(symbol, arguments[0], arguments[1])
		if err != nil {
			return nil, err
		}
		return want(cmp), nil
	}
}

// compareValues three-way compares mutually comparable operands: numeric
// pairs under promotion, text pairs lexicographically, and any left
// operand exposing the Comparer capability that accepts the right.
func compareValues(symbol operator, left, right interface{}) (int, error) {
	lk, rk := kindOf(left), kindOf(right)
	switch {
	case lk.numeric() && rk.numeric():
		return numericCompare(left, right), nil
	case lk == kindString && rk == kindString:
		return strings.Compare(left.(string), right.(string)), nil
	}
	if cmp, ok := left.(Comparer); ok {
		c, err := cmp.Compare(right)
		if err != nil {
			return 0, unsupported(symbol, left, right)
		}
		return c, nil
	}
	return 0, unsupported(symbol, left, right)
}

// booleanApply is strict: both operands must already be booleans, there
// is no truthiness and no short-circuit at this layer.
func booleanApply(symbol operator, op func(a, b bool) bool) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		a, aok := arguments[0].(bool)
		b, bok := arguments[1].(bool)
		if !aok || !bok {
			return nil, unsupported(symbol, arguments...)
		}
		return op(a, b), nil
	}
}

func applyNot(arguments ...interface{}) (interface{}, error) {
	b, ok := arguments[0].(bool)
	if !ok {
		return nil, unsupported(opNot, arguments...)
	}
	return !b, nil
}

func identityApply(want bool) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		return sameInstance(arguments[0], arguments[1]) == want, nil
	}
}
