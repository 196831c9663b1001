package internal

import (
	"math"
	"math/big"
)

const (
	maxInt = int64(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// numericApply runs an arithmetic operator on two numeric operands. Both
// are widened to the wider operand's tier first; a fixed-width result
// that would wrap widens to the next tier instead of wrapping silently.
func numericApply(symbol operator, left, right interface{}) (interface{}, error) {
	switch widerKind(kindOf(left), kindOf(right)) {
	case kindInt:
		return intApply(symbol, toInt64(left), toInt64(right), true)
	case kindInt64:
		return intApply(symbol, toInt64(left), toInt64(right), false)
	case kindBigInt:
		return bigIntApply(symbol, toBigInt(left), toBigInt(right))
	case kindFloat:
		return floatApply(symbol, toFloat(left), toFloat(right))
	case kindBigFloat:
		return bigFloatApply(symbol, toBigFloat(left), toBigFloat(right))
	}
	return nil, unsupported(symbol, left, right)
}

// numericCompare three-way compares two numeric operands under the same
// promotion used for arithmetic.
func numericCompare(left, right interface{}) int {
	switch widerKind(kindOf(left), kindOf(right)) {
	case kindInt, kindInt64:
		a, b := toInt64(left), toInt64(right)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	case kindBigInt:
		return toBigInt(left).Cmp(toBigInt(right))
	case kindFloat:
		return compareFloats(toFloat(left), toFloat(right))
	}
	return toBigFloat(left).Cmp(toBigFloat(right))
}

// compareFloats totalizes the float order: NaN sorts above everything
// and equals itself, so the ordering operators stay a three-way map.
func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	}
	return -1
}

func intApply(symbol operator, a, b int64, narrow bool) (interface{}, error) {
	switch symbol {
	case opPlus:
		c := a + b
		if (c > a) != (b > 0) {
			return new(big.Int).Add(big.NewInt(a), big.NewInt(b)), nil
		}
		return narrowInt(c, narrow), nil
	case opMinus:
		c := a - b
		if (c < a) != (b > 0) {
			return new(big.Int).Sub(big.NewInt(a), big.NewInt(b)), nil
		}
		return narrowInt(c, narrow), nil
	case opTimes:
		if a == 0 || b == 0 {
			return narrowInt(0, narrow), nil
		}
		// MinInt64 * -1 wraps back to MinInt64, so the c/b check below
		// cannot see it; widen explicitly like the divide path does.
		if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
			return new(big.Int).Neg(big.NewInt(math.MinInt64)), nil
		}
		c := a * b
		if c/b != a {
			return new(big.Int).Mul(big.NewInt(a), big.NewInt(b)), nil
		}
		return narrowInt(c, narrow), nil
	case opDivide:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		if a == math.MinInt64 && b == -1 {
			return new(big.Int).Neg(big.NewInt(a)), nil
		}
		return narrowInt(a/b, narrow), nil
	case opModulo:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return narrowInt(a%b, narrow), nil
	}
	return nil, unsupported(symbol, a, b)
}

func bigIntApply(symbol operator, a, b *big.Int) (interface{}, error) {
	switch symbol {
	case opPlus:
		return new(big.Int).Add(a, b), nil
	case opMinus:
		return new(big.Int).Sub(a, b), nil
	case opTimes:
		return new(big.Int).Mul(a, b), nil
	case opDivide:
		if b.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Int).Quo(a, b), nil
	case opModulo:
		if b.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Int).Rem(a, b), nil
	}
	return nil, unsupported(symbol, a, b)
}

// floatApply follows IEEE semantics throughout: division and modulo by
// zero produce Inf/NaN, never an error.
func floatApply(symbol operator, a, b float64) (interface{}, error) {
	switch symbol {
	case opPlus:
		return a + b, nil
	case opMinus:
		return a - b, nil
	case opTimes:
		return a * b, nil
	case opDivide:
		return a / b, nil
	case opModulo:
		return math.Mod(a, b), nil
	}
	return nil, unsupported(symbol, a, b)
}

// bigFloatApply mirrors floatApply at arbitrary precision, except that
// big.Float has no NaN: a zero divisor fails instead of producing one.
func bigFloatApply(symbol operator, a, b *big.Float) (interface{}, error) {
	switch symbol {
	case opPlus:
		return new(big.Float).Add(a, b), nil
	case opMinus:
		return new(big.Float).Sub(a, b), nil
	case opTimes:
		return new(big.Float).Mul(a, b), nil
	case opDivide:
		if b.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Float).Quo(a, b), nil
	case opModulo:
		if b.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return bigFloatMod(a, b), nil
	}
	return nil, unsupported(symbol, a, b)
}

// bigFloatMod computes a - trunc(a/b)*b, the truncated remainder math.Mod
// gives for fixed floats.
func bigFloatMod(a, b *big.Float) *big.Float {
	q := new(big.Float).Quo(a, b)
	i, _ := q.Int(nil)
	p := new(big.Float).SetInt(i)
	p.Mul(p, b)
	return new(big.Float).Sub(a, p)
}

// narrowInt keeps an int-tier result an int when it fits the platform
// word, widening to int64 when it does not.
func narrowInt(v int64, narrow bool) interface{} {
	if narrow && v >= minInt && v <= maxInt {
		return int(v)
	}
	return v
}

func toInt64(value interface{}) int64 {
	switch n := value.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func toBigInt(value interface{}) *big.Int {
	if n, ok := value.(*big.Int); ok {
		return n
	}
	return big.NewInt(toInt64(value))
}

func toFloat(value interface{}) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}
	return float64(toInt64(value))
}

func toBigFloat(value interface{}) *big.Float {
	switch n := value.(type) {
	case *big.Float:
		return n
	case *big.Int:
		return new(big.Float).SetInt(n)
	case float64:
		return big.NewFloat(n)
	}
	return new(big.Float).SetInt64(toInt64(value))
}
