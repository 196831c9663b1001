package internal

import (
	"fmt"
	"math/big"
	"reflect"
)

// kind classifies an operand by its runtime representation. The
// enumeration is closed and the numeric tiers are declared narrowest to
// widest, so the promotion order is the declaration order. Every rule in
// the resolver switches over kinds: adding one here surfaces each table
// that needs a new rule.
type kind int

const (
	kindNil kind = iota
	kindBool
	kindInt
	kindInt64
	kindBigInt
	kindFloat
	kindBigFloat
	kindString
	kindObject
)

func (k kind) String() string {
	switch k {
	case kindNil:
		return "null"
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindInt64:
		return "int64"
	case kindBigInt:
		return "bigint"
	case kindFloat:
		return "float"
	case kindBigFloat:
		return "bigfloat"
	case kindString:
		return "string"
	}
	return "object"
}

// kindOf maps a live operand to its kind. Types outside the closed set
// are plain references.
func kindOf(value interface{}) kind {
	switch value.(type) {
	case nil:
		return kindNil
	case bool:
		return kindBool
	case int, int32:
		return kindInt
	case int64:
		return kindInt64
	case *big.Int:
		return kindBigInt
	case float64:
		return kindFloat
	case *big.Float:
		return kindBigFloat
	case string:
		return kindString
	}
	return kindObject
}

func (k kind) numeric() bool {
	return k >= kindInt && k <= kindBigFloat
}

func (k kind) integral() bool {
	return k >= kindInt && k <= kindBigInt
}

// widerKind picks the common tier two numeric operands promote to.
func widerKind(a, b kind) kind {
	if a > b {
		return a
	}
	return b
}

// Comparer is the ordering capability a reference operand may expose to
// take part in less/more comparisons. Compare returns a negative, zero
// or positive three-way result, or an error when other is not mutually
// comparable with the receiver.
type Comparer interface {
	Compare(other interface{}) (int, error)
}

// text renders an operand the way the language prints it. Concatenation
// runs every non-string operand through here.
func text(value interface{}) string {
	if value == nil {
		return "null"
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// sameInstance reports reference identity. Pointer-shaped values compare
// by address. Value kinds collapse to equality: with no boxing there is
// no address to tell two equal values apart, and null is always
// identical to itself.
func sameInstance(left, right interface{}) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	lv := reflect.ValueOf(left)
	rv := reflect.ValueOf(right)
	switch lv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return rv.Kind() == lv.Kind() && lv.Pointer() == rv.Pointer()
	case reflect.Slice:
		return rv.Kind() == reflect.Slice &&
			lv.Pointer() == rv.Pointer() && lv.Len() == rv.Len()
	}
	if lv.Type() != rv.Type() || !lv.Type().Comparable() {
		return false
	}
	return left == right
}
