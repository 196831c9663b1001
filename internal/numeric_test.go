package internal

import (
	"math"
	"math/big"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		value interface{}
		kind  kind
	}{
		{nil, kindNil},
		{true, kindBool},
		{1, kindInt},
		{'a', kindInt},
		{int64(1), kindInt64},
		{big.NewInt(1), kindBigInt},
		{1.0, kindFloat},
		{big.NewFloat(1), kindBigFloat},
		{"a", kindString},
		{&namedObject{}, kindObject},
		{[]int{}, kindObject},
		{uint(1), kindObject},
	}
	for _, c := range cases {
		if kindOf(c.value) != c.kind {
			t.Errorf("kindOf(%v) = %s, want %s", c.value, kindOf(c.value), c.kind)
		}
	}
}

func TestWiderKind(t *testing.T) {
	// The ladder: int < int64 < bigint < float < bigfloat
	if widerKind(kindInt, kindInt64) != kindInt64 {
		t.Error("int64 should be wider than int")
	}
	if widerKind(kindBigInt, kindInt64) != kindBigInt {
		t.Error("bigint should be wider than int64")
	}
	if widerKind(kindBigInt, kindFloat) != kindFloat {
		t.Error("float should be wider than bigint")
	}
	if widerKind(kindFloat, kindBigFloat) != kindBigFloat {
		t.Error("bigfloat should be wider than float")
	}
}

func TestCompareFloats(t *testing.T) {
	if compareFloats(1, 2) != -1 || compareFloats(2, 1) != 1 || compareFloats(1, 1) != 0 {
		t.Error("compareFloats should follow the usual order")
	}

	// NaN joins the total order above everything
	nan := math.NaN()
	if compareFloats(nan, nan) != 0 {
		t.Error("NaN should equal itself in the total order")
	}
	if compareFloats(nan, math.Inf(1)) != 1 {
		t.Error("NaN should sort above +Inf")
	}
	if compareFloats(math.Inf(1), nan) != -1 {
		t.Error("+Inf should sort below NaN")
	}
}

func TestBigFloatMod(t *testing.T) {
	mod := bigFloatMod(big.NewFloat(7.5), big.NewFloat(2))
	if mod.Cmp(big.NewFloat(1.5)) != 0 {
		t.Errorf("7.5 mod 2 = %v, want 1.5", mod)
	}

	mod = bigFloatMod(big.NewFloat(-7.5), big.NewFloat(2))
	if mod.Cmp(big.NewFloat(-1.5)) != 0 {
		t.Errorf("-7.5 mod 2 = %v, want -1.5 (truncated remainder)", mod)
	}

	mod = bigFloatMod(big.NewFloat(4), big.NewFloat(2))
	if mod.Sign() != 0 {
		t.Errorf("4 mod 2 = %v, want 0", mod)
	}
}

func TestNarrowIntStaysExact(t *testing.T) {
	// The int tier reports int results while they fit the platform word
	if v := narrowInt(42, true); v != 42 {
		t.Errorf("narrowInt(42) = %v (%T)", v, v)
	}
	if v := narrowInt(42, false); v != int64(42) {
		t.Errorf("narrowInt(42, wide) = %v (%T)", v, v)
	}
}

func TestTextRendering(t *testing.T) {
	cases := []struct {
		value interface{}
		text  string
	}{
		{nil, "null"},
		{"s", "s"},
		{1, "1"},
		{1.5, "1.5"},
		{true, "true"},
		{big.NewInt(10), "10"},
		{&namedObject{name: "Mr Bean"}, "Mr Bean"},
	}
	for _, c := range cases {
		if text(c.value) != c.text {
			t.Errorf("text(%v) = %q, want %q", c.value, text(c.value), c.text)
		}
	}
}

func TestSameInstance(t *testing.T) {
	a := &namedObject{name: "a"}

	if !sameInstance(nil, nil) {
		t.Error("null is identical to itself")
	}
	if sameInstance(nil, a) || sameInstance(a, nil) {
		t.Error("null is identical to nothing else")
	}
	if !sameInstance(a, a) {
		t.Error("a pointer is identical to itself")
	}
	if sameInstance(a, &namedObject{name: "a"}) {
		t.Error("distinct pointers are never identical")
	}

	// Value kinds collapse to equality: no boxing, no addresses
	if !sameInstance(1, 1) || sameInstance(1, 2) {
		t.Error("value kinds are identical iff equal")
	}
	if sameInstance(1, int64(1)) {
		t.Error("identity does not promote across kinds")
	}

	m := map[string]int{}
	if !sameInstance(m, m) || sameInstance(m, map[string]int{}) {
		t.Error("maps compare by reference")
	}
}
