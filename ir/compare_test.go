package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Undefined < Null < Bool < Number < String < Array < Object
		{"Undefined < Null", Undefined(), Null(), -1},
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison by numeric value, regardless of literal form
		{"Int == Float", FromInt(1), FromFloat(1.0), 0},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Int < Float", FromInt(1), FromFloat(1.5), -1},
		{"-0 == 0", FromFloat(negZero()), FromInt(0), 0},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}, {Key: FromString("b"), Val: FromInt(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(2)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestEqualKeyOrderMatters(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromInt(2)},
		{Key: FromString("a"), Val: FromInt(1)},
	})
	if Equal(a, b) {
		t.Errorf("objects with different key order compare equal")
	}
	if !Equal(a, a.Clone()) {
		t.Errorf("clone not equal to original")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	pairs := []struct {
		a, b *Node
	}{
		{FromInt(1), FromFloat(1.0)},
		{FromFloat(negZero()), FromInt(0)},
		{FromString("héllo"), FromString("héllo")},
		{
			FromSlice([]*Node{FromInt(1), FromString("x")}),
			FromSlice([]*Node{FromInt(1), FromString("x")}),
		},
		{
			FromKeyVals([]KeyVal{{Key: FromString("k"), Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: FromString("k"), Val: Null()}}),
		},
	}
	for i, p := range pairs {
		if !Equal(p.a, p.b) {
			t.Fatalf("pair %d not equal", i)
		}
		if p.a.Hash() != p.b.Hash() {
			t.Errorf("pair %d: equal nodes hash differently", i)
		}
	}
}

func TestHashDistinguishes(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(2), FromInt(1)})
	if a.Hash() == b.Hash() {
		t.Errorf("distinct arrays collide (possible, but suspicious)")
	}
}
