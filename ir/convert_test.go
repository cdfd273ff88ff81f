package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAsInt(t *testing.T) {
	tests := []struct {
		name string
		n    *Node
		want int64
		err  bool
	}{
		{"int literal", FromInt(42), 42, false},
		{"integral float", FromFloat(42.0), 42, false},
		{"fractional float", FromFloat(2.5), 0, true},
		{"beyond 53 bits", FromFloat(math.Pow(2, 60)), 0, true},
		{"string", FromString("3"), 0, true},
		{"null", Null(), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.n.AsInt()
			if tt.err {
				if !errors.Is(err, ErrConvert) {
					t.Errorf("err = %v, want ErrConvert", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("AsInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFromAnyToAny(t *testing.T) {
	in := map[string]any{
		"name":   "box",
		"count":  int64(3),
		"weight": 2.5,
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"ok": true, "gone": nil},
	}
	node, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	// sorted key layout
	var keys []string
	for _, f := range node.Fields {
		keys = append(keys, f.String)
	}
	wantKeys := []string{"count", "name", "nested", "tags", "weight"}
	if d := cmp.Diff(wantKeys, keys); d != "" {
		t.Errorf("key layout (-want +got):\n%s", d)
	}

	out, err := node.ToAny()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestFromAnyIntegralFloat(t *testing.T) {
	n, err := FromAny(float64(7))
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsIntegral() {
		t.Errorf("integral float64 did not land in Int64")
	}
	n, err = FromAny(7.25)
	if err != nil {
		t.Fatal(err)
	}
	if n.IsIntegral() {
		t.Errorf("fractional float64 landed in Int64")
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(struct{}{})
	if !errors.Is(err, ErrConvert) {
		t.Errorf("err = %v, want ErrConvert", err)
	}
}

func TestToAnyUndefined(t *testing.T) {
	_, err := Undefined().ToAny()
	if !errors.Is(err, ErrUndefined) {
		t.Errorf("err = %v, want ErrUndefined", err)
	}
}
