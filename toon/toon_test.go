package toon

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/toon-format/go-toon/ir"
	"github.com/signadot/toon-format/go-toon/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestScalars(t *testing.T) {
	tests := []struct {
		name string
		n    *ir.Node
		want string
	}{
		{"null", ir.Null(), "null\n"},
		{"bool", ir.FromBool(true), "true\n"},
		{"int", ir.FromInt(-3), "-3\n"},
		{"float", ir.FromFloat(2.5), "2.5\n"},
		{"bare number node", &ir.Node{Type: ir.NumberType}, "0\n"},
		{"word", ir.FromString("hello"), "hello\n"},
		{"phrase", ir.FromString("hello world"), "hello world\n"},
		{"empty string", ir.FromString(""), "\"\"\n"},
		{"keyword-looking", ir.FromString("true"), "\"true\"\n"},
		{"number-looking", ir.FromString("12.5"), "\"12.5\"\n"},
		{"leading dash", ir.FromString("-x"), "\"-x\"\n"},
		{"trailing space", ir.FromString("x "), "\"x \"\n"},
		{"colon", ir.FromString("a:b"), "\"a:b\"\n"},
		{"nan", ir.FromFloat(math.NaN()), "NaN\n"},
		{"neg infinity", ir.FromFloat(math.Inf(-1)), "-Infinity\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"flat",
			`{"id": 1, "name": "box", "ok": true}`,
			"id: 1\nname: box\nok: true\n",
		},
		{
			"nested",
			`{"a": {"b": 1, "c": 2}}`,
			"a:\n  b: 1\n  c: 2\n",
		},
		{
			"empty member",
			`{"a": {}}`,
			"a:\n",
		},
		{
			"quoted keys",
			`{"two words": 1, "a.b": 2}`,
			"\"two words\": 1\n\"a.b\": 2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(mustParse(t, tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestArrays(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		want string
	}{
		{
			"inline scalars",
			`{"xs": [1, 2, 3]}`,
			nil,
			"xs[3]: 1,2,3\n",
		},
		{
			"inline alt delimiter",
			`{"xs": ["a", "b"]}`,
			[]Option{Delimiter('|')},
			"xs[2]: a|b\n",
		},
		{
			"delimiter forces quoting",
			`{"xs": ["a,b", "c"]}`,
			nil,
			"xs[2]: \"a,b\",c\n",
		},
		{
			"empty",
			`{"xs": []}`,
			nil,
			"xs[0]:\n",
		},
		{
			"root scalars",
			`[1, 2]`,
			nil,
			"[2]: 1,2\n",
		},
		{
			"block objects",
			`{"items": [{"id": 1, "name": "a"}, {"id": 2}]}`,
			nil,
			"items[2]:\n  - id: 1\n    name: a\n  - id: 2\n",
		},
		{
			"block nested array",
			`[[1, 2], [3]]`,
			nil,
			"[2]:\n  - [2]: 1,2\n  - [1]: 3\n",
		},
		{
			"mixed kinds go block",
			`[1, {"a": 2}]`,
			nil,
			"[2]:\n  - 1\n  - a: 2\n",
		},
		{
			"indent size",
			`{"a": {"b": [1, {"c": 2}]}}`,
			[]Option{IndentSize(4)},
			"a:\n    b[2]:\n        - 1\n        - c: 2\n",
		},
		{
			"block objects align at indent size",
			`{"items": [{"id": 1, "name": "a", "tags": ["x", "y"]}]}`,
			[]Option{IndentSize(4)},
			"items[1]:\n    - id: 1\n      name: a\n      tags[2]: x,y\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(mustParse(t, tt.in), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestKeyFolding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		want string
	}{
		{
			"off",
			`{"a": {"b": 1}}`,
			nil,
			"a:\n  b: 1\n",
		},
		{
			"safe",
			`{"a": {"b": 1}}`,
			[]Option{KeyFolding(FoldSafe)},
			"a.b: 1\n",
		},
		{
			"safe chain",
			`{"a": {"b": {"c": {"d": 1}}}}`,
			[]Option{KeyFolding(FoldSafe)},
			"a.b.c.d: 1\n",
		},
		{
			"multi-member stops fold",
			`{"a": {"b": 1, "c": 2}}`,
			[]Option{KeyFolding(FoldSafe)},
			"a:\n  b: 1\n  c: 2\n",
		},
		{
			"fold into array",
			`{"a": {"b": [1, 2]}}`,
			[]Option{KeyFolding(FoldSafe)},
			"a.b[2]: 1,2\n",
		},
		{
			"unsafe key stops fold",
			`{"a": {"two words": 1}}`,
			[]Option{KeyFolding(FoldSafe)},
			"a:\n  \"two words\": 1\n",
		},
		{
			"dotted key never folds",
			`{"a.b": {"c": 1}}`,
			[]Option{KeyFolding(FoldSafe)},
			"\"a.b\":\n  c: 1\n",
		},
		{
			"flatten depth bounds fold",
			`{"a": {"b": {"c": {"d": 1}}}}`,
			[]Option{KeyFolding(FoldSafe), FlattenDepth(2)},
			"a.b.c:\n  d: 1\n",
		},
		{
			"folding inside block elements",
			`{"items": [{"meta": {"id": 7}}]}`,
			[]Option{KeyFolding(FoldSafe)},
			"items[1]:\n  - meta.id: 7\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(mustParse(t, tt.in), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestNewlineKnob(t *testing.T) {
	got, err := String(mustParse(t, `{"a": {"b": 1}}`), Newline("\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "a:\r\n  b: 1\r\n" {
		t.Errorf("got %q", got)
	}
}

func TestUndefined(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("keep"), Val: ir.FromInt(1)},
		{Key: ir.FromString("drop"), Val: ir.Undefined()},
	})
	got, err := String(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "keep: 1\n" {
		t.Errorf("got %q", got)
	}

	if _, err := String(ir.Undefined()); !errors.Is(err, ErrEncoding) {
		t.Errorf("root: err = %v", err)
	}
	arr := ir.FromSlice([]*ir.Node{ir.Undefined()})
	if _, err := String(arr); !errors.Is(err, ErrEncoding) {
		t.Errorf("array element: err = %v", err)
	}
}
