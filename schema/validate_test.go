package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/toon-format/go-toon/parse"

	"github.com/signadot/toon-format/go-toon/ir"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func checkViolations(t *testing.T, got []Violation, want []Violation) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d violations %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i].Path != want[i].Path || got[i].Keyword != want[i].Keyword {
			t.Errorf("violation %d = %s/%s, want %s/%s",
				i, got[i].Path, got[i].Keyword, want[i].Path, want[i].Keyword)
		}
	}
}

func TestValidateType(t *testing.T) {
	tests := []struct {
		name       string
		schema, in string
		want       []Violation
	}{
		{"string ok", `{"type": "string"}`, `"x"`, nil},
		{"string bad", `{"type": "string"}`, `1`,
			[]Violation{{Path: "$", Keyword: KwType}}},
		{"integer matches number kind", `{"type": "integer"}`, `2.5`, nil},
		{"number matches int literal", `{"type": "number"}`, `3`, nil},
		{"type list", `{"type": ["string", "number"]}`, `3`, nil},
		{"type list miss", `{"type": ["string", "number"]}`, `true`,
			[]Violation{{Path: "$", Keyword: KwType}}},
		{"null admitted", `{"type": ["null", "string"], "minLength": 5}`, `null`, nil},
		{"no type keyword", `{"minLength": 2}`, `"abc"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(mustParse(t, tt.schema), mustParse(t, tt.in))
			if err != nil {
				t.Fatal(err)
			}
			checkViolations(t, got, tt.want)
		})
	}
}

// a type mismatch reports once and suppresses the node's deeper checks
func TestValidateTypeMismatchSuppresses(t *testing.T) {
	schema := mustParse(t, `{"type": "string", "minLength": 100, "pattern": "^z"}`)
	got, err := Validate(schema, mustParse(t, `7`))
	if err != nil {
		t.Fatal(err)
	}
	checkViolations(t, got, []Violation{{Path: "$", Keyword: KwType}})
}

func TestValidateObject(t *testing.T) {
	schema := mustParse(t, `{
		"type": "object",
		"required": ["id", "name"],
		"properties": {
			"id": {"type": "integer"},
			"name": {"type": "string", "minLength": 1}
		}
	}`)

	got, err := Validate(schema, mustParse(t, `{"id": 7, "name": "ada", "extra": []}`))
	if err != nil {
		t.Fatal(err)
	}
	checkViolations(t, got, nil)

	got, err = Validate(schema, mustParse(t, `{"name": ""}`))
	if err != nil {
		t.Fatal(err)
	}
	checkViolations(t, got, []Violation{
		{Path: "$", Keyword: KwRequired},
		{Path: "$.name", Keyword: KwMinLength},
	})
}

func TestValidateNestedPaths(t *testing.T) {
	schema := mustParse(t, `{
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id"]
				}
			}
		}
	}`)
	got, err := Validate(schema, mustParse(t, `{"items": [{"id": 1}, {}, {"x": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	checkViolations(t, got, []Violation{
		{Path: "$.items[1]", Keyword: KwRequired},
		{Path: "$.items[2]", Keyword: KwRequired},
	})
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name       string
		schema, in string
		want       []Violation
	}{
		{"minLength", `{"minLength": 3}`, `"ab"`,
			[]Violation{{Path: "$", Keyword: KwMinLength}}},
		{"maxLength", `{"maxLength": 2}`, `"abc"`,
			[]Violation{{Path: "$", Keyword: KwMaxLength}}},
		{"length bounds ok", `{"minLength": 2, "maxLength": 3}`, `"ab"`, nil},
		// lengths count UTF-16 code units
		{"bmp rune is one unit", `{"maxLength": 1}`, `"é"`, nil},
		{"astral rune is two units", `{"maxLength": 1}`, `"😀"`,
			[]Violation{{Path: "$", Keyword: KwMaxLength}}},
		{"pattern hit", `{"pattern": "^a+$"}`, `"aaa"`, nil},
		{"pattern unanchored", `{"pattern": "b"}`, `"abc"`, nil},
		{"pattern miss", `{"pattern": "^a+$"}`, `"ab"`,
			[]Violation{{Path: "$", Keyword: KwPattern}}},
		{"enum hit", `{"enum": ["red", "green"]}`, `"green"`, nil},
		{"enum miss", `{"enum": ["red", "green"]}`, `"blue"`,
			[]Violation{{Path: "$", Keyword: KwEnum}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(mustParse(t, tt.schema), mustParse(t, tt.in))
			if err != nil {
				t.Fatal(err)
			}
			checkViolations(t, got, tt.want)
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name       string
		schema, in string
		want       []Violation
	}{
		{"minimum inclusive", `{"minimum": 3}`, `3`, nil},
		{"minimum miss", `{"minimum": 3}`, `2.5`,
			[]Violation{{Path: "$", Keyword: KwMinimum}}},
		{"exclusiveMinimum strict", `{"exclusiveMinimum": 3}`, `3`,
			[]Violation{{Path: "$", Keyword: KwExclusiveMinimum}}},
		{"maximum inclusive", `{"maximum": 3}`, `3`, nil},
		{"exclusiveMaximum strict", `{"exclusiveMaximum": 3}`, `3`,
			[]Violation{{Path: "$", Keyword: KwExclusiveMaximum}}},
		{"multipleOf hit", `{"multipleOf": 0.5}`, `2.5`, nil},
		{"multipleOf miss", `{"multipleOf": 2}`, `3`,
			[]Violation{{Path: "$", Keyword: KwMultipleOf}}},
		// bounds are independent: one number can fail several
		{"several bounds", `{"minimum": 10, "exclusiveMinimum": 10, "multipleOf": 3}`, `5`,
			[]Violation{
				{Path: "$", Keyword: KwMinimum},
				{Path: "$", Keyword: KwExclusiveMinimum},
				{Path: "$", Keyword: KwMultipleOf},
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(mustParse(t, tt.schema), mustParse(t, tt.in))
			if err != nil {
				t.Fatal(err)
			}
			checkViolations(t, got, tt.want)
		})
	}
}

func TestValidateArray(t *testing.T) {
	tests := []struct {
		name       string
		schema, in string
		want       []Violation
	}{
		{"minItems", `{"minItems": 2}`, `[1]`,
			[]Violation{{Path: "$", Keyword: KwMinItems}}},
		{"maxItems", `{"maxItems": 1}`, `[1, 2]`,
			[]Violation{{Path: "$", Keyword: KwMaxItems}}},
		{"unique ok", `{"uniqueItems": true}`, `[1, 2, "1"]`, nil},
		{"unique structural", `{"uniqueItems": true}`, `[{"a": [1]}, {"a": [1]}]`,
			[]Violation{{Path: "$", Keyword: KwUniqueItems}}},
		// numerically equal literals are duplicates
		{"unique numeric", `{"uniqueItems": true}`, `[1, 1.0]`,
			[]Violation{{Path: "$", Keyword: KwUniqueItems}}},
		// one violation per array, first duplicate only
		{"unique reports once", `{"uniqueItems": true}`, `[1, 1, 2, 2]`,
			[]Violation{{Path: "$", Keyword: KwUniqueItems}}},
		{"unique off", `{"uniqueItems": false}`, `[1, 1]`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(mustParse(t, tt.schema), mustParse(t, tt.in))
			if err != nil {
				t.Fatal(err)
			}
			checkViolations(t, got, tt.want)
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		format string
		ok     []string
		bad    []string
	}{
		{"date-time", []string{"2026-08-30T12:00:00Z", "2026-08-30T12:00:00+02:00"},
			[]string{"2026-08-30", "not a date"}},
		{"date", []string{"2026-08-30"}, []string{"2026-13-01", "2026-08-30T12:00:00Z"}},
		{"time", []string{"12:00:00", "12:00:00Z", "23:59:59.5+01:00"}, []string{"25:00:00"}},
		{"duration", []string{"P1Y2M3D", "PT1H30M", "P1DT12H", "PT0.5S", "P1W"},
			[]string{"P", "PT", "P1H", "PT1D", "P1M2Y", "PT0.5M"}},
		{"email", []string{"ada@example.com"}, []string{"not-an-email", "Ada <ada@example.com>"}},
		{"hostname", []string{"example.com", "a-b.example"}, []string{"-bad.example", "ex..ample"}},
		{"uri", []string{"https://example.com/x?y=1", "urn:isbn:0451450523"},
			[]string{"/relative/path", "%%"}},
		{"ipv4", []string{"192.168.0.1"}, []string{"256.1.1.1", "::1"}},
		{"ipv6", []string{"::1", "2001:db8::8a2e:370:7334"}, []string{"192.168.0.1", "zz"}},
		{"uuid", []string{"123e4567-e89b-12d3-a456-426614174000"}, []string{"123e4567"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			schema := mustParse(t, `{"format": "`+tt.format+`"}`)
			for _, v := range tt.ok {
				got, err := Validate(schema, ir.FromString(v))
				if err != nil {
					t.Fatal(err)
				}
				if len(got) != 0 {
					t.Errorf("%q rejected: %v", v, got)
				}
			}
			for _, v := range tt.bad {
				got, err := Validate(schema, ir.FromString(v))
				if err != nil {
					t.Fatal(err)
				}
				if len(got) != 1 || got[0].Keyword != KwFormat {
					t.Errorf("%q not rejected: %v", v, got)
				}
			}
		})
	}
}

// malformed schemas abort with ErrSchema; they never produce violations
func TestValidateConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
	}{
		{"unknown type", `{"type": "quux"}`},
		{"type not string", `{"type": 3}`},
		{"bad type in list", `{"type": ["string", 3]}`},
		{"unknown format", `{"format": "quux"}`},
		{"bad pattern", `{"pattern": "("}`},
		{"required not array", `{"required": "id"}`},
		{"required entry not string", `{"required": [1]}`},
		{"properties not object", `{"properties": []}`},
		{"minLength not integer", `{"minLength": "three"}`},
		{"minimum not number", `{"minimum": "three"}`},
		{"multipleOf zero", `{"multipleOf": 0}`},
		{"uniqueItems not bool", `{"uniqueItems": 1}`},
		{"schema not object", `3`},
	}
	docs := map[string]string{
		"unknown format":            `"x"`,
		"bad pattern":               `"x"`,
		"minLength not integer":     `"x"`,
		"required not array":        `{}`,
		"required entry not string": `{}`,
		"properties not object":     `{}`,
		"minimum not number":        `5`,
		"multipleOf zero":           `5`,
		"uniqueItems not bool":      `[1]`,
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{}`
			if d, ok := docs[tt.name]; ok {
				doc = d
			}
			vs, err := Validate(mustParse(t, tt.schema), mustParse(t, doc))
			if !errors.Is(err, ErrSchema) {
				t.Errorf("err = %v, want ErrSchema", err)
			}
			if vs != nil {
				t.Errorf("violations %v alongside config error", vs)
			}
		})
	}
}

func TestValidateDepthGuard(t *testing.T) {
	schema := mustParse(t, `{"type": "array"}`)
	schema.Set(KwItems, schema)
	deep := strings.Repeat("[", 600) + strings.Repeat("]", 600)
	doc, err := parse.Parse([]byte(deep), parse.MaxDepth(1000))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Validate(schema, doc); !errors.Is(err, ErrDepth) {
		t.Errorf("err = %v, want ErrDepth", err)
	}
	if _, err := Validate(schema, doc, MaxDepth(2000)); err != nil {
		t.Errorf("raised depth: %v", err)
	}
}
