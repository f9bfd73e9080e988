// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/litjson"
	"github.com/creachadair/litjson/ast"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Value
	}{
		{"String", `"toy json parser"`, ast.String("toy json parser")},
		{"Number", `-15`, ast.Number("-15")},
		{"True", `true`, ast.Bool(true)},
		{"False", `false`, ast.Bool(false)},
		{"Null", `null`, ast.Null{}},

		{"EmptyObject", `{}`, ast.Object{}},
		{"EmptyObjectSpace", "{ \n\t }", ast.Object{}},
		{"EmptyArray", `[]`, ast.Array{}},
		{"EmptyArraySpace", "[ \r\n ]", ast.Array{}},

		{"FlatObject", `
{
  "name": "litjson",
  "desc": "toy json parser",
  "true_key": true,
  "false_key": false,
  "null_key": null
}`, ast.Object{
			"name":      ast.String("litjson"),
			"desc":      ast.String("toy json parser"),
			"true_key":  ast.Bool(true),
			"false_key": ast.Bool(false),
			"null_key":  ast.Null{},
		}},

		{"NestedObject", `
{
  "name": {
    "nested_name": "nested_name_value",
    "nested_desc": "nested_desc_value"
  },
  "desc": "toy json parser"
}`, ast.Object{
			"name": ast.Object{
				"nested_name": ast.String("nested_name_value"),
				"nested_desc": ast.String("nested_desc_value"),
			},
			"desc": ast.String("toy json parser"),
		}},

		{"Array", `[1, 2, true, "abcd"]`, ast.Array{
			ast.Number("1"), ast.Number("2"), ast.Bool(true), ast.String("abcd"),
		}},
		{"NestedArray", `[[],[[0]],{"a":[null]}]`, ast.Array{
			ast.Array{},
			ast.Array{ast.Array{ast.Number("0")}},
			ast.Object{"a": ast.Array{ast.Null{}}},
		}},

		{"Compact", `{"a":true,"b":[null,1,0.5]}`, ast.Object{
			"a": ast.Bool(true),
			"b": ast.Array{ast.Null{}, ast.Number("1"), ast.Number("0.5")},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", tc.input, diff)
			}
		})
	}
}

func TestNumberFidelity(t *testing.T) {
	// The source spelling of a number is retained exactly.
	inputs := []string{`-100.001e10`, `0.000`, `-0`, `1E+005`, `123456789012345678901234567890`}
	for _, input := range inputs {
		got, err := ast.Parse(input)
		if err != nil {
			t.Errorf("Parse(%#q): %v", input, err)
			continue
		}
		if diff := cmp.Diff(ast.Number(input), got); diff != "" {
			t.Errorf("Parse(%#q): (-want, +got)\n%s", input, diff)
		}
	}
}

func TestStringDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello\nworld"`, "hello\nworld"},
		{`"\"a\\b\""`, `"a\b"`},
		{`"a\/b"`, "a/b"},
		{`"\b\f\r\t"`, "\b\f\r\t"},
	}
	for _, test := range tests {
		got, err := ast.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%#q): %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(ast.String(test.want), got); diff != "" {
			t.Errorf("Parse(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestDuplicateKeys(t *testing.T) {
	got, err := ast.Parse(`{"k":1,"k":2}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// The last write wins.
	want := ast.Object{"k": ast.Number("2")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Value: (-want, +got)\n%s", diff)
	}
}

func TestWhitespaceIdempotent(t *testing.T) {
	// Whitespace between tokens never changes the parsed tree.
	tests := []struct {
		dense, spread string
	}{
		{`{"a":true,"b":[null,1,0.5]}`, " {\n\t\"a\" :\ttrue ,\r\n \"b\"\t: [ null\n,1 , 0.5 ] \n}\n"},
		{`[[1],[2]]`, "\t[ [ 1 ] ,\n [ 2 ] ]\r\n"},
		{`{"k":{}}`, `{ "k" : { } }`},
	}
	for _, test := range tests {
		a, err := ast.Parse(test.dense)
		if err != nil {
			t.Fatalf("Parse(%#q): %v", test.dense, err)
		}
		b, err := ast.Parse(test.spread)
		if err != nil {
			t.Fatalf("Parse(%#q): %v", test.spread, err)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Trees differ: (-dense, +spread)\n%s", diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  litjson.Kind
	}{
		{``, litjson.EOF},
		{`   `, litjson.EOF},
		{`{`, litjson.EOF},
		{`[`, litjson.EOF},
		{`{"a":`, litjson.EOF},
		{`[1,`, litjson.EOF},
		{`"open`, litjson.EOF},

		{`{"a":1,}`, litjson.InvalidToken}, // trailing comma
		{`[1,]`, litjson.InvalidToken},     // trailing comma
		{`{"a" 1}`, litjson.InvalidToken},  // missing colon
		{`{1:2}`, litjson.InvalidToken},    // non-string key
		{`{"a":1 "b":2}`, litjson.InvalidToken},
		{`[1 2]`, litjson.InvalidToken},
		{`]`, litjson.InvalidToken},
		{`:`, litjson.InvalidToken},
		{`{} {}`, litjson.InvalidToken}, // trailing value
		{`[] x`, litjson.InvalidToken},  // trailing garbage
		{`nul`, litjson.InvalidToken},

		{`{"a\qb":1}`, litjson.InvalidEscapeChar},
		{`["\u263a"]`, litjson.InvalidEscapeChar},

		{`01`, litjson.InvalidNumber},
		{`[1.]`, litjson.InvalidNumber},
		{`{"a":-}`, litjson.InvalidNumber},
		{`2e`, litjson.InvalidNumber},
	}

	for _, test := range tests {
		got, err := ast.Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%#q): got %+v, want %v error", test.input, got, test.want)
			continue
		}
		if got != nil {
			t.Errorf("Parse(%#q): got a value alongside error %v", test.input, err)
		}
		if kind := litjson.ErrorKind(err); kind != test.want {
			t.Errorf("Parse(%#q): got %v, want kind %v", test.input, err, test.want)
		}
	}
}

func TestParseOne(t *testing.T) {
	p := ast.NewParser(` {"a": 1} [2, 3] "tail" `)
	want := []ast.Value{
		ast.Object{"a": ast.Number("1")},
		ast.Array{ast.Number("2"), ast.Number("3")},
		ast.String("tail"),
	}
	for i, w := range want {
		got, err := p.ParseOne()
		if err != nil {
			t.Fatalf("ParseOne #%d: %v", i+1, err)
		}
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("ParseOne #%d: (-want, +got)\n%s", i+1, diff)
		}
	}
	if got, err := p.ParseOne(); litjson.ErrorKind(err) != litjson.EOF {
		t.Errorf("ParseOne at end: got %v, %v; want kind %v", got, err, litjson.EOF)
	}
}

func TestMaxDepth(t *testing.T) {
	const input = `[[[1]]]` // three levels

	p := ast.NewParser(input)
	p.MaxDepth = 3
	if _, err := p.ParseOne(); err != nil {
		t.Errorf("ParseOne (limit 3): unexpected error: %v", err)
	}

	p = ast.NewParser(input)
	p.MaxDepth = 2
	got, err := p.ParseOne()
	if litjson.ErrorKind(err) != litjson.DepthExceeded {
		t.Errorf("ParseOne (limit 2): got %v, %v; want kind %v", got, err, litjson.DepthExceeded)
	}

	// The default limit is far above anything reasonable.
	if _, err := ast.Parse(input); err != nil {
		t.Errorf("Parse (default limit): unexpected error: %v", err)
	}
}
