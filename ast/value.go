// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the value tree for parsed JSON, and a
// recursive-descent parser that constructs trees from JSON source.
package ast

import (
	"fmt"
	"strconv"
)

// A Value is a node of a parsed JSON value tree. The concrete type is one
// of Object, Array, String, Number, Bool, or Null; the set is closed, so a
// type switch over these six types is exhaustive.
//
// A tree is built bottom-up during a parse and owned exclusively by its
// root: values never alias each other and no cycles can occur.
type Value interface {
	isValue()
}

// An Object is a collection of key-value members. Keys are unique; when an
// input contains a duplicate key, the last value written wins. The order of
// keys in the input is not preserved.
type Object map[string]Value

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil if
// no such member exists.
func (o Object) Find(key string) Value { return o[key] }

// An Array is an ordered sequence of values.
type Array []Value

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

// A String is a string value. Escape sequences from the input are already
// resolved; the text is never raw or partially escaped.
type String string

// A Number is a numeric value, stored as its literal text exactly as it
// appeared in the input. This preserves precision and formatting at the
// cost of requiring callers to convert the text themselves. The text
// always satisfies the JSON number grammar.
type Number string

// A Bool is a Boolean constant, true or false.
type Bool bool

// Null represents the null constant.
type Null struct{}

func (Object) isValue() {}
func (Array) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// ToValue converts a plain Go value into a Value. It accepts nil, bool,
// string, int, int64, float64, []any, map[string]any, and any existing
// Value, which is returned unmodified. ToValue panics if v is not one of
// these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(strconv.Itoa(t))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64))
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return arr
	case map[string]any:
		obj := make(Object, len(t))
		for key, elt := range t {
			obj[key] = ToValue(elt)
		}
		return obj
	default:
		panic(fmt.Sprintf("no JSON value for %T", v))
	}
}
