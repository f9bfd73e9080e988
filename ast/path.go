// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequence of nested object keys and array indices from v
// and returns the value it arrives at. Each key must be a string (an object
// key) or an int (an array offset; a negative offset counts backward from
// the end of the array). With no keys, v itself is returned.
//
// Path reports an error if a key is missing, an index is out of range, or
// the value at hand is not the matching container type. It panics if a key
// is neither a string nor an int, since that is a defect in the caller, not
// a property of the input.
func Path(v Value, keys ...any) (Value, error) {
	for _, key := range keys {
		switch t := key.(type) {
		case string:
			obj, ok := v.(Object)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with key %q", v, t)
			}
			next, ok := obj[t]
			if !ok {
				return nil, fmt.Errorf("key %q not found", t)
			}
			v = next
		case int:
			arr, ok := v.(Array)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with offset %d", v, t)
			}
			idx := t
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return nil, fmt.Errorf("offset %d out of range (%d elements)", t, len(arr))
			}
			v = arr[idx]
		default:
			panic(fmt.Sprintf("invalid path element %T", key))
		}
	}
	return v, nil
}
