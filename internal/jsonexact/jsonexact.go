// Package jsonexact decodes JSON, rejecting fields the target type does
// not declare. It guards against silently ignoring misspelled keys in
// externally sourced documents.
package jsonexact

import (
	"bytes"
	"encoding/json"
)

func Unmarshal[T any](d []byte, v *T) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
