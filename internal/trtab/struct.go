package trtab

import (
	"fmt"
	"reflect"
	"strings"
)

// taggedStruct derives Columns from a row type's trtab struct tags.
type taggedStruct[R any] struct{}

func taggedStructColumns[R any]() Columns[R] {
	return taggedStruct[R]{}
}

func (taggedStruct[R]) Columns() []Column[R] {
	var row R
	return structColumns[R](reflect.TypeOf(row))
}

func structColumns[R any](rowType reflect.Type) []Column[R] {
	var res []Column[R]
	for _, field := range reflect.VisibleFields(rowType) {
		c := structFieldColumn[R](field)
		if c != nil {
			res = append(res, *c)
		}
	}
	return res
}

func structFieldColumn[R any](f reflect.StructField) *Column[R] {
	tag := f.Tag.Get("trtab")
	if tag == "" {
		return nil
	}

	// The first comma-separated part is the column title, the rest are
	// attributes.
	parts := strings.Split(tag, ",")
	res := &Column[R]{
		Title: parts[0],
		Get: func(r R) string {
			val := reflect.ValueOf(r).FieldByName(f.Name).Interface()
			return fmt.Sprint(val)
		},
	}
	for _, attr := range parts[1:] {
		switch attr {
		case "trunc":
			res.Truncate = true
		}
	}
	return res
}
