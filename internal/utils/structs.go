package utils

import (
	"reflect"
)

var ColumnTag = "db"

// taggedFields calls fn for every exported field of input carrying a usable ColumnTag,
// in declaration order.
func taggedFields(input any, fn func(tag string, value reflect.Value)) {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := field.Tag.Get(ColumnTag)
		if tag == "" || tag == "-" {
			continue
		}

		fn(tag, v.Field(i))
	}
}

// StructTagValues lists the column names of a row struct.
func StructTagValues(input any) []string {
	result := make([]string, 0)
	taggedFields(input, func(tag string, _ reflect.Value) {
		result = append(result, tag)
	})
	return result
}

// StructToMap maps column names to field values, ready for squirrel SetMap.
func StructToMap(input any) map[string]any {
	result := make(map[string]any)
	taggedFields(input, func(tag string, value reflect.Value) {
		result[tag] = value.Interface()
	})
	return result
}
