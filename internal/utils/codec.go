package utils

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SanteonNL/transparencydata/types"
)

const (
	inSeparator   = "|"
	gtPrefix      = ">|"
	ltPrefix      = "<|"
	betweenPrefix = "><|"
)

// EncodeValue returns the wire value for a single filter.
func EncodeValue(f types.Filter) (string, error) {
	var s string
	switch f.Op {
	case types.OpIn:
		items, ok := sequence(f.Value)
		if !ok {
			s = stringify(f.Value)
			break
		}
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = stringify(item)
		}
		s = strings.Join(parts, inSeparator)
	case types.OpGt:
		s = gtPrefix + stringify(f.Value)
	case types.OpLt:
		s = ltPrefix + stringify(f.Value)
	case types.OpBetween:
		items, ok := sequence(f.Value)
		if !ok || len(items) != 2 {
			return "", &types.InvalidParameterShapeError{Param: f.Name, Op: f.Op, Reason: "must be a sequence of two dates"}
		}
		start, err := isoDate(items[0])
		if err != nil {
			return "", &types.InvalidParameterShapeError{Param: f.Name, Op: f.Op, Reason: fmt.Sprintf("start: %v", err)}
		}
		end, err := isoDate(items[1])
		if err != nil {
			return "", &types.InvalidParameterShapeError{Param: f.Name, Op: f.Op, Reason: fmt.Sprintf("end: %v", err)}
		}
		s = betweenPrefix + start + inSeparator + end
	default:
		s = stringify(f.Value)
	}
	return strings.ToValidUTF8(s, "�"), nil
}

// sequence unpacks slices and arrays. Strings and byte slices are scalars.
func sequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(types.DateLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(types.DateLayout)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return ""
		}
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func isoDate(v any) (string, error) {
	switch x := v.(type) {
	case time.Time:
		return x.Format(types.DateLayout), nil
	case types.Date:
		return x.String(), nil
	case *types.Date:
		if x == nil {
			return "", fmt.Errorf("nil date")
		}
		return x.String(), nil
	case string:
		d, err := types.ParseDate(x)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	default:
		return "", fmt.Errorf("%T is not a date", v)
	}
}
