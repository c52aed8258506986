package types

import (
	"time"

	"golang.org/x/exp/slices"
)

// Filter is one named filter of a request. Value is a scalar for OpEq, OpGt
// and OpLt, and a sequence for OpIn and OpBetween.
type Filter struct {
	Name  string
	Op    Operator
	Value any
}

// Key returns the keyword form of the filter, e.g. "amount__gt".
func (f Filter) Key() string {
	if f.Op == OpEq {
		return f.Name
	}
	return f.Name + OperatorSeparator + f.Op.String()
}

func Eq(name string, value any) Filter {
	return Filter{Name: name, Op: OpEq, Value: value}
}

func In(name string, values ...any) Filter {
	return Filter{Name: name, Op: OpIn, Value: values}
}

func Gt(name string, value any) Filter {
	return Filter{Name: name, Op: OpGt, Value: value}
}

func Lt(name string, value any) Filter {
	return Filter{Name: name, Op: OpLt, Value: value}
}

// Between filters on an inclusive date range.
func Between(name string, start, end time.Time) Filter {
	return Filter{Name: name, Op: OpBetween, Value: []time.Time{start, end}}
}

// ParseFilter builds a filter from a keyword-style key such as "amount__gt".
func ParseFilter(key string, value any) Filter {
	name, op := SplitParamName(key)
	return Filter{Name: name, Op: op, Value: value}
}

// FiltersFromMap converts keyword-style filters into an ordered list, sorted
// by key so the resulting URL is stable.
func FiltersFromMap(m map[string]any) []Filter {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	filters := make([]Filter, 0, len(keys))
	for _, k := range keys {
		filters = append(filters, ParseFilter(k, m[k]))
	}
	return filters
}
