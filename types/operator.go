package types

import "strings"

// Operator selects how a filter value is encoded on the wire.
type Operator int

const (
	OpEq Operator = iota
	OpIn
	OpGt
	OpLt
	OpBetween
)

// OperatorSeparator joins a logical parameter name and its operator token.
const OperatorSeparator = "__"

var operatorTokens = map[string]Operator{
	"eq":      OpEq,
	"in":      OpIn,
	"gt":      OpGt,
	"lt":      OpLt,
	"between": OpBetween,
}

func (op Operator) String() string {
	switch op {
	case OpIn:
		return "in"
	case OpGt:
		return "gt"
	case OpLt:
		return "lt"
	case OpBetween:
		return "between"
	default:
		return "eq"
	}
}

// ParseOperator returns the operator for a suffix token such as "gt".
func ParseOperator(token string) (Operator, bool) {
	op, ok := operatorTokens[token]
	return op, ok
}

// SplitParamName splits a key like "amount__gt" on the first separator.
// An unrecognized suffix is kept as part of the name and the operator is OpEq.
func SplitParamName(key string) (string, Operator) {
	idx := strings.Index(key, OperatorSeparator)
	if idx < 0 {
		return key, OpEq
	}
	op, ok := ParseOperator(key[idx+len(OperatorSeparator):])
	if !ok {
		return key, OpEq
	}
	return key[:idx], op
}
