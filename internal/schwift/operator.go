package schwift

// Operator is one of the language's binary operators.
type Operator uint

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpEquality
	OpModulus
	OpGreaterThanEqual
	OpLessThanEqual
	OpGreaterThan
	OpLessThan
	OpShiftRight
	OpShiftLeft
	OpOr
	OpAnd
)

// operatorTable holds every operator spelling in match order. The order is
// load-bearing: "moresquanch" and "lesssquanch" must come before "more" and
// "less", or the longer spellings become unreachable.
var operatorTable = []struct {
	text string
	op   Operator
}{
	{"+", OpAdd},
	{"-", OpSubtract},
	{"*", OpMultiply},
	{"/", OpDivide},
	{"==", OpEquality},
	{"%", OpModulus},
	{"moresquanch", OpGreaterThanEqual},
	{"lesssquanch", OpLessThanEqual},
	{"more", OpGreaterThan},
	{"less", OpLessThan},
	{"schwift>", OpShiftRight},
	{"<schwift", OpShiftLeft},
	{"or", OpOr},
	{"and", OpAnd},
}

// String returns the operator's source spelling.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpEquality:
		return "=="
	case OpModulus:
		return "%"
	case OpGreaterThanEqual:
		return "moresquanch"
	case OpLessThanEqual:
		return "lesssquanch"
	case OpGreaterThan:
		return "more"
	case OpLessThan:
		return "less"
	case OpShiftRight:
		return "schwift>"
	case OpShiftLeft:
		return "<schwift"
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	}
	return ""
}
