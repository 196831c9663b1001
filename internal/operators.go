package internal

// operator identifies a dispatchable operation. The set is closed: the
// compiler front end can only ever request one of these tags.
type operator string

const (
	opPlus         operator = "plus"
	opMinus        operator = "minus"
	opTimes        operator = "times"
	opDivide       operator = "divide"
	opModulo       operator = "modulo"
	opEquals       operator = "equals"
	opNotEquals    operator = "notequals"
	opLess         operator = "less"
	opLessOrEquals operator = "lessorequals"
	opMore         operator = "more"
	opMoreOrEquals operator = "moreorequals"
	opAnd          operator = "and"
	opOr           operator = "or"
	opNot          operator = "not"
	opIs           operator = "is"
	opIsnt         operator = "isnt"
)

// operatorApply runs one operator against already-evaluated operands.
type operatorApply func(arguments ...interface{}) (interface{}, error)

// operatorArities fixes the arity of every symbol. Built once before any
// bind, read-only afterwards.
var operatorArities = map[operator]int{
	opPlus:         2,
	opMinus:        2,
	opTimes:        2,
	opDivide:       2,
	opModulo:       2,
	opEquals:       2,
	opNotEquals:    2,
	opLess:         2,
	opLessOrEquals: 2,
	opMore:         2,
	opMoreOrEquals: 2,
	opAnd:          2,
	opOr:           2,
	opNot:          1,
	opIs:           2,
	opIsnt:         2,
}
