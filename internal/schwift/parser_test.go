package schwift

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	testCases := []struct {
		src   string
		value Value
	}{
		{"3.14", Float(3.14)},
		{"0.5", Float(0.5)},
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"0", Int(0)},
		{"\"hi\"", Str("hi")},
		{"\"\"", Str("")},
		{"\"a\\nb\"", Str("a\nb")},
		{"\"a\\\\b\"", Str("a\\b")},
		{"\"tab\\there\"", Str("tab\there")},
		{"rick", Bool(true)},
		{"morty", Bool(false)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		v, err := NewParser(tc.src).ParseValue()

		assert.NoError(err, tc.src)
		assert.Equal(tc.value, v, tc.src)
	}
}

// Float must be attempted before Int: any text matching the float pattern
// yields Float, never Int with a leftover fraction.
func TestParseValueFloatBeforeInt(t *testing.T) {
	assert := assert.New(t)
	for _, src := range []string{"3.14", "0.0", "10.01", "000.5", "123.456"} {
		v, err := NewParser(src).ParseValue()

		assert.NoError(err, src)
		assert.IsType(Float(0), v, src)
	}
}

func TestParseValueErrors(t *testing.T) {
	assert := assert.New(t)

	// out-of-range integer
	_, err := NewParser("99999999999999999999").ParseValue()
	assert.IsType(&NumberError{}, err)
	assert.Equal(0, err.(*NumberError).Offset)

	// malformed escape sequence
	_, err = NewParser("\"a\\qb\"").ParseValue()
	assert.IsType(&EscapeError{}, err)
	assert.Equal(2, err.(*EscapeError).Offset)
	assert.Equal("\\q", err.(*EscapeError).Seq)

	// unterminated string
	_, err = NewParser("\"abc").ParseValue()
	assert.IsType(&ParseError{}, err)

	// not a value at all
	_, err = NewParser("abc").ParseValue()
	assert.IsType(&ParseError{}, err)
}

func TestParseOperator(t *testing.T) {
	testCases := []struct {
		src string
		op  Operator
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

	assert := assert.New(t)
	for _, tc := range testCases {
		op, err := NewParser(tc.src).ParseOperator()

		assert.NoError(err, tc.src)
		assert.Equal(tc.op, op, tc.src)
		// every operator knows its own spelling
		assert.Equal(tc.src, op.String(), tc.src)
	}
}

// "moresquanch" yields GreaterThanEqual, never GreaterThan with a leftover
// "squanch"; same for the less pair.
func TestParseOperatorLongestSpellingWins(t *testing.T) {
	assert := assert.New(t)

	op, err := NewParser("moresquanch").ParseOperator()
	assert.NoError(err)
	assert.Equal(OpGreaterThanEqual, op)

	op, err = NewParser("lesssquanch").ParseOperator()
	assert.NoError(err)
	assert.Equal(OpLessThanEqual, op)
}

func TestParseExpression(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"x", NewVariableExpr("x")},
		{"_x1", NewVariableExpr("_x1")},
		{"42", NewLiteralExpr(Int(42))},
		{"3.14", NewLiteralExpr(Float(3.14))},
		{"\"hi\"", NewLiteralExpr(Str("hi"))},
		{"rick", NewLiteralExpr(Bool(true))},
		{"morty", NewLiteralExpr(Bool(false))},
		{"x[0]", NewListIndexExpr("x", NewLiteralExpr(Int(0)))},
		{"x[{ y }]", NewListIndexExpr("x", NewEvalExpr(NewVariableExpr("y")))},
		{"f()", NewCallExpr("f", nil)},
		{"f(a, b)", NewCallExpr("f", []Expr{
			NewVariableExpr("a"),
			NewVariableExpr("b"),
		})},
		{"x squanch", NewListLengthExpr("x")},
		{"!rick", NewNotExpr(NewLiteralExpr(Bool(true)))},
		{"{ x }", NewEvalExpr(NewVariableExpr("x"))},
		{"{x}", NewEvalExpr(NewVariableExpr("x"))},
		{"(x)", NewVariableExpr("x")},
		{"( x )", NewVariableExpr("x")},
		{"(x + 1)", NewBinaryExpr(
			OpAdd,
			NewVariableExpr("x"),
			NewLiteralExpr(Int(1)))},
		{"((a + b) * c)", NewBinaryExpr(
			OpMultiply,
			NewBinaryExpr(OpAdd, NewVariableExpr("a"), NewVariableExpr("b")),
			NewVariableExpr("c"))},
		{"(a moresquanch b)", NewBinaryExpr(
			OpGreaterThanEqual,
			NewVariableExpr("a"),
			NewVariableExpr("b"))},
		{"(a <schwift b)", NewBinaryExpr(
			OpShiftLeft,
			NewVariableExpr("a"),
			NewVariableExpr("b"))},
		{"!(a and b)", NewNotExpr(NewBinaryExpr(
			OpAnd,
			NewVariableExpr("a"),
			NewVariableExpr("b")))},
		{"({ x } or y)", NewBinaryExpr(
			OpOr,
			NewEvalExpr(NewVariableExpr("x")),
			NewVariableExpr("y"))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(tc.src).ParseExpression()

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseExpressionErrors(t *testing.T) {
	assert := assert.New(t)

	// dangling operator with missing right operand
	_, err := NewParser("(x + )").ParseExpression()
	assert.IsType(&ParseError{}, err)
	assert.Equal(5, err.(*ParseError).Offset)

	_, err = NewParser("(").ParseExpression()
	assert.IsType(&ParseError{}, err)

	_, err = NewParser("()").ParseExpression()
	assert.IsType(&ParseError{}, err)
}

// Deeply nested parenthesized expressions must not blow up on backtracking.
func TestParseExpressionDeeplyNested(t *testing.T) {
	assert := assert.New(t)
	depth := 200
	src := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)

	expr, err := NewParser(src).ParseExpression()

	assert.NoError(err)
	assert.Equal(NewVariableExpr("x"), expr)
}

func TestParseStatement(t *testing.T) {
	testCases := []struct {
		src  string
		stmt Statement
	}{
		{"squanch x[0]", Statement{
			NewListDeleteStmt("x", NewLiteralExpr(Int(0))), 0, 12}},
		{"x on a cob", Statement{
			NewListNewStmt("x"), 0, 10}},
		{"x assimilate 1", Statement{
			NewListAppendStmt("x", NewLiteralExpr(Int(1))), 0, 14}},
		{"x[0] squanch 1", Statement{
			NewListAssignStmt(
				"x",
				NewLiteralExpr(Int(0)),
				NewLiteralExpr(Int(1))), 0, 14}},
		{"squanch x", Statement{
			NewDeleteStmt("x"), 0, 9}},
		{"x squanch 5", Statement{
			NewAssignmentStmt("x", NewLiteralExpr(Int(5))), 0, 11}},
		{"show me what you got! x", Statement{
			NewPrintNoNlStmt(NewVariableExpr("x")), 0, 23}},
		{"show me what you got x", Statement{
			NewPrintStmt(NewVariableExpr("x")), 0, 22}},
		{"portal gun x", Statement{
			NewInputStmt("x"), 0, 12}},
		{"f(1, 2)", Statement{
			NewCallStmt("f", []Expr{
				NewLiteralExpr(Int(1)),
				NewLiteralExpr(Int(2)),
			}), 0, 7}},
		{"return x", Statement{
			NewReturnStmt(NewVariableExpr("x")), 0, 8}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		stmt, err := NewParser(tc.src).ParseStatement()

		assert.NoError(err, tc.src)
		assert.Equal(tc.stmt, stmt, tc.src)
	}
}

func TestParseStatementFunction(t *testing.T) {
	assert := assert.New(t)
	src := "f(a, b) :< return (a + b) >:"

	stmt, err := NewParser(src).ParseStatement()

	assert.NoError(err)
	assert.Equal(Statement{
		NewFunctionStmt("f", []string{"a", "b"}, Block{
			{NewReturnStmt(NewBinaryExpr(
				OpAdd,
				NewVariableExpr("a"),
				NewVariableExpr("b"))), 11, 25},
		}),
		0, len([]rune(src)),
	}, stmt)
}

func TestParseStatementIfElse(t *testing.T) {
	assert := assert.New(t)
	src := "if (x more 1) :< return 1 >: else :< return 0 >:"

	stmt, err := NewParser(src).ParseStatement()

	assert.NoError(err)
	// the whole-statement span equals the matched substring exactly
	assert.Equal(0, stmt.Start)
	assert.Equal(len([]rune(src)), stmt.End)
	assert.Equal(Statement{
		NewIfStmt(
			NewBinaryExpr(
				OpGreaterThan,
				NewVariableExpr("x"),
				NewLiteralExpr(Int(1))),
			Block{{NewReturnStmt(NewLiteralExpr(Int(1))), 17, 25}},
			Block{{NewReturnStmt(NewLiteralExpr(Int(0))), 37, 45}},
		),
		0, 48,
	}, stmt)
}

func TestParseStatementIfNoElse(t *testing.T) {
	assert := assert.New(t)
	src := "if rick :< return 1 >:"

	stmt, err := NewParser(src).ParseStatement()

	assert.NoError(err)
	assert.Equal(Statement{
		NewIfStmt(
			NewLiteralExpr(Bool(true)),
			Block{{NewReturnStmt(NewLiteralExpr(Int(1))), 11, 19}},
			nil,
		),
		0, 22,
	}, stmt)
}

// An empty else branch stays distinguishable from a missing one.
func TestParseStatementIfEmptyElse(t *testing.T) {
	assert := assert.New(t)

	stmt, err := NewParser("if rick :< >: else :< >:").ParseStatement()

	assert.NoError(err)
	ifStmt := stmt.Kind.(*IfStmt)
	assert.NotNil(ifStmt.Else)
	assert.Empty(ifStmt.Else)
}

func TestParseStatementWhile(t *testing.T) {
	assert := assert.New(t)
	src := "while (x less 10) :< x squanch (x + 1) >:"

	stmt, err := NewParser(src).ParseStatement()

	assert.NoError(err)
	assert.Equal(0, stmt.Start)
	assert.Equal(len([]rune(src)), stmt.End)
	while := stmt.Kind.(*WhileStmt)
	assert.Equal(
		NewBinaryExpr(
			OpLessThan,
			NewVariableExpr("x"),
			NewLiteralExpr(Int(10))),
		while.Cond)
	assert.Len(while.Body, 1)
	assert.IsType(&AssignmentStmt{}, while.Body[0].Kind)
}

func TestParseStatementCatch(t *testing.T) {
	assert := assert.New(t)
	src := "normal plan :< x squanch 1 >: plan for failure :< x squanch 2 >:"

	stmt, err := NewParser(src).ParseStatement()

	assert.NoError(err)
	assert.Equal(Statement{
		NewCatchStmt(
			Block{{NewAssignmentStmt("x", NewLiteralExpr(Int(1))), 15, 26}},
			Block{{NewAssignmentStmt("x", NewLiteralExpr(Int(2))), 50, 61}},
		),
		0, 64,
	}, stmt)
}

func TestParseStatementDylibLoad(t *testing.T) {
	assert := assert.New(t)
	src := "microverse \"libportal.so\" :< f() >:"

	stmt, err := NewParser(src).ParseStatement()

	assert.NoError(err)
	assert.Equal(Statement{
		NewDylibLoadStmt("libportal.so", Block{
			{NewCallStmt("f", nil), 29, 32},
		}),
		0, 35,
	}, stmt)
}

// PrintNoNl's keyword text is a strict superset of Print's minus the
// trailing "!", so it must win when the "!" is present and lose otherwise.
func TestParseStatementPrintOrdering(t *testing.T) {
	assert := assert.New(t)

	stmt, err := NewParser("show me what you got! x").ParseStatement()
	assert.NoError(err)
	assert.Equal(NewPrintNoNlStmt(NewVariableExpr("x")), stmt.Kind)

	stmt, err = NewParser("show me what you got x").ParseStatement()
	assert.NoError(err)
	assert.Equal(NewPrintStmt(NewVariableExpr("x")), stmt.Kind)
}

// The list forms must win over the scalar forms that share their prefix.
func TestParseStatementListOrdering(t *testing.T) {
	assert := assert.New(t)

	stmt, err := NewParser("squanch x[0]").ParseStatement()
	assert.NoError(err)
	assert.IsType(&ListDeleteStmt{}, stmt.Kind)

	stmt, err = NewParser("squanch x").ParseStatement()
	assert.NoError(err)
	assert.IsType(&DeleteStmt{}, stmt.Kind)

	stmt, err = NewParser("x[0] squanch 1").ParseStatement()
	assert.NoError(err)
	assert.IsType(&ListAssignStmt{}, stmt.Kind)

	stmt, err = NewParser("x squanch 1").ParseStatement()
	assert.NoError(err)
	assert.IsType(&AssignmentStmt{}, stmt.Kind)
}

// The identifier rule performs no keyword exclusion; alternative ordering
// alone decides, so keyword-shaped names behave like any other identifier
// when a more specific alternative matches first.
func TestParseStatementKeywordCollision(t *testing.T) {
	assert := assert.New(t)

	// the Assignment alternative precedes the If alternative
	stmt, err := NewParser("if squanch 1").ParseStatement()
	assert.NoError(err)
	assert.Equal(NewAssignmentStmt("if", NewLiteralExpr(Int(1))), stmt.Kind)

	// "squanchy" is not the keyword "squanch"
	stmt, err = NewParser("squanchy squanch 5").ParseStatement()
	assert.NoError(err)
	assert.Equal(NewAssignmentStmt("squanchy", NewLiteralExpr(Int(5))), stmt.Kind)

	// with no space after "if", the Function alternative wins
	stmt, err = NewParser("if(x) :< return 1 >:").ParseStatement()
	assert.NoError(err)
	fn := stmt.Kind.(*FunctionStmt)
	assert.Equal("if", fn.Name)
	assert.Equal([]string{"x"}, fn.Params)

	// "rick" in a value position is a boolean, never a variable
	expr, err := NewParser("rick").ParseExpression()
	assert.NoError(err)
	assert.Equal(NewLiteralExpr(Bool(true)), expr)
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)
	src := "x squanch 10\ny squanch (x + 1)\n\nshow me what you got y\n"

	stmts, err := NewParser(src).Parse()

	assert.NoError(err)
	assert.Equal([]Statement{
		{NewAssignmentStmt("x", NewLiteralExpr(Int(10))), 0, 12},
		{NewAssignmentStmt("y", NewBinaryExpr(
			OpAdd,
			NewVariableExpr("x"),
			NewLiteralExpr(Int(1)))), 13, 30},
		{NewPrintStmt(NewVariableExpr("y")), 32, 54},
	}, stmts)
}

func TestParseProgramCarriageReturn(t *testing.T) {
	assert := assert.New(t)

	stmts, err := NewParser("x squanch 1\r\ny squanch 2").Parse()

	assert.NoError(err)
	assert.Equal([]Statement{
		{NewAssignmentStmt("x", NewLiteralExpr(Int(1))), 0, 11},
		{NewAssignmentStmt("y", NewLiteralExpr(Int(2))), 13, 24},
	}, stmts)
}

func TestParseProgramLeadingAndTrailingBlank(t *testing.T) {
	assert := assert.New(t)

	stmts, err := NewParser("\n\n  x squanch 1  \n\n").Parse()

	assert.NoError(err)
	assert.Equal([]Statement{
		{NewAssignmentStmt("x", NewLiteralExpr(Int(1))), 4, 15},
	}, stmts)
}

func TestParseProgramEmptyRejected(t *testing.T) {
	assert := assert.New(t)

	_, err := NewParser("").Parse()
	assert.IsType(&ParseError{}, err)

	_, err = NewParser("   \n\t\n").Parse()
	assert.IsType(&ParseError{}, err)
}

// Malformed input fails with a located error; it never silently truncates
// the program.
func TestParseProgramErrors(t *testing.T) {
	assert := assert.New(t)

	// unmatched ":<"
	src := "if rick :< return 1"
	_, err := NewParser(src).Parse()
	assert.IsType(&ParseError{}, err)
	assert.Equal(len([]rune(src)), err.(*ParseError).Offset)

	// dangling operator
	_, err = NewParser("x squanch (1 +").Parse()
	assert.IsType(&ParseError{}, err)

	// trailing junk after a valid statement
	_, err = NewParser("x squanch 1 ???").Parse()
	assert.IsType(&ParseError{}, err)

	// out-of-range literal aborts the whole parse
	_, err = NewParser("x squanch 99999999999999999999").Parse()
	assert.IsType(&NumberError{}, err)
	assert.Equal(10, err.(*NumberError).Offset)

	// malformed escape aborts the whole parse
	_, err = NewParser("x squanch \"a\\qb\"").Parse()
	assert.IsType(&EscapeError{}, err)
	assert.Equal(12, err.(*EscapeError).Offset)
}

func TestParseParams(t *testing.T) {
	testCases := []struct {
		src    string
		params []string
	}{
		{"()", nil},
		{"(a)", []string{"a"}},
		{"(a, b)", []string{"a", "b"}},
		{"(a,b)", []string{"a", "b"}},
		{"( a , b , c )", []string{"a", "b", "c"}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		params, err := NewParser(tc.src).ParseParams()

		assert.NoError(err, tc.src)
		assert.Equal(tc.params, params, tc.src)
	}
}

func TestParseArgs(t *testing.T) {
	assert := assert.New(t)

	args, err := NewParser("()").ParseArgs()
	assert.NoError(err)
	assert.Nil(args)

	args, err = NewParser("(1, (a + b))").ParseArgs()
	assert.NoError(err)
	assert.Equal([]Expr{
		NewLiteralExpr(Int(1)),
		NewBinaryExpr(OpAdd, NewVariableExpr("a"), NewVariableExpr("b")),
	}, args)
}

func TestParseNewline(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(NewParser("\n").ParseNewline())
	assert.NoError(NewParser("\r\n").ParseNewline())
	assert.NoError(NewParser("  \t\n").ParseNewline())

	assert.Error(NewParser("").ParseNewline())
	assert.Error(NewParser("x").ParseNewline())
	assert.Error(NewParser("\n\n").ParseNewline())
}
