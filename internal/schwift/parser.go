package schwift

import (
	"strconv"
	"unicode"
)

// Parser recognizes the schwift grammar directly over the source runes.
// There is no separate tokenizer: multi-word keywords such as
// "show me what you got" and order-sensitive operator spellings make the
// grammar scannerless. Each grammar rule is a method; alternatives are tried
// in order and a failed alternative restores the position before the next
// one runs.
//
// A Parser is single-use. Parses over separate buffers share no state and
// may run concurrently.
type Parser struct {
	source []rune
	pos    int

	// Deepest-failure tracking for diagnostics: the furthest offset any
	// alternative reached, with the alternatives expected there.
	furthest int
	expected []string

	// Results of the expression rule keyed by start offset, so backtracking
	// through nested parentheses never re-derives the same sub-expression.
	memo map[int]exprMemo

	// A literal-construction failure (NumberError, EscapeError) is fatal and
	// stops the parse instead of being retried as another alternative.
	fatal error
}

type exprMemo struct {
	expr Expr
	next int
	ok   bool
}

// NewParser creates a parser over the given source text.
func NewParser(source string) *Parser {
	p := new(Parser)
	p.source = []rune(source)
	p.memo = make(map[int]exprMemo)
	return p
}

// Parse parses a whole program: one or more statements, each tagged with its
// source span. An empty program is a parse error.
func (p *Parser) Parse() ([]Statement, error) {
	stmts, ok := p.file()
	if !ok {
		return nil, p.takeErr()
	}
	return stmts, nil
}

// ParseStatement parses exactly one statement, allowing surrounding
// whitespace.
func (p *Parser) ParseStatement() (Statement, error) {
	p.skipBlank()
	stmt, ok := p.statement()
	if !ok {
		return Statement{}, p.takeErr()
	}
	if err := p.finish(); err != nil {
		return Statement{}, err
	}
	return stmt, nil
}

// ParseExpression parses exactly one expression, allowing surrounding
// whitespace.
func (p *Parser) ParseExpression() (Expr, error) {
	p.skipBlank()
	expr, ok := p.expression()
	if !ok {
		return nil, p.takeErr()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseValue parses exactly one literal value.
func (p *Parser) ParseValue() (Value, error) {
	p.skipBlank()
	v, ok := p.value()
	if !ok {
		return nil, p.takeErr()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseOperator parses exactly one binary operator spelling.
func (p *Parser) ParseOperator() (Operator, error) {
	p.skipBlank()
	op, ok := p.operator()
	if !ok {
		return 0, p.takeErr()
	}
	if err := p.finish(); err != nil {
		return 0, err
	}
	return op, nil
}

// ParseBlock parses exactly one ":< ... >:" block.
func (p *Parser) ParseBlock() (Block, error) {
	p.skipBlank()
	block, ok := p.block()
	if !ok {
		return nil, p.takeErr()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return block, nil
}

// ParseParams parses exactly one parenthesized parameter-name list.
func (p *Parser) ParseParams() ([]string, error) {
	p.skipBlank()
	params, ok := p.params()
	if !ok {
		return nil, p.takeErr()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return params, nil
}

// ParseArgs parses exactly one parenthesized argument list.
func (p *Parser) ParseArgs() ([]Expr, error) {
	p.skipBlank()
	args, ok := p.args()
	if !ok {
		return nil, p.takeErr()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return args, nil
}

// ParseNewline parses exactly one newline: a line feed or carriage
// return-line feed, optionally preceded by horizontal whitespace.
func (p *Parser) ParseNewline() error {
	if !p.newline() {
		p.fail("newline")
		return p.takeErr()
	}
	if !p.eof() {
		p.fail("end of input")
		return p.takeErr()
	}
	return nil
}

// file --> line+ ws?
func (p *Parser) file() ([]Statement, bool) {
	var stmts []Statement
	for {
		p.skipBlank()
		stmt, ok := p.statement()
		if !ok {
			if p.fatal != nil {
				return nil, false
			}
			break
		}
		stmts = append(stmts, stmt)
	}
	p.skipBlank()
	if !p.eof() {
		p.fail("end of input")
		return nil, false
	}
	if len(stmts) == 0 {
		return nil, false
	}
	return stmts, true
}

// statement parses one statement and tags it with the span it consumed.
func (p *Parser) statement() (Statement, bool) {
	start := p.pos
	kind, ok := p.statementKind()
	if !ok {
		return Statement{}, false
	}
	return Statement{kind, start, p.pos}, true
}

// statementKind tries the statement alternatives in priority order. Most
// alternatives share an identifier prefix, so the order is load-bearing:
// specific multi-token suffix forms come before generic single-token forms,
// and "show me what you got!" comes before "show me what you got".
func (p *Parser) statementKind() (StmtKind, bool) {
	alts := []func() (StmtKind, bool){
		p.listDelete,
		p.listNew,
		p.listAppend,
		p.listAssign,
		p.function,
		p.delete,
		p.assignment,
		p.printNoNl,
		p.print,
		p.ifElse,
		p.ifNoElse,
		p.while,
		p.input,
		p.catchStmt,
		p.call,
		p.returnStmt,
		p.dylibLoad,
	}
	for _, alt := range alts {
		save := p.pos
		if kind, ok := alt(); ok {
			return kind, true
		}
		if p.fatal != nil {
			return nil, false
		}
		p.pos = save
	}
	return nil, false
}

func (p *Parser) listDelete() (StmtKind, bool) {
	if !p.lit("squanch") || !p.space() {
		return nil, false
	}
	name, ok := p.identifier()
	if !ok || !p.lit("[") {
		return nil, false
	}
	p.maybeSpace()
	index, ok := p.expression()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	if !p.lit("]") {
		return nil, false
	}
	return NewListDeleteStmt(name, index), true
}

func (p *Parser) listNew() (StmtKind, bool) {
	name, ok := p.identifier()
	if !ok || !p.space() || !p.lit("on") || !p.space() ||
		!p.lit("a") || !p.space() || !p.lit("cob") {
		return nil, false
	}
	return NewListNewStmt(name), true
}

func (p *Parser) listAppend() (StmtKind, bool) {
	name, ok := p.identifier()
	if !ok || !p.space() || !p.lit("assimilate") || !p.space() {
		return nil, false
	}
	value, ok := p.expression()
	if !ok {
		return nil, false
	}
	return NewListAppendStmt(name, value), true
}

func (p *Parser) listAssign() (StmtKind, bool) {
	name, ok := p.identifier()
	if !ok || !p.lit("[") {
		return nil, false
	}
	p.maybeSpace()
	index, ok := p.expression()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	if !p.lit("]") || !p.space() || !p.lit("squanch") || !p.space() {
		return nil, false
	}
	value, ok := p.expression()
	if !ok {
		return nil, false
	}
	return NewListAssignStmt(name, index, value), true
}

func (p *Parser) function() (StmtKind, bool) {
	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	params, ok := p.params()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	body, ok := p.block()
	if !ok {
		return nil, false
	}
	return NewFunctionStmt(name, params, body), true
}

func (p *Parser) delete() (StmtKind, bool) {
	if !p.lit("squanch") || !p.space() {
		return nil, false
	}
	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	return NewDeleteStmt(name), true
}

func (p *Parser) assignment() (StmtKind, bool) {
	name, ok := p.identifier()
	if !ok || !p.space() || !p.lit("squanch") || !p.space() {
		return nil, false
	}
	value, ok := p.expression()
	if !ok {
		return nil, false
	}
	return NewAssignmentStmt(name, value), true
}

func (p *Parser) printNoNl() (StmtKind, bool) {
	if !p.showMeWhatYou() || !p.lit("got!") || !p.space() {
		return nil, false
	}
	expr, ok := p.expression()
	if !ok {
		return nil, false
	}
	return NewPrintNoNlStmt(expr), true
}

func (p *Parser) print() (StmtKind, bool) {
	if !p.showMeWhatYou() || !p.lit("got") || !p.space() {
		return nil, false
	}
	expr, ok := p.expression()
	if !ok {
		return nil, false
	}
	return NewPrintStmt(expr), true
}

func (p *Parser) showMeWhatYou() bool {
	return p.lit("show") && p.space() && p.lit("me") && p.space() &&
		p.lit("what") && p.space() && p.lit("you") && p.space()
}

func (p *Parser) ifElse() (StmtKind, bool) {
	if !p.lit("if") || !p.space() {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	then, ok := p.block()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	if !p.lit("else") {
		return nil, false
	}
	p.maybeSpace()
	other, ok := p.block()
	if !ok {
		return nil, false
	}
	return NewIfStmt(cond, then, other), true
}

func (p *Parser) ifNoElse() (StmtKind, bool) {
	if !p.lit("if") || !p.space() {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	then, ok := p.block()
	if !ok {
		return nil, false
	}
	return NewIfStmt(cond, then, nil), true
}

func (p *Parser) while() (StmtKind, bool) {
	if !p.lit("while") || !p.space() {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	body, ok := p.block()
	if !ok {
		return nil, false
	}
	return NewWhileStmt(cond, body), true
}

func (p *Parser) input() (StmtKind, bool) {
	if !p.lit("portal") || !p.space() || !p.lit("gun") || !p.space() {
		return nil, false
	}
	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	return NewInputStmt(name), true
}

func (p *Parser) catchStmt() (StmtKind, bool) {
	if !p.lit("normal") || !p.space() || !p.lit("plan") {
		return nil, false
	}
	p.maybeSpace()
	try, ok := p.block()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	if !p.lit("plan") || !p.space() || !p.lit("for") || !p.space() ||
		!p.lit("failure") {
		return nil, false
	}
	p.maybeSpace()
	handler, ok := p.block()
	if !ok {
		return nil, false
	}
	return NewCatchStmt(try, handler), true
}

func (p *Parser) call() (StmtKind, bool) {
	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	args, ok := p.args()
	if !ok {
		return nil, false
	}
	return NewCallStmt(name, args), true
}

func (p *Parser) returnStmt() (StmtKind, bool) {
	if !p.lit("return") || !p.space() {
		return nil, false
	}
	expr, ok := p.expression()
	if !ok {
		return nil, false
	}
	return NewReturnStmt(expr), true
}

func (p *Parser) dylibLoad() (StmtKind, bool) {
	if !p.lit("microverse") || !p.space() {
		return nil, false
	}
	path, ok := p.stringLit()
	if !ok {
		return nil, false
	}
	p.maybeSpace()
	body, ok := p.block()
	if !ok {
		return nil, false
	}
	return NewDylibLoadStmt(string(path), body), true
}

// block --> ":<" blank* line* blank* ">:"
func (p *Parser) block() (Block, bool) {
	save := p.pos
	if !p.lit(":<") {
		return nil, false
	}
	// Block stays non-nil when empty so an empty else branch remains
	// distinguishable from a missing one.
	stmts := Block{}
	for {
		p.skipBlank()
		stmt, ok := p.statement()
		if !ok {
			if p.fatal != nil {
				return nil, false
			}
			break
		}
		stmts = append(stmts, stmt)
	}
	p.skipBlank()
	if !p.lit(">:") {
		p.pos = save
		return nil, false
	}
	return stmts, true
}

// expression memoizes the result of expressionAlts per start offset, so
// backtracking across the "( expr OP expr )" and "( expr )" alternatives
// stays linear on deeply nested input.
func (p *Parser) expression() (Expr, bool) {
	if m, hit := p.memo[p.pos]; hit {
		if !m.ok {
			return nil, false
		}
		p.pos = m.next
		return m.expr, true
	}
	start := p.pos
	expr, ok := p.expressionAlts()
	if p.fatal == nil {
		p.memo[start] = exprMemo{expr, p.pos, ok}
	}
	return expr, ok
}

func (p *Parser) expressionAlts() (Expr, bool) {
	save := p.pos
	// "{" expr "}" --> forced-evaluation wrapper
	if p.lit("{") {
		p.maybeSpace()
		if inner, ok := p.expression(); ok {
			p.maybeSpace()
			if p.lit("}") {
				return NewEvalExpr(inner), true
			}
		}
		if p.fatal != nil {
			return nil, false
		}
		p.pos = save
	}
	// "(" expr OP expr ")" --> exactly one operator per parenthesized pair;
	// precedence is explicit via parenthesization.
	if p.lit("(") {
		p.maybeSpace()
		if left, ok := p.expression(); ok && p.space() {
			if op, ok := p.operator(); ok && p.space() {
				if right, ok := p.expression(); ok {
					p.maybeSpace()
					if p.lit(")") {
						return NewBinaryExpr(op, left, right), true
					}
				}
			}
		}
		if p.fatal != nil {
			return nil, false
		}
		p.pos = save
	}
	// "(" expr ")" --> unwrapped sub-expression, no grouping node
	if p.lit("(") {
		p.maybeSpace()
		if inner, ok := p.expression(); ok {
			p.maybeSpace()
			if p.lit(")") {
				return inner, true
			}
		}
		if p.fatal != nil {
			return nil, false
		}
		p.pos = save
	}
	return p.expression1()
}

// expression1 holds the base forms. Order matters twice: value comes before
// the identifier forms so "rick"/"morty" stay booleans, and list length
// comes before the plain variable or it would be unreachable.
func (p *Parser) expression1() (Expr, bool) {
	save := p.pos
	// IDENT "[" expr "]"
	if name, ok := p.identifier(); ok {
		if p.lit("[") {
			p.maybeSpace()
			if index, ok := p.expression(); ok {
				p.maybeSpace()
				if p.lit("]") {
					return NewListIndexExpr(name, index), true
				}
			}
			if p.fatal != nil {
				return nil, false
			}
		}
		p.pos = save
	}
	// IDENT args
	if name, ok := p.identifier(); ok {
		if args, ok := p.args(); ok {
			return NewCallExpr(name, args), true
		}
		if p.fatal != nil {
			return nil, false
		}
		p.pos = save
	}
	// value
	if v, ok := p.value(); ok {
		return NewLiteralExpr(v), true
	}
	if p.fatal != nil {
		return nil, false
	}
	p.pos = save
	// IDENT "squanch" --> list length
	if name, ok := p.identifier(); ok {
		if p.space() && p.lit("squanch") {
			return NewListLengthExpr(name), true
		}
		p.pos = save
	}
	// IDENT
	if name, ok := p.identifier(); ok {
		return NewVariableExpr(name), true
	}
	// "!" expr
	if p.lit("!") {
		if inner, ok := p.expression(); ok {
			return NewNotExpr(inner), true
		}
		if p.fatal != nil {
			return nil, false
		}
		p.pos = save
	}
	return nil, false
}

// value tries float before int, or "3.14" would mis-consume as Int 3
// leaving ".14" behind. The boolean keywords sit here rather than in the
// identifier rule, so ordering at each call site decides keyword-vs-name.
func (p *Parser) value() (Value, bool) {
	if v, ok := p.floatLit(); ok {
		return v, true
	}
	if p.fatal != nil {
		return nil, false
	}
	if v, ok := p.intLit(); ok {
		return v, true
	}
	if p.fatal != nil {
		return nil, false
	}
	if v, ok := p.stringLit(); ok {
		return v, true
	}
	if p.fatal != nil {
		return nil, false
	}
	if p.lit("rick") {
		return Bool(true), true
	}
	if p.lit("morty") {
		return Bool(false), true
	}
	return nil, false
}

// FLOAT --> DIGIT+ "." DIGIT+
func (p *Parser) floatLit() (Value, bool) {
	save := p.pos
	if !p.digits() || !p.lit(".") || !p.digits() {
		p.pos = save
		return nil, false
	}
	text := string(p.source[save:p.pos])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.fatal = NewNumberError(save, text)
		return nil, false
	}
	return Float(f), true
}

// INT --> "-"? DIGIT+
func (p *Parser) intLit() (Value, bool) {
	save := p.pos
	p.match("-")
	if !p.digits() {
		p.pos = save
		return nil, false
	}
	text := string(p.source[save:p.pos])
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.fatal = NewNumberError(save, text)
		return nil, false
	}
	return Int(i), true
}

// STRING --> '"' [^"]* '"', with the raw span run through the unescaper.
func (p *Parser) stringLit() (Str, bool) {
	save := p.pos
	if !p.lit("\"") {
		return "", false
	}
	start := p.pos
	for !p.eof() && p.peek() != '"' {
		p.pos++
	}
	if p.eof() {
		p.fail("closing '\"'")
		p.pos = save
		return "", false
	}
	raw := p.source[start:p.pos]
	p.pos++
	decoded, bad := unescape(raw)
	if bad >= 0 {
		seq := `\`
		if bad+1 < len(raw) {
			seq += string(raw[bad+1])
		}
		p.fatal = NewEscapeError(start+bad, seq)
		return "", false
	}
	return Str(decoded), true
}

func (p *Parser) digits() bool {
	if !isDigit(p.peek()) {
		p.fail("digit")
		return false
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	return true
}

// operator matches against the spelling table in order; the table places
// "moresquanch"/"lesssquanch" before "more"/"less".
func (p *Parser) operator() (Operator, bool) {
	for _, entry := range operatorTable {
		if p.match(entry.text) {
			return entry.op, true
		}
	}
	p.fail("operator")
	return 0, false
}

// identifier --> ( LETTER | "_" ) ( LETTER | DIGIT | "_" )*. It performs no
// keyword exclusion; call-site ordering decides keyword-vs-identifier.
func (p *Parser) identifier() (string, bool) {
	if !isBeginIdent(p.peek()) {
		p.fail("identifier")
		return "", false
	}
	start := p.pos
	p.pos++
	for isIdent(p.peek()) {
		p.pos++
	}
	return string(p.source[start:p.pos]), true
}

// params --> "(" ( IDENT ( "," IDENT )* )? ")", attached directly to the
// preceding identifier.
func (p *Parser) params() ([]string, bool) {
	save := p.pos
	if !p.lit("(") {
		return nil, false
	}
	p.maybeSpace()
	var params []string
	if name, ok := p.identifier(); ok {
		params = append(params, name)
		for {
			rest := p.pos
			p.maybeSpace()
			if !p.match(",") {
				p.pos = rest
				break
			}
			p.maybeSpace()
			name, ok := p.identifier()
			if !ok {
				p.pos = rest
				break
			}
			params = append(params, name)
		}
	}
	p.maybeSpace()
	if !p.lit(")") {
		p.pos = save
		return nil, false
	}
	return params, true
}

// args --> "(" ( expr ( "," expr )* )? ")"
func (p *Parser) args() ([]Expr, bool) {
	save := p.pos
	if !p.lit("(") {
		return nil, false
	}
	p.maybeSpace()
	var args []Expr
	if expr, ok := p.expression(); ok {
		args = append(args, expr)
		for {
			rest := p.pos
			p.maybeSpace()
			if !p.match(",") {
				p.pos = rest
				break
			}
			p.maybeSpace()
			expr, ok := p.expression()
			if !ok {
				if p.fatal != nil {
					return nil, false
				}
				p.pos = rest
				break
			}
			args = append(args, expr)
		}
	} else if p.fatal != nil {
		return nil, false
	}
	p.maybeSpace()
	if !p.lit(")") {
		p.pos = save
		return nil, false
	}
	return args, true
}

// newline --> hws? ( "\r\n" | "\n" )
func (p *Parser) newline() bool {
	save := p.pos
	p.maybeSpace()
	if p.match("\r\n") || p.match("\n") {
		return true
	}
	p.pos = save
	return false
}

// skipBlank consumes blank lines and horizontal whitespace.
func (p *Parser) skipBlank() {
	for {
		p.maybeSpace()
		if !p.newline() {
			return
		}
	}
}

// space consumes one or more horizontal whitespace runes. Required spacing
// after word keywords is load-bearing: with optional spacing, "squanchy"
// would mis-commit to the "squanch" alternatives.
func (p *Parser) space() bool {
	if !isHws(p.peek()) {
		p.fail("whitespace")
		return false
	}
	for isHws(p.peek()) {
		p.pos++
	}
	return true
}

func (p *Parser) maybeSpace() {
	for isHws(p.peek()) {
		p.pos++
	}
}

// lit matches the exact text at the current position, recording it as an
// expected alternative on failure.
func (p *Parser) lit(text string) bool {
	if p.match(text) {
		return true
	}
	p.fail("'" + text + "'")
	return false
}

// match is lit without failure recording.
func (p *Parser) match(text string) bool {
	save := p.pos
	for _, r := range text {
		if p.eof() || p.source[p.pos] != r {
			p.pos = save
			return false
		}
		p.pos++
	}
	return true
}

// fail records an expected alternative for deepest-failure diagnostics.
func (p *Parser) fail(expected string) {
	if p.pos < p.furthest {
		return
	}
	if p.pos > p.furthest {
		p.furthest = p.pos
		p.expected = p.expected[:0]
	}
	p.expected = append(p.expected, expected)
}

// finish requires the rest of the buffer to be whitespace.
func (p *Parser) finish() error {
	if p.fatal != nil {
		return p.fatal
	}
	p.skipBlank()
	if !p.eof() {
		p.fail("end of input")
		return p.takeErr()
	}
	return nil
}

// takeErr builds the error for a failed parse: the fatal literal error when
// one occurred, otherwise a ParseError at the furthest offset reached.
func (p *Parser) takeErr() error {
	if p.fatal != nil {
		return p.fatal
	}
	return NewParseError(p.furthest, dedup(p.expected))
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.source)
}

func (p *Parser) peek() rune {
	if p.eof() {
		return '\x00'
	}
	return p.source[p.pos]
}

func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func isHws(r rune) bool {
	return r == ' ' || r == '\t'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
