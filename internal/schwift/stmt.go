package schwift

// Statement pairs a parsed statement kind with the source span it consumed.
// Offsets index the decoded rune buffer; Start <= End and the span covers
// exactly the matched text.
type Statement struct {
	Kind  StmtKind
	Start int
	End   int
}

// Block is a bracketed, ordered statement sequence forming a construct's
// body. Order is execution order.
type Block []Statement

type StmtKind interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitListDeleteStmt(stmt *ListDeleteStmt) (interface{}, error)
	VisitListNewStmt(stmt *ListNewStmt) (interface{}, error)
	VisitListAppendStmt(stmt *ListAppendStmt) (interface{}, error)
	VisitListAssignStmt(stmt *ListAssignStmt) (interface{}, error)
	VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error)
	VisitDeleteStmt(stmt *DeleteStmt) (interface{}, error)
	VisitAssignmentStmt(stmt *AssignmentStmt) (interface{}, error)
	VisitPrintNoNlStmt(stmt *PrintNoNlStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitInputStmt(stmt *InputStmt) (interface{}, error)
	VisitIfStmt(stmt *IfStmt) (interface{}, error)
	VisitWhileStmt(stmt *WhileStmt) (interface{}, error)
	VisitCatchStmt(stmt *CatchStmt) (interface{}, error)
	VisitCallStmt(stmt *CallStmt) (interface{}, error)
	VisitReturnStmt(stmt *ReturnStmt) (interface{}, error)
	VisitDylibLoadStmt(stmt *DylibLoadStmt) (interface{}, error)
}
type ListDeleteStmt struct {
	Name  string
	Index Expr
}

func NewListDeleteStmt(Name string, Index Expr) *ListDeleteStmt {
	return &ListDeleteStmt{Name, Index}
}
func (stmt *ListDeleteStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitListDeleteStmt(stmt)
}

type ListNewStmt struct {
	Name string
}

func NewListNewStmt(Name string) *ListNewStmt {
	return &ListNewStmt{Name}
}
func (stmt *ListNewStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitListNewStmt(stmt)
}

type ListAppendStmt struct {
	Name  string
	Value Expr
}

func NewListAppendStmt(Name string, Value Expr) *ListAppendStmt {
	return &ListAppendStmt{Name, Value}
}
func (stmt *ListAppendStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitListAppendStmt(stmt)
}

type ListAssignStmt struct {
	Name  string
	Index Expr
	Value Expr
}

func NewListAssignStmt(Name string, Index Expr, Value Expr) *ListAssignStmt {
	return &ListAssignStmt{Name, Index, Value}
}
func (stmt *ListAssignStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitListAssignStmt(stmt)
}

type FunctionStmt struct {
	Name   string
	Params []string
	Body   Block
}

func NewFunctionStmt(Name string, Params []string, Body Block) *FunctionStmt {
	return &FunctionStmt{Name, Params, Body}
}
func (stmt *FunctionStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitFunctionStmt(stmt)
}

type DeleteStmt struct {
	Name string
}

func NewDeleteStmt(Name string) *DeleteStmt {
	return &DeleteStmt{Name}
}
func (stmt *DeleteStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitDeleteStmt(stmt)
}

type AssignmentStmt struct {
	Name  string
	Value Expr
}

func NewAssignmentStmt(Name string, Value Expr) *AssignmentStmt {
	return &AssignmentStmt{Name, Value}
}
func (stmt *AssignmentStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitAssignmentStmt(stmt)
}

type PrintNoNlStmt struct {
	Expression Expr
}

func NewPrintNoNlStmt(Expression Expr) *PrintNoNlStmt {
	return &PrintNoNlStmt{Expression}
}
func (stmt *PrintNoNlStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintNoNlStmt(stmt)
}

type PrintStmt struct {
	Expression Expr
}

func NewPrintStmt(Expression Expr) *PrintStmt {
	return &PrintStmt{Expression}
}
func (stmt *PrintStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintStmt(stmt)
}

type InputStmt struct {
	Name string
}

func NewInputStmt(Name string) *InputStmt {
	return &InputStmt{Name}
}
func (stmt *InputStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitInputStmt(stmt)
}

// IfStmt's Else is nil when the statement carries no else branch.
type IfStmt struct {
	Cond Expr
	Then Block
	Else Block
}

func NewIfStmt(Cond Expr, Then Block, Else Block) *IfStmt {
	return &IfStmt{Cond, Then, Else}
}
func (stmt *IfStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitIfStmt(stmt)
}

type WhileStmt struct {
	Cond Expr
	Body Block
}

func NewWhileStmt(Cond Expr, Body Block) *WhileStmt {
	return &WhileStmt{Cond, Body}
}
func (stmt *WhileStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitWhileStmt(stmt)
}

type CatchStmt struct {
	Try     Block
	Handler Block
}

func NewCatchStmt(Try Block, Handler Block) *CatchStmt {
	return &CatchStmt{Try, Handler}
}
func (stmt *CatchStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitCatchStmt(stmt)
}

type CallStmt struct {
	Name string
	Args []Expr
}

func NewCallStmt(Name string, Args []Expr) *CallStmt {
	return &CallStmt{Name, Args}
}
func (stmt *CallStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitCallStmt(stmt)
}

type ReturnStmt struct {
	Expression Expr
}

func NewReturnStmt(Expression Expr) *ReturnStmt {
	return &ReturnStmt{Expression}
}
func (stmt *ReturnStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitReturnStmt(stmt)
}

// DylibLoadStmt hands its path and block to the native-extension loader;
// the binding semantics are owned by the runtime.
type DylibLoadStmt struct {
	Path string
	Body Block
}

func NewDylibLoadStmt(Path string, Body Block) *DylibLoadStmt {
	return &DylibLoadStmt{Path, Body}
}
func (stmt *DylibLoadStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitDylibLoadStmt(stmt)
}
