package schwift

type Expr interface {
	Accept(visitor ExprVisitor) interface{}
}
type ExprVisitor interface {
	VisitEvalExpr(expr *EvalExpr) interface{}
	VisitBinaryExpr(expr *BinaryExpr) interface{}
	VisitListIndexExpr(expr *ListIndexExpr) interface{}
	VisitCallExpr(expr *CallExpr) interface{}
	VisitLiteralExpr(expr *LiteralExpr) interface{}
	VisitListLengthExpr(expr *ListLengthExpr) interface{}
	VisitVariableExpr(expr *VariableExpr) interface{}
	VisitNotExpr(expr *NotExpr) interface{}
}
type EvalExpr struct {
	Expression Expr
}

func NewEvalExpr(Expression Expr) *EvalExpr {
	return &EvalExpr{Expression}
}
func (expr *EvalExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitEvalExpr(expr)
}

type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func NewBinaryExpr(Op Operator, Left Expr, Right Expr) *BinaryExpr {
	return &BinaryExpr{Op, Left, Right}
}
func (expr *BinaryExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitBinaryExpr(expr)
}

type ListIndexExpr struct {
	Name  string
	Index Expr
}

func NewListIndexExpr(Name string, Index Expr) *ListIndexExpr {
	return &ListIndexExpr{Name, Index}
}
func (expr *ListIndexExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitListIndexExpr(expr)
}

type CallExpr struct {
	Name string
	Args []Expr
}

func NewCallExpr(Name string, Args []Expr) *CallExpr {
	return &CallExpr{Name, Args}
}
func (expr *CallExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitCallExpr(expr)
}

type LiteralExpr struct {
	Value Value
}

func NewLiteralExpr(Value Value) *LiteralExpr {
	return &LiteralExpr{Value}
}
func (expr *LiteralExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitLiteralExpr(expr)
}

type ListLengthExpr struct {
	Name string
}

func NewListLengthExpr(Name string) *ListLengthExpr {
	return &ListLengthExpr{Name}
}
func (expr *ListLengthExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitListLengthExpr(expr)
}

type VariableExpr struct {
	Name string
}

func NewVariableExpr(Name string) *VariableExpr {
	return &VariableExpr{Name}
}
func (expr *VariableExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitVariableExpr(expr)
}

type NotExpr struct {
	Expression Expr
}

func NewNotExpr(Expression Expr) *NotExpr {
	return &NotExpr{Expression}
}
func (expr *NotExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitNotExpr(expr)
}
