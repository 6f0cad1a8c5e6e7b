package schwift

import (
	"fmt"
	"strings"
)

// Printer re-serializes an AST to its canonical textual form. Parsing the
// output again yields an AST equal to the original, up to source spans.
type Printer struct{}

// PrintProgram prints a whole program, one statement per line.
func (printer *Printer) PrintProgram(stmts []Statement) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = printer.PrintStatement(stmt)
	}
	return strings.Join(lines, "\n")
}

func (printer *Printer) PrintStatement(stmt Statement) string {
	s, _ := stmt.Kind.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *Printer) PrintExpr(expr Expr) string {
	return fmt.Sprintf("%v", expr.Accept(printer))
}

func (printer *Printer) PrintBlock(block Block) string {
	if len(block) == 0 {
		return ":< >:"
	}
	lines := make([]string, len(block))
	for i, stmt := range block {
		lines[i] = printer.PrintStatement(stmt)
	}
	return ":<\n" + strings.Join(lines, "\n") + "\n>:"
}

func (printer *Printer) printArgs(args []Expr) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = printer.PrintExpr(arg)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (printer *Printer) VisitEvalExpr(expr *EvalExpr) interface{} {
	return "{ " + printer.PrintExpr(expr.Expression) + " }"
}

func (printer *Printer) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	return fmt.Sprintf(
		"(%s %s %s)",
		printer.PrintExpr(expr.Left),
		expr.Op,
		printer.PrintExpr(expr.Right),
	)
}

func (printer *Printer) VisitListIndexExpr(expr *ListIndexExpr) interface{} {
	return expr.Name + "[" + printer.PrintExpr(expr.Index) + "]"
}

func (printer *Printer) VisitCallExpr(expr *CallExpr) interface{} {
	return expr.Name + printer.printArgs(expr.Args)
}

func (printer *Printer) VisitLiteralExpr(expr *LiteralExpr) interface{} {
	return expr.Value.String()
}

func (printer *Printer) VisitListLengthExpr(expr *ListLengthExpr) interface{} {
	return expr.Name + " squanch"
}

func (printer *Printer) VisitVariableExpr(expr *VariableExpr) interface{} {
	return expr.Name
}

func (printer *Printer) VisitNotExpr(expr *NotExpr) interface{} {
	return "!" + printer.PrintExpr(expr.Expression)
}

func (printer *Printer) VisitListDeleteStmt(stmt *ListDeleteStmt) (interface{}, error) {
	return "squanch " + stmt.Name + "[" + printer.PrintExpr(stmt.Index) + "]", nil
}

func (printer *Printer) VisitListNewStmt(stmt *ListNewStmt) (interface{}, error) {
	return stmt.Name + " on a cob", nil
}

func (printer *Printer) VisitListAppendStmt(stmt *ListAppendStmt) (interface{}, error) {
	return stmt.Name + " assimilate " + printer.PrintExpr(stmt.Value), nil
}

func (printer *Printer) VisitListAssignStmt(stmt *ListAssignStmt) (interface{}, error) {
	return stmt.Name +
		"[" + printer.PrintExpr(stmt.Index) + "] squanch " +
		printer.PrintExpr(stmt.Value), nil
}

func (printer *Printer) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	return stmt.Name +
		"(" + strings.Join(stmt.Params, ", ") + ") " +
		printer.PrintBlock(stmt.Body), nil
}

func (printer *Printer) VisitDeleteStmt(stmt *DeleteStmt) (interface{}, error) {
	return "squanch " + stmt.Name, nil
}

func (printer *Printer) VisitAssignmentStmt(stmt *AssignmentStmt) (interface{}, error) {
	return stmt.Name + " squanch " + printer.PrintExpr(stmt.Value), nil
}

func (printer *Printer) VisitPrintNoNlStmt(stmt *PrintNoNlStmt) (interface{}, error) {
	return "show me what you got! " + printer.PrintExpr(stmt.Expression), nil
}

func (printer *Printer) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return "show me what you got " + printer.PrintExpr(stmt.Expression), nil
}

func (printer *Printer) VisitInputStmt(stmt *InputStmt) (interface{}, error) {
	return "portal gun " + stmt.Name, nil
}

func (printer *Printer) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	s := "if " + printer.PrintExpr(stmt.Cond) + " " + printer.PrintBlock(stmt.Then)
	if stmt.Else != nil {
		s += " else " + printer.PrintBlock(stmt.Else)
	}
	return s, nil
}

func (printer *Printer) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return "while " + printer.PrintExpr(stmt.Cond) + " " +
		printer.PrintBlock(stmt.Body), nil
}

func (printer *Printer) VisitCatchStmt(stmt *CatchStmt) (interface{}, error) {
	return "normal plan " + printer.PrintBlock(stmt.Try) +
		" plan for failure " + printer.PrintBlock(stmt.Handler), nil
}

func (printer *Printer) VisitCallStmt(stmt *CallStmt) (interface{}, error) {
	return stmt.Name + printer.printArgs(stmt.Args), nil
}

func (printer *Printer) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	return "return " + printer.PrintExpr(stmt.Expression), nil
}

func (printer *Printer) VisitDylibLoadStmt(stmt *DylibLoadStmt) (interface{}, error) {
	return "microverse " + Str(stmt.Path).String() + " " +
		printer.PrintBlock(stmt.Body), nil
}
