/*
Package schwift implements the front end for the schwift scripting language.
It parses program source text into an abstract syntax tree of statements and
expressions; every top-level statement carries the exact source span it
consumed so later diagnostics can point back into the source. Executing the
tree is the job of an external evaluator.

The grammar is a prioritized-choice grammar: alternatives are tried in a
fixed order from the same start position, the first full match wins, and a
failed alternative resets the position before the next one is tried. Several
orderings below are load-bearing, not cosmetic.

Grammars

	file      --> line+ ws? ;
	line      --> blank* stmt hws? newline* ;
	block     --> ":<" blank* line* blank* ">:" ;
	newline   --> hws? ( "\r\n" | "\n" ) ;

	stmt      --> "squanch" IDENT "[" expr "]"            (ListDelete)
	            | IDENT "on a cob"                        (ListNew)
	            | IDENT "assimilate" expr                 (ListAppend)
	            | IDENT "[" expr "]" "squanch" expr       (ListAssign)
	            | IDENT params block                      (Function)
	            | "squanch" IDENT                         (Delete)
	            | IDENT "squanch" expr                    (Assignment)
	            | "show me what you got!" expr            (PrintNoNl)
	            | "show me what you got" expr             (Print)
	            | "if" expr block "else" block            (If)
	            | "if" expr block                         (If)
	            | "while" expr block                      (While)
	            | "portal gun" IDENT                      (Input)
	            | "normal plan" block
	              "plan for failure" block                (Catch)
	            | IDENT args                              (FunctionCall)
	            | "return" expr                           (Return)
	            | "microverse" STRING block ;             (DylibLoad)

	expr      --> "{" expr "}"                            (Eval)
	            | "(" expr OP expr ")"                    (OpExp)
	            | "(" expr ")"                            (unwrapped)
	            | expr1 ;
	expr1     --> IDENT "[" expr "]"                      (ListIndex)
	            | IDENT args                              (FunctionCall)
	            | value                                   (Value)
	            | IDENT "squanch"                         (ListLength)
	            | IDENT                                   (Variable)
	            | "!" expr ;                              (Not)

	params    --> "(" ( IDENT ( "," IDENT )* )? ")" ;
	args      --> "(" ( expr ( "," expr )* )? ")" ;

	value     --> FLOAT | INT | STRING | "rick" | "morty" ;
	FLOAT     --> DIGIT+ "." DIGIT+ ;
	INT       --> "-"? DIGIT+ ;
	STRING    --> '"' [^"]* '"' ;
	IDENT     --> ( LETTER | "_" ) ( LETTER | DIGIT | "_" )* ;

Precedence is fully explicit: the grammar has no unparenthesized infix chain,
so every binary expression is a single parenthesized pair. FLOAT is tried
before INT so "3.14" does not mis-consume as the integer 3. The value
alternatives precede the identifier alternative everywhere, so "rick" and
"morty" are always booleans in a value position. The statement alternatives
that share an identifier prefix are ordered most-specific first.
*/
package schwift
