package wisp

// Expr is a node in the precedence-stratified expression grammar.
type Expr interface {
	// Evaluate computes the expression's value against env, returning a
	// diagnostic on the first operator/identifier failure.
	Evaluate(env *Environment) (Value, *Diagnostic)
	// Span returns the source range covered by this expression,
	// including any operator prefix.
	Span() CodeSpan
}

// Stmt is a node in the statement/declaration grammar. A Program is a
// flat sequence of Stmt (VarDecl is itself a Stmt, matching the fact
// that spec's Declaration production is just Statement|VarDecl|Block).
type Stmt interface {
	// Execute runs the statement against env, returning a diagnostic on
	// the first failure. Block implementations guarantee the scope
	// stack depth is restored on every exit path, including errors.
	Execute(env *Environment) *Diagnostic
}

// Program is the root of the parsed source: an ordered sequence of
// declarations.
type Program struct {
	Decls []Stmt
}

// NumberLit is a numeric literal primary expression.
type NumberLit struct {
	Value float64
	Sp    CodeSpan
}

func (n *NumberLit) Span() CodeSpan { return n.Sp }
func (n *NumberLit) Evaluate(*Environment) (Value, *Diagnostic) {
	return Value{Kind: ValueNumber, Num: n.Value, Span: &n.Sp}, nil
}

// StringLit is a string literal primary expression.
type StringLit struct {
	Value string
	Sp    CodeSpan
}

func (n *StringLit) Span() CodeSpan { return n.Sp }
func (n *StringLit) Evaluate(*Environment) (Value, *Diagnostic) {
	return Value{Kind: ValueString, Str: n.Value, Span: &n.Sp}, nil
}

// BoolLit is a `true`/`false` primary expression.
type BoolLit struct {
	Value bool
	Sp    CodeSpan
}

func (n *BoolLit) Span() CodeSpan { return n.Sp }
func (n *BoolLit) Evaluate(*Environment) (Value, *Diagnostic) {
	return Value{Kind: ValueBoolean, Bool: n.Value, Span: &n.Sp}, nil
}

// NilLit is the `nil` primary expression.
type NilLit struct {
	Sp CodeSpan
}

func (n *NilLit) Span() CodeSpan { return n.Sp }
func (n *NilLit) Evaluate(*Environment) (Value, *Diagnostic) {
	return Value{Kind: ValueNil, Span: &n.Sp}, nil
}

// IdentExpr is an identifier used as a primary expression (a variable
// read).
type IdentExpr struct {
	Name string
	Sp   CodeSpan
}

func (n *IdentExpr) Span() CodeSpan { return n.Sp }

func (n *IdentExpr) Evaluate(env *Environment) (Value, *Diagnostic) {
	if v, ok := env.Lookup(n.Name); ok {
		return v, nil
	}
	return Value{}, identifierNotDefined(n.Name, n.Sp, env)
}

// Grouping is a parenthesized expression; it evaluates to its inner
// expression's value unchanged.
type Grouping struct {
	Inner Expr
	Sp    CodeSpan
}

func (n *Grouping) Span() CodeSpan { return n.Sp }
func (n *Grouping) Evaluate(env *Environment) (Value, *Diagnostic) {
	return n.Inner.Evaluate(env)
}

// Unary is a prefix `-` or `!` expression.
type Unary struct {
	Op      TokenType // TokenMinus or TokenBang
	OpSpan  CodeSpan
	Operand Expr
}

func (n *Unary) Span() CodeSpan { return MergeSpans(n.OpSpan, n.Operand.Span()) }

// Binary is a strict binary expression: *, /, +, -, <, <=, >, >=, ==, !=.
type Binary struct {
	Op     TokenType
	OpSpan CodeSpan
	Left   Expr
	Right  Expr
}

func (n *Binary) Span() CodeSpan { return MergeSpans(n.Left.Span(), n.Right.Span()) }

// Logical is `and`/`or`, which short-circuits and never evaluates its
// right operand unless needed.
type Logical struct {
	Op     TokenType // TokenAnd or TokenOr
	OpSpan CodeSpan
	Left   Expr
	Right  Expr
}

func (n *Logical) Span() CodeSpan { return MergeSpans(n.Left.Span(), n.Right.Span()) }

// ExprStmt evaluates an expression for its side effects and stashes the
// result in the environment's tmp_value slot.
type ExprStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes its display form to
// standard output, followed by a newline.
type PrintStmt struct {
	Expr Expr
}

// VarDecl declares a name in the innermost scope, optionally
// initializing it; an omitted initializer declares the name as Nil.
type VarDecl struct {
	Name string
	// Init is nil for `var x;` with no initializer.
	Init Expr
	Sp   CodeSpan
}

// Assignment evaluates Value and stores it into the nearest scope that
// already declares Name.
type Assignment struct {
	Name     string
	NameSpan CodeSpan
	Value    Expr
}

// Block introduces a fresh inner scope, executes its declarations in
// order, and guarantees the scope is torn down on every exit path.
type Block struct {
	Decls []Stmt
}

// IfStmt is `if cond { then }` with an optional `else { ... }`.
type IfStmt struct {
	Cond CodeSpanner
	Then *Block
	Else *Block // nil when there is no else branch
}

// CodeSpanner is satisfied by Expr; kept distinct from Expr in IfStmt's
// field type only to document that Cond is evaluated, not executed.
type CodeSpanner = Expr

// WhileStmt repeatedly executes Body while Cond evaluates to true.
type WhileStmt struct {
	Cond Expr
	Body *Block
}
