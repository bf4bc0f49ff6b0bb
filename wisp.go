package wisp

// Version identifies the language/runtime revision.
const Version = "0.1"

// Interpreter owns a single Environment and runs source strings
// against it. It is not safe for concurrent use from multiple
// goroutines: callers that need that must serialize their own access.
type Interpreter struct {
	env *Environment
}

// NewInterpreter returns an Interpreter with a fresh global-only
// Environment.
func NewInterpreter() *Interpreter {
	return &Interpreter{env: NewEnvironment()}
}

// Environment returns the interpreter's Environment, for test
// scaffolding that wants to assert on lookup results after a run and
// for drivers that redirect its Output.
func (in *Interpreter) Environment() *Environment {
	return in.env
}

// InterpretSrcStr runs scan, then parse, then evaluate against source,
// reusing the interpreter's Environment so that successive calls in
// REPL mode see each other's global declarations. On a scan or parse
// failure it returns those diagnostics without attempting evaluation;
// on evaluation failure it returns the runtime diagnostics collected
// across the whole program. On success it returns the last expression
// statement's value, if the program evaluated one.
func (in *Interpreter) InterpretSrcStr(source string) (Value, Diagnostics) {
	tokens, diags := Scan(source)
	if diags != nil {
		return Value{}, diags
	}
	prog, diags := Parse(tokens)
	if diags != nil {
		return Value{}, diags
	}
	in.env.SetTmpValue(NilValue)
	return Interpret(prog, in.env)
}

// Must panics if interpreting source produced diagnostics, returning
// the resulting value otherwise. Intended for tests and examples that
// know their source is well-formed.
func Must(v Value, diags Diagnostics) Value {
	if diags != nil {
		panic(diags)
	}
	return v
}
