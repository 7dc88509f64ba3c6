package valuesource

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/goliatone/go-apispec/pkg/resolve"
)

// Expr evaluates named expressions against a fixed environment, letting test
// contexts derive example values instead of hard-coding them.
type Expr struct {
	programs map[string]*vm.Program
	env      map[string]any
}

var _ resolve.ValueSource = (*Expr)(nil)

// NewExpr compiles each expression eagerly so authoring mistakes surface at
// construction rather than mid-resolution.
func NewExpr(expressions map[string]string, env map[string]any) (*Expr, error) {
	if env == nil {
		env = map[string]any{}
	}
	programs := make(map[string]*vm.Program, len(expressions))
	for name, source := range expressions {
		program, err := expr.Compile(source, expr.Env(env))
		if err != nil {
			return nil, fmt.Errorf("valuesource: compile expression %q: %w", name, err)
		}
		programs[name] = program
	}
	return &Expr{programs: programs, env: env}, nil
}

// Has reports whether an expression named name was registered.
func (e *Expr) Has(name string) bool {
	_, ok := e.programs[name]
	return ok
}

// Value evaluates the expression registered under name.
func (e *Expr) Value(name string) (any, error) {
	program, ok := e.programs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", resolve.ErrUnresolvedValue, name)
	}
	result, err := expr.Run(program, e.env)
	if err != nil {
		return nil, fmt.Errorf("valuesource: evaluate %q: %w", name, err)
	}
	return result, nil
}
