// Package celspec provides specifications written as CEL (Common Expression Language) expressions.
//
// An expression is compiled once at construction time and evaluated against a variable named "item":
//
//	spec, err := celspec.NewForAttributes(`item.color == "green" && item.size == "large"`)
//
// Compile errors are returned by the constructors. Evaluation is total: an expression that fails at
// evaluation time (e.g. it accesses an attribute the item does not have) is not satisfied.
package celspec

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

const itemVariable = "item"

var ErrEmptyExpression = errors.New("expression must not be empty")
var ErrNilVariables = errors.New("variables function must not be nil")
var ErrCompilingExpression = errors.New("compiling CEL expression failed")
var ErrExpressionNotBoolean = errors.New("CEL expression does not evaluate to bool")

// Expression is a specification.Specification backed by a compiled CEL program.
type Expression[T any] struct {
	expression string
	program    cel.Program
	variables  func(T) map[string]any
}

// New compiles expression for items of type T. The variables function maps an item to the
// map that is bound to the "item" variable during evaluation.
func New[T any](expression string, variables func(T) map[string]any) (*Expression[T], error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}

	if variables == nil {
		return nil, ErrNilVariables
	}

	env, err := cel.NewEnv(
		cel.Variable(itemVariable, cel.MapType(cel.StringType, cel.AnyType)),
	)
	if err != nil {
		return nil, errors.Join(ErrCompilingExpression, err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Join(ErrCompilingExpression, issues.Err())
	}

	outputType := ast.OutputType()
	if !outputType.IsExactType(cel.BoolType) && !outputType.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: %s", ErrExpressionNotBoolean, outputType)
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, errors.Join(ErrCompilingExpression, err)
	}

	return &Expression[T]{
		expression: expression,
		program:    program,
		variables:  variables,
	}, nil
}

// NewForAttributes compiles expression for specification.Attributed records; "item" holds the record's attributes.
func NewForAttributes(expression string) (*Expression[specification.Attributed], error) {
	return New(expression, func(item specification.Attributed) map[string]any {
		vars := make(map[string]any)

		attributes, ok := specification.AttributesOf(item)
		if !ok {
			return vars
		}

		for key, val := range attributes {
			vars[key] = val
		}

		return vars
	})
}

// Expression returns the source of the compiled expression.
func (e *Expression[T]) Expression() string {
	if e == nil {
		return ""
	}

	return e.expression
}

// IsSatisfied evaluates the expression against item. Evaluation errors and non-bool results are not satisfied,
// and a nil Expression is satisfied by nothing.
func (e *Expression[T]) IsSatisfied(item T) bool {
	if e == nil || e.program == nil {
		return false
	}

	out, _, err := e.program.Eval(map[string]any{
		itemVariable: e.variables(item),
	})
	if err != nil {
		return false
	}

	satisfied, ok := out.Value().(bool)

	return ok && satisfied
}

var _ specification.Specification[specification.Attributed] = (*Expression[specification.Attributed])(nil)
