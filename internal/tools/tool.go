// Package tools defines the capability contract and the registry the
// orchestrator selects from. The orchestrator only ever sees
// invoke(query) -> text; side effects, idempotence and I/O are entirely
// tool-defined.
package tools

import "context"

// Tool is one discrete capability the assistant can invoke
type Tool interface {
	Name() string
	Invoke(ctx context.Context, query string) (string, error)
}

// FuncTool adapts a plain function into a Tool
type FuncTool struct {
	name string
	fn   func(ctx context.Context, query string) (string, error)
}

// NewFuncTool wraps fn as a named Tool
func NewFuncTool(name string, fn func(ctx context.Context, query string) (string, error)) *FuncTool {
	return &FuncTool{name: name, fn: fn}
}

// Name returns the tool name
func (t *FuncTool) Name() string { return t.name }

// Invoke runs the wrapped function
func (t *FuncTool) Invoke(ctx context.Context, query string) (string, error) {
	return t.fn(ctx, query)
}
