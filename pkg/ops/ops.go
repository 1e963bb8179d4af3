// Package ops provides a registry of named shelf operations and serves them
// over the MCP protocol, so pipeline tooling and agents can extend a built
// shelf without touching its script tree.
package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Handler executes an operation with the given JSON input and returns a
// text result.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Op is an executable shelf operation with a name, description, JSON
// Schema, and handler.
type Op struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// Set orchestrates a collection of operations: registering, listing, and
// calling them by name.
type Set struct {
	ops map[string]Op
}

// NewSet creates an empty Set ready for use.
func NewSet() *Set {
	return &Set{ops: make(map[string]Op)}
}

// Register adds one or more operations. An operation with an existing name
// replaces the previous registration.
func (s *Set) Register(ops ...Op) {
	for _, op := range ops {
		s.ops[op.Name] = op
	}
}

// Get returns an operation by name and whether it was found.
func (s *Set) Get(name string) (Op, bool) {
	op, ok := s.ops[name]
	return op, ok
}

// Ops returns all registered operations sorted by name.
func (s *Set) Ops() []Op {
	result := make([]Op, 0, len(s.ops))
	for _, op := range s.ops {
		result = append(result, op)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result
}

// Call executes a named operation. Unknown names are errors.
func (s *Set) Call(ctx context.Context, name string, input json.RawMessage) (string, error) {
	op, ok := s.ops[name]
	if !ok {
		return "", fmt.Errorf("ops: unknown operation %q", name)
	}

	return op.Handler(ctx, input)
}
