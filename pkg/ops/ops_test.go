package ops

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, input json.RawMessage) (string, error) {
	return string(input), nil
}

func newTestOp(name string) Op {
	return Op{
		Name:        name,
		Description: "Test op: " + name,
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler:     echoHandler,
	}
}

func TestRegisterAndGet(t *testing.T) {
	s := NewSet()
	s.Register(newTestOp("shelf_rebuild"))

	op, ok := s.Get("shelf_rebuild")
	require.True(t, ok)
	assert.Equal(t, "Test op: shelf_rebuild", op.Description)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestRegisterReplaces(t *testing.T) {
	s := NewSet()
	s.Register(newTestOp("a"))
	replacement := newTestOp("a")
	replacement.Description = "replaced"
	s.Register(replacement)

	op, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "replaced", op.Description)
	assert.Len(t, s.Ops(), 1)
}

func TestOpsSorted(t *testing.T) {
	s := NewSet()
	s.Register(newTestOp("b"), newTestOp("a"), newTestOp("c"))

	all := s.Ops()

	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
	assert.Equal(t, "c", all[2].Name)
}

func TestCall(t *testing.T) {
	s := NewSet()
	s.Register(newTestOp("echo"))

	out, err := s.Call(context.Background(), "echo", json.RawMessage(`{"x":1}`))

	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, out)
}

func TestCallUnknown(t *testing.T) {
	s := NewSet()

	_, err := s.Call(context.Background(), "missing", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestCallHandlerError(t *testing.T) {
	s := NewSet()
	s.Register(Op{
		Name: "fail",
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return "", errors.New("op failed")
		},
	})

	_, err := s.Call(context.Background(), "fail", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "op failed")
}
