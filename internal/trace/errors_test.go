package trace

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Kinds(t *testing.T) {
	arg := InvalidArgument("graph.Random", "vertex count %d", 0)
	in := InvalidInput("traversal.BFS", "start vertex %q not in graph", "Z")

	assert.True(t, IsInvalidArgument(arg))
	assert.False(t, IsInvalidInput(arg))
	assert.True(t, IsInvalidInput(in))
	assert.False(t, IsInvalidArgument(in))

	assert.Equal(t, "graph.Random: invalid argument: vertex count 0", arg.Error())
	assert.Equal(t, `traversal.BFS: invalid input: start vertex "Z" not in graph`, in.Error())
}

func TestError_WrappedChain(t *testing.T) {
	err := fmt.Errorf("loading preset: %w", InvalidArgument("config.Validate", "speed must be positive"))

	assert.True(t, errors.Is(err, ErrInvalidArgument))

	var te *Error
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "config.Validate", te.Op)
}

func TestError_NoDetail(t *testing.T) {
	err := &Error{Op: "sorting.Quick", Kind: ErrInvalidInput}
	assert.Equal(t, "sorting.Quick: invalid input", err.Error())
}
