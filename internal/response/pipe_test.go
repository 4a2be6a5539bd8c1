package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipe_RunAppliesStagesInOrder(t *testing.T) {
	pipe := NewPipe(
		func(s string) string { return s + "-a" },
		func(s string) string { return s + "-b" },
	)

	assert.Equal(t, "x-a-b", pipe.Run("x"))
}

func TestPipe_EmptyPipeIsIdentity(t *testing.T) {
	pipe := NewPipe[int]()

	assert.Equal(t, 42, pipe.Run(42))
}

func TestPipe_UseChains(t *testing.T) {
	pipe := NewPipe[string]().
		Use(strings.TrimSpace).
		Use(strings.ToUpper)

	assert.Equal(t, "HELLO", pipe.Run("  hello "))
}

func TestPipe_RunThen(t *testing.T) {
	var got int
	NewPipe(func(n int) int { return n * 2 }).RunThen(21, func(n int) { got = n })

	assert.Equal(t, 42, got)
}
