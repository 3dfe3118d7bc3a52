package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestIntRange_Bounds(t *testing.T) {
	src := NewSeeded(1)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := IntRange(src, 91, 120)
		if v < 91 || v > 120 {
			t.Fatalf("value %d out of range", v)
		}
		seen[v] = true
	}
	assert.Len(t, seen, 30)
	assert.Equal(t, 7, IntRange(src, 7, 7))
}

func TestPick(t *testing.T) {
	src := NewSeeded(3)
	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, Pick(src, items))
	}
}
