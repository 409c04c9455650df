package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/combatsim/internal/game/dice"
)

// TestRollResult_Total verifies Total() == sum(Dice) + Modifier.
func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{
		Expression: "2d6+3",
		Dice:       []int{4, 5},
		Modifier:   3,
	}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{
		Expression: "1d11+4",
		Dice:       []int{7},
		Modifier:   4,
	}
	assert.Equal(t, "1d11+4 → [7] +4 = 11", r.String())
}

func TestRollResult_String_NegativeModifier(t *testing.T) {
	r := dice.RollResult{Expression: "1d6-2", Dice: []int{1}, Modifier: -2}
	assert.Equal(t, "1d6-2 → [1] -2 = -1", r.String())
}

func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		faces := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.IntRange(-1000, 1000).Draw(rt, "modifier")

		r := dice.RollResult{Expression: "Nd20+M", Dice: faces, Modifier: modifier}

		expected := modifier
		for _, d := range faces {
			expected += d
		}
		assert.Equal(rt, expected, r.Total())
	})
}

func TestRollResult_String_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		expr := rapid.StringMatching(`[0-9]+d[0-9]+[+-][0-9]+`).Draw(rt, "expression")
		faces := rapid.SliceOfN(rapid.IntRange(1, 20), 1, 10).Draw(rt, "dice")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")

		r := dice.RollResult{Expression: expr, Dice: faces, Modifier: modifier}

		s := r.String()
		assert.True(rt, strings.HasPrefix(s, expr))
		assert.True(rt, strings.HasSuffix(s, fmt.Sprintf("= %d", r.Total())))
	})
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100), "roll %d diverged", i)
	}
}

func TestSeededSource_Intn_InRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		n := rapid.IntRange(1, 1000).Draw(rt, "n")
		v := dice.NewSeededSource(seed).Intn(n)
		assert.GreaterOrEqual(rt, v, 0)
		assert.Less(rt, v, n)
	})
}

func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestFixedSource_Clamps(t *testing.T) {
	assert.Equal(t, 0, dice.FixedSource(0).Intn(100))
	assert.Equal(t, 0, dice.FixedSource(-5).Intn(100))
	assert.Equal(t, 5, dice.FixedSource(99).Intn(6))
	assert.Equal(t, 42, dice.FixedSource(42).Intn(100))
}

func TestSequenceSource_ReplaysAndWraps(t *testing.T) {
	src := dice.NewSequenceSource(3, 99, 0)
	assert.Equal(t, 3, src.Intn(10))
	assert.Equal(t, 9, src.Intn(10), "values clamp to n-1")
	assert.Equal(t, 0, src.Intn(10))
	assert.Equal(t, 3, src.Intn(10), "sequence wraps around")
}

func TestSequenceSource_PanicsWhenEmpty(t *testing.T) {
	assert.Panics(t, func() { dice.NewSequenceSource() })
}
