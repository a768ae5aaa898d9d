package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("parsing a pass", func(t *testing.T) {
		m, err := ParseMove("-")
		require.NoError(t, err)
		require.True(t, m.IsPass())
		require.Equal(t, "-", m.String())
	})

	t.Run("parsing an extend", func(t *testing.T) {
		m, err := ParseMove("a1-b2")
		require.NoError(t, err)
		require.False(t, m.IsPass())
		require.True(t, m.IsExtend())
		require.False(t, m.IsJump())
		require.Equal(t, "a1-b2", m.String())
	})

	t.Run("parsing a jump", func(t *testing.T) {
		m, err := ParseMove("a1-c3")
		require.NoError(t, err)
		require.True(t, m.IsJump())
		require.False(t, m.IsExtend())
		require.Equal(t, "a1-c3", m.String())
	})

	t.Run("round-tripping every legal placement and the pass", func(t *testing.T) {
		for c0 := byte('a'); c0 <= 'g'; c0++ {
			for r0 := byte('1'); r0 <= '7'; r0++ {
				for dc := -2; dc <= 2; dc++ {
					for dr := -2; dr <= 2; dr++ {
						m := NewMove(c0, r0, byte(int(c0)+dc), byte(int(r0)+dr))
						if !m.IsExtend() && !m.IsJump() {
							continue
						}
						if !inside(m.Col1(), m.Row1()) {
							continue
						}
						parsed, err := ParseMove(m.String())
						require.NoError(t, err, "move %s should parse", m)
						require.Equal(t, m, parsed, "move %s should round-trip", m)
					}
				}
			}
		}
		parsed, err := ParseMove(Pass().String())
		require.NoError(t, err)
		require.Equal(t, Pass(), parsed)
	})

	t.Run("rejecting malformed input", func(t *testing.T) {
		for _, s := range []string{"", "a1", "a1b2", "a1-b", "a1_b2", "a1-b23"} {
			_, err := ParseMove(s)
			require.Error(t, err, "input %q should not parse", s)
		}
	})

	t.Run("rejecting out-of-range squares", func(t *testing.T) {
		for _, s := range []string{"h1-g2", "a0-b1", "a8-b7", "a1-h2"} {
			_, err := ParseMove(s)
			require.Error(t, err, "input %q should not parse", s)
		}
	})
}

func TestMoveClassification(t *testing.T) {
	t.Run("Chebyshev distance 1 in all directions is an extend", func(t *testing.T) {
		for dc := -1; dc <= 1; dc++ {
			for dr := -1; dr <= 1; dr++ {
				if dc == 0 && dr == 0 {
					continue
				}
				m := NewMove('d', '4', byte('d'+dc), byte('4'+dr))
				require.True(t, m.IsExtend(), "move %s should be an extend", m)
			}
		}
	})

	t.Run("Chebyshev distance 2 in all directions is a jump", func(t *testing.T) {
		count := 0
		for dc := -2; dc <= 2; dc++ {
			for dr := -2; dr <= 2; dr++ {
				if abs(dc) != 2 && abs(dr) != 2 {
					continue
				}
				m := NewMove('d', '4', byte('d'+dc), byte('4'+dr))
				require.True(t, m.IsJump(), "move %s should be a jump", m)
				count++
			}
		}
		require.Equal(t, 16, count, "there should be 16 jump offsets")
	})

	t.Run("distance 0 is neither", func(t *testing.T) {
		m := NewMove('d', '4', 'd', '4')
		require.False(t, m.IsExtend())
		require.False(t, m.IsJump())
	})

	t.Run("a pass is neither extend nor jump", func(t *testing.T) {
		require.False(t, Pass().IsExtend())
		require.False(t, Pass().IsJump())
	})
}
