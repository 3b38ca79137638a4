package heightmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// TestCanStep_Ground covers climbing by at most one and free descent.
func TestCanStep_Ground(t *testing.T) {
	g := heightmap.GroundCell
	cases := []struct {
		from, to byte
		want     bool
	}{
		{'c', 'd', true},
		{'c', 'c', true},
		{'c', 'a', true},
		{'z', 'a', true},
		{'a', 'c', false},
		{'c', 'r', false},
		{'c', 't', false},
		{'y', 'z', true},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, heightmap.CanStep(g(tc.from), g(tc.to)), "CanStep(%c, %c)", tc.from, tc.to)
	}
}

// TestCanStep_Asymmetric pins down that the rule is directional.
func TestCanStep_Asymmetric(t *testing.T) {
	a, c := heightmap.GroundCell('a'), heightmap.GroundCell('c')
	assert.True(t, heightmap.CanStep(c, a))
	assert.False(t, heightmap.CanStep(a, c))
}

// TestCanStep_IntoStart is false from every possible origin.
func TestCanStep_IntoStart(t *testing.T) {
	s := heightmap.StartCell()
	assert.False(t, heightmap.CanStep(s, s))
	assert.False(t, heightmap.CanStep(heightmap.EndCell(), s))
	for c := heightmap.Lowest; c <= heightmap.Highest; c++ {
		assert.Falsef(t, heightmap.CanStep(heightmap.GroundCell(c), s), "CanStep(%c, S)", c)
	}
}

// TestCanStep_IntoEnd is true only from 'y' and 'z'.
func TestCanStep_IntoEnd(t *testing.T) {
	e := heightmap.EndCell()
	for c := heightmap.Lowest; c <= heightmap.Highest; c++ {
		want := c == 'y' || c == 'z'
		assert.Equalf(t, want, heightmap.CanStep(heightmap.GroundCell(c), e), "CanStep(%c, E)", c)
	}
	assert.False(t, heightmap.CanStep(heightmap.StartCell(), e))
	assert.True(t, heightmap.CanStep(e, e))
}

// TestCanStep_FromStart climbs as elevation 'a'.
func TestCanStep_FromStart(t *testing.T) {
	s := heightmap.StartCell()
	assert.True(t, heightmap.CanStep(s, heightmap.GroundCell('a')))
	assert.True(t, heightmap.CanStep(s, heightmap.GroundCell('b')))
	assert.False(t, heightmap.CanStep(s, heightmap.GroundCell('c')))
}

// TestCell_Elevation checks the effective elevation and rendering of each kind.
func TestCell_Elevation(t *testing.T) {
	assert.Equal(t, byte('a'), heightmap.StartCell().Elevation())
	assert.Equal(t, byte('z'), heightmap.EndCell().Elevation())
	assert.Equal(t, byte('q'), heightmap.GroundCell('q').Elevation())

	assert.Equal(t, 'S', heightmap.StartCell().Rune())
	assert.Equal(t, 'E', heightmap.EndCell().Rune())
	assert.Equal(t, "Ground(q)", heightmap.GroundCell('q').String())
	assert.Equal(t, "Start", heightmap.StartCell().String())

	assert.True(t, heightmap.IsLowest(heightmap.StartCell()))
	assert.True(t, heightmap.IsLowest(heightmap.GroundCell('a')))
	assert.False(t, heightmap.IsLowest(heightmap.GroundCell('b')))

	assert.Panics(t, func() { heightmap.GroundCell('A') })
}

// TestParseCell maps every accepted character and rejects the rest.
func TestParseCell(t *testing.T) {
	c, err := heightmap.ParseCell('S')
	assert.NoError(t, err)
	assert.Equal(t, heightmap.Start, c.Kind())

	c, err = heightmap.ParseCell('m')
	assert.NoError(t, err)
	assert.Equal(t, heightmap.GroundCell('m'), c)

	for _, r := range []rune{'A', '0', ' ', '{', '`', 'é'} {
		_, err := heightmap.ParseCell(r)
		assert.ErrorIsf(t, err, heightmap.ErrInvalidCharacter, "ParseCell(%q)", r)
	}
}

// TestPosition_Less orders row-major.
func TestPosition_Less(t *testing.T) {
	assert.True(t, heightmap.Pos(0, 5).Less(heightmap.Pos(1, 0)))
	assert.True(t, heightmap.Pos(1, 0).Less(heightmap.Pos(1, 1)))
	assert.False(t, heightmap.Pos(1, 1).Less(heightmap.Pos(1, 1)))
	assert.Equal(t, "(2,3)", heightmap.Pos(2, 3).String())
}
