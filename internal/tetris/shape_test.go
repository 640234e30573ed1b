package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeRotateClockwise(t *testing.T) {
	tests := []struct {
		name string
		in   Shape
		want string
	}{
		{"T points right", T.Shape(), "#.\n##\n#."},
		{"I stands up", I.Shape(), "#\n#\n#\n#"},
		{"J", J.Shape(), "##\n#.\n#."},
		{"L", L.Shape(), "#.\n#.\n##"},
		{"S", S.Shape(), "#.\n##\n.#"},
		{"O is a fixed point", O.Shape(), "##\n##"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Rotate().String())
		})
	}
}

func TestShapeRotateDoesNotMutate(t *testing.T) {
	s := T.Shape()
	before := s.Clone()

	_ = s.Rotate()

	assert.True(t, s.Equal(before), "Rotate() changed its receiver")
}

func TestShapeFourRotationsIsIdentity(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := k.Shape()
			r := s.Rotate().Rotate().Rotate().Rotate()
			assert.True(t, s.Equal(r), "%s after four turns:\n%s", k, r)
		})
	}
}

func TestKindShapeIsFreshCopy(t *testing.T) {
	s := L.Shape()
	s[0][0] = true

	assert.False(t, L.Shape()[0][0], "mutating a returned shape leaked into the kind table")
}

func TestKindShapesHaveFourCells(t *testing.T) {
	for _, k := range Kinds() {
		n := 0
		k.Shape().Cells(func(_, _ int) { n++ })
		assert.Equal(t, 4, n, "kind %s", k)
		assert.NotEqual(t, 0, int(k.Color()), "kind %s has no color", k)
	}
}

func TestKindNames(t *testing.T) {
	var names string
	for _, k := range Kinds() {
		assert.True(t, k.Valid())
		names += k.String()
	}
	assert.Equal(t, "IOTSZJL", names)
	assert.False(t, Empty.Valid())
	assert.Equal(t, ".", Empty.String())
}
