package physics

import (
	"testing"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

func TestCircleVsCircle(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		c := CircleVsCircle(gm.Vec{}, 1, gm.Vec{X: 1.5}, 1)

		require.True(t, c.Colliding)
		require.InDelta(t, 0.5, c.Penetration, 1e-12)
		require.Equal(t, gm.Vec{X: 1}, c.Normal)
		require.Equal(t, gm.Vec{X: 1}, c.Point)
	})

	t.Run("touching is not colliding", func(t *testing.T) {
		c := CircleVsCircle(gm.Vec{}, 1, gm.Vec{X: 2}, 1)
		require.False(t, c.Colliding)
	})

	t.Run("separated", func(t *testing.T) {
		c := CircleVsCircle(gm.Vec{}, 1, gm.Vec{X: 3, Y: 3}, 1)
		require.False(t, c.Colliding)
	})

	t.Run("coincident centers", func(t *testing.T) {
		c := CircleVsCircle(gm.Vec{X: 4, Y: 4}, 1, gm.Vec{X: 4, Y: 4}, 0.5)

		require.True(t, c.Colliding)
		require.InDelta(t, 1.0, c.Normal.Length(), 1e-12)
		require.InDelta(t, 1.5, c.Penetration, 1e-12)
	})

	t.Run("different radii", func(t *testing.T) {
		c := CircleVsCircle(gm.Vec{Y: 2}, 2, gm.Vec{Y: 5}, 2)

		require.True(t, c.Colliding)
		require.Equal(t, gm.Vec{Y: 1}, c.Normal)
		require.InDelta(t, 1.0, c.Penetration, 1e-12)
		require.Equal(t, gm.Vec{Y: 4}, c.Point)
	})
}

func TestCircleVsCircle_Antisymmetric(t *testing.T) {
	centers := []struct {
		A, B   gm.Vec
		rA, rB float64
	}{
		{gm.Vec{}, gm.Vec{X: 1.5}, 1, 1},
		{gm.Vec{X: -1, Y: 2}, gm.Vec{X: 0.3, Y: 1.1}, 0.7, 1.2},
		{gm.Vec{X: 5, Y: 5}, gm.Vec{X: 5.1, Y: 4.2}, 2, 0.1},
		{gm.Vec{}, gm.Vec{X: 4}, 1, 1},
	}

	for _, tc := range centers {
		ab := CircleVsCircle(tc.A, tc.rA, tc.B, tc.rB)
		ba := CircleVsCircle(tc.B, tc.rB, tc.A, tc.rA)

		require.Equal(t, ab.Colliding, ba.Colliding)
		require.InDelta(t, ab.Penetration, ba.Penetration, 1e-12)
		require.InDelta(t, ab.Normal.X, -ba.Normal.X, 1e-12)
		require.InDelta(t, ab.Normal.Y, -ba.Normal.Y, 1e-12)
	}
}

func TestAABBvsAABB(t *testing.T) {
	t.Run("smaller overlap on x", func(t *testing.T) {
		c := AABBvsAABB(
			gm.Vec{X: 0, Y: 0}, gm.Vec{X: 2, Y: 2},
			gm.Vec{X: 1.5, Y: 0.5}, gm.Vec{X: 3.5, Y: 2.5},
		)

		require.True(t, c.Colliding)
		require.Equal(t, gm.Vec{X: 1}, c.Normal)
		require.InDelta(t, 0.5, c.Penetration, 1e-12)
		require.Equal(t, gm.Vec{X: 1.75, Y: 1.25}, c.Point)
	})

	t.Run("smaller overlap on y", func(t *testing.T) {
		c := AABBvsAABB(
			gm.Vec{X: 0, Y: 0}, gm.Vec{X: 2, Y: 2},
			gm.Vec{X: 0.5, Y: -1.75}, gm.Vec{X: 1.5, Y: 0.25},
		)

		require.True(t, c.Colliding)
		require.Equal(t, gm.Vec{Y: -1}, c.Normal)
		require.InDelta(t, 0.25, c.Penetration, 1e-12)
	})

	t.Run("normal points towards the second box", func(t *testing.T) {
		c := AABBvsAABB(
			gm.Vec{X: 1.5, Y: 0.5}, gm.Vec{X: 3.5, Y: 2.5},
			gm.Vec{X: 0, Y: 0}, gm.Vec{X: 2, Y: 2},
		)

		require.True(t, c.Colliding)
		require.Equal(t, gm.Vec{X: -1}, c.Normal)
	})

	t.Run("separated on one axis", func(t *testing.T) {
		c := AABBvsAABB(
			gm.Vec{X: 0, Y: 0}, gm.Vec{X: 1, Y: 1},
			gm.Vec{X: 0.5, Y: 2}, gm.Vec{X: 1.5, Y: 3},
		)

		require.False(t, c.Colliding)
	})

	t.Run("touching edges", func(t *testing.T) {
		c := AABBvsAABB(
			gm.Vec{X: 0, Y: 0}, gm.Vec{X: 1, Y: 1},
			gm.Vec{X: 1, Y: 0}, gm.Vec{X: 2, Y: 1},
		)

		require.False(t, c.Colliding)
	})
}

func TestCheckCollision(t *testing.T) {
	a := NewBody()
	b := NewBody()
	b.SetPosition(gm.Vec{X: 1.5})

	c := CheckCollision(a, b)
	require.True(t, c.Colliding)
	require.Same(t, a, c.A)
	require.Same(t, b, c.B)
	require.InDelta(t, 0.5, c.Penetration, 1e-12)

	b.SetPosition(gm.Vec{Y: 2.5})
	c = CheckCollision(a, b)
	require.False(t, c.Colliding)
	require.Same(t, a, c.A)
	require.Same(t, b, c.B)

}

func TestContactInfo_Flipped(t *testing.T) {
	a := NewBody()
	b := NewBody()
	b.SetPosition(gm.Vec{Y: 1})

	c := CheckCollision(a, b).Flipped()
	require.Same(t, b, c.A)
	require.Same(t, a, c.B)
	require.Equal(t, gm.Vec{Y: -1}, c.Normal)
	require.InDelta(t, 1.0, c.Penetration, 1e-12)
}
