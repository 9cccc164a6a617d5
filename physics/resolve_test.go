package physics

import (
	"testing"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

func makePair(posA, posB, velA, velB gm.Vec) (*Body, *Body) {
	a := NewBody()
	a.SetPosition(posA)
	a.SetVelocity(velA)

	b := NewBody()
	b.SetPosition(posB)
	b.SetVelocity(velB)

	return a, b
}

func TestResolveCollision_ElasticExchange(t *testing.T) {
	a, b := makePair(gm.Vec{}, gm.Vec{X: 1.5}, gm.Vec{X: 1}, gm.Vec{X: -1})
	a.SetRestitution(1)
	b.SetRestitution(1)

	ResolveCollision(CheckCollision(a, b))

	require.InDelta(t, -1.0, a.Velocity().X, 1e-12)
	require.InDelta(t, 1.0, b.Velocity().X, 1e-12)
	require.InDelta(t, 0.0, a.Velocity().Y, 1e-12)
	require.InDelta(t, 0.0, b.Velocity().Y, 1e-12)

	// equal masses share the correction equally
	correction := CorrectionPercent * (0.5 - Slop)
	require.InDelta(t, -correction/2, a.Position().X, 1e-12)
	require.InDelta(t, 1.5+correction/2, b.Position().X, 1e-12)
}

func TestResolveCollision_NoEnergyGain(t *testing.T) {
	cases := []struct {
		Name                       string
		MassA, MassB               float64
		RestitutionA, RestitutionB float64
		VelA, VelB                 gm.Vec
	}{
		{"inelastic", 1, 1, 0, 0, gm.Vec{X: 2}, gm.Vec{}},
		{"half elastic", 2, 1, 0.5, 0.8, gm.Vec{X: 1, Y: 0.5}, gm.Vec{X: -3}},
		{"heavy and light", 100, 0.5, 1, 1, gm.Vec{X: 0.1}, gm.Vec{X: -5, Y: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			a, b := makePair(gm.Vec{}, gm.Vec{X: 1.2, Y: 0.4}, tc.VelA, tc.VelB)
			a.SetMass(tc.MassA)
			b.SetMass(tc.MassB)
			a.SetRestitution(tc.RestitutionA)
			b.SetRestitution(tc.RestitutionB)

			contact := CheckCollision(a, b)
			require.True(t, contact.Colliding)

			approach := b.Velocity().Sub(a.Velocity()).Dot(contact.Normal)
			require.Less(t, approach, 0.0)

			ResolveCollision(contact)

			separation := b.Velocity().Sub(a.Velocity()).Dot(contact.Normal)

			restitution := min(tc.RestitutionA, tc.RestitutionB)
			require.LessOrEqual(t, separation, restitution*-approach+1e-9)
			require.InDelta(t, restitution*-approach, separation, 1e-9)
		})
	}
}

func TestResolveCollision_Separating(t *testing.T) {
	a, b := makePair(gm.Vec{}, gm.Vec{X: 1.5}, gm.Vec{X: -1}, gm.Vec{X: 1})

	ResolveCollision(CheckCollision(a, b))

	require.Equal(t, gm.Vec{X: -1}, a.Velocity())
	require.Equal(t, gm.Vec{X: 1}, b.Velocity())
	require.Equal(t, gm.Vec{}, a.Position())
	require.Equal(t, gm.Vec{X: 1.5}, b.Position())
}

func TestResolveCollision_NotColliding(t *testing.T) {
	a, b := makePair(gm.Vec{}, gm.Vec{X: 5}, gm.Vec{X: 1}, gm.Vec{X: -1})

	ResolveCollision(CheckCollision(a, b))

	require.Equal(t, gm.Vec{X: 1}, a.Velocity())
	require.Equal(t, gm.Vec{X: -1}, b.Velocity())
}

func TestResolveCollision_Static(t *testing.T) {
	ground, ball := makePair(gm.Vec{}, gm.Vec{Y: -1.5}, gm.Vec{}, gm.Vec{Y: 2})
	ground.SetStatic(true)
	ball.SetRestitution(0.5)
	ground.SetRestitution(1)

	ResolveCollision(CheckCollision(ground, ball))

	// the ball bounces off with half of its speed
	require.InDelta(t, -1.0, ball.Velocity().Y, 1e-12)

	// ground does not move, the ball takes the full correction
	require.Equal(t, gm.Vec{}, ground.Velocity())
	require.Equal(t, gm.Vec{}, ground.Position())
	require.InDelta(t, -1.5-CorrectionPercent*(0.5-Slop), ball.Position().Y, 1e-12)

	t.Run("static as second body", func(t *testing.T) {
		ball, wall := makePair(gm.Vec{}, gm.Vec{X: 1.5}, gm.Vec{X: 2}, gm.Vec{})
		wall.SetStatic(true)

		ResolveCollision(CheckCollision(ball, wall))

		require.InDelta(t, 0.0, ball.Velocity().X, 1e-12)
		require.InDelta(t, -CorrectionPercent*(0.5-Slop), ball.Position().X, 1e-12)
		require.Equal(t, gm.Vec{X: 1.5}, wall.Position())
	})

	t.Run("two static bodies", func(t *testing.T) {
		a, b := makePair(gm.Vec{}, gm.Vec{X: 1.5}, gm.Vec{}, gm.Vec{})
		a.SetStatic(true)
		b.SetStatic(true)

		ResolveCollision(CheckCollision(a, b))

		require.Equal(t, gm.Vec{}, a.Position())
		require.Equal(t, gm.Vec{X: 1.5}, b.Position())
	})
}

func TestResolveCollision_HeavierMovesLess(t *testing.T) {
	heavy, light := makePair(gm.Vec{}, gm.Vec{X: 1}, gm.Vec{X: 1}, gm.Vec{})
	heavy.SetMass(3)
	light.SetMass(1)

	ResolveCollision(CheckCollision(heavy, light))

	correction := CorrectionPercent * (1 - Slop)
	require.InDelta(t, -correction*0.25, heavy.Position().X, 1e-12)
	require.InDelta(t, 1+correction*0.75, light.Position().X, 1e-12)
}

func TestResolveCollision_SlopTolerated(t *testing.T) {
	a, b := makePair(gm.Vec{}, gm.Vec{X: 1.995}, gm.Vec{X: 1}, gm.Vec{})

	ResolveCollision(CheckCollision(a, b))

	// perfectly inelastic, both continue with the same velocity
	require.InDelta(t, 0.5, a.Velocity().X, 1e-12)
	require.InDelta(t, 0.5, b.Velocity().X, 1e-12)

	// positions stay untouched
	require.Equal(t, gm.Vec{}, a.Position())
	require.Equal(t, gm.Vec{X: 1.995}, b.Position())
}

func TestResolveCollisionWithFriction(t *testing.T) {
	a1, b1 := makePair(gm.Vec{}, gm.Vec{X: 1.2, Y: 0.3}, gm.Vec{X: 1, Y: 1}, gm.Vec{X: -1})
	a2, b2 := makePair(gm.Vec{}, gm.Vec{X: 1.2, Y: 0.3}, gm.Vec{X: 1, Y: 1}, gm.Vec{X: -1})
	a2.SetFriction(0.8)
	b2.SetFriction(0.8)

	ResolveCollision(CheckCollision(a1, b1))
	ResolveCollisionWithFriction(CheckCollision(a2, b2))

	require.Equal(t, a1.Velocity(), a2.Velocity())
	require.Equal(t, b1.Velocity(), b2.Velocity())
	require.Equal(t, a1.Position(), a2.Position())
	require.Equal(t, b1.Position(), b2.Position())
}
