package effect

import (
	"math"

	"hero-particles/internal/vmath"

	"github.com/charmbracelet/harmonica"
)

const (
	// Share of the configured shift that is always applied, even when idle.
	BaseShare = 0.25

	// Radial modulation offset: the shift fades in past this distance from the center.
	ModulationOffset = 0.5
)

// AberrationTarget returns the RGB shift offset in UV units for the configured intensity,
// angle and the current interaction intensity in [0, 1].
func AberrationTarget(shift, angle, intensity float64) vmath.Vec2 {
	total := shift*BaseShare + shift*vmath.Clamp(intensity, 0, 1)
	return vmath.Vec2{X: total * math.Cos(angle), Y: total * math.Sin(angle)}
}

// MaxStepDt bounds the spring step so a stalled frame cannot overshoot.
const MaxStepDt = 0.1

// Aberration eases the applied offset toward its target with a critically damped spring.
// The spring coefficients are rebuilt whenever the frame dt changes.
type Aberration struct {
	frequency float64
	defaultDt float64

	spring harmonica.Spring
	dt     float64
	pos    vmath.Vec2
	vel    vmath.Vec2
}

// NewAberration builds the easing spring. fps sets the step used when Step gets no usable dt.
func NewAberration(fps int, frequency float64) *Aberration {
	if fps <= 0 {
		fps = 60
	}
	return &Aberration{frequency: frequency, defaultDt: harmonica.FPS(fps)}
}

// Step advances the spring by dt seconds toward target and returns the eased offset.
func (a *Aberration) Step(target vmath.Vec2, dt float64) vmath.Vec2 {
	if dt <= 0 || math.IsNaN(dt) {
		dt = a.defaultDt
	}
	dt = math.Min(dt, MaxStepDt)
	if dt != a.dt {
		a.spring = harmonica.NewSpring(dt, a.frequency, 1.0)
		a.dt = dt
	}

	a.pos.X, a.vel.X = a.spring.Update(a.pos.X, a.vel.X, target.X)
	a.pos.Y, a.vel.Y = a.spring.Update(a.pos.Y, a.vel.Y, target.Y)
	return a.pos
}

func (a *Aberration) Offset() vmath.Vec2 { return a.pos }
