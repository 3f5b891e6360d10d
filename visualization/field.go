// Package visualization animates the decorative particle field shown on the
// visualization tab.
package visualization

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/harmonica"
)

// ParticleColor indexes the three particle colours.
type ParticleColor int

const (
	ColorPrimary ParticleColor = iota
	ColorSuccess
	ColorDanger
)

const (
	// BitCount is the number of bits crossing the channel while active.
	BitCount = 8

	bitDuration    = 2.0
	bitDelay       = 0.25
	bitRepeatDelay = 1.0

	// sender and receiver sit at these fractions of the field width
	senderX   = 0.10
	receiverX = 0.90

	activeScale = 1.0
	idleScale   = 0.5
)

// Particle is one decorative dot. Positions are percentages of the field.
type Particle struct {
	X, Y      float64
	Size      float64
	Speed     float64
	Direction float64
	Color     ParticleColor

	scale    float64
	velocity float64
}

// Scale is the current animated scale, springing between 0.5 and 1.
func (p Particle) Scale() float64 { return p.scale }

// Field holds the particles and the animation clock.
type Field struct {
	particles []Particle
	spring    harmonica.Spring
	elapsed   float64
	frame     time.Duration
}

// NewField generates n particles. Their layout is fixed for the life of the
// field.
func NewField(n int, r *rand.Rand, frame time.Duration) *Field {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if frame <= 0 {
		frame = 100 * time.Millisecond
	}

	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			X:         r.Float64() * 100,
			Y:         r.Float64() * 100,
			Size:      r.Float64()*4 + 2,
			Speed:     r.Float64()*2 + 1,
			Direction: r.Float64() * 360,
			Color:     ParticleColor(i % 3),
			scale:     idleScale,
		}
	}

	return &Field{
		particles: particles,
		spring:    harmonica.NewSpring(harmonica.FPS(int(time.Second/frame)), 6.0, 0.6),
		frame:     frame,
	}
}

// Particles returns a copy of the current particle state.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Elapsed is the animation time in seconds.
func (f *Field) Elapsed() float64 { return f.elapsed }

// Step advances the animation by one frame. While idle the clock stands still
// and the particles settle back to their origin at half scale.
func (f *Field) Step(active bool) {
	target := idleScale
	if active {
		target = activeScale
		f.elapsed += f.frame.Seconds()
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.scale, p.velocity = f.spring.Update(p.scale, p.velocity, target)
	}
}

// Reset rewinds the clock so the next exchange starts from the origins.
func (f *Field) Reset() {
	f.elapsed = 0
}

// Position is where particle p is drawn, in percent, at the current time.
func (f *Field) Position(p Particle, active bool) (x, y float64) {
	if !active {
		return p.X, p.Y
	}
	period := p.Speed * 2
	t := easeInOut(pingPong(f.elapsed / period))

	toX := math.Mod(p.X+p.Speed*50, 100)
	toY := math.Mod(p.Y+math.Sin(p.Direction)*20, 100)
	if toY < 0 {
		toY += 100
	}
	return lerp(p.X, toX, t), lerp(p.Y, toY, t)
}

// Bits returns the horizontal positions, in percent, of the bits currently
// on the channel. Bits between runs are omitted.
func (f *Field) Bits(active bool) []float64 {
	if !active {
		return nil
	}
	cycle := bitDuration + bitRepeatDelay
	var out []float64
	for i := 0; i < BitCount; i++ {
		local := f.elapsed - float64(i)*bitDelay
		if local < 0 {
			continue
		}
		local = math.Mod(local, cycle)
		if local >= bitDuration {
			continue
		}
		out = append(out, (senderX+(receiverX-senderX)*local/bitDuration)*100)
	}
	return out
}

// Opacity mirrors the fade of the decorative dots: dim when idle, pulsing
// while active.
func (f *Field) Opacity(p Particle, active bool) float64 {
	if !active {
		return 0.3
	}
	t := pingPong(f.elapsed / (p.Speed * 2))
	return 0.7 + 0.3*math.Sin(t*math.Pi)
}

// pingPong maps a monotonic phase onto 0→1→0 repeats.
func pingPong(phase float64) float64 {
	m := math.Mod(phase, 2)
	if m > 1 {
		return 2 - m
	}
	return m
}

func easeInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
