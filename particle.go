package cantus

// Stateless particle model. A particle is created once by the host on a
// trigger event and never mutated: liveness, position, and alpha are
// closed-form functions of elapsed time, so the burst can be replayed
// at any timestamp and never drifts with frame rate. Do not replace
// this with a stepped integrator.

// ParticleSlots is the fixed capacity of the particle arena. Every
// frame all slots are evaluated; dead slots contribute exactly zero.
const ParticleSlots = 64

// particleGravity is the constant downward acceleration in pixels/s^2.
const particleGravity = 150.0

// Particle is one burst fragment, fully described at spawn time.
type Particle struct {
	SpawnPos  Vec2
	SpawnVel  Vec2
	SpawnTime float64
	Duration  float64
	Color     PackedColor
}

// AliveAt reports whether the particle contributes at wall-clock time
// now. A zero or negative duration marks an empty slot.
func (p *Particle) AliveAt(now float64) bool {
	if p.Duration <= 0 {
		return false
	}
	dt := now - p.SpawnTime
	return dt >= 0 && dt <= p.Duration
}

// PositionAt returns the particle position after dt seconds of constant
// acceleration flight: spawn + vel*dt + (0, g)*dt^2.
func (p *Particle) PositionAt(dt float64) Vec2 {
	return Vec2{
		X: p.SpawnPos.X + p.SpawnVel.X*dt,
		Y: p.SpawnPos.Y + p.SpawnVel.Y*dt + particleGravity*dt*dt,
	}
}

// AlphaAt returns the remaining-lifetime weight in [0, 1] at wall-clock
// time now. Exactly zero outside [SpawnTime, SpawnTime+Duration].
func (p *Particle) AlphaAt(now float64) float64 {
	if !p.AliveAt(now) {
		return 0
	}
	return 1 - (now-p.SpawnTime)/p.Duration
}

// ParticleRing is the fixed 64-slot arena scanned by the playhead pass.
// Spawning overwrites the oldest slot; there is no dynamic growth, so
// per-frame cost is bounded and identical for every pixel.
type ParticleRing struct {
	slots [ParticleSlots]Particle
	next  int
}

// Spawn writes a particle into the next slot, evicting whatever was
// there. The ring itself is host-owned; the core only reads it.
func (r *ParticleRing) Spawn(p Particle) {
	r.slots[r.next] = p
	r.next = (r.next + 1) % ParticleSlots
}

// Slots returns the full arena for evaluation. Dead slots are included;
// callers filter with AliveAt.
func (r *ParticleRing) Slots() *[ParticleSlots]Particle {
	return &r.slots
}

// LiveCount returns the number of live particles at the given time.
func (r *ParticleRing) LiveCount(now float64) int {
	n := 0
	for i := range r.slots {
		if r.slots[i].AliveAt(now) {
			n++
		}
	}
	return n
}
