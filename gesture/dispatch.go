package gesture

import (
	"github.com/vibeforge1111/particle-dance-on-claude/config"
	"github.com/vibeforge1111/particle-dance-on-claude/particles"
)

// Feedback reports what a dispatched command did, for audio and HUD use.
type Feedback struct {
	Kind     Kind
	Affected int
	Touching int
	Spawned  int
}

// Dispatcher applies interaction commands to a particle store. It owns the
// cooldown bookkeeping that keeps repeated gestures from spamming spawns or
// gravity flips.
type Dispatcher struct {
	store *particles.Store

	lastSpawn   float64
	lastGravity float64
}

// NewDispatcher creates a dispatcher bound to the given store.
func NewDispatcher(store *particles.Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// Gravity flips are rate-limited so a held palm doesn't oscillate.
const gravityCooldown = 0.5

// Dispatch applies one command against the store. now is the caller's clock
// in seconds, used only for cooldowns.
func (d *Dispatcher) Dispatch(cmd Command, now float64) Feedback {
	cfg := &config.Cfg().Gesture
	fb := Feedback{Kind: cmd.Kind}

	switch cmd.Kind {
	case OpenPalm:
		fb.Affected, fb.Touching = d.store.ApplyForce(
			cmd.X, cmd.Y, cfg.AttractRadius, cfg.AttractStrength, false)

	case Fist:
		fb.Affected, fb.Touching = d.store.ApplyForce(
			cmd.X, cmd.Y, cfg.RepelRadius, cfg.RepelStrength, true)

	case Pinch:
		if now-d.lastSpawn > cfg.SpawnCooldown {
			fb.Spawned = d.store.SpawnCluster(cmd.X, cmd.Y, cfg.SpawnCount, cfg.SpawnSpread)
			if fb.Spawned > 0 {
				d.lastSpawn = now
			}
		}

	case Spread:
		fb.Affected = d.store.Explode(cmd.X, cmd.Y, cfg.ExplodeRadius, cfg.ExplodeStrength)

	case Wave:
		d.store.ApplyDirectionalFlow(cmd.DX, cmd.DY, cfg.WaveStrength)
		fb.Affected = d.store.Count()

	case PalmUp:
		if now-d.lastGravity > gravityCooldown {
			d.store.SetGravityDirection(-1)
			d.lastGravity = now
			fb.Affected = d.store.Count()
		}

	case PalmDown:
		if now-d.lastGravity > gravityCooldown {
			d.store.SetGravityDirection(1)
			d.lastGravity = now
			fb.Affected = d.store.Count()
		}

	case Rotate:
		fb.Affected = d.store.ApplyVortex(cmd.X, cmd.Y, cfg.VortexRadius, cmd.Strength*2)

	case TwoHandMerge:
		fb.Affected = d.store.AttractBetweenPoints(
			cmd.X, cmd.Y, cmd.X2, cmd.Y2, cmd.Radius*0.8, cfg.TwoHandStrength)
	}

	return fb
}
