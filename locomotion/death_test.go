package locomotion

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestDeathWaitsForKnockback(t *testing.T) {
	r := newRig(t, func(tu *Tunables) { tu.Health = 10 })
	r.c.ApplyKnockback(cp.Vector{X: 1})

	if s := r.c.Snapshot(); s.Health != 0 || s.Flags.Dead {
		t.Fatalf("expected health 0 and alive, got %+v", s)
	}

	for r.c.Snapshot().Knockback.Active() {
		r.steps(1)
		if r.c.Snapshot().Flags.Dead {
			t.Fatal("death interrupted the knockback")
		}
	}
	if r.audio.count(CueDeath) != 0 {
		t.Fatal("death cue played early")
	}

	r.steps(1)
	s := r.c.Snapshot()
	if !s.Flags.Dead || !s.AnimLocked {
		t.Fatalf("expected dead and locked, got %+v", s)
	}
	if r.audio.count(CueDeath) != 1 || r.anim.current != ClipDeath {
		t.Fatalf("expected death cue and clip, got cues=%v clip=%q", r.audio.cues, r.anim.current)
	}
}

func TestDeathWithoutKnockback(t *testing.T) {
	r := newRig(t, func(tu *Tunables) { tu.KnockbackDamage = 60 })
	r.c.ApplyKnockback(cp.Vector{})
	r.steps(1)

	s := r.c.Snapshot()
	if !s.Flags.Dead || s.Health != 0 {
		t.Fatalf("expected clamped health and death, got %+v", s)
	}
}

func TestDeathIsTerminal(t *testing.T) {
	r := newRig(t, func(tu *Tunables) { tu.Health = 10 })
	r.move(1, 0)
	r.c.ApplyKnockback(cp.Vector{})
	r.steps(1)

	hurt := r.audio.count(CueHurt)
	r.c.UnlockAnim()
	r.c.ApplyKnockback(cp.Vector{X: 1})
	r.c.TriggerAttack()
	r.c.OnInputEvent(DashPressed())
	r.steps(5)

	s := r.c.Snapshot()
	if !s.AnimLocked {
		t.Fatal("expected death lock to survive UnlockAnim")
	}
	if s.Knockback.Active() || s.Health != 0 || r.audio.count(CueHurt) != hurt {
		t.Fatalf("expected knockback ignored after death, got %+v", s)
	}
	if s.Flags.Attacking || s.Dash.Active {
		t.Fatalf("expected triggers ignored after death, got %+v", s.Flags)
	}
	if !isZero(r.body.vel) {
		t.Fatalf("expected a dead character to stay still, got %v", r.body.vel)
	}

	deaths := 0
	for _, clip := range r.anim.plays {
		if clip == ClipDeath {
			deaths++
		}
	}
	if deaths != 1 || r.audio.count(CueDeath) != 1 {
		t.Fatalf("expected death to play once, got %d clips %d cues", deaths, r.audio.count(CueDeath))
	}
}

func TestDeathEndsDashAndAttack(t *testing.T) {
	r := newRig(t, nil)
	r.move(1, 0)
	r.c.OnInputEvent(DashPressed())
	r.c.state.Health = 0
	r.c.TriggerAttack()
	r.steps(1)

	s := r.c.Snapshot()
	if !s.Flags.Dead || s.Dash.Active || s.Flags.Attacking {
		t.Fatalf("expected death to clear dash and attack, got %+v", s)
	}
	if r.anim.current != ClipDeath {
		t.Fatalf("expected death clip to stay current, got %q", r.anim.current)
	}
}
