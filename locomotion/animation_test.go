package locomotion

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestIdleIsIdempotent(t *testing.T) {
	r := newRig(t, nil)
	r.steps(4)

	if len(r.anim.plays) != 1 || r.anim.plays[0] != ClipIdle {
		t.Fatalf("expected a single idle request, got %v", r.anim.plays)
	}
}

func TestWalkIsIdempotent(t *testing.T) {
	r := newRig(t, nil)
	r.move(0, -1)
	r.steps(3)

	if len(r.anim.plays) != 1 || r.anim.plays[0] != ClipWalk {
		t.Fatalf("expected a single walk request, got %v", r.anim.plays)
	}
	if r.anim.params[ParamFaceX] != 1 || r.anim.params[ParamFaceY] != -1 {
		t.Fatalf("expected facing params (1,-1), got %v", r.anim.params)
	}
}

func TestCarryIdle(t *testing.T) {
	r := newRig(t, nil)
	crate := &fakeTransform{local: cp.Vector{X: 5, Y: 5}}
	r.c.StartCarry(crate)

	if len(r.anchor.adopted) != 1 || !isZero(crate.local) {
		t.Fatalf("expected crate adopted at zero offset, got %v", crate.local)
	}
	if !r.c.Snapshot().Flags.Carrying {
		t.Fatal("expected carrying flag")
	}

	r.steps(1)
	if r.anim.current != ClipIdleCarry {
		t.Fatalf("expected idle_carry, got %q", r.anim.current)
	}
}

func TestAttackLocksAndUnlocks(t *testing.T) {
	r := newRig(t, nil)
	r.c.OnInputEvent(AttackPressed())
	r.steps(1)

	s := r.c.Snapshot()
	if !s.AnimLocked || s.Flags.Attacking {
		t.Fatalf("expected attack consumed and locked, got %+v", s)
	}
	if r.anim.current != ClipAttack || r.audio.count(CueAttack) != 1 {
		t.Fatalf("expected attack clip and cue, got %q %v", r.anim.current, r.audio.cues)
	}

	r.steps(1)
	if rep := r.c.LastStep(); rep.Rule != "locked" || rep.Clip != "" {
		t.Fatalf("expected no request while locked, got %+v", rep)
	}

	r.c.UnlockAnim()
	r.steps(1)
	if r.anim.current != ClipIdle {
		t.Fatalf("expected idle after unlock, got %q", r.anim.current)
	}
}

func TestAttackWhileLockedSkipsCue(t *testing.T) {
	r := newRig(t, nil)
	r.c.TriggerAttack()
	r.steps(1)
	r.c.TriggerAttack()
	r.steps(1)

	attacks := 0
	for _, clip := range r.anim.plays {
		if clip == ClipAttack {
			attacks++
		}
	}
	if attacks != 2 {
		t.Fatalf("expected attack to restart, got %d requests", attacks)
	}
	if r.audio.count(CueAttack) != 1 {
		t.Fatalf("expected a single attack cue, got %d", r.audio.count(CueAttack))
	}
}

func TestHitTakesPriority(t *testing.T) {
	r := newRig(t, nil)
	r.c.TriggerAttack()
	r.c.ApplyKnockback(cp.Vector{X: 1})
	r.steps(2)

	if rep := r.c.LastStep(); rep.Rule != "hit" || rep.Clip != ClipHit {
		t.Fatalf("expected hit clip, got %+v", rep)
	}
	hits := 0
	for _, clip := range r.anim.plays {
		if clip == ClipHit {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("expected a single hit request, got %d", hits)
	}
	if !r.c.Snapshot().Flags.Attacking {
		t.Fatal("expected attack to wait for the hit reaction")
	}
}

func TestKnockbackClearsLock(t *testing.T) {
	r := newRig(t, nil)
	r.c.TriggerAttack()
	r.steps(1)
	r.c.ApplyKnockback(cp.Vector{X: 1})

	if r.c.Snapshot().AnimLocked {
		t.Fatal("expected knockback to clear the lock")
	}
}

func TestNoLocomotionClipWhenImmobile(t *testing.T) {
	r := newRig(t, nil)
	r.c.SetCanMove(false)
	r.steps(1)

	if rep := r.c.LastStep(); rep.Rule != "" || len(r.anim.plays) != 0 {
		t.Fatalf("expected no request, got %+v %v", rep, r.anim.plays)
	}
}
