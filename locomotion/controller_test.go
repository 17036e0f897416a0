package locomotion

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRepeatedKnockback(t *testing.T) {
	r := newRig(t, nil)
	r.c.TriggerAttack()
	r.steps(1)

	for i := 0; i < 3; i++ {
		r.c.ApplyKnockback(cp.Vector{X: 1, Y: 1})
	}

	s := r.c.Snapshot()
	if s.Health != 20 {
		t.Fatalf("expected health 20, got %d", s.Health)
	}
	if !s.Knockback.Active() || s.Knockback.Remaining != 0.15 {
		t.Fatalf("expected active knockback, got %+v", s.Knockback)
	}
	if s.AnimLocked {
		t.Fatal("expected lock cleared")
	}
	if r.audio.count(CueHurt) != 3 {
		t.Fatalf("expected a hurt cue per hit, got %d", r.audio.count(CueHurt))
	}
}

func TestLifecycleGating(t *testing.T) {
	log, _ := newNullLogger()
	c := New(DefaultTunables(), log)
	body := &fakeBody{}

	c.OnInputEvent(MoveChanged(cp.Vector{X: 1}))
	c.StepPhysics(step)
	if c.LastStep().Step != 0 || !isZero(c.Snapshot().MoveInput) {
		t.Fatal("expected controller to ignore input before Init")
	}

	c.Init(Bindings{Body: body})
	c.OnInputEvent(MoveChanged(cp.Vector{X: 1}))
	c.StepPhysics(step)
	if rep := c.LastStep(); rep.Step != 1 || !rep.Written || body.writes != 1 {
		t.Fatalf("expected one written step, got %+v", rep)
	}

	c.Shutdown()
	c.StepPhysics(step)
	if body.writes != 1 || c.LastStep().Step != 1 {
		t.Fatal("expected controller idle after Shutdown")
	}
}

func TestInitWarnsOnMissingCollaborators(t *testing.T) {
	log, hook := newNullLogger()
	c := New(DefaultTunables(), log)
	c.Init(Bindings{Body: &fakeBody{}})

	if n := warnings(hook); n != 2 {
		t.Fatalf("expected animator and audio warnings, got %d", n)
	}

	// no-op collaborators must absorb every request
	c.TriggerAttack()
	c.ApplyKnockback(cp.Vector{X: 1})
	c.StepPhysics(step)
}

func TestStartCarryWithoutAnchor(t *testing.T) {
	log, hook := newNullLogger()
	c := New(DefaultTunables(), log)
	c.Init(Bindings{Body: &fakeBody{}, Animator: &fakeAnimator{}, Audio: &fakeAudio{}})

	c.StartCarry(&fakeTransform{})
	if c.Snapshot().Flags.Carrying {
		t.Fatal("expected carry refused without an anchor")
	}
	if n := warnings(hook); n != 1 {
		t.Fatalf("expected a warning, got %d", n)
	}

	c.StartCarry(nil)
	if n := warnings(hook); n != 1 {
		t.Fatalf("expected nil target to be ignored silently, got %d warnings", n)
	}
}

func TestNewStartsAtFullHealth(t *testing.T) {
	c := New(DefaultTunables(), nil)
	s := c.Snapshot()
	if s.Health != 50 || !s.CanMove || s.Facing != (cp.Vector{X: 1, Y: 1}) {
		t.Fatalf("unexpected initial state %+v", s)
	}
	if s.Dash.Remaining != 0.075 || s.Dash.CooldownRemaining != 0 {
		t.Fatalf("expected dash ready, got %+v", s.Dash)
	}
}

func TestTunablesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tunables)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Tunables) {}, ok: true},
		{name: "zero_health", mutate: func(tu *Tunables) { tu.Health = 0 }},
		{name: "negative_speed", mutate: func(tu *Tunables) { tu.MoveSpeed = -1 }},
		{name: "negative_dash_speed", mutate: func(tu *Tunables) { tu.DashSpeed = -1 }},
		{name: "zero_dash_duration", mutate: func(tu *Tunables) { tu.DashDuration = 0 }},
		{name: "negative_cooldown", mutate: func(tu *Tunables) { tu.DashCooldown = -0.1 }},
		{name: "zero_cooldown", mutate: func(tu *Tunables) { tu.DashCooldown = 0 }, ok: true},
		{name: "zero_knockback_duration", mutate: func(tu *Tunables) { tu.KnockbackDuration = 0 }},
		{name: "negative_damage", mutate: func(tu *Tunables) { tu.KnockbackDamage = -5 }},
		{name: "negative_probe", mutate: func(tu *Tunables) { tu.WallProbeDistance = -0.1 }},
		{name: "full_deadzone", mutate: func(tu *Tunables) { tu.InputDeadzone = 1 }},
		{name: "no_deadzone", mutate: func(tu *Tunables) { tu.InputDeadzone = 0 }, ok: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tu := DefaultTunables()
			tc.mutate(&tu)
			err := tu.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidTunables) {
				t.Fatalf("expected ErrInvalidTunables, got %v", err)
			}
		})
	}
}
