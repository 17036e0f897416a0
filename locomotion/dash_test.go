package locomotion

import (
	"testing"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

func TestDashTriggerRequirements(t *testing.T) {
	tests := []struct {
		name  string
		tune  func(*Tunables)
		setup func(r *rig)
		want  bool
	}{
		{
			name:  "ready",
			setup: func(r *rig) { r.move(1, 0) },
			want:  true,
		},
		{
			name:  "no_ability",
			tune:  func(tu *Tunables) { tu.HasDashAbility = false },
			setup: func(r *rig) { r.move(1, 0) },
		},
		{
			name:  "no_input",
			setup: func(*rig) {},
		},
		{
			name: "cooling_down",
			setup: func(r *rig) {
				r.move(1, 0)
				r.c.state.Dash.CooldownRemaining = 0.2
			},
		},
		{
			name: "knocked_back",
			setup: func(r *rig) {
				r.move(1, 0)
				r.c.ApplyKnockback(cp.Vector{X: -1})
			},
		},
		{
			name: "dead",
			setup: func(r *rig) {
				r.move(1, 0)
				r.c.state.Health = 0
				r.steps(1)
			},
		},
		{
			name: "menu_open",
			setup: func(r *rig) {
				r.move(1, 0)
				r.c.SetMenuOpen(true)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, tc.tune)
			tc.setup(r)
			r.c.OnInputEvent(DashPressed())

			s := r.c.Snapshot()
			if s.Dash.Active != tc.want {
				t.Fatalf("expected dash active=%v, got %v", tc.want, s.Dash.Active)
			}
			if tc.want && r.audio.count(CueDash) != 1 {
				t.Fatalf("expected dash cue, got %v", r.audio.cues)
			}
			if !tc.want && r.audio.count(CueDash) != 0 {
				t.Fatalf("expected no dash cue, got %v", r.audio.cues)
			}
		})
	}
}

func TestDashLifecycle(t *testing.T) {
	r := newRig(t, nil)
	r.move(1, 1)
	r.c.OnInputEvent(DashPressed())

	s := r.c.Snapshot()
	if !s.AnimLocked {
		t.Fatal("expected dash to take the animation lock")
	}
	if len(r.tint.colors) != 1 || r.tint.colors[0] != colornames.Black {
		t.Fatalf("expected dark tint at dash start, got %v", r.tint.colors)
	}

	want := normalize(cp.Vector{X: 1, Y: 0.5}).Mult(18)
	steps := 0
	for r.c.Snapshot().Dash.Active {
		r.steps(1)
		steps++
		if !nearVec(r.body.vel, want) {
			t.Fatalf("step %d: expected dash velocity %v, got %v", steps, want, r.body.vel)
		}
		if steps > 10 {
			t.Fatal("dash never ended")
		}
	}
	if steps != 5 {
		t.Fatalf("expected a 0.075s dash to span 5 steps, got %d", steps)
	}

	s = r.c.Snapshot()
	if s.Dash.CooldownRemaining != 0.8 {
		t.Fatalf("expected cooldown to start at 0.8, got %g", s.Dash.CooldownRemaining)
	}
	if s.Dash.Remaining != 0.075 {
		t.Fatalf("expected duration reset, got %g", s.Dash.Remaining)
	}
	if s.AnimLocked {
		t.Fatal("expected lock released when the dash ends")
	}
	if last := r.tint.colors[len(r.tint.colors)-1]; last != colornames.White {
		t.Fatalf("expected tint restored, got %v", last)
	}
}

func TestDashCooldownDecreasesToZero(t *testing.T) {
	r := newRig(t, nil)
	r.move(1, 0)
	r.c.OnInputEvent(DashPressed())
	for r.c.Snapshot().Dash.Active {
		r.c.StepPhysics(0.1)
	}

	prev := r.c.Snapshot().Dash.CooldownRemaining
	for i := 0; prev > 0; i++ {
		if i > 20 {
			t.Fatal("cooldown never reached zero")
		}
		r.c.OnInputEvent(DashPressed())
		if r.c.Snapshot().Dash.Active {
			t.Fatalf("dash started with %g cooldown left", prev)
		}

		r.c.StepPhysics(0.1)
		cur := r.c.Snapshot().Dash.CooldownRemaining
		if cur >= prev || cur < 0 {
			t.Fatalf("expected cooldown to drop from %g, got %g", prev, cur)
		}
		prev = cur
	}

	r.c.OnInputEvent(DashPressed())
	if !r.c.Snapshot().Dash.Active {
		t.Fatal("expected dash available once cooldown expires")
	}
}

func TestKnockbackCancelsDash(t *testing.T) {
	r := newRig(t, nil)
	r.move(1, 0)
	r.c.OnInputEvent(DashPressed())
	r.steps(1)
	r.c.ApplyKnockback(cp.Vector{X: -2})

	s := r.c.Snapshot()
	if s.Dash.Active {
		t.Fatal("expected knockback to end the dash")
	}
	if s.Dash.CooldownRemaining != 0.8 {
		t.Fatalf("expected cooldown after cancelled dash, got %g", s.Dash.CooldownRemaining)
	}

	r.steps(1)
	if r.body.vel != (cp.Vector{X: -2}) {
		t.Fatalf("expected knockback velocity, got %v", r.body.vel)
	}
}

func TestSetTunablesResetsIdleDashDuration(t *testing.T) {
	r := newRig(t, nil)
	tu := r.c.Tunables()
	tu.DashDuration = 0.2
	r.c.SetTunables(tu)

	if got := r.c.Snapshot().Dash.Remaining; got != 0.2 {
		t.Fatalf("expected dash duration 0.2, got %g", got)
	}
}
