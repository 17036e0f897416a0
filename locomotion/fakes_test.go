package locomotion

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const step = 1.0 / 60.0

type ray struct {
	origin, dir cp.Vector
	dist        float64
	mask        uint
}

type fakeBody struct {
	pos     cp.Vector
	vel     cp.Vector
	writes  int
	blocked bool
	rays    []ray
}

func (b *fakeBody) Position() cp.Vector     { return b.pos }
func (b *fakeBody) Velocity() cp.Vector     { return b.vel }
func (b *fakeBody) SetVelocity(v cp.Vector) { b.vel = v; b.writes++ }
func (b *fakeBody) RayCast(origin, dir cp.Vector, dist float64, mask uint) bool {
	b.rays = append(b.rays, ray{origin: origin, dir: dir, dist: dist, mask: mask})
	return b.blocked
}

type fakeAnimator struct {
	current string
	plays   []string
	params  map[string]float64
}

func (a *fakeAnimator) Play(clip string) {
	a.current = clip
	a.plays = append(a.plays, clip)
}

func (a *fakeAnimator) IsCurrentClip(clip string) bool { return a.current == clip }

func (a *fakeAnimator) SetParameter(name string, v float64) {
	if a.params == nil {
		a.params = map[string]float64{}
	}
	a.params[name] = v
}

type fakeAudio struct {
	cues []string
}

func (a *fakeAudio) PlayOneShot(cue string) { a.cues = append(a.cues, cue) }

func (a *fakeAudio) count(cue string) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type fakeTint struct {
	colors []color.Color
}

func (t *fakeTint) SetTint(c color.Color) { t.colors = append(t.colors, c) }

type fakeTransform struct {
	local cp.Vector
}

func (t *fakeTransform) SetLocalPosition(p cp.Vector) { t.local = p }

type fakeAnchor struct {
	adopted []Transform
}

func (a *fakeAnchor) Reparent(target Transform, offset cp.Vector) {
	a.adopted = append(a.adopted, target)
	target.SetLocalPosition(offset)
}

type rig struct {
	c      *Controller
	body   *fakeBody
	anim   *fakeAnimator
	audio  *fakeAudio
	tint   *fakeTint
	anchor *fakeAnchor
	hook   *logtest.Hook
}

func newRig(t *testing.T, tune func(*Tunables)) *rig {
	t.Helper()
	tunables := DefaultTunables()
	tunables.HasDashAbility = true
	if tune != nil {
		tune(&tunables)
	}

	log, hook := newNullLogger()
	r := &rig{
		c:      New(tunables, log),
		body:   &fakeBody{},
		anim:   &fakeAnimator{},
		audio:  &fakeAudio{},
		tint:   &fakeTint{},
		anchor: &fakeAnchor{},
		hook:   hook,
	}
	r.c.Init(Bindings{
		Body:        r.body,
		Animator:    r.anim,
		Audio:       r.audio,
		Tint:        r.tint,
		CarryAnchor: r.anchor,
	})
	return r
}

func (r *rig) move(x, y float64) {
	r.c.OnInputEvent(MoveChanged(cp.Vector{X: x, Y: y}))
}

func (r *rig) steps(n int) {
	for i := 0; i < n; i++ {
		r.c.StepPhysics(step)
	}
}

func newNullLogger() (*logrus.Logger, *logtest.Hook) {
	return logtest.NewNullLogger()
}

func warnings(hook *logtest.Hook) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}
