package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/densetsu/ecs/component"
)

type position struct{ X, Y float64 }

type health struct{ HP int }

type tag struct{}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}

			dead := ents[c.destroyIndex]
			if !DestroyEntity(w, dead) {
				t.Fatal("expected DestroyEntity to report true for a live entity")
			}
			if IsAlive(w, dead) || DestroyEntity(w, dead) {
				t.Fatal("expected entity to stay dead")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)
	fresh := CreateEntity(w)

	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", old.id(), fresh.id())
	}
	if fresh == old || IsAlive(w, old) || !IsAlive(w, fresh) {
		t.Fatal("expected stale handle to stay dead after reuse")
	}
	if Entity(0).Valid() || !fresh.Valid() {
		t.Fatal("unexpected validity")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponent[position]()
	hp := component.NewComponent[health]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_position",
			setup: func() error { return Add(w, e1, pos.Kind(), &position{X: 1, Y: 2}) },
			check: func(t *testing.T) {
				p, ok := Get(w, e1, pos.Kind())
				if !ok || p.X != 1 || p.Y != 2 {
					t.Fatalf("expected (1,2), got %v ok=%v", p, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, pos.Kind()) },
		},
		{
			name: "health_on_both",
			setup: func() error {
				if err := Add(w, e1, hp.Kind(), &health{HP: 5}); err != nil {
					return err
				}
				return Add(w, e2, hp.Kind(), &health{HP: 7})
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hp.Kind()) || !Has(w, e2, hp.Kind()) {
					t.Fatal("expected both entities to have health")
				}
				if Has(w, e2, pos.Kind()) {
					t.Fatal("did not expect position on e2")
				}
			},
			teardown: func() bool { return Remove(w, e1, hp.Kind()) },
		},
		{
			name:  "pointer_is_shared",
			setup: func() error { return Add(w, e2, pos.Kind(), &position{}) },
			check: func(t *testing.T) {
				p, _ := Get(w, e2, pos.Kind())
				p.X = 9
				again, _ := Get(w, e2, pos.Kind())
				if again.X != 9 {
					t.Fatal("expected Get to return the stored pointer")
				}
			},
			teardown: func() bool { return Remove(w, e2, pos.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponent[position]()
	e := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		err  error
		add  func() error
	}{
		{"nil_value", component.ErrNilComponent, func() error { return Add(w, e, pos.Kind(), nil) }},
		{"dead_entity", component.ErrEntityNotAlive, func() error { return Add(w, dead, pos.Kind(), &position{}) }},
		{"zero_kind", component.ErrInvalidComponentKind, func() error {
			return Add(w, e, component.ComponentKind[position]{}, &position{})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.add(); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponent[position]()
	e := CreateEntity(w)
	_ = Add(w, e, pos.Kind(), &position{X: 3})
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if Has(w, reused, pos.Kind()) {
		t.Fatal("expected recycled id to start without components")
	}
	if _, _, ok := First(w, pos.Kind()); ok {
		t.Fatal("expected no position left")
	}
}

func TestFirstAndQuery(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponent[position]()
	player := component.NewComponent[tag]()

	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, a, pos.Kind(), &position{X: 1})
	_ = Add(w, b, pos.Kind(), &position{X: 2})
	_ = Add(w, b, player.Kind(), &tag{})

	e, _, ok := First(w, player.Kind())
	if !ok || e != b {
		t.Fatalf("expected b as first tagged entity, got %v ok=%v", e, ok)
	}

	got := Query(w, pos.Kind().ID(), player.Kind().ID())
	if len(got) != 1 || got[0] != b {
		t.Fatalf("expected only b, got %v", got)
	}
	if Query(w) != nil {
		t.Fatal("expected empty query for no kinds")
	}
}

func TestForEachMutationSafe(t *testing.T) {
	w := NewWorld()
	hp := component.NewComponent[health]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), hp.Kind(), &health{HP: i})
	}

	visited := 0
	ForEach(w, hp.Kind(), func(e Entity, h *health) {
		visited++
		if h.HP%2 == 0 {
			DestroyEntity(w, e)
		}
	})
	if visited != 4 {
		t.Fatalf("expected to visit 4 entities, got %d", visited)
	}
	if n := len(Query(w, hp.Kind().ID())); n != 2 {
		t.Fatalf("expected 2 survivors, got %d", n)
	}
}

func TestForEachN(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	all := CreateEntity(w)
	two := CreateEntity(w)
	dead := CreateEntity(w)
	for _, k := range []component.ComponentKind[int]{ka, kb, kc, kd} {
		v := 1
		_ = Add(w, all, k, &v)
		_ = Add(w, dead, k, &v)
	}
	v := 2
	_ = Add(w, two, ka, &v)
	_ = Add(w, two, kb, &v)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		run  func() []Entity
		want int
	}{
		{"two", func() (res []Entity) {
			ForEach2(w, ka, kb, func(e Entity, _, _ *int) { res = append(res, e) })
			return
		}, 2},
		{"three", func() (res []Entity) {
			ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
			return
		}, 1},
		{"four", func() (res []Entity) {
			ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { res = append(res, e) })
			return
		}, 1},
		{"missing_store", func() (res []Entity) {
			ForEach2(w, ka, component.NewComponentKind[int](), func(e Entity, _, _ *int) { res = append(res, e) })
			return
		}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.run()
			if len(got) != tc.want {
				t.Fatalf("expected %d entities, got %v", tc.want, got)
			}
			for _, e := range got {
				if e == dead {
					t.Fatal("dead entity visited")
				}
			}
		})
	}
}

type countingSystem struct{ n *int }

func (s countingSystem) Update(*World) { *s.n++ }

func TestScheduler(t *testing.T) {
	var n int
	s := NewScheduler(countingSystem{&n}, nil, countingSystem{&n})
	s.Update(NewWorld())

	if n != 2 {
		t.Fatalf("expected both systems to run, got %d", n)
	}
	if names := s.Names(); len(names) != 2 || names[0] != "ecs.countingSystem" {
		t.Fatalf("unexpected names %v", names)
	}
}
