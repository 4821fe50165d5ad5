package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/steering/ecs/component"
)

type position struct{ X, Y float64 }
type heading struct{ R float64 }
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
			e := ents[c.destroyIndex]
			if !DestroyEntity(w, e) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, e) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, e) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[position]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, &position{X: 1}); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must differ from the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("recycled entity inherited a component")
	}
	if !fresh.Valid() || Entity(0).Valid() {
		t.Fatalf("unexpected Valid results")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[position]()
	e := CreateEntity(w)

	if err := Add(w, e, component.ComponentKind[position]{}, &position{}); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(w, e, kind, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, kind, &position{}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentsAreStoredByPointer(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[position]()
	e := CreateEntity(w)

	if err := Add(w, e, kind, &position{X: 1}); err != nil {
		t.Fatal(err)
	}
	p, _ := Get(w, e, kind)
	p.X = 5

	again, ok := Get(w, e, kind)
	if !ok || again.X != 5 {
		t.Fatalf("expected mutation to stick, got %+v", again)
	}

	if err := Add(w, e, kind, &position{X: 9}); err != nil {
		t.Fatal(err)
	}
	replaced, _ := Get(w, e, kind)
	if replaced.X != 9 || Count(w, kind) != 1 {
		t.Fatalf("expected replacement in place, got %+v count=%d", replaced, Count(w, kind))
	}

	if !Remove(w, e, kind) || Remove(w, e, kind) {
		t.Fatalf("expected Remove to succeed once")
	}
}

func TestSingletonAndFirst(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[heading]()

	if _, ok := Singleton(w, kind); ok {
		t.Fatalf("expected no singleton in empty world")
	}

	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, a, kind, &heading{R: 1})
	_ = Add(w, b, kind, &heading{R: 2})

	first, ok := First(w, kind)
	if !ok || first != a {
		t.Fatalf("expected first entity %v, got %v", a, first)
	}
	h, _ := Singleton(w, kind)
	if h.R != 1 {
		t.Fatalf("expected singleton from first entity, got %v", h.R)
	}
}

func TestForEachSnapshotAllowsDestroy(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[tag]()
	for i := 0; i < 5; i++ {
		_ = Add(w, CreateEntity(w), kind, &tag{})
	}

	visited := 0
	ForEach(w, kind, func(e Entity, _ *tag) {
		visited++
		DestroyEntity(w, e)
	})

	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if Count(w, kind) != 0 || len(Query(w, kind)) != 0 {
		t.Fatalf("expected every entity destroyed")
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[position]()
	kb := component.NewComponentKind[heading]()
	kc := component.NewComponentKind[tag]()
	kd := component.NewComponentKind[int]()

	all := CreateEntity(w)
	partial := CreateEntity(w)
	_ = Add(w, all, ka, &position{})
	_ = Add(w, all, kb, &heading{})
	_ = Add(w, all, kc, &tag{})
	n := 4
	_ = Add(w, all, kd, &n)
	_ = Add(w, partial, ka, &position{})
	_ = Add(w, partial, kb, &heading{})

	var two, three, four []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *position, _ *heading) { two = append(two, e) })
	ForEach3(w, ka, kb, kc, func(e Entity, _ *position, _ *heading, _ *tag) { three = append(three, e) })
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *position, _ *heading, _ *tag, _ *int) { four = append(four, e) })

	if len(two) != 2 {
		t.Fatalf("ForEach2: expected 2 entities, got %v", two)
	}
	if len(three) != 1 || three[0] != all {
		t.Fatalf("ForEach3: expected only %v, got %v", all, three)
	}
	if len(four) != 1 || four[0] != all {
		t.Fatalf("ForEach4: expected only %v, got %v", all, four)
	}

	DestroyEntity(w, all)
	four = nil
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *position, _ *heading, _ *tag, _ *int) { four = append(four, e) })
	if len(four) != 0 {
		t.Fatalf("expected empty result after destroy, got %v", four)
	}
}

func TestForEachMissingStore(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[position]()
	kb := component.NewComponentKind[heading]()
	_ = Add(w, CreateEntity(w), ka, &position{})

	called := false
	ForEach2(w, ka, kb, func(Entity, *position, *heading) { called = true })
	if called {
		t.Fatalf("expected no visits when a store is missing")
	}
}

type countingSystem struct {
	updates int
	pushed  int
}

func (s *countingSystem) Update(w *World) {
	s.updates++
	s.pushed = w.Events().Len()
	w.Events().Push(Event{Type: "tick"})
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	sched := NewScheduler(sys, nil)

	sched.Update(w)
	sched.Update(w)

	if sys.updates != 2 {
		t.Fatalf("expected 2 updates, got %d", sys.updates)
	}
	if sys.pushed != 0 {
		t.Fatalf("expected events flushed between passes, saw %d", sys.pushed)
	}
	if len(sched.Systems()) != 1 {
		t.Fatalf("nil system should not be registered")
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventPathRecalculated})
	q.Push(Event{Type: EventPathExhausted})

	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventPathRecalculated {
		t.Fatalf("unexpected drain result %v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}
