package ecs

import "github.com/milk9111/steering/ecs/component"

// ForEach visits every entity carrying a. The entity list is snapshotted, so
// fn may add, remove or destroy entities while iterating.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil || fn == nil {
		return
	}
	for _, e := range snapshot(sa.dense) {
		va, ok := sa.get(e)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range snapshot(sa.dense) {
		va, ok := sa.get(e)
		if !ok {
			continue
		}
		vb, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, va, vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	sc := storeFor(w, c, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range snapshot(sa.dense) {
		va, ok := sa.get(e)
		if !ok {
			continue
		}
		vb, ok := sb.get(e)
		if !ok {
			continue
		}
		vc, ok := sc.get(e)
		if !ok {
			continue
		}
		fn(e, va, vb, vc)
	}
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	sc := storeFor(w, c, false)
	sd := storeFor(w, d, false)
	if sa == nil || sb == nil || sc == nil || sd == nil || fn == nil {
		return
	}
	for _, e := range snapshot(sa.dense) {
		va, ok := sa.get(e)
		if !ok {
			continue
		}
		vb, ok := sb.get(e)
		if !ok {
			continue
		}
		vc, ok := sc.get(e)
		if !ok {
			continue
		}
		vd, ok := sd.get(e)
		if !ok {
			continue
		}
		fn(e, va, vb, vc, vd)
	}
}

// Query returns the entities carrying a, in storage order.
func Query[A any](w *World, a component.ComponentKind[A]) []Entity {
	sa := storeFor(w, a, false)
	if sa == nil {
		return nil
	}
	return snapshot(sa.dense)
}

func snapshot(ents []Entity) []Entity {
	if len(ents) == 0 {
		return nil
	}
	return append([]Entity(nil), ents...)
}
