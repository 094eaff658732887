package ecs

import (
	"context"
	"sort"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds the retained UI nodes as component maps
type World struct {
	nextID EntityID

	// Components
	Transform map[EntityID]Transform
	Text      map[EntityID]Text
	Panel     map[EntityID]Panel
	Button    map[EntityID]Button
	Owner     map[EntityID]string

	// Tags
	IsStateLabel map[EntityID]struct{}
	IsFPSText    map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:       1, // 0 is "nil"
		Transform:    make(map[EntityID]Transform),
		Text:         make(map[EntityID]Text),
		Panel:        make(map[EntityID]Panel),
		Button:       make(map[EntityID]Button),
		Owner:        make(map[EntityID]string),
		IsStateLabel: make(map[EntityID]struct{}),
		IsFPSText:    make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Transform, id)
	delete(w.Text, id)
	delete(w.Panel, id)
	delete(w.Button, id)
	delete(w.Owner, id)
	delete(w.IsStateLabel, id)
	delete(w.IsFPSText, id)
}

// Exists checks if an entity has a Transform component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Transform[id]
	return ok
}

// SpawnText creates a text node. owner is the view that despawns it; an
// empty owner marks a persistent node.
func (w *World) SpawnText(owner string, tf Transform, text Text) EntityID {
	id := w.NewEntity()
	w.Transform[id] = tf
	w.Text[id] = text
	w.setOwner(id, owner)
	return id
}

// SpawnPanel creates a filled rectangle node
func (w *World) SpawnPanel(owner string, tf Transform, panel Panel) EntityID {
	id := w.NewEntity()
	w.Transform[id] = tf
	w.Panel[id] = panel
	w.setOwner(id, owner)
	return id
}

// SpawnButton creates a panel with a centred label that issues command
// when clicked
func (w *World) SpawnButton(owner string, tf Transform, panel Panel, label Text, command string) EntityID {
	id := w.SpawnPanel(owner, tf, panel)
	w.Button[id] = Button{Label: label.String(), Command: command}
	w.Text[id] = label
	return id
}

// DespawnOwned destroys every node spawned by owner and returns how many
// were removed
func (w *World) DespawnOwned(owner string) int {
	n := 0
	for id, o := range w.Owner {
		if o == owner {
			w.DestroyEntity(id)
			n++
		}
	}
	return n
}

// Owned returns the IDs spawned by owner in spawn order
func (w *World) Owned(owner string) []EntityID {
	var ids []EntityID
	for id, o := range w.Owner {
		if o == owner {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Entities returns every live entity in spawn order
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.Transform))
	for id := range w.Transform {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.Transform)
}

func (w *World) setOwner(id EntityID, owner string) {
	if owner != "" {
		w.Owner[id] = owner
	}
}

type worldKey struct{}

// NewContext returns a copy of ctx carrying w. Lifecycle hooks use it to
// reach the host's UI world.
func NewContext(ctx context.Context, w *World) context.Context {
	return context.WithValue(ctx, worldKey{}, w)
}

// FromContext returns the world stored in ctx, if any
func FromContext(ctx context.Context) (*World, bool) {
	w, ok := ctx.Value(worldKey{}).(*World)
	return w, ok && w != nil
}
