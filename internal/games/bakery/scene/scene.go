// Package scene is an in-memory entity table with parent/child transforms.
// It is the world the bakery simulation spawns into and the renderer reads
// from.
package scene

import (
	"sort"

	"github.com/vovakirdan/tui-bakery/internal/core"
	"github.com/vovakirdan/tui-bakery/internal/games/bakery/sim"
)

// Entity is one node of the scene. Local and Scale are relative to the
// parent, or world values for a root entity.
type Entity struct {
	ID     sim.EntityID
	Kind   sim.Kind
	Visual sim.Visual
	Tags   []string
	Local  core.Vec3
	Scale  float64
	Parent sim.EntityID

	children []sim.EntityID
}

// HasTag reports whether the entity was spawned with tag.
func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Drawable is an entity resolved to world space.
type Drawable struct {
	ID     sim.EntityID
	Kind   sim.Kind
	Visual sim.Visual
	Pos    core.Vec3
	Scale  float64
}

// Size returns the drawn size of the entity.
func (d Drawable) Size() core.Vec2 {
	return d.Visual.Size.Scale(d.Scale)
}

// Store implements sim.World.
type Store struct {
	next sim.EntityID
	ents map[sim.EntityID]*Entity
}

var _ sim.World = (*Store)(nil)

// New creates an empty scene.
func New() *Store {
	return &Store{ents: make(map[sim.EntityID]*Entity)}
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.ents)
}

// Get returns a copy of the entity.
func (s *Store) Get(id sim.EntityID) (Entity, bool) {
	e, ok := s.ents[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Children returns the direct children of id in attach order.
func (s *Store) Children(id sim.EntityID) []sim.EntityID {
	e, ok := s.ents[id]
	if !ok {
		return nil
	}
	return append([]sim.EntityID(nil), e.children...)
}

// Spawn adds a root entity at a world position.
func (s *Store) Spawn(kind sim.Kind, pos core.Vec3, v sim.Visual, tags ...string) sim.EntityID {
	s.next++
	s.ents[s.next] = &Entity{
		ID:     s.next,
		Kind:   kind,
		Visual: v,
		Tags:   tags,
		Local:  pos,
		Scale:  1,
	}
	return s.next
}

// Despawn removes one entity. Its children become roots, keeping their
// world position.
func (s *Store) Despawn(id sim.EntityID) {
	e, ok := s.ents[id]
	if !ok {
		return
	}
	for _, cid := range e.children {
		c := s.ents[cid]
		c.Local, c.Scale = s.WorldTransform(cid)
		c.Parent = sim.NoEntity
	}
	s.detach(e)
	delete(s.ents, id)
}

// DespawnRecursive removes an entity and all its descendants.
func (s *Store) DespawnRecursive(id sim.EntityID) {
	e, ok := s.ents[id]
	if !ok {
		return
	}
	s.detach(e)
	s.drop(e)
}

func (s *Store) drop(e *Entity) {
	for _, cid := range e.children {
		if c, ok := s.ents[cid]; ok {
			s.drop(c)
		}
	}
	delete(s.ents, e.ID)
}

func (s *Store) detach(e *Entity) {
	p, ok := s.ents[e.Parent]
	if !ok {
		return
	}
	for i, cid := range p.children {
		if cid == e.ID {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
}

// Reparent attaches child under parent, or makes it a root when parent is
// NoEntity. The local transform is kept as is. Attaching an entity under
// itself or one of its descendants is ignored.
func (s *Store) Reparent(child, parent sim.EntityID) {
	c, ok := s.ents[child]
	if !ok {
		return
	}
	if parent != sim.NoEntity {
		if _, ok := s.ents[parent]; !ok {
			return
		}
		for p := parent; p != sim.NoEntity; p = s.ents[p].Parent {
			if p == child {
				return
			}
		}
	}

	s.detach(c)
	c.Parent = parent
	if parent != sim.NoEntity {
		p := s.ents[parent]
		p.children = append(p.children, child)
	}
}

// SetLocalTransform moves an entity relative to its parent.
func (s *Store) SetLocalTransform(id sim.EntityID, pos core.Vec3, scale float64) {
	if e, ok := s.ents[id]; ok {
		e.Local = pos
		e.Scale = scale
	}
}

// WorldTransform resolves an entity's position and scale in world space.
func (s *Store) WorldTransform(id sim.EntityID) (core.Vec3, float64) {
	e, ok := s.ents[id]
	if !ok {
		return core.Vec3{}, 0
	}
	if e.Parent == sim.NoEntity {
		return e.Local, e.Scale
	}
	ppos, pscale := s.WorldTransform(e.Parent)
	return ppos.Add(e.Local.Scale(pscale)), pscale * e.Scale
}

// Drawables returns every entity in world space, back to front: ordered by
// Z, then by spawn order.
func (s *Store) Drawables() []Drawable {
	out := make([]Drawable, 0, len(s.ents))
	for id, e := range s.ents {
		pos, scale := s.WorldTransform(id)
		out = append(out, Drawable{ID: id, Kind: e.Kind, Visual: e.Visual, Pos: pos, Scale: scale})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Z != out[j].Pos.Z {
			return out[i].Pos.Z < out[j].Pos.Z
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Find returns the ids of entities carrying tag, in spawn order.
func (s *Store) Find(tag string) []sim.EntityID {
	var ids []sim.EntityID
	for id, e := range s.ents {
		if e.HasTag(tag) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
