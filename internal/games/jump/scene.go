package jump

import (
	"time"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// EntityID identifies a visual entity in the Scene.
type EntityID uint64

// Kind tells the renderer how to draw an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindScoreUp
	KindParticle
	KindMainMenu
	KindGameOverMenu
	KindScoreboard
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindScoreUp:
		return "score-up"
	case KindParticle:
		return "particle"
	case KindMainMenu:
		return "main-menu"
	case KindGameOverMenu:
		return "game-over-menu"
	case KindScoreboard:
		return "scoreboard"
	default:
		return "unknown"
	}
}

// Entity is a spawned visual. Fields not meaningful for a kind stay zero.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec2
	Vel      core.Vec2     // Particles, units per second
	Width    float64       // Platforms
	Value    int           // Score-up amount, particle glyph variant
	Age      time.Duration // Transient visuals
	Lifetime time.Duration // Transient visuals
	Alpha    float64       // 1 = opaque, 0 = invisible
	Scale    float64       // 1 = rest size
}

// Scene is the set of live visual entities. Simulation code spawns and
// despawns entities and never depends on what the renderer does with them.
type Scene struct {
	nextID   EntityID
	entities []Entity
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{entities: make([]Entity, 0, 32)}
}

// Spawn adds an entity and returns its new ID. Alpha and Scale default to 1.
func (s *Scene) Spawn(e Entity) EntityID {
	s.nextID++
	e.ID = s.nextID
	if e.Alpha == 0 {
		e.Alpha = 1
	}
	if e.Scale == 0 {
		e.Scale = 1
	}
	s.entities = append(s.entities, e)
	return e.ID
}

// Despawn removes an entity. Unknown IDs are ignored.
func (s *Scene) Despawn(id EntityID) bool {
	for i := range s.entities {
		if s.entities[i].ID == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return true
		}
	}
	return false
}

// DespawnKind removes every entity of the given kind and returns how many were removed.
func (s *Scene) DespawnKind(k Kind) int {
	removed := 0
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Kind == k {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entities = kept
	return removed
}

// Update applies fn to the entity with the given ID, if it is alive.
func (s *Scene) Update(id EntityID, fn func(*Entity)) bool {
	for i := range s.entities {
		if s.entities[i].ID == id {
			fn(&s.entities[i])
			return true
		}
	}
	return false
}

// Retain calls keep for every entity of kind k and despawns those for which it returns false.
// keep may mutate the entity.
func (s *Scene) Retain(k Kind, keep func(*Entity) bool) {
	kept := s.entities[:0]
	for i := range s.entities {
		e := s.entities[i]
		if e.Kind == k && !keep(&e) {
			continue
		}
		kept = append(kept, e)
	}
	s.entities = kept
}

// Each calls fn for every entity of kind k in spawn order.
func (s *Scene) Each(k Kind, fn func(Entity)) {
	for _, e := range s.entities {
		if e.Kind == k {
			fn(e)
		}
	}
}

// Count returns the number of live entities of kind k.
func (s *Scene) Count(k Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.entities)
}
