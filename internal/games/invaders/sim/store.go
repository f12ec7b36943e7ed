package sim

// Handle identifies an entity. Handles are never reused within a store and
// the zero handle is never issued.
type Handle uint64

// Kind classifies an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindLaser
	KindExplosion
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindLaser:
		return "laser"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Origin tells who fired a laser.
type Origin int

const (
	OriginPlayer Origin = iota
	OriginEnemy
)

// Direction returns the vertical travel sign: player lasers go up, enemy lasers down.
func (o Origin) Direction() float64 {
	if o == OriginEnemy {
		return -1
	}
	return 1
}

// Draw layers by kind. Lasers and explosions sit above ships.
const (
	LayerShip      float64 = 10
	LayerLaser     float64 = 20
	LayerExplosion float64 = 30
)

// LayerOf returns the static z-order for a kind.
func LayerOf(k Kind) float64 {
	switch k {
	case KindLaser:
		return LayerLaser
	case KindExplosion:
		return LayerExplosion
	default:
		return LayerShip
	}
}

// Transform holds position, draw layer and scale.
// A negative ScaleY flips the sprite vertically.
type Transform struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
}

// Entity is the attribute record for one live entity.
type Entity struct {
	Handle    Handle
	Kind      Kind
	Origin    Origin // Lasers only
	Transform Transform
	Speed     float64

	ReadyToFire bool // Player only: fire debounce

	Frame int   // Explosion only: current animation frame
	Timer *Gate // Explosion only: frame advance timer
}

// Sprite returns the sprite used to size this entity's collision box.
func (e *Entity) Sprite() Sprite {
	switch e.Kind {
	case KindEnemy:
		return SpriteEnemy
	case KindLaser:
		if e.Origin == OriginEnemy {
			return SpriteEnemyLaser
		}
		return SpritePlayerLaser
	default:
		return SpritePlayer
	}
}

// Store owns every live entity. Creations and removals requested during a
// tick are buffered and applied by Flush, so systems always iterate a
// consistent set.
type Store struct {
	next     Handle
	entities []Entity
	index    map[Handle]int

	spawns   []Entity
	despawns []Handle
	doomed   map[Handle]bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entities: make([]Entity, 0, 32),
		index:    make(map[Handle]int),
		doomed:   make(map[Handle]bool),
	}
}

// Spawn buffers the creation of e and returns its handle. The entity becomes
// visible to queries after the next Flush. The layer is set from the kind.
func (s *Store) Spawn(e Entity) Handle {
	s.next++
	e.Handle = s.next
	e.Transform.Z = LayerOf(e.Kind)
	s.spawns = append(s.spawns, e)
	return e.Handle
}

// Despawn buffers the removal of h. Repeated calls within a tick are no-ops.
func (s *Store) Despawn(h Handle) {
	if s.doomed[h] {
		return
	}
	s.doomed[h] = true
	s.despawns = append(s.despawns, h)
}

// Despawning reports whether h has a removal buffered for this tick.
func (s *Store) Despawning(h Handle) bool {
	return s.doomed[h]
}

// Flush applies buffered removals, then buffered creations. Surviving
// entities keep their relative order; new ones are appended in spawn order.
func (s *Store) Flush() {
	if len(s.despawns) > 0 {
		kept := s.entities[:0]
		for _, e := range s.entities {
			if !s.doomed[e.Handle] {
				kept = append(kept, e)
			}
		}
		// Zero the tail so removed timers are not retained.
		for i := len(kept); i < len(s.entities); i++ {
			s.entities[i] = Entity{}
		}
		s.entities = kept
	}

	for _, e := range s.spawns {
		if !s.doomed[e.Handle] {
			s.entities = append(s.entities, e)
		}
	}

	s.reindex()
	s.spawns = s.spawns[:0]
	s.despawns = s.despawns[:0]
	clear(s.doomed)
}

// reindex rebuilds the handle lookup table.
func (s *Store) reindex() {
	clear(s.index)
	for i := range s.entities {
		s.index[s.entities[i].Handle] = i
	}
}

// Get returns the live entity for h. The pointer is valid until the next Flush.
func (s *Store) Get(h Handle) (*Entity, bool) {
	i, ok := s.index[h]
	if !ok {
		return nil, false
	}
	return &s.entities[i], true
}

// Each calls fn for every live entity of the given kind, in creation order.
// fn may call Spawn and Despawn; the changes apply at the next Flush.
func (s *Store) Each(kind Kind, fn func(e *Entity)) {
	for i := range s.entities {
		if s.entities[i].Kind == kind {
			fn(&s.entities[i])
		}
	}
}

// First returns the first live entity of the given kind.
func (s *Store) First(kind Kind) (*Entity, bool) {
	for i := range s.entities {
		if s.entities[i].Kind == kind {
			return &s.entities[i], true
		}
	}
	return nil, false
}

// Lasers calls fn for every live laser fired by origin.
func (s *Store) Lasers(origin Origin, fn func(e *Entity)) {
	s.Each(KindLaser, func(e *Entity) {
		if e.Origin == origin {
			fn(e)
		}
	})
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for i := range s.entities {
		if s.entities[i].Kind == kind {
			n++
		}
	}
	return n
}

// All returns the live entities in creation order. The slice must not be modified.
func (s *Store) All() []Entity {
	return s.entities
}
