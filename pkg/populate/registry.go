package populate

import (
	"github.com/bytearena/ecs"
	"github.com/google/uuid"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
)

// PositionData is the Position component payload: where an entity sits on
// the level grid.
type PositionData struct {
	X, Y int
}

// MonsterData is the Monster component payload.
type MonsterData struct {
	Race       profiles.RaceProfile
	DebugID    uuid.UUID
	SleepDepth int // turns until the monster wakes; 0 means already awake
}

// ObjectData is the Object component payload.
type ObjectData struct {
	Kind     ObjectKind
	GoldValue int
	DebugID  uuid.UUID
}

// ObjectKind distinguishes the handful of object placements this generator
// is responsible for (full item generation belongs to the rest of the
// game; this module only decides where loot goes and how much gold).
type ObjectKind string

const (
	ObjectGold    ObjectKind = "gold"
	ObjectGeneric ObjectKind = "item"
)

// Registry wraps an ECS world holding every monster and object instance
// placed on one level.
type Registry struct {
	World    *ecs.Manager
	Position *ecs.Component
	Monster  *ecs.Component
	Object   *ecs.Component

	MonsterTag ecs.Tag
	ObjectTag  ecs.Tag
}

// NewRegistry allocates an empty entity registry for one level's worth of
// content.
func NewRegistry() *Registry {
	world := ecs.NewManager()
	reg := &Registry{
		World:    world,
		Position: world.NewComponent(),
		Monster:  world.NewComponent(),
		Object:   world.NewComponent(),
	}
	reg.MonsterTag = ecs.BuildTag(reg.Monster, reg.Position)
	reg.ObjectTag = ecs.BuildTag(reg.Object, reg.Position)
	return reg
}

// SpawnMonster creates a monster entity at p and links the cell's
// MonsterIdx to it so the grid can be walked back to its ECS entity. The
// cell stores the entity ID plus one, since a MonsterIdx of 0 means empty.
func (reg *Registry) SpawnMonster(l *cave.Level, p cave.Point, race profiles.RaceProfile, asleep bool) ecs.EntityID {
	e := reg.World.NewEntity()
	sleepDepth := 0
	if asleep {
		sleepDepth = race.Level + 1
	}
	e.AddComponent(reg.Position, &PositionData{X: p.X, Y: p.Y})
	e.AddComponent(reg.Monster, &MonsterData{Race: race, DebugID: uuid.New(), SleepDepth: sleepDepth})

	id := e.GetID()
	c := l.At(p.X, p.Y)
	c.MonsterIdx = int(id) + 1
	l.Set(p.X, p.Y, *c)
	return id
}

// SpawnObject creates an object entity at p (gold or a generic item stub)
// and links it into the cell's ObjectIdx, stored as the entity ID plus one
// since an ObjectIdx of 0 means empty.
func (reg *Registry) SpawnObject(l *cave.Level, p cave.Point, kind ObjectKind, goldValue int) ecs.EntityID {
	e := reg.World.NewEntity()
	e.AddComponent(reg.Position, &PositionData{X: p.X, Y: p.Y})
	e.AddComponent(reg.Object, &ObjectData{Kind: kind, GoldValue: goldValue, DebugID: uuid.New()})

	id := e.GetID()
	c := l.At(p.X, p.Y)
	c.ObjectIdx = int(id) + 1
	l.Set(p.X, p.Y, *c)
	return id
}

// Monsters returns every monster entity currently registered.
func (reg *Registry) Monsters() []*ecs.Entity {
	var out []*ecs.Entity
	for _, res := range reg.World.Query(reg.MonsterTag) {
		out = append(out, res.Entity)
	}
	return out
}

// Objects returns every object entity currently registered.
func (reg *Registry) Objects() []*ecs.Entity {
	var out []*ecs.Entity
	for _, res := range reg.World.Query(reg.ObjectTag) {
		out = append(out, res.Entity)
	}
	return out
}
