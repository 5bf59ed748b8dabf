// Package populate places monsters, objects, traps and the player onto a
// finished level. Instances live in an entity-component-system registry
// (github.com/bytearena/ecs) rather than raw parallel arrays, so a monster
// or object is a tagged entity with a Position component plus a Monster
// or Object component instead of a bare slice index.
package populate
