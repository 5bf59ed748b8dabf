// Package lighting sets the Glow flag: LightArea over a rectangle (the
// director applies it to every rooms-and-corridors room's footprint) and
// LightRoom around a point (the director applies it to the player's start
// cell). Circular rooms and the town's daytime plaza get their Glow from
// their own builders, not from this package. LightRoom uses a single
// field-of-view sweep (github.com/norendren/go-fov)
// per light source rather than hand-rolled raycasting, the same library
// and Compute/IsVisible call shape the reference roguelike's map package
// uses for the player's own view.
package lighting
