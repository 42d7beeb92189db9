// Package cantus is the procedural rendering core of an animated
// on-screen music control panel.
//
// # Overview
//
// The panel is not a widget tree. Every frame the host rebuilds a small
// immutable scalar bundle ([FrameState]) plus per-entity instance lists
// (pills, icons, glyphs, particles), and the core turns those into
// anti-aliased pixels through a fixed sequence of compositing passes:
//
//	background warp -> pills -> icons -> playhead/particles -> text
//
// Each pass is a pure function from (frame state, instance, pixel
// position) to a premultiplied color and a coverage value. There is no
// cross-frame simulation state: every animated quantity is recomputed
// from current time minus a recorded timestamp, so dropped frames simply
// re-evaluate at the later instant and any point in time can be queried
// in isolation.
//
// # Packages
//
//   - cantus: SDF primitive library, turbulence color synthesis,
//     envelope animation model, frame/instance data model, and the
//     per-pass pixel evaluators
//   - render: render targets, texture resources, and the compositor
//     that runs the pass order over a pixel buffer
//   - text: shapes strings into glyph instances against an MSDF atlas
//   - config: panel geometry and theme settings (TOML)
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin at top-left, X right,
// Y down, units are physical pixels scaled by [FrameState.Scale].
package cantus
