// Package paint holds the paint-layer compositor at the heart of quill.
//
// During a frame, widgets append shapes into the PaintList of the layer
// they are drawing to, addressed by a LayerID (an Order category plus a
// user id). At the end of the frame, GraphicLayers.Drain flattens every
// layer into a single globally ordered sequence of clipped shapes, in
// Order category first (Background painted first, Debug last), then in
// the caller-supplied area order within each category, applying each
// layer's local-to-global transform along the way.
//
// Layers that received no shapes since the previous drain are pruned at
// the start of the next one, so transient layers (a tooltip shown once)
// do not leak memory. Layers that did receive shapes keep their buffer
// slot between frames, so steady-state frames reallocate nothing.
//
// None of the types in this package are safe for concurrent use: a
// GraphicLayers instance is exclusively owned by one frame-building
// pipeline at a time.
package paint
