// Package quill is an immediate-mode GUI paint core for Go.
//
// # Overview
//
// quill models the logical side of an immediate-mode GUI: which shapes
// exist, in what order, in what coordinate space, and how they are
// flattened into a single paint-ready sequence each frame. Widgets paint
// into per-layer shape lists through a Painter; at the end of the frame
// the Context drains every layer into one globally ordered sequence that
// a rendering backend of your choice turns into pixels.
//
// # Quick start
//
//	ctx := quill.NewContext()
//	ctx.BeginFrame(dt)
//
//	ui := quill.NewUi(ctx, paint.BackgroundLayer(), screenRect)
//	ui.Label("Hello")
//	ui.Button("Click me")
//
//	shapes := ctx.EndFrame(areaOrder, toGlobal)
//	// hand shapes to a renderer, e.g. the render package
//
// # Layers
//
// Every shape belongs to a layer, identified by an Order category
// (Background, Middle, Foreground, Tooltip, Debug) plus a user id.
// Categories paint back to front; within a category, floating areas
// paint in the order the caller supplies to EndFrame, so the most
// recently focused window can be drawn on top. See the paint package.
//
// # Scope
//
// quill deliberately owns no GPU pipeline, no text shaping, and no event
// handling. Text travels as an opaque shape with estimated metrics; the
// render package provides a software debug backend.
//
// # Logging
//
// quill produces no log output by default. Call SetLogger to enable it;
// the logger is propagated to all sub-packages.
package quill
