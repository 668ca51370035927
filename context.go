package quill

import (
	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
	"github.com/quillui/quill/storage"
)

// OpenURL is a request to open a hyperlink target.
type OpenURL struct {
	URL string

	// NewTab asks for the link to open in a new browser tab.
	NewTab bool
}

// Context owns the per-frame state shared by every widget: the graphic
// layers, the style, value animations, and the optional persisted
// storage. It is passed explicitly through the widget tree; there is no
// global instance.
//
// A Context persists between frames (retaining per-layer paint buffers
// and animation state) and is exclusively owned by one frame pipeline.
// It is not safe for concurrent use.
type Context struct {
	layers *paint.GraphicLayers
	style  *Style
	anims  *animationManager
	store  storage.Storage

	openURL func(OpenURL)

	frameNr uint64
}

// NewContext returns a ready-to-use Context with the default style.
func NewContext() *Context {
	return &Context{
		layers: paint.NewGraphicLayers(),
		style:  DefaultStyle(),
		anims:  newAnimationManager(),
	}
}

// BeginFrame starts a new frame. dt is the time since the previous frame
// in seconds; it drives value animations.
func (c *Context) BeginFrame(dt float32) {
	c.frameNr++
	c.anims.update(dt)
}

// EndFrame finishes the frame: every layer is drained into a single
// flattened sequence of clipped shapes in final paint order, ready for a
// rendering backend.
//
// areaOrder is the desired stacking of known floating areas, most
// recently focused last; toGlobal maps floating layers to their
// local-to-global transforms. Both come from the area manager embedding
// quill and may be nil. See paint.GraphicLayers.Drain.
//
// The returned buffer comes from a pool; hand it back with
// ReleaseShapes once the backend no longer needs it to keep a
// steady-state frame loop allocation-free.
func (c *Context) EndFrame(
	areaOrder []paint.LayerID,
	toGlobal map[paint.LayerID]geom.TSTransform,
) []paint.ClippedShape {
	return c.layers.DrainInto(paint.GetShapeBuffer(), areaOrder, toGlobal)
}

// ReleaseShapes returns a buffer obtained from EndFrame to the pool.
// The shapes must not be used afterwards.
func (c *Context) ReleaseShapes(shapes []paint.ClippedShape) {
	paint.PutShapeBuffer(shapes)
}

// FrameNr returns the number of frames begun so far.
func (c *Context) FrameNr() uint64 {
	return c.frameNr
}

// Layers exposes the graphic layers, the write target for painters.
func (c *Context) Layers() *paint.GraphicLayers {
	return c.layers
}

// Style returns the context's style. Mutating it affects subsequent
// widgets.
func (c *Context) Style() *Style {
	return c.style
}

// SetStyle replaces the context's style.
func (c *Context) SetStyle(s *Style) {
	if s != nil {
		c.style = s
	}
}

// Painter returns a painter targeting the given layer, clipped to clipRect.
func (c *Context) Painter(layerID paint.LayerID, clipRect geom.Rect) *Painter {
	return &Painter{
		layers:   c.layers,
		layerID:  layerID,
		clipRect: clipRect,
	}
}

// DebugPainter returns a painter for the always-on-top debug overlay,
// without any clipping.
func (c *Context) DebugPainter() *Painter {
	return c.Painter(paint.DebugLayer(), geom.EverythingRect())
}

// AnimateBool returns a value moving towards 1 if target is true and
// towards 0 if it is false, over Style.AnimationTime seconds. The first
// call for an id snaps straight to the target.
//
// Call it with the same id every frame to animate e.g. a hover highlight.
func (c *Context) AnimateBool(id ID, target bool) float32 {
	var v float32
	if target {
		v = 1
	}
	return c.anims.animate(id, v, c.style.AnimationTime)
}

// AnimateValue returns a value moving towards target over the given
// duration in seconds. The first call for an id snaps straight to the
// target.
func (c *Context) AnimateValue(id ID, target, duration float32) float32 {
	return c.anims.animate(id, target, duration)
}

// SetStorage attaches a persisted key-value store to the context.
func (c *Context) SetStorage(s storage.Storage) {
	c.store = s
}

// PersistString stores a value in the attached storage, if any.
func (c *Context) PersistString(key, value string) {
	if c.store != nil {
		c.store.SetString(key, value)
	}
}

// PersistedString returns a value from the attached storage, if any.
func (c *Context) PersistedString(key string) (string, bool) {
	if c.store == nil {
		return "", false
	}
	return c.store.GetString(key)
}

// SaveState flushes the attached storage, if any.
func (c *Context) SaveState() {
	if c.store != nil {
		c.store.Flush()
	}
}

// SetOpenURLHandler installs the callback invoked by OpenURL.
// quill does no input handling itself; the embedder decides when a
// hyperlink was activated and calls OpenURL.
func (c *Context) SetOpenURLHandler(f func(OpenURL)) {
	c.openURL = f
}

// OpenURL requests opening a hyperlink target through the installed
// handler. Without a handler it logs and does nothing.
func (c *Context) OpenURL(req OpenURL) {
	if c.openURL == nil {
		Logger().Warn("OpenURL called without a handler", "url", req.URL)
		return
	}
	c.openURL(req)
}
