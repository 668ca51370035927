package quill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// animationManager drives the per-id value animations behind
// Context.AnimateBool and Context.AnimateValue.
//
// Each id owns at most one tween. Tweens advance once per frame, in
// BeginFrame; querying an animation any number of times within a frame
// returns the same value.
type animationManager struct {
	anims map[ID]*anim
}

type anim struct {
	tween  *gween.Tween
	value  float32
	target float32
}

func newAnimationManager() *animationManager {
	return &animationManager{anims: make(map[ID]*anim)}
}

// update advances all running tweens by dt seconds.
func (m *animationManager) update(dt float32) {
	for _, a := range m.anims {
		if a.tween == nil {
			continue
		}
		v, finished := a.tween.Update(dt)
		a.value = v
		if finished {
			a.tween = nil
		}
	}
}

// animate returns the current value for id, retargeting the tween if the
// target changed. The first time an id is seen its value snaps directly
// to the target, so things do not animate into place on their first
// frame of existence.
func (m *animationManager) animate(id ID, target, duration float32) float32 {
	a, ok := m.anims[id]
	if !ok {
		a = &anim{value: target, target: target}
		m.anims[id] = a
		return a.value
	}
	if a.target != target {
		a.target = target
		a.tween = gween.New(a.value, target, duration, ease.OutQuad)
	}
	return a.value
}
