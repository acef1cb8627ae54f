package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
)

// InputSource is what the host exposes about held controls. Pointer motion
// arrives separately as ecs.EventPointerMotion events.
type InputSource interface {
	Pressed(k component.Key) bool
	Viewport() (width, height float64)
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var look mgl64.Vec2
	for _, evt := range w.Events().Drain(ecs.EventPointerMotion) {
		if motion, ok := evt.Data.(ecs.PointerMotion); ok {
			look = look.Add(motion.Delta)
		}
	}

	var held [component.KeyCount]bool
	var windowScale float64
	if i.source != nil {
		for k := component.Key(0); k < component.KeyCount; k++ {
			held[k] = i.source.Pressed(k)
		}
		width, height := i.source.Viewport()
		windowScale = math.Min(width, height)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Look = look
		input.WindowScale = windowScale
		input.Held = held
		input.Jump = held[component.KeyJump]
	})
}
