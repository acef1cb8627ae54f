package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fps/ecs/component"
)

var defaultBindings = map[component.Key][]ebiten.Key{
	component.KeyForward:     {ebiten.KeyW, ebiten.KeyArrowUp},
	component.KeyBack:        {ebiten.KeyS, ebiten.KeyArrowDown},
	component.KeyStrafeLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	component.KeyStrafeRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	component.KeyJump:        {ebiten.KeySpace},
}

// Input reads held keys from ebiten for the input system.
type Input struct {
	bindings      map[component.Key][]ebiten.Key
	width, height int
}

func NewInput(width, height int) *Input {
	return &Input{bindings: defaultBindings, width: width, height: height}
}

func (i *Input) Pressed(k component.Key) bool {
	for _, key := range i.bindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (i *Input) Viewport() (float64, float64) {
	return float64(i.width), float64(i.height)
}

func (i *Input) SetViewport(width, height int) {
	i.width, i.height = width, height
}
