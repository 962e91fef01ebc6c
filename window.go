package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"dashrun/input"
)

var bindings = map[input.Action]glfw.Key{
	input.MoveForward: glfw.KeyW,
	input.MoveBack:    glfw.KeyS,
	input.MoveLeft:    glfw.KeyA,
	input.MoveRight:   glfw.KeyD,
	input.Sprint:      glfw.KeyLeftShift,
	input.Jump:        glfw.KeySpace,
	input.DebugText:   glfw.KeyE,
}

// windowSource reads controls straight from a glfw window.
type windowSource struct {
	win *glfw.Window
}

func (s windowSource) Down(a input.Action) bool {
	key, ok := bindings[a]
	if !ok {
		return false
	}
	return s.win.GetKey(key) == glfw.Press
}

func (s windowSource) CursorPos() (float64, float64) {
	return s.win.GetCursorPos()
}
