package graphics

import "unsafe"

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// ProcessInput polls the keyboard and updates the close flag.
	ProcessInput()
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// ProcAddress resolves an OpenGL entry point for the current context.
	ProcAddress(name string) unsafe.Pointer
}
