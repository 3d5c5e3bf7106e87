package glfwcontext

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"unsafe"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	options "github.com/richinsley/goopengltest/options"
)

// ErrWindowCreation is returned when GLFW cannot create the window or its context.
var ErrWindowCreation = errors.New("failed to create the GLFW window")

// setViewport is swapped out in tests, where no GL context exists.
var setViewport = func(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// keyWindow is the part of *glfw.Window used for keyboard polling.
type keyWindow interface {
	GetKey(key glfw.Key) glfw.Action
	SetShouldClose(value bool)
}

type Context struct {
	window *glfw.Window
}

// New opens the demo window with a current OpenGL 3.3 core context and vsync applied.
// A hidden window is created when visible is false, which is enough for offscreen rendering.
func New(options *options.DemoOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}

	c := &Context{window: win}
	c.MakeCurrent()
	glfw.SwapInterval(*options.SwapInterval)
	win.SetFramebufferSizeCallback(framebufferSizeCallback)

	return c, nil
}

// framebufferSizeCallback keeps the viewport covering the whole framebuffer.
func framebufferSizeCallback(_ *glfw.Window, width, height int) {
	setViewport(0, 0, int32(width), int32(height))
}

// processInput requests the window to close once Escape is held down.
func processInput(w keyWindow) {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (c *Context) ProcessInput() {
	processInput(c.window)
}

// MakeCurrent binds the window's GL context to the calling OS thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window together with its GL context.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

// ShouldClose reports the close flag set by Escape or the window manager.
func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame presents the back buffer, blocking on vsync when a swap interval is
// set, then handles pending window events.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

// GetFramebufferSize returns the drawable size in pixels, which can differ
// from the window size on HiDPI displays.
func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Time returns seconds since GLFW was initialized.
func (c *Context) Time() float64 {
	return glfw.GetTime()
}

func (c *Context) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// InitGraphics pins the caller to its OS thread and starts GLFW. Window and
// GL calls must all come from that thread afterwards.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW ready (version %s)", glfw.GetVersionString())
	return nil
}

// TerminateGraphics releases every remaining window and GLFW itself.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW shut down")
}
