package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

type fakeWindow struct {
	keys        map[glfw.Key]glfw.Action
	shouldClose bool
	polled      []glfw.Key
}

func (w *fakeWindow) GetKey(key glfw.Key) glfw.Action {
	w.polled = append(w.polled, key)
	return w.keys[key]
}

func (w *fakeWindow) SetShouldClose(value bool) {
	w.shouldClose = value
}

func TestProcessInputEscapeClosesWindow(t *testing.T) {
	w := &fakeWindow{keys: map[glfw.Key]glfw.Action{glfw.KeyEscape: glfw.Press}}
	processInput(w)
	if !w.shouldClose {
		t.Error("expected Escape to set the close flag")
	}
}

func TestProcessInputIgnoresOtherKeys(t *testing.T) {
	tests := []struct {
		name string
		keys map[glfw.Key]glfw.Action
	}{
		{"nothing pressed", nil},
		{"escape released", map[glfw.Key]glfw.Action{glfw.KeyEscape: glfw.Release}},
		{"space pressed", map[glfw.Key]glfw.Action{glfw.KeySpace: glfw.Press}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWindow{keys: tt.keys}
			processInput(w)
			if w.shouldClose {
				t.Error("close flag set without Escape")
			}
			if len(w.polled) != 1 || w.polled[0] != glfw.KeyEscape {
				t.Errorf("expected only Escape to be polled, got %v", w.polled)
			}
		})
	}
}

func TestFramebufferSizeCallbackSetsViewport(t *testing.T) {
	saved := setViewport
	defer func() { setViewport = saved }()

	var got [4]int32
	calls := 0
	setViewport = func(x, y, width, height int32) {
		got = [4]int32{x, y, width, height}
		calls++
	}

	framebufferSizeCallback(nil, 1024, 768)
	if calls != 1 {
		t.Fatalf("expected one viewport update, got %d", calls)
	}
	if got != [4]int32{0, 0, 1024, 768} {
		t.Errorf("unexpected viewport %v", got)
	}
}
