package viewer

import (
	"github.com/veandco/go-sdl2/sdl"
)

// InputState tracks the per-frame input needed to drive an OrbitCamera.
type InputState struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Poll drains the SDL event queue, updating camera state as a side effect
// and returning the frame's input snapshot.
func Poll(cam *OrbitCamera) InputState {
	var s InputState

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				s.Quit = true
			}

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				s.Resized = true
				s.Width = int(e.Data1)
				s.Height = int(e.Data2)
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				dragState.dragging = e.Type == sdl.MOUSEBUTTONDOWN
				dragState.lastX, dragState.lastY = e.X, e.Y
			}

		case *sdl.MouseMotionEvent:
			if dragState.dragging {
				cam.Rotate(float64(e.X-dragState.lastX), float64(e.Y-dragState.lastY))
			}
			dragState.lastX, dragState.lastY = e.X, e.Y

		case *sdl.MouseWheelEvent:
			cam.Zoom(float64(e.Y))
		}
	}

	return s
}

// dragState holds the mouse-drag bookkeeping across Poll calls. A single
// viewer window is orbited at a time so package-level state is sufficient.
var dragState struct {
	dragging bool
	lastX    int32
	lastY    int32
}
