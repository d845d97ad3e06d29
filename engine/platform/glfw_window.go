package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/quick/mgs/engine/core"
)

// GLFWWindow implements core.Window. GLFW callbacks only append to a queue;
// the frame loop drains it through PollEvents.
type GLFWWindow struct {
	w     *glfw.Window
	queue []core.Event
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	log.Printf("Hello GLFW %s!", glfw.GetVersionString())

	// Hidden until positioned; GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Centered {
		center(win)
	}

	gw := &GLFWWindow{w: win}

	// Callbacks -> queued core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action == glfw.Press, Mods: translateMods(mods)})
	})

	win.Show()
	win.Focus()
	return gw, nil
}

// center places the window in the middle of the primary monitor, nudged 5px up.
func center(win *glfw.Window) {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return
	}
	mode := mon.GetVideoMode()
	if mode == nil {
		return
	}
	w, h := win.GetSize()
	win.SetPos((mode.Width-w)/2, (mode.Height-h)/2-5)
}

func (g *GLFWWindow) emit(ev core.Event) { g.queue = append(g.queue, ev) }

func (g *GLFWWindow) drain() []core.Event {
	evs := g.queue
	g.queue = nil
	return evs
}

// core.Window impl
func (g *GLFWWindow) PollEvents() []core.Event {
	glfw.PollEvents()
	return g.drain()
}

func (g *GLFWWindow) SwapBuffers()                  { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool             { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                 { g.w.SetShouldClose(true) }
func (g *GLFWWindow) Size() (int, int)              { return g.w.GetSize() }
func (g *GLFWWindow) FramebufferSize() (int, int)   { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) CursorPos() (float64, float64) { return g.w.GetCursorPos() }
func (g *GLFWWindow) SetTitle(t string)             { g.w.SetTitle(t) }

func (g *GLFWWindow) MouseButton(b core.MouseButton) core.ButtonState {
	switch g.w.GetMouseButton(translateButton(b)) {
	case glfw.Press:
		return core.ButtonPressed
	case glfw.Release:
		return core.ButtonReleased
	default:
		return core.ButtonUnknown
	}
}

// Destroy releases the window and shuts GLFW down.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
	log.Println("GLFW Terminated")
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func translateButton(b core.MouseButton) glfw.MouseButton {
	switch b {
	case core.MouseButtonRight:
		return glfw.MouseButtonRight
	case core.MouseButtonMiddle:
		return glfw.MouseButtonMiddle
	default:
		return glfw.MouseButtonLeft
	}
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
