package core

import (
	"fmt"
	"log"
	"runtime"

	"github.com/quick/mgs/engine/scene"
)

// Run wires the platform window + renderer and executes the main loop.
// Any construction failure is wrapped in ErrInit and returned before the
// loop starts.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("%w: window: %w", ErrInit, err)
	}
	// window owns the context; renderer shuts down first (deferred below)
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("%w: renderer: %w", ErrInit, err)
	}
	defer rend.Shutdown()

	rend.Resize(win.FramebufferSize())

	eng := NewEngine(win, rend, cfg)
	app.OnStart(eng)

	Loop(app, eng)

	app.OnShutdown(eng)
	log.Printf("Engine exit after %d frames", eng.Frames())
	return nil
}

// Loop runs frames until the window reports a close request. The close flag
// is checked right after each poll, so no render or click dispatch happens
// once it is set.
func Loop(app App, e *Engine) {
	for !e.Window.ShouldClose() {
		e.Frame(app)
	}
}

// Frame runs one loop iteration, from clear through poll.
func (e *Engine) Frame(app App) {
	win, rend := e.Window, e.Renderer

	c := e.Config.ClearColor
	rend.Clear(c[0], c[1], c[2], c[3])

	// One snapshot per frame; nothing is cached across frames.
	w, h := win.Size()
	mx, my := win.CursorPos()
	e.Input.setCursor(mx, my)

	rend.SetProjection(scene.ScreenOrtho(w, h))

	app.OnRender(e)

	state := win.MouseButton(MouseButtonLeft)
	e.Input.setButton(state)
	if ev, ok := e.Clicks.Sample(state, mx, my); ok {
		app.OnClick(e, ev)
	}

	win.SwapBuffers()
	for _, ev := range win.PollEvents() {
		e.handleEvent(ev)
	}
	e.frames++
}

func (e *Engine) handleEvent(ev Event) {
	e.Input.Handle(ev)
	switch v := ev.(type) {
	case EventKey:
		if v.Key == KeyEscape && !v.Down {
			e.Window.RequestClose()
		}
	case EventResize:
		if v.W < 1 || v.H < 1 {
			return
		}
		e.Renderer.Resize(v.W, v.H)
	}
}
