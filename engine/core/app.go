package core

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/quick/mgs/engine/colors"
)

// ErrInit marks a failure to bring up the window or graphics context.
// Nothing retries it; callers abort before the loop starts.
var ErrInit = errors.New("init failed")

// App defines the client hooks driven by the frame loop.
type App interface {
	OnStart(e *Engine)                // called once after window/renderer init
	OnRender(e *Engine)               // render step, projection already set to window pixels
	OnClick(e *Engine, ev ClickEvent) // at most once per press-release cycle
	OnShutdown(e *Engine)             // before resources are released
}

// Window is the windowing/context provider.
type Window interface {
	// PollEvents processes pending OS input and returns the events queued
	// since the previous call, in arrival order.
	PollEvents() []Event
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	Size() (int, int)
	FramebufferSize() (int, int)
	CursorPos() (float64, float64)
	MouseButton(b MouseButton) ButtonState
	SetTitle(title string)
	Destroy()
}

// Renderer abstraction (minimal; enough for the client's demo drawing).
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	SetProjection(proj mgl32.Mat4)
	DrawQuad(x, y, w, h float32, color [4]float32)
	GPUVersion() string
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new framebuffer size.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ButtonState is one per-frame sample of a mouse button.
type ButtonState int

const (
	ButtonUnknown ButtonState = iota // not sampled this frame
	ButtonReleased
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonReleased:
		return "released"
	case ButtonPressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	Resizable  bool
	Centered   bool       // center on the primary monitor at startup
	ClearColor [4]float32 // RGBA
}

// DefaultConfig matches the stock client window.
func DefaultConfig() Config {
	return Config{
		Title:      "Multiplayer Game Simulator",
		Width:      800,
		Height:     600,
		VSync:      true,
		Resizable:  true,
		Centered:   true,
		ClearColor: colors.Sky,
	}
}

// Engine is the loop context: collaborators plus the click-arm state.
// It is passed explicitly to the loop and to every App hook.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Clicks   ClickDebouncer
	Config   Config

	frames uint64
	start  time.Time
}

func NewEngine(win Window, rend Renderer, cfg Config) *Engine {
	return &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Config:   cfg,
		start:    time.Now(),
	}
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Frames returns the number of completed loop iterations.
func (e *Engine) Frames() uint64 { return e.frames }
