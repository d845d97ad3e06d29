package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/quick/mgs/engine/core"
	glbackend "github.com/quick/mgs/engine/gfx/gl"
	"github.com/quick/mgs/engine/platform"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := core.DefaultConfig()

	// Every flag defaults to the stock client; no arguments are required.
	flag.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Initial window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Initial window height")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "Sync buffer swaps to the display refresh")
	flag.Parse()

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(&Client{}, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
