package main

import (
	"log"

	"github.com/quick/mgs/engine/colors"
	"github.com/quick/mgs/engine/core"
)

const markerSize = 8

// Client is the game client hooked into the frame loop. It logs every click
// and marks the last one on screen.
type Client struct {
	clicks  int
	hasMark bool
	markX   float32
	markY   float32
}

func (c *Client) OnStart(e *core.Engine) {
	w, h := e.Window.Size()
	log.Printf("Client started: %dx%d, %s", w, h, e.Renderer.GPUVersion())
}

func (c *Client) OnRender(e *core.Engine) {
	if !c.hasMark {
		return
	}
	e.Renderer.DrawQuad(c.markX-markerSize/2, c.markY-markerSize/2, markerSize, markerSize, colors.Red.WithAlpha(0.8))
}

func (c *Client) OnClick(e *core.Engine, ev core.ClickEvent) {
	c.clicks++
	c.hasMark = true
	c.markX, c.markY = float32(ev.X), float32(ev.Y)
	log.Printf("click #%d at (%.1f, %.1f) state=%s", c.clicks, ev.X, ev.Y, ev.State)
}

func (c *Client) OnShutdown(e *core.Engine) {
	log.Printf("Client shutdown: %d clicks in %s", c.clicks, e.Uptime())
}
