package scene

import "github.com/go-gl/mathgl/mgl32"

// ScreenOrtho returns a projection covering the window in pixels: origin at
// the top-left, x right, y down, depth [-1, 1]. Extents below one pixel
// (minimized window) are clamped to one.
func ScreenOrtho(width, height int) mgl32.Mat4 {
	w := float32(max(width, 1))
	h := float32(max(height, 1))
	return mgl32.Ortho(0, w, h, 0, -1, 1)
}
