package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Black    = Color{0, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Sky      = Color{0.4, 0.9, 0.9, 0.7} // client clear color
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}
