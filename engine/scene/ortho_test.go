package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestScreenOrthoMapsWindowCorners(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{800, 600},
		{1024, 768},
		{1, 1},
		{3840, 2160},
	}

	for _, tt := range tests {
		p := ScreenOrtho(tt.w, tt.h)
		corners := []struct {
			px, want mgl32.Vec4
		}{
			{mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec4{-1, 1, 0, 1}}, // top-left
			{mgl32.Vec4{float32(tt.w), 0, 0, 1}, mgl32.Vec4{1, 1, 0, 1}},
			{mgl32.Vec4{0, float32(tt.h), 0, 1}, mgl32.Vec4{-1, -1, 0, 1}},
			{mgl32.Vec4{float32(tt.w), float32(tt.h), 0, 1}, mgl32.Vec4{1, -1, 0, 1}},
			{mgl32.Vec4{float32(tt.w) / 2, float32(tt.h) / 2, 0, 1}, mgl32.Vec4{0, 0, 0, 1}},
		}
		for _, c := range corners {
			if got := p.Mul4x1(c.px); !got.ApproxEqualThreshold(c.want, 1e-5) {
				t.Errorf("%dx%d: %v -> %v, want %v", tt.w, tt.h, c.px, got, c.want)
			}
		}
	}
}

func TestScreenOrthoDepthRange(t *testing.T) {
	p := ScreenOrtho(800, 600)
	near := p.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	far := p.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	if !mgl32.FloatEqual(near.Z(), 1) || !mgl32.FloatEqual(far.Z(), -1) {
		t.Fatalf("depth mapped to [%v, %v], want [1, -1]", near.Z(), far.Z())
	}
}

func TestScreenOrthoClampsEmptyWindow(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {0, 600}, {800, -1}} {
		p := ScreenOrtho(size[0], size[1])
		for i, v := range p {
			if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
				t.Fatalf("%v: element %d is not finite: %v", size, i, v)
			}
		}
	}
	if !ScreenOrtho(0, 0).ApproxEqual(ScreenOrtho(1, 1)) {
		t.Error("zero-sized window should project like a 1x1 window")
	}
}
