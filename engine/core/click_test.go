package core

import (
	"math/rand"
	"testing"
)

type sample struct {
	state ButtonState
	x, y  float64
}

func feed(d *ClickDebouncer, samples []sample) []ClickEvent {
	var out []ClickEvent
	for _, s := range samples {
		if ev, ok := d.Sample(s.state, s.x, s.y); ok {
			out = append(out, ev)
		}
	}
	return out
}

func TestClickDebouncerSequences(t *testing.T) {
	P, R, U := ButtonPressed, ButtonReleased, ButtonUnknown

	tests := []struct {
		name      string
		samples   []sample
		want      []ClickEvent
		wantArmed bool
	}{
		{
			name: "held press fires once, re-press after release fires again",
			samples: []sample{
				{P, 10, 20}, {P, 11, 21}, {P, 12, 22}, {R, 0, 0}, {P, 30, 40},
			},
			want:      []ClickEvent{{10, 20, P}, {30, 40, P}},
			wantArmed: false,
		},
		{
			name:      "releases only",
			samples:   []sample{{R, 1, 1}, {R, 2, 2}},
			wantArmed: true,
		},
		{
			name:      "no samples",
			wantArmed: true,
		},
		{
			name:      "unsampled frames do not re-arm",
			samples:   []sample{{P, 1, 1}, {U, 0, 0}, {U, 0, 0}, {P, 2, 2}},
			want:      []ClickEvent{{1, 1, P}},
			wantArmed: false,
		},
		{
			name:      "unsampled frames do not disarm",
			samples:   []sample{{U, 0, 0}, {P, 5, 6}},
			want:      []ClickEvent{{5, 6, P}},
			wantArmed: false,
		},
		{
			name:      "press already down on first frame fires",
			samples:   []sample{{P, 3, 4}},
			want:      []ClickEvent{{3, 4, P}},
			wantArmed: false,
		},
		{
			name:      "alternating",
			samples:   []sample{{P, 1, 0}, {R, 0, 0}, {P, 2, 0}, {R, 0, 0}, {P, 3, 0}, {R, 0, 0}},
			want:      []ClickEvent{{1, 0, P}, {2, 0, P}, {3, 0, P}},
			wantArmed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d ClickDebouncer
			got := feed(&d, tt.samples)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if d.Armed() != tt.wantArmed {
				t.Errorf("Armed() = %v, want %v", d.Armed(), tt.wantArmed)
			}
		})
	}
}

func TestClickDebouncerTransitions(t *testing.T) {
	var d ClickDebouncer
	if !d.Armed() {
		t.Fatal("zero value should be armed")
	}

	if _, ok := d.Sample(ButtonPressed, 1, 2); !ok {
		t.Fatal("armed press should emit")
	}
	if d.Armed() {
		t.Fatal("should be disarmed after emitting")
	}

	if _, ok := d.Sample(ButtonReleased, 1, 2); ok {
		t.Fatal("release should not emit")
	}
	if !d.Armed() {
		t.Fatal("release should re-arm")
	}
}

// Events must equal the number of maximal runs of presses, with unsampled
// frames neither splitting nor ending a run.
func TestClickDebouncerCountsPressRuns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	states := []ButtonState{ButtonPressed, ButtonReleased, ButtonUnknown}

	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(64)
		var d ClickDebouncer
		events, runs := 0, 0
		inRun := false
		for i := 0; i < n; i++ {
			s := states[rng.Intn(len(states))]
			switch s {
			case ButtonPressed:
				if !inRun {
					runs++
					inRun = true
				}
			case ButtonReleased:
				inRun = false
			}
			if _, ok := d.Sample(s, float64(i), 0); ok {
				events++
			}
		}
		if events != runs {
			t.Fatalf("iteration %d: %d events for %d press runs", iter, events, runs)
		}
	}
}
