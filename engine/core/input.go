package core

// Input is the client-visible snapshot of keyboard and cursor state, updated
// by the loop once per frame.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	button         ButtonState
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	}
}

func (in *Input) setCursor(x, y float64)    { in.mouseX, in.mouseY = x, y }
func (in *Input) setButton(s ButtonState)   { in.button = s }
func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
func (in *Input) MouseButton() ButtonState  { return in.button }
