package component

import (
	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/vmath"
)

// Intent is a logical movement input, independent of physical keys
type Intent uint8

const (
	IntentForward Intent = iota
	IntentBackward
	IntentRotateLeft
	IntentRotateRight

	IntentCount
)

func (i Intent) String() string {
	switch i {
	case IntentForward:
		return "forward"
	case IntentBackward:
		return "backward"
	case IntentRotateLeft:
		return "rotate_left"
	case IntentRotateRight:
		return "rotate_right"
	}
	return "unknown"
}

// Player is a steerable chevron
// Intent flags are independent; opposing flags both apply
type Player struct {
	Index    int // 1 or 2
	Shape    *vmath.Polygon
	StepSize int

	Forward     bool
	Backward    bool
	RotateLeft  bool
	RotateRight bool
}

// NewPlayer creates player index at start facing rotation 0 with the default step size
func NewPlayer(index int, start vmath.Point) *Player {
	return &Player{
		Index:    index,
		Shape:    vmath.MustPolygon(constant.PlayerShape, start, 0),
		StepSize: constant.StepSizeDefault,
	}
}

// SetIntent sets or clears one movement flag
func (p *Player) SetIntent(in Intent, on bool) {
	switch in {
	case IntentForward:
		p.Forward = on
	case IntentBackward:
		p.Backward = on
	case IntentRotateLeft:
		p.RotateLeft = on
	case IntentRotateRight:
		p.RotateRight = on
	}
}

// ClearIntents releases all movement flags
func (p *Player) ClearIntents() {
	p.Forward, p.Backward, p.RotateLeft, p.RotateRight = false, false, false, false
}

// Move advances one frame
// The clamp runs before movement, so a push past the bounds is corrected on the next frame
func (p *Player) Move(area vmath.AABB) {
	p.Shape.SetPosition(area.Clamp(p.Shape.Position()))

	step := float64(p.StepSize)
	heading := vmath.Heading(p.Shape.Rotation()).Scale(step)

	if p.Forward {
		p.Shape.Move(-heading.X, -heading.Y)
	}
	if p.Backward {
		p.Shape.Move(heading.X, heading.Y)
	}
	if p.RotateRight {
		p.Shape.Rotate(step)
	}
	if p.RotateLeft {
		p.Shape.Rotate(-step)
	}
}

// ApplySpeed ratchets the step size up: anything at or above default saturates at fast
func (p *Player) ApplySpeed() (from, to int) {
	from = p.StepSize
	if p.StepSize >= constant.StepSizeDefault {
		p.StepSize = constant.StepSizeFast
	} else {
		p.StepSize = constant.StepSizeDefault
	}
	return from, p.StepSize
}

// ApplySlow ratchets the step size down: anything at or below default saturates at slow
func (p *Player) ApplySlow() (from, to int) {
	from = p.StepSize
	if p.StepSize <= constant.StepSizeDefault {
		p.StepSize = constant.StepSizeSlow
	} else {
		p.StepSize = constant.StepSizeDefault
	}
	return from, p.StepSize
}

// Tag returns the render tag for the player index
func (p *Player) Tag() Tag {
	if p.Index == 2 {
		return TagPlayer2
	}
	return TagPlayer1
}

// Drawable returns the player outline in world space
func (p *Player) Drawable() Drawable {
	return Drawable{Vertices: p.Shape.WorldVertices(), Tag: p.Tag()}
}
