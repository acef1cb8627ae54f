package component

import "github.com/go-gl/mathgl/mgl64"

// Key is a logical control, independent of the physical binding.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyStrafeLeft
	KeyStrafeRight
	KeyJump
	// KeyCount is the number of logical keys, not a key.
	KeyCount
)

// MovementKeys lists the keys that contribute to planar intent.
var MovementKeys = [...]Key{KeyForward, KeyBack, KeyStrafeLeft, KeyStrafeRight}

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBack:
		return "back"
	case KeyStrafeLeft:
		return "strafe_left"
	case KeyStrafeRight:
		return "strafe_right"
	case KeyJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Input stores the per-frame input sample for an entity.
type Input struct {
	// Look is the summed pointer motion since the previous sample.
	Look mgl64.Vec2
	// WindowScale is min(viewport width, viewport height).
	WindowScale float64
	Held        [KeyCount]bool
	Jump        bool
}

// Pressed reports whether k was held when the sample was taken.
func (in *Input) Pressed(k Key) bool {
	if k >= KeyCount {
		return false
	}
	return in.Held[k]
}

var InputComponent = NewComponent[Input]()
