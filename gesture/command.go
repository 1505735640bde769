// Package gesture defines the interaction command model and the dispatcher
// that maps commands onto particle store operations. Gesture classification
// itself (camera, hand landmarks) lives outside this module; anything that
// can produce Commands can drive the simulation.
package gesture

// Kind identifies a discrete interaction gesture.
type Kind int

const (
	None Kind = iota
	OpenPalm     // attract particles toward the hand
	Fist         // repel particles away from the hand
	Pinch        // spawn a particle cluster
	Spread       // explosive scatter
	Wave         // directional flow
	PalmUp       // flip gravity upward
	PalmDown     // flip gravity downward
	Rotate       // vortex swirl
	TwoHandMerge // attract between two hands
)

// String returns the gesture name for HUD display.
func (k Kind) String() string {
	switch k {
	case OpenPalm:
		return "OPEN_PALM"
	case Fist:
		return "FIST"
	case Pinch:
		return "PINCH"
	case Spread:
		return "SPREAD"
	case Wave:
		return "WAVE"
	case PalmUp:
		return "PALM_UP"
	case PalmDown:
		return "PALM_DOWN"
	case Rotate:
		return "ROTATE"
	case TwoHandMerge:
		return "TWO_HANDS_MERGE"
	default:
		return "NONE"
	}
}

// Command is one interaction issued per detected gesture per frame.
type Command struct {
	Kind   Kind
	X, Y   float32 // primary hand position
	X2, Y2 float32 // second hand position (TwoHandMerge)

	DX, DY float32 // flow direction (Wave)

	Radius   float32 // hands distance (TwoHandMerge)
	Strength float32 // rotation angle (Rotate)
}
