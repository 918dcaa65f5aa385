package pitch

import "fmt"

// VerticalOrientation fixes which end of the y axis is the top of the pitch
// as drawn. Providers disagree on this independently of attacking direction.
type VerticalOrientation uint8

const (
	// TopToBottom means y increases downward (y = min at the top edge).
	TopToBottom VerticalOrientation = iota
	// BottomToTop means y increases upward (y = min at the bottom edge).
	BottomToTop
)

func (v VerticalOrientation) String() string {
	switch v {
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	default:
		return fmt.Sprintf("vertical-orientation(%d)", uint8(v))
	}
}

// Origin is the provider's convention for where raw (0, 0) sits. It is
// descriptive metadata: the dimension bounds already encode it numerically,
// but two systems with identical bounds and different declared origins are
// not the same system.
type Origin uint8

const (
	OriginTopLeft Origin = iota
	OriginBottomLeft
	OriginCenter
)

func (o Origin) String() string {
	switch o {
	case OriginTopLeft:
		return "top-left"
	case OriginBottomLeft:
		return "bottom-left"
	case OriginCenter:
		return "center"
	default:
		return fmt.Sprintf("origin(%d)", uint8(o))
	}
}

// CoordinateSystem fully describes how a provider's raw numbers map onto
// physical pitch positions.
type CoordinateSystem struct {
	Dimensions PitchDimensions
	Vertical   VerticalOrientation
	Origin     Origin
}

// NewCoordinateSystem builds a coordinate system, rejecting degenerate
// dimension bounds up front so transforms never divide by zero.
func NewCoordinateSystem(dims PitchDimensions, vertical VerticalOrientation, origin Origin) (CoordinateSystem, error) {
	if err := dims.Validate(); err != nil {
		return CoordinateSystem{}, err
	}
	return CoordinateSystem{Dimensions: dims, Vertical: vertical, Origin: origin}, nil
}

// Equal reports geometric equivalence. All three fields must match.
func (c CoordinateSystem) Equal(o CoordinateSystem) bool {
	return c.Dimensions == o.Dimensions && c.Vertical == o.Vertical && c.Origin == o.Origin
}
