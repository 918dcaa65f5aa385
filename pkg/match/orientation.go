package match

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrientation is returned when parsing an unrecognized
// orientation name.
var ErrUnknownOrientation = errors.New("unknown orientation")

// Orientation is the dataset-level attacking-direction convention: which
// team is treated as attacking toward positive x. Its effect on any single
// record can depend on that record's period, team, or ball-owning team.
type Orientation uint8

const (
	// OrientationNotSet means the source declared no convention. A dataset
	// with this orientation can be rescaled but not orientation-flipped.
	OrientationNotSet Orientation = iota

	// OrientationStaticHomeAway: the home team attacks toward positive x
	// for the whole match.
	OrientationStaticHomeAway
	// OrientationStaticAwayHome: the away team attacks toward positive x
	// for the whole match.
	OrientationStaticAwayHome

	// OrientationFixedHomeAway: the home team attacks toward positive x in
	// odd periods and the sides swap every period, as played.
	OrientationFixedHomeAway
	// OrientationFixedAwayHome: the away team attacks toward positive x in
	// odd periods and the sides swap every period.
	OrientationFixedAwayHome

	// OrientationBallOwningTeam: whichever team owns the ball attacks
	// toward positive x. Needs per-record possession context.
	OrientationBallOwningTeam
	// OrientationActionExecutingTeam: the team executing each action
	// attacks toward positive x. Needs per-record team context.
	OrientationActionExecutingTeam
)

var orientationNames = map[Orientation]string{
	OrientationNotSet:              "not-set",
	OrientationStaticHomeAway:      "static-home-away",
	OrientationStaticAwayHome:      "static-away-home",
	OrientationFixedHomeAway:       "fixed-home-away",
	OrientationFixedAwayHome:       "fixed-away-home",
	OrientationBallOwningTeam:      "ball-owning-team",
	OrientationActionExecutingTeam: "action-executing-team",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("orientation(%d)", uint8(o))
}

// ParseOrientation converts a config or file value to an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	needle = strings.ReplaceAll(needle, "_", "-")
	for o, n := range orientationNames {
		if n == needle {
			return o, nil
		}
	}
	return OrientationNotSet, fmt.Errorf("%w: %q", ErrUnknownOrientation, name)
}
