// Package transform re-expresses a dataset in a different coordinate
// system and/or attacking-direction orientation. Every record is remapped
// independently with a pure per-record function, so results never depend on
// processing order.
package transform

import (
	"errors"
	"fmt"

	"github.com/pitchkit/pitchkit/pkg/match"
)

// ErrUnresolvedOrientation is returned when an orientation decision needs
// per-record context (possession, executing team, period) that the record
// does not carry. The transform aborts; the direction is never guessed.
var ErrUnresolvedOrientation = errors.New("orientation cannot be resolved for record")

// resolver decides, per record, whether the record must be mirrored to move
// from the source orientation to the target orientation.
type resolver struct {
	from match.Orientation
	to   match.Orientation
}

// needsMirror reports whether the record's coordinates must be reflected
// about the pitch midpoints. Resolving a target the dataset already
// satisfies yields false, which makes the decision idempotent.
func (r resolver) needsMirror(rec match.Record) (bool, error) {
	if r.from == r.to {
		return false, nil
	}
	from, err := attackingFactor(r.from, rec)
	if err != nil {
		return false, err
	}
	to, err := attackingFactor(r.to, rec)
	if err != nil {
		return false, err
	}
	return from != to, nil
}

// attackingFactor returns +1 when, under orientation o and the record's
// context, the home team attacks toward positive x, and -1 otherwise. Two
// orientations agree on a record exactly when their factors match.
func attackingFactor(o match.Orientation, rec match.Record) (int, error) {
	switch o {
	case match.OrientationStaticHomeAway:
		return 1, nil

	case match.OrientationStaticAwayHome:
		return -1, nil

	case match.OrientationFixedHomeAway, match.OrientationFixedAwayHome:
		period := rec.RecordPeriod()
		if period == nil {
			return 0, fmt.Errorf("%w %q: fixed orientation needs the record's period", ErrUnresolvedOrientation, rec.RecordID())
		}
		factor := 1
		if o == match.OrientationFixedAwayHome {
			factor = -1
		}
		// Sides swap every period; odd periods use the declared direction.
		if period.ID%2 == 0 {
			factor = -factor
		}
		return factor, nil

	case match.OrientationBallOwningTeam:
		owning := rec.OwningTeam()
		if owning == nil {
			return 0, fmt.Errorf("%w %q: no ball-owning team on record", ErrUnresolvedOrientation, rec.RecordID())
		}
		if owning.Ground == match.GroundHome {
			return 1, nil
		}
		return -1, nil

	case match.OrientationActionExecutingTeam:
		team := rec.RecordTeam()
		if team == nil {
			return 0, fmt.Errorf("%w %q: no executing team on record", ErrUnresolvedOrientation, rec.RecordID())
		}
		if team.Ground == match.GroundHome {
			return 1, nil
		}
		return -1, nil

	default:
		return 0, fmt.Errorf("%w %q: orientation %s carries no attacking direction", ErrUnresolvedOrientation, rec.RecordID(), o)
	}
}
