package match

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownResult is returned when a provider result name does not map to
// a known outcome.
var ErrUnknownResult = errors.New("unknown result")

// ShotResult is the outcome of a shot.
type ShotResult string

const (
	ShotGoal      ShotResult = "GOAL"
	ShotOwnGoal   ShotResult = "OWN_GOAL"
	ShotOffTarget ShotResult = "OFF_TARGET"
	ShotPost      ShotResult = "POST"
	ShotBlocked   ShotResult = "BLOCKED"
	ShotSaved     ShotResult = "SAVED"
)

// IsSuccess reports whether the shot produced a goal for the shooter's team.
func (r ShotResult) IsSuccess() bool {
	return r == ShotGoal
}

// PassResult is the outcome of a pass.
type PassResult string

const (
	PassComplete   PassResult = "COMPLETE"
	PassIncomplete PassResult = "INCOMPLETE"
	PassOut        PassResult = "OUT"
	PassOffside    PassResult = "OFFSIDE"
)

func (r PassResult) IsSuccess() bool {
	return r == PassComplete
}

// TakeOnResult is the outcome of a take-on (dribble past an opponent).
type TakeOnResult string

const (
	TakeOnComplete   TakeOnResult = "COMPLETE"
	TakeOnIncomplete TakeOnResult = "INCOMPLETE"
	TakeOnOut        TakeOnResult = "OUT"
)

func (r TakeOnResult) IsSuccess() bool {
	return r == TakeOnComplete
}

// CarryResult is the outcome of a ball carry.
type CarryResult string

const (
	CarryComplete   CarryResult = "COMPLETE"
	CarryIncomplete CarryResult = "INCOMPLETE"
)

func (r CarryResult) IsSuccess() bool {
	return r == CarryComplete
}

// Result parsing accepts the canonical uppercase names. An empty string is
// a valid absent result, not an error.

func ParseShotResult(s string) (ShotResult, error) {
	switch r := ShotResult(strings.ToUpper(s)); r {
	case "", ShotGoal, ShotOwnGoal, ShotOffTarget, ShotPost, ShotBlocked, ShotSaved:
		return r, nil
	default:
		return "", fmt.Errorf("%w: shot result %q", ErrUnknownResult, s)
	}
}

func ParsePassResult(s string) (PassResult, error) {
	switch r := PassResult(strings.ToUpper(s)); r {
	case "", PassComplete, PassIncomplete, PassOut, PassOffside:
		return r, nil
	default:
		return "", fmt.Errorf("%w: pass result %q", ErrUnknownResult, s)
	}
}

func ParseTakeOnResult(s string) (TakeOnResult, error) {
	switch r := TakeOnResult(strings.ToUpper(s)); r {
	case "", TakeOnComplete, TakeOnIncomplete, TakeOnOut:
		return r, nil
	default:
		return "", fmt.Errorf("%w: take-on result %q", ErrUnknownResult, s)
	}
}

func ParseCarryResult(s string) (CarryResult, error) {
	switch r := CarryResult(strings.ToUpper(s)); r {
	case "", CarryComplete, CarryIncomplete:
		return r, nil
	default:
		return "", fmt.Errorf("%w: carry result %q", ErrUnknownResult, s)
	}
}
