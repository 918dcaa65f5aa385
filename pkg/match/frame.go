package match

import (
	"strconv"

	"github.com/pitchkit/pitchkit/pkg/pitch"
)

// PlayerCoordinate is one player's position within a tracking frame.
type PlayerCoordinate struct {
	Player      *Player
	Coordinates *pitch.Point
}

// TrackingFrame is a periodic snapshot of every tracked position. Frames
// have no executing team; orientation conventions that need one cannot be
// resolved against them.
type TrackingFrame struct {
	FrameID         int
	Period          *Period
	Timestamp       float64 // seconds since period start
	BallOwningTeam  *Team
	BallCoordinates *pitch.Point
	Players         []PlayerCoordinate

	state   map[string]any
	dataset *Dataset
}

func (f *TrackingFrame) RecordID() string         { return "frame:" + strconv.Itoa(f.FrameID) }
func (f *TrackingFrame) RecordTeam() *Team        { return nil }
func (f *TrackingFrame) RecordPeriod() *Period    { return f.Period }
func (f *TrackingFrame) RecordTimestamp() float64 { return f.Timestamp }
func (f *TrackingFrame) OwningTeam() *Team        { return f.BallOwningTeam }

// RecordCoordinates is the ball position; player positions are secondary
// spatial attributes.
func (f *TrackingFrame) RecordCoordinates() *pitch.Point { return f.BallCoordinates }

func (f *TrackingFrame) State(key string) (any, bool) {
	v, ok := f.state[key]
	return v, ok
}

func (f *TrackingFrame) States() map[string]any {
	return mergedStates(f.state, nil)
}

func (f *TrackingFrame) WithState(states map[string]any) Record {
	c := *f
	c.state = mergedStates(f.state, states)
	c.dataset = nil
	return &c
}

// MapCoordinates maps the ball and every player position with the same
// function: they describe one instant and must stay mutually consistent.
func (f *TrackingFrame) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *f
	c.BallCoordinates = mapPoint(f.BallCoordinates, fn)
	c.Players = make([]PlayerCoordinate, len(f.Players))
	for i, pc := range f.Players {
		c.Players[i] = PlayerCoordinate{
			Player:      pc.Player,
			Coordinates: mapPoint(pc.Coordinates, fn),
		}
	}
	c.dataset = nil
	return &c
}

func (f *TrackingFrame) attachTo(d *Dataset) { f.dataset = d }

var _ Record = (*TrackingFrame)(nil)
