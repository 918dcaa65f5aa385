package match

import (
	"fmt"

	"github.com/pitchkit/pitchkit/pkg/pitch"
)

// EventKind enumerates the closed set of event record types.
type EventKind uint8

const (
	KindGeneric EventKind = iota
	KindPass
	KindShot
	KindCarry
	KindTakeOn
	KindRecovery
	KindBallOut
	KindFoulCommitted
	KindSubstitution
	KindCard
	KindPlayerOn
	KindPlayerOff
	KindFormationChange
)

var eventKindNames = map[EventKind]string{
	KindGeneric:         "generic",
	KindPass:            "pass",
	KindShot:            "shot",
	KindCarry:           "carry",
	KindTakeOn:          "take_on",
	KindRecovery:        "recovery",
	KindBallOut:         "ball_out",
	KindFoulCommitted:   "foul_committed",
	KindSubstitution:    "substitution",
	KindCard:            "card",
	KindPlayerOn:        "player_on",
	KindPlayerOff:       "player_off",
	KindFormationChange: "formation_change",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// ParseEventKind converts a provider's event type name to an EventKind.
func ParseEventKind(name string) (EventKind, bool) {
	for k, n := range eventKindNames {
		if n == name {
			return k, true
		}
	}
	return KindGeneric, false
}

// Event is a discrete match event. Concrete types carry kind-specific
// fields; everything shared lives in EventMeta.
type Event interface {
	Record
	Kind() EventKind
	// Related returns identifiers of events describing the same passage
	// of play, resolvable through RelatedEvents.
	Related() []string
	// RelatedEvents resolves the related identifiers through the owning
	// dataset. It fails with ErrOrphanedRecord on a detached event.
	RelatedEvents() ([]Event, error)
}

// EventMeta carries the attributes every event shares. Concrete event types
// embed it and add their own fields.
type EventMeta struct {
	EventID         string
	Team            *Team
	Player          *Player
	Period          *Period
	Timestamp       float64 // seconds since period start
	BallOwningTeam  *Team
	Coordinates     *pitch.Point
	Qualifiers      []Qualifier
	RelatedEventIDs []string

	state   map[string]any
	dataset *Dataset
}

func (e *EventMeta) RecordID() string                { return e.EventID }
func (e *EventMeta) RecordTeam() *Team               { return e.Team }
func (e *EventMeta) RecordPlayer() *Player           { return e.Player }
func (e *EventMeta) RecordPeriod() *Period           { return e.Period }
func (e *EventMeta) RecordTimestamp() float64        { return e.Timestamp }
func (e *EventMeta) OwningTeam() *Team               { return e.BallOwningTeam }
func (e *EventMeta) RecordCoordinates() *pitch.Point { return e.Coordinates }

func (e *EventMeta) State(key string) (any, bool) {
	v, ok := e.state[key]
	return v, ok
}

func (e *EventMeta) States() map[string]any {
	return mergedStates(e.state, nil)
}

func (e *EventMeta) Related() []string { return e.RelatedEventIDs }

func (e *EventMeta) attachTo(d *Dataset) { e.dataset = d }

// AllQualifiers returns the event's qualifier list.
func (e *EventMeta) AllQualifiers() []Qualifier { return e.Qualifiers }

// Qualifier returns the first qualifier of the given kind.
func (e *EventMeta) Qualifier(kind QualifierKind) (Qualifier, bool) {
	for _, q := range e.Qualifiers {
		if q.Kind == kind {
			return q, true
		}
	}
	return Qualifier{}, false
}

// RelatedEvents resolves related event identifiers through the owning
// dataset's index.
func (e *EventMeta) RelatedEvents() ([]Event, error) {
	if e.dataset == nil {
		return nil, fmt.Errorf("event %q: %w", e.EventID, ErrOrphanedRecord)
	}
	out := make([]Event, 0, len(e.RelatedEventIDs))
	for _, id := range e.RelatedEventIDs {
		rec, err := e.dataset.RecordByID(id)
		if err != nil {
			return nil, err
		}
		ev, ok := rec.(Event)
		if !ok {
			return nil, fmt.Errorf("record %q is not an event: %w", id, ErrUnknownRecord)
		}
		out = append(out, ev)
	}
	return out, nil
}

// mapMeta copies the shared attributes with the primary coordinates mapped.
// The copy is detached; state is carried over unchanged.
func (e *EventMeta) mapMeta(fn func(pitch.Point) pitch.Point) EventMeta {
	c := *e
	c.Coordinates = mapPoint(e.Coordinates, fn)
	c.dataset = nil
	return c
}

// stateMeta copies the shared attributes with extra state merged in.
func (e *EventMeta) stateMeta(states map[string]any) EventMeta {
	c := *e
	c.state = mergedStates(e.state, states)
	c.dataset = nil
	return c
}

// GenericEvent is an event kind the provider vocabulary does not cover.
type GenericEvent struct {
	EventMeta
	Name string
}

func (e *GenericEvent) Kind() EventKind { return KindGeneric }

func (e *GenericEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *GenericEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// PassEvent is an attempted pass, with the receiver end of the pass as a
// secondary spatial attribute.
type PassEvent struct {
	EventMeta
	ReceiverPlayer      *Player
	ReceiverCoordinates *pitch.Point
	ReceiveTimestamp    float64
	Result              PassResult
}

func (e *PassEvent) Kind() EventKind { return KindPass }

func (e *PassEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *PassEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	c.ReceiverCoordinates = mapPoint(e.ReceiverCoordinates, fn)
	return &c
}

// ShotEvent is a shot at goal; ResultCoordinates is where the ball ended.
type ShotEvent struct {
	EventMeta
	ResultCoordinates *pitch.Point
	Result            ShotResult
}

func (e *ShotEvent) Kind() EventKind { return KindShot }

func (e *ShotEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *ShotEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	c.ResultCoordinates = mapPoint(e.ResultCoordinates, fn)
	return &c
}

// CarryEvent is a player moving with the ball from Coordinates to
// EndCoordinates.
type CarryEvent struct {
	EventMeta
	EndCoordinates *pitch.Point
	EndTimestamp   float64
	Result         CarryResult
}

func (e *CarryEvent) Kind() EventKind { return KindCarry }

func (e *CarryEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *CarryEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	c.EndCoordinates = mapPoint(e.EndCoordinates, fn)
	return &c
}

// TakeOnEvent is a dribble attempt past an opponent.
type TakeOnEvent struct {
	EventMeta
	Result TakeOnResult
}

func (e *TakeOnEvent) Kind() EventKind { return KindTakeOn }

func (e *TakeOnEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *TakeOnEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// RecoveryEvent is a loose-ball recovery.
type RecoveryEvent struct {
	EventMeta
}

func (e *RecoveryEvent) Kind() EventKind { return KindRecovery }

func (e *RecoveryEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *RecoveryEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// BallOutEvent marks the ball leaving play.
type BallOutEvent struct {
	EventMeta
}

func (e *BallOutEvent) Kind() EventKind { return KindBallOut }

func (e *BallOutEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *BallOutEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// FoulCommittedEvent is a foul by the event's team.
type FoulCommittedEvent struct {
	EventMeta
}

func (e *FoulCommittedEvent) Kind() EventKind { return KindFoulCommitted }

func (e *FoulCommittedEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *FoulCommittedEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// SubstitutionEvent replaces Player with ReplacementPlayer.
type SubstitutionEvent struct {
	EventMeta
	ReplacementPlayer *Player
}

func (e *SubstitutionEvent) Kind() EventKind { return KindSubstitution }

func (e *SubstitutionEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *SubstitutionEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// CardEvent is a disciplinary card shown to Player.
type CardEvent struct {
	EventMeta
	CardType CardType
}

func (e *CardEvent) Kind() EventKind { return KindCard }

func (e *CardEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *CardEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// PlayerOnEvent is a player entering the pitch outside a substitution.
type PlayerOnEvent struct {
	EventMeta
}

func (e *PlayerOnEvent) Kind() EventKind { return KindPlayerOn }

func (e *PlayerOnEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *PlayerOnEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// PlayerOffEvent is a player leaving the pitch outside a substitution.
type PlayerOffEvent struct {
	EventMeta
}

func (e *PlayerOffEvent) Kind() EventKind { return KindPlayerOff }

func (e *PlayerOffEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *PlayerOffEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

// FormationChangeEvent records the event's team switching formation.
type FormationChangeEvent struct {
	EventMeta
	FormationType FormationType
}

func (e *FormationChangeEvent) Kind() EventKind { return KindFormationChange }

func (e *FormationChangeEvent) WithState(states map[string]any) Record {
	c := *e
	c.EventMeta = e.stateMeta(states)
	return &c
}

func (e *FormationChangeEvent) MapCoordinates(fn func(pitch.Point) pitch.Point) Record {
	c := *e
	c.EventMeta = e.mapMeta(fn)
	return &c
}

var (
	_ Event = (*GenericEvent)(nil)
	_ Event = (*PassEvent)(nil)
	_ Event = (*ShotEvent)(nil)
	_ Event = (*CarryEvent)(nil)
	_ Event = (*TakeOnEvent)(nil)
	_ Event = (*RecoveryEvent)(nil)
	_ Event = (*BallOutEvent)(nil)
	_ Event = (*FoulCommittedEvent)(nil)
	_ Event = (*SubstitutionEvent)(nil)
	_ Event = (*CardEvent)(nil)
	_ Event = (*PlayerOnEvent)(nil)
	_ Event = (*PlayerOffEvent)(nil)
	_ Event = (*FormationChangeEvent)(nil)
)
