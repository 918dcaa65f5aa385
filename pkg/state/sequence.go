package state

import "github.com/pitchkit/pitchkit/pkg/match"

// Sequence identifies an unbroken spell of possession. The ID increments on
// every change of the team in possession, so records sharing a Sequence
// value belong to the same passage of play.
type Sequence struct {
	ID   int
	Team *match.Team
}

// SequenceBuilder segments the record stream by possession. The team in
// possession is the record's ball-owning team when the provider supplies
// one, else the record's own team; records carrying neither leave the
// sequence unchanged.
type SequenceBuilder struct{}

func (SequenceBuilder) InitialState(_ *match.Dataset) any {
	return Sequence{}
}

func (SequenceBuilder) Reduce(state any, rec match.Record) any {
	seq := state.(Sequence)
	team := rec.OwningTeam()
	if team == nil {
		team = rec.RecordTeam()
	}
	if team == nil || team == seq.Team {
		return seq
	}
	return Sequence{ID: seq.ID + 1, Team: team}
}
