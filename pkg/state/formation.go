package state

import "github.com/pitchkit/pitchkit/pkg/match"

// Formations is the formation each side currently plays.
type Formations struct {
	Home match.FormationType
	Away match.FormationType
}

// Side returns the formation of the given ground.
func (f Formations) Side(g match.Ground) match.FormationType {
	if g == match.GroundHome {
		return f.Home
	}
	return f.Away
}

// FormationBuilder starts from both teams' declared starting formations and
// updates the changing side on every formation change event.
type FormationBuilder struct{}

func (FormationBuilder) InitialState(ds *match.Dataset) any {
	var f Formations
	if ds.Metadata.Home != nil {
		f.Home = ds.Metadata.Home.StartingFormation
	}
	if ds.Metadata.Away != nil {
		f.Away = ds.Metadata.Away.StartingFormation
	}
	return f
}

func (FormationBuilder) Reduce(state any, rec match.Record) any {
	f := state.(Formations)
	change, ok := rec.(*match.FormationChangeEvent)
	if !ok {
		return f
	}
	team := change.RecordTeam()
	if team == nil {
		return f
	}
	if team.Ground == match.GroundHome {
		f.Home = change.FormationType
	} else {
		f.Away = change.FormationType
	}
	return f
}
