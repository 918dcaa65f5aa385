package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchkit/pitchkit/pkg/match"
	"github.com/pitchkit/pitchkit/pkg/pitch"
)

func testMetadata() match.Metadata {
	home := &match.Team{TeamID: "h", Name: "Home FC", Ground: match.GroundHome, StartingFormation: "4-4-2"}
	home.Players = []*match.Player{
		{PlayerID: "h1", Team: home, Name: "Keeper", JerseyNo: 1, Starting: true},
		{PlayerID: "h9", Team: home, Name: "Striker", JerseyNo: 9, Starting: true},
		{PlayerID: "h12", Team: home, Name: "Sub", JerseyNo: 12},
	}
	away := &match.Team{TeamID: "a", Name: "Away FC", Ground: match.GroundAway, StartingFormation: "4-3-3"}
	away.Players = []*match.Player{
		{PlayerID: "a1", Team: away, Name: "Keeper", JerseyNo: 1, Starting: true},
		{PlayerID: "a7", Team: away, Name: "Winger", JerseyNo: 7, Starting: true},
	}
	cs, _ := pitch.ForProvider(pitch.ProviderDefault)
	return match.Metadata{
		MatchID:          "m1",
		Home:             home,
		Away:             away,
		Periods:          []*match.Period{{ID: 1, Start: 0, End: 2700}},
		Provider:         pitch.ProviderDefault,
		CoordinateSystem: cs,
		Orientation:      match.OrientationStaticHomeAway,
	}
}

func shot(id string, team *match.Team, period *match.Period, result match.ShotResult) match.Record {
	return &match.ShotEvent{
		EventMeta: match.EventMeta{EventID: id, Team: team, Period: period},
		Result:    result,
	}
}

func mustDataset(t *testing.T, md match.Metadata, records []match.Record) *match.Dataset {
	t.Helper()
	ds, err := match.NewDataset(match.DatasetTypeEvent, md, records)
	require.NoError(t, err)
	return ds
}

func stateOf(t *testing.T, ds *match.Dataset, id, key string) any {
	t.Helper()
	rec, err := ds.RecordByID(id)
	require.NoError(t, err)
	v, ok := rec.State(key)
	require.True(t, ok, "record %s has no state %q", id, key)
	return v
}

func TestScoreBuilder(t *testing.T) {
	md := testMetadata()
	period := md.Periods[0]
	ds := mustDataset(t, md, []match.Record{
		shot("s1", md.Home, period, match.ShotOffTarget),
		shot("s2", md.Home, period, match.ShotGoal),
		shot("s3", md.Away, period, match.ShotGoal),
		shot("s4", md.Away, period, match.ShotOwnGoal),
		shot("s5", md.Home, period, match.ShotSaved),
	})

	out, err := AddState(ds, "score")
	require.NoError(t, err)

	// snapshot includes the record's own effect
	assert.Equal(t, match.Score{Home: 0, Away: 0}, stateOf(t, out, "s1", "score"))
	assert.Equal(t, match.Score{Home: 1, Away: 0}, stateOf(t, out, "s2", "score"))
	assert.Equal(t, match.Score{Home: 1, Away: 1}, stateOf(t, out, "s3", "score"))
	// own goal credits the opponent
	assert.Equal(t, match.Score{Home: 2, Away: 1}, stateOf(t, out, "s4", "score"))
	assert.Equal(t, match.Score{Home: 2, Away: 1}, stateOf(t, out, "s5", "score"))

	// the input dataset carries no state
	rec, err := ds.RecordByID("s2")
	require.NoError(t, err)
	_, ok := rec.State("score")
	assert.False(t, ok)
}

func TestSequenceBuilder(t *testing.T) {
	md := testMetadata()
	period := md.Periods[0]
	ev := func(id string, team *match.Team) match.Record {
		return &match.GenericEvent{EventMeta: match.EventMeta{
			EventID: id, Team: team, Period: period, BallOwningTeam: team,
		}}
	}
	ds := mustDataset(t, md, []match.Record{
		ev("e1", md.Home),
		ev("e2", md.Home),
		ev("e3", md.Away),
		ev("e4", md.Home),
	})

	out, err := AddState(ds, "sequence")
	require.NoError(t, err)

	assert.Equal(t, 1, stateOf(t, out, "e1", "sequence").(Sequence).ID)
	assert.Equal(t, 1, stateOf(t, out, "e2", "sequence").(Sequence).ID)
	assert.Equal(t, 2, stateOf(t, out, "e3", "sequence").(Sequence).ID)
	assert.Equal(t, 3, stateOf(t, out, "e4", "sequence").(Sequence).ID)
	assert.Equal(t, md.Away, stateOf(t, out, "e3", "sequence").(Sequence).Team)
}

func TestLineupBuilder(t *testing.T) {
	md := testMetadata()
	period := md.Periods[0]
	records := []match.Record{
		&match.GenericEvent{EventMeta: match.EventMeta{EventID: "kickoff", Team: md.Home, Period: period}},
		&match.SubstitutionEvent{
			EventMeta: match.EventMeta{
				EventID: "sub", Team: md.Home, Period: period,
				Player: md.Home.Players[1], // h9 off
			},
			ReplacementPlayer: md.Home.Players[2], // h12 on
		},
		&match.CardEvent{
			EventMeta: match.EventMeta{
				EventID: "red", Team: md.Away, Period: period,
				Player: md.Away.Players[1], // a7 sent off
			},
			CardType: match.CardRed,
		},
	}
	ds := mustDataset(t, md, records)

	out, err := AddState(ds, "lineup")
	require.NoError(t, err)

	start := stateOf(t, out, "kickoff", "lineup").(Lineup)
	assert.Equal(t, 4, start.Len())
	assert.True(t, start.Contains("h9"))
	assert.False(t, start.Contains("h12"))

	afterSub := stateOf(t, out, "sub", "lineup").(Lineup)
	assert.False(t, afterSub.Contains("h9"))
	assert.True(t, afterSub.Contains("h12"))

	afterRed := stateOf(t, out, "red", "lineup").(Lineup)
	assert.False(t, afterRed.Contains("a7"))
	assert.Equal(t, 3, afterRed.Len())

	// earlier snapshots are unaffected by later changes
	assert.True(t, start.Contains("h9"))
	assert.True(t, afterSub.Contains("a7"))
}

func TestFormationBuilder(t *testing.T) {
	md := testMetadata()
	period := md.Periods[0]
	records := []match.Record{
		&match.GenericEvent{EventMeta: match.EventMeta{EventID: "kickoff", Team: md.Home, Period: period}},
		&match.FormationChangeEvent{
			EventMeta:     match.EventMeta{EventID: "switch", Team: md.Home, Period: period},
			FormationType: "3-5-2",
		},
	}
	ds := mustDataset(t, md, records)

	out, err := AddState(ds, "formation")
	require.NoError(t, err)

	start := stateOf(t, out, "kickoff", "formation").(Formations)
	assert.Equal(t, match.FormationType("4-4-2"), start.Home)
	assert.Equal(t, match.FormationType("4-3-3"), start.Away)

	after := stateOf(t, out, "switch", "formation").(Formations)
	assert.Equal(t, match.FormationType("3-5-2"), after.Home)
	assert.Equal(t, match.FormationType("4-3-3"), after.Away)
}

func TestAddStateDeterministic(t *testing.T) {
	md := testMetadata()
	period := md.Periods[0]
	build := func() *match.Dataset {
		return mustDataset(t, md, []match.Record{
			shot("s1", md.Home, period, match.ShotGoal),
			shot("s2", md.Away, period, match.ShotGoal),
		})
	}

	outA, err := AddState(build(), "score", "sequence")
	require.NoError(t, err)
	outB, err := AddState(build(), "score", "sequence")
	require.NoError(t, err)

	for _, id := range []string{"s1", "s2"} {
		assert.Equal(t, stateOf(t, outA, id, "score"), stateOf(t, outB, id, "score"))
		assert.Equal(t, stateOf(t, outA, id, "sequence"), stateOf(t, outB, id, "sequence"))
	}
}

func TestAddStateUnknownKey(t *testing.T) {
	md := testMetadata()
	ds := mustDataset(t, md, []match.Record{
		shot("s1", md.Home, md.Periods[0], match.ShotGoal),
	})

	_, err := AddState(ds, "score", "xg")
	assert.ErrorIs(t, err, ErrUnknownBuilder)

	// the failed call attached nothing
	rec, lookupErr := ds.RecordByID("s1")
	require.NoError(t, lookupErr)
	_, ok := rec.State("score")
	assert.False(t, ok)
}

func TestAddStateDuplicateKey(t *testing.T) {
	md := testMetadata()
	ds := mustDataset(t, md, []match.Record{
		shot("s1", md.Home, md.Periods[0], match.ShotGoal),
	})

	_, err := AddState(ds, "score", "score")
	assert.ErrorIs(t, err, ErrDuplicateBuilder)
}

// countingBuilder counts the records seen so far.
type countingBuilder struct{}

func (countingBuilder) InitialState(_ *match.Dataset) any { return 0 }
func (countingBuilder) Reduce(state any, _ match.Record) any {
	return state.(int) + 1
}

func TestAddStateWithCustomBuilder(t *testing.T) {
	md := testMetadata()
	period := md.Periods[0]
	ds := mustDataset(t, md, []match.Record{
		shot("s1", md.Home, period, match.ShotGoal),
		shot("s2", md.Away, period, match.ShotSaved),
	})

	out, err := AddStateWith(ds, Registry{"count": countingBuilder{}})
	require.NoError(t, err)

	assert.Equal(t, 1, stateOf(t, out, "s1", "count"))
	assert.Equal(t, 2, stateOf(t, out, "s2", "count"))
}
