package parser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchkit/pitchkit/pkg/match"
	"github.com/pitchkit/pitchkit/pkg/pitch"
)

func newTestParser() *Parser {
	return New(zerolog.Nop())
}

const matchHeader = `
	"matchId": "m-42",
	"provider": "statsbomb",
	"orientation": "action_executing_team",
	"home": {
		"teamId": "h", "name": "Home FC", "formation": "4-4-2",
		"players": [
			{"playerId": "h1", "name": "Keeper", "jerseyNo": 1, "starting": true},
			{"playerId": "h9", "name": "Striker", "jerseyNo": 9, "starting": true}
		]
	},
	"away": {
		"teamId": "a", "name": "Away FC", "formation": "4-3-3",
		"players": [
			{"playerId": "a1", "name": "Keeper", "jerseyNo": 1, "starting": true}
		]
	},
	"periods": [
		{"id": 1, "start": 0, "end": 2700},
		{"id": 2, "start": 2700, "end": 5400}
	]`

func TestParseEventDataset(t *testing.T) {
	p := newTestParser()

	input := `{` + matchHeader + `,
	"venue": {"name": "Home Park", "latitude": 50.388, "longitude": -4.151},
	"events": [
		{
			"eventId": "e1", "type": "pass", "team": "home", "player": "h9",
			"period": 1, "timestamp": 12.5,
			"ballOwningTeam": "home",
			"coordinates": [60.0, 40.0],
			"receiverPlayer": "h1",
			"receiverCoordinates": [70.0, 40.0],
			"result": "COMPLETE",
			"qualifiers": [{"kind": "set_piece", "value": "KICK_OFF"}]
		},
		{
			"eventId": "e2", "type": "shot", "team": "away", "player": "a1",
			"period": 2, "timestamp": 90.0,
			"coordinates": [110.0, 40.0],
			"result": "GOAL",
			"related": ["e1"]
		},
		{
			"type": "tackle_won", "team": "home",
			"period": 1, "timestamp": 100.0
		}
	]
}`

	ds, err := p.Parse([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, match.DatasetTypeEvent, ds.Type)
	assert.Equal(t, "m-42", ds.Metadata.MatchID)
	assert.Equal(t, pitch.ProviderStatsBomb, ds.Metadata.Provider)
	assert.Equal(t, match.OrientationActionExecutingTeam, ds.Metadata.Orientation)
	require.NotNil(t, ds.Metadata.Venue)
	assert.Equal(t, "Home Park", ds.Metadata.Venue.Name)
	require.Len(t, ds.Metadata.Periods, 2)
	assert.Equal(t, 3, ds.Len())

	rec, err := ds.RecordByID("e1")
	require.NoError(t, err)
	pass, ok := rec.(*match.PassEvent)
	require.True(t, ok)
	assert.Equal(t, match.KindPass, pass.Kind())
	assert.Equal(t, "h", pass.Team.TeamID)
	assert.Equal(t, "h9", pass.Player.PlayerID)
	assert.Equal(t, pitch.Point{X: 60, Y: 40}, *pass.Coordinates)
	assert.Equal(t, pitch.Point{X: 70, Y: 40}, *pass.ReceiverCoordinates)
	assert.Equal(t, match.PassComplete, pass.Result)
	q, ok := pass.Qualifier(match.QualifierSetPiece)
	require.True(t, ok)
	assert.Equal(t, match.SetPieceKickOff, q.Value)

	rec, err = ds.RecordByID("e2")
	require.NoError(t, err)
	shotEv, ok := rec.(*match.ShotEvent)
	require.True(t, ok)
	assert.Equal(t, match.ShotGoal, shotEv.Result)
	related, err := shotEv.RelatedEvents()
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "e1", related[0].RecordID())

	// unknown vocabulary falls back to a generic event with an assigned id
	generic, ok := ds.Record(2).(*match.GenericEvent)
	require.True(t, ok)
	assert.Equal(t, "tackle_won", generic.Name)
	assert.NotEmpty(t, generic.RecordID())
}

func TestParseTrackingDataset(t *testing.T) {
	p := newTestParser()

	input := `{` + matchHeader + `,
	"frameRate": 25,
	"frames": [
		{
			"frameId": 1, "period": 1, "timestamp": 0.04,
			"ballOwningTeam": "away",
			"ball": [55.0, 38.0],
			"players": [
				{"player": "h1", "coordinates": [5.0, 40.0]},
				{"player": "a1", "coordinates": [115.0, 40.0]}
			]
		}
	]
}`

	ds, err := p.Parse([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, match.DatasetTypeTracking, ds.Type)
	assert.Equal(t, 25.0, ds.Metadata.FrameRate)
	require.Equal(t, 1, ds.Len())

	frame, ok := ds.Record(0).(*match.TrackingFrame)
	require.True(t, ok)
	assert.Equal(t, "a", frame.BallOwningTeam.TeamID)
	assert.Equal(t, pitch.Point{X: 55, Y: 38}, *frame.BallCoordinates)
	require.Len(t, frame.Players, 2)
	assert.Equal(t, "h1", frame.Players[0].Player.PlayerID)
}

func TestParseErrors(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "unknown provider",
			input:   `{"provider": "mystery", "home": {"teamId": "h"}, "away": {"teamId": "a"}, "periods": []}`,
			wantErr: pitch.ErrUnknownProvider,
		},
		{
			name: "unknown team reference",
			input: `{` + matchHeader + `,
				"events": [{"type": "pass", "team": "neutral", "period": 1, "timestamp": 0}]}`,
			wantErr: ErrUnknownTeamRef,
		},
		{
			name: "unknown player reference",
			input: `{` + matchHeader + `,
				"events": [{"type": "pass", "team": "home", "player": "h99", "period": 1, "timestamp": 0}]}`,
			wantErr: ErrUnknownPlayerRef,
		},
		{
			name: "unknown period reference",
			input: `{` + matchHeader + `,
				"events": [{"type": "pass", "team": "home", "period": 9, "timestamp": 0}]}`,
			wantErr: ErrUnknownPeriodRef,
		},
		{
			name: "unknown orientation",
			input: `{"matchId": "x", "provider": "opta", "orientation": "sideways",
				"home": {"teamId": "h", "players": [{"playerId": "p"}]},
				"away": {"teamId": "a", "players": [{"playerId": "q"}]},
				"periods": []}`,
			wantErr: match.ErrUnknownOrientation,
		},
		{
			name: "bad coordinates arity",
			input: `{` + matchHeader + `,
				"events": [{"type": "pass", "team": "home", "period": 1, "timestamp": 0, "coordinates": [1.0]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse([]byte(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseMissingTeams(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse([]byte(`{"provider": "opta", "periods": []}`))
	assert.ErrorIs(t, err, ErrNoTeams)
}

func TestParseGeneratesMissingIDs(t *testing.T) {
	p := newTestParser()
	input := `{
		"provider": "opta",
		"home": {"name": "Home", "players": [{"playerId": "h1", "starting": true}]},
		"away": {"name": "Away", "players": [{"playerId": "a1", "starting": true}]},
		"periods": [{"id": 1, "start": 0, "end": 2700}],
		"events": [{"type": "recovery", "team": "home", "period": 1, "timestamp": 1}]
	}`

	ds, err := p.Parse([]byte(input))
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Metadata.MatchID)
	assert.NotEmpty(t, ds.Metadata.Home.TeamID)
	assert.NotEmpty(t, ds.Record(0).RecordID())
}
