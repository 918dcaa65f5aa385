package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchkit/pitchkit/pkg/match"
	"github.com/pitchkit/pitchkit/pkg/pitch"
	"github.com/pitchkit/pitchkit/pkg/state"
)

func testDataset(t *testing.T) *match.Dataset {
	t.Helper()
	home := &match.Team{TeamID: "h", Name: "Home FC", Ground: match.GroundHome}
	home.Players = []*match.Player{{PlayerID: "h9", Team: home, Name: "Striker", JerseyNo: 9, Starting: true}}
	away := &match.Team{TeamID: "a", Name: "Away FC", Ground: match.GroundAway}
	away.Players = []*match.Player{{PlayerID: "a1", Team: away, Name: "Keeper", JerseyNo: 1, Starting: true}}
	cs, _ := pitch.ForProvider(pitch.ProviderDefault)
	md := match.Metadata{
		MatchID:          "m1",
		Home:             home,
		Away:             away,
		Periods:          []*match.Period{{ID: 1, Start: 0, End: 2700}},
		Provider:         pitch.ProviderDefault,
		CoordinateSystem: cs,
		Orientation:      match.OrientationStaticHomeAway,
	}
	records := []match.Record{
		&match.ShotEvent{
			EventMeta: match.EventMeta{
				EventID:     "s1",
				Team:        home,
				Player:      home.Players[0],
				Period:      md.Periods[0],
				Timestamp:   55.2,
				Coordinates: &pitch.Point{X: 0.9, Y: 0.5},
			},
			ResultCoordinates: &pitch.Point{X: 1.0, Y: 0.52},
			Result:            match.ShotGoal,
		},
		&match.RecoveryEvent{
			EventMeta: match.EventMeta{
				EventID:   "r1",
				Team:      away,
				Period:    md.Periods[0],
				Timestamp: 60.0,
			},
		},
	}
	ds, err := match.NewDataset(match.DatasetTypeEvent, md, records)
	require.NoError(t, err)
	return ds
}

func TestFlatten(t *testing.T) {
	ds := testDataset(t)
	withState, err := state.AddState(ds, "score")
	require.NoError(t, err)

	rows := Flatten(withState)
	require.Len(t, rows, 2)

	shot := rows[0]
	assert.Equal(t, "s1", shot["record_id"])
	assert.Equal(t, "shot", shot["record_type"])
	assert.Equal(t, 1, shot["period_id"])
	assert.Equal(t, "h", shot["team_id"])
	assert.Equal(t, "h9", shot["player_id"])
	assert.Equal(t, 0.9, shot["coordinates_x"])
	assert.Equal(t, 1.0, shot["end_coordinates_x"])
	assert.Equal(t, "GOAL", shot["result"])
	assert.Equal(t, true, shot["success"])
	assert.Equal(t, "1-0", shot["state_score"])

	recovery := rows[1]
	assert.Equal(t, "recovery", recovery["record_type"])
	_, hasResult := recovery["result"]
	assert.False(t, hasResult)
	_, hasCoords := recovery["coordinates_x"]
	assert.False(t, hasCoords)
}

func TestColumnsOrder(t *testing.T) {
	ds := testDataset(t)
	withState, err := state.AddState(ds, "score", "sequence")
	require.NoError(t, err)

	columns := Columns(Flatten(withState))
	require.GreaterOrEqual(t, len(columns), len(baseColumns)+2)
	assert.Equal(t, "record_id", columns[0])
	// state columns come after the base set, sorted
	assert.Equal(t, "state_score", columns[len(baseColumns)])
	assert.Equal(t, "state_sequence", columns[len(baseColumns)+1])
}

func TestWriteCSV(t *testing.T) {
	ds := testDataset(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 3) // header + 2 records
	assert.Equal(t, baseColumns, lines[0])
	assert.Equal(t, "s1", lines[1][0])
}

func TestWriteJSON(t *testing.T) {
	ds := testDataset(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, ds))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "s1", rows[0]["record_id"])
}
