// Package export flattens datasets into per-record rows for tabular
// consumers. It is read-only over datasets; spatial values are exported in
// whatever coordinate system the dataset currently carries.
package export

import (
	"fmt"
	"sort"

	"github.com/pitchkit/pitchkit/pkg/match"
)

// Row is one record flattened to named columns.
type Row map[string]any

// Base columns, in output order. State columns follow, sorted, prefixed
// with "state_".
var baseColumns = []string{
	"record_id",
	"record_type",
	"period_id",
	"timestamp",
	"team_id",
	"player_id",
	"ball_owning_team_id",
	"coordinates_x",
	"coordinates_y",
	"end_coordinates_x",
	"end_coordinates_y",
	"result",
	"success",
}

// Flatten converts every record to a row.
func Flatten(ds *match.Dataset) []Row {
	rows := make([]Row, 0, ds.Len())
	for _, rec := range ds.Records() {
		rows = append(rows, flattenRecord(rec))
	}
	return rows
}

func flattenRecord(rec match.Record) Row {
	row := Row{
		"record_id": rec.RecordID(),
		"timestamp": rec.RecordTimestamp(),
	}
	if ev, ok := rec.(match.Event); ok {
		row["record_type"] = ev.Kind().String()
	} else {
		row["record_type"] = "frame"
	}
	if p := rec.RecordPeriod(); p != nil {
		row["period_id"] = p.ID
	}
	if t := rec.RecordTeam(); t != nil {
		row["team_id"] = t.TeamID
	}
	if t := rec.OwningTeam(); t != nil {
		row["ball_owning_team_id"] = t.TeamID
	}
	if c := rec.RecordCoordinates(); c != nil {
		row["coordinates_x"] = c.X
		row["coordinates_y"] = c.Y
	}

	type withPlayer interface{ RecordPlayer() *match.Player }
	if wp, ok := rec.(withPlayer); ok {
		if p := wp.RecordPlayer(); p != nil {
			row["player_id"] = p.PlayerID
		}
	}

	switch ev := rec.(type) {
	case *match.PassEvent:
		if ev.ReceiverCoordinates != nil {
			row["end_coordinates_x"] = ev.ReceiverCoordinates.X
			row["end_coordinates_y"] = ev.ReceiverCoordinates.Y
		}
		setResult(row, string(ev.Result), ev.Result.IsSuccess())
	case *match.ShotEvent:
		if ev.ResultCoordinates != nil {
			row["end_coordinates_x"] = ev.ResultCoordinates.X
			row["end_coordinates_y"] = ev.ResultCoordinates.Y
		}
		setResult(row, string(ev.Result), ev.Result.IsSuccess())
	case *match.CarryEvent:
		if ev.EndCoordinates != nil {
			row["end_coordinates_x"] = ev.EndCoordinates.X
			row["end_coordinates_y"] = ev.EndCoordinates.Y
		}
		setResult(row, string(ev.Result), ev.Result.IsSuccess())
	case *match.TakeOnEvent:
		setResult(row, string(ev.Result), ev.Result.IsSuccess())
	}

	for key, value := range rec.States() {
		row["state_"+key] = stateValue(value)
	}

	return row
}

func setResult(row Row, result string, success bool) {
	if result == "" {
		return
	}
	row["result"] = result
	row["success"] = success
}

// stateValue renders builder snapshots as strings where a struct would not
// survive a CSV cell.
func stateValue(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}

// Columns returns the ordered column set covering all rows: base columns
// first, then any state columns sorted by name.
func Columns(rows []Row) []string {
	stateCols := map[string]struct{}{}
	for _, row := range rows {
		for key := range row {
			if len(key) > 6 && key[:6] == "state_" {
				stateCols[key] = struct{}{}
			}
		}
	}
	extra := make([]string, 0, len(stateCols))
	for key := range stateCols {
		extra = append(extra, key)
	}
	sort.Strings(extra)
	return append(append([]string{}, baseColumns...), extra...)
}
