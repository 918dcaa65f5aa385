// Package convert maps normalized datasets onto database row structures.
// Foreign keys are left zero; the storage backend fills them after the
// parent rows are inserted.
package convert

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pitchkit/pitchkit/internal/geo"
	"github.com/pitchkit/pitchkit/internal/model"
	"github.com/pitchkit/pitchkit/pkg/match"
	"github.com/pitchkit/pitchkit/pkg/pitch"
)

// ToMatch builds the match row from dataset metadata.
func ToMatch(ds *match.Dataset) model.Match {
	md := ds.Metadata
	dims := md.CoordinateSystem.Dimensions
	row := model.Match{
		MatchID:     md.MatchID,
		DatasetType: ds.Type.String(),
		Provider:    string(md.Provider),
		Orientation: md.Orientation.String(),
		FrameRate:   md.FrameRate,
		HomeScore:   md.Score.Home,
		AwayScore:   md.Score.Away,
		IngestedAt:  time.Now().UTC(),
		PitchMinX:   dims.X.Min,
		PitchMaxX:   dims.X.Max,
		PitchMinY:   dims.Y.Min,
		PitchMaxY:   dims.Y.Max,
		Vertical:    verticalName(md.CoordinateSystem.Vertical),
		Origin:      originName(md.CoordinateSystem.Origin),
	}
	if md.Venue != nil {
		row.VenueName = md.Venue.Name
		row.VenueLocation = geo.VenuePoint3857(md.Venue.Longitude, md.Venue.Latitude).AsText()
	}
	return row
}

// ToTeams builds team and player rows for both sides. Player rows reference
// teams by slice position; the backend rewrites that to the inserted ids.
func ToTeams(md match.Metadata) (teams []model.TeamRow, players [][]model.PlayerRow) {
	for _, team := range []*match.Team{md.Home, md.Away} {
		if team == nil {
			continue
		}
		teams = append(teams, model.TeamRow{
			TeamID:            team.TeamID,
			Name:              team.Name,
			Ground:            team.Ground.String(),
			StartingFormation: string(team.StartingFormation),
		})
		var roster []model.PlayerRow
		for _, p := range team.Players {
			roster = append(roster, model.PlayerRow{
				PlayerID: p.PlayerID,
				Name:     p.Name,
				JerseyNo: p.JerseyNo,
				Starting: p.Starting,
			})
		}
		players = append(players, roster)
	}
	return teams, players
}

// ToPeriods builds period rows.
func ToPeriods(md match.Metadata) []model.PeriodRow {
	out := make([]model.PeriodRow, 0, len(md.Periods))
	for _, p := range md.Periods {
		out = append(out, model.PeriodRow{PeriodID: p.ID, Start: p.Start, End: p.End})
	}
	return out
}

// ToRecord builds one record row. ordinal preserves dataset order across
// retrieval.
func ToRecord(rec match.Record, ordinal int) (model.RecordRow, error) {
	row := model.RecordRow{
		RecordID:  rec.RecordID(),
		Ordinal:   ordinal,
		Timestamp: rec.RecordTimestamp(),
	}
	if p := rec.RecordPeriod(); p != nil {
		row.PeriodID = p.ID
	}
	if t := rec.RecordTeam(); t != nil {
		row.TeamID = t.TeamID
	}
	if t := rec.OwningTeam(); t != nil {
		row.BallOwningTeam = t.TeamID
	}
	if c := rec.RecordCoordinates(); c != nil {
		row.Coordinates = geo.PointWKT(*c)
	}

	if state := rec.States(); len(state) > 0 {
		blob, err := json.Marshal(stateStrings(state))
		if err != nil {
			return row, fmt.Errorf("error marshalling state snapshot: %w", err)
		}
		row.State = blob
	}

	switch ev := rec.(type) {
	case match.Event:
		row.RecordType = ev.Kind().String()
		if wp, ok := ev.(interface{ RecordPlayer() *match.Player }); ok {
			if p := wp.RecordPlayer(); p != nil {
				row.PlayerID = p.PlayerID
			}
		}
		if err := fillEventRow(&row, ev); err != nil {
			return row, err
		}
	case *match.TrackingFrame:
		row.RecordType = "frame"
		if err := fillFrameRow(&row, ev); err != nil {
			return row, err
		}
	}

	return row, nil
}

func fillEventRow(row *model.RecordRow, ev match.Event) error {
	var end *pitch.Point
	switch e := ev.(type) {
	case *match.PassEvent:
		end = e.ReceiverCoordinates
		row.Result = string(e.Result)
	case *match.ShotEvent:
		end = e.ResultCoordinates
		row.Result = string(e.Result)
	case *match.CarryEvent:
		end = e.EndCoordinates
		row.Result = string(e.Result)
	case *match.TakeOnEvent:
		row.Result = string(e.Result)
	}
	if end != nil {
		row.EndCoordinates = geo.PointWKT(*end)
		if start := ev.RecordCoordinates(); start != nil {
			wkt, err := geo.LineWKT([]pitch.Point{*start, *end})
			if err != nil {
				return fmt.Errorf("error building trajectory: %w", err)
			}
			row.Trajectory = wkt
		}
	}

	type withQualifiers interface{ AllQualifiers() []match.Qualifier }
	if wq, ok := ev.(withQualifiers); ok {
		if qs := wq.AllQualifiers(); len(qs) > 0 {
			blob, err := json.Marshal(qualifierStrings(qs))
			if err != nil {
				return fmt.Errorf("error marshalling qualifiers: %w", err)
			}
			row.Qualifiers = blob
		}
	}

	return nil
}

func fillFrameRow(row *model.RecordRow, frame *match.TrackingFrame) error {
	if len(frame.Players) == 0 {
		return nil
	}
	positions := make(map[string][]float64, len(frame.Players))
	for _, pc := range frame.Players {
		if pc.Player == nil || pc.Coordinates == nil {
			continue
		}
		positions[pc.Player.PlayerID] = []float64{pc.Coordinates.X, pc.Coordinates.Y}
	}
	blob, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("error marshalling player positions: %w", err)
	}
	row.PlayerPositions = blob
	return nil
}

// stateStrings renders state snapshots as display strings for the JSON
// column; raw builder structs carry pointers that do not serialize usefully.
func stateStrings(state map[string]any) map[string]string {
	out := make(map[string]string, len(state))
	for key, value := range state {
		if s, ok := value.(fmt.Stringer); ok {
			out[key] = s.String()
			continue
		}
		out[key] = fmt.Sprint(value)
	}
	return out
}

func qualifierStrings(qs []match.Qualifier) []map[string]any {
	out := make([]map[string]any, 0, len(qs))
	for _, q := range qs {
		entry := map[string]any{"kind": q.Kind.String()}
		if q.Value != "" {
			entry["value"] = q.Value
		} else {
			entry["flag"] = q.Flag
		}
		out = append(out, entry)
	}
	return out
}

func verticalName(v pitch.VerticalOrientation) string {
	if v == pitch.BottomToTop {
		return "bottom-to-top"
	}
	return "top-to-bottom"
}

func originName(o pitch.Origin) string {
	switch o {
	case pitch.OriginBottomLeft:
		return "bottom-left"
	case pitch.OriginCenter:
		return "center"
	default:
		return "top-left"
	}
}
