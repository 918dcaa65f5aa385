// Package parser loads a JSON match file into a match.Dataset. It converts
// raw provider structures to the normalized model without touching the
// coordinates themselves; metadata declares which coordinate system and
// orientation the values follow.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pitchkit/pitchkit/pkg/match"
	"github.com/pitchkit/pitchkit/pkg/pitch"
)

var (
	// ErrNoTeams is returned when the match file is missing a side.
	ErrNoTeams = errors.New("match file must declare home and away teams")

	// ErrUnknownTeamRef is returned when a record references a team other
	// than "home" or "away".
	ErrUnknownTeamRef = errors.New("unknown team reference")

	// ErrUnknownPlayerRef is returned when a record references a player id
	// that neither roster contains.
	ErrUnknownPlayerRef = errors.New("unknown player reference")

	// ErrUnknownPeriodRef is returned when a record references an
	// undeclared period id.
	ErrUnknownPeriodRef = errors.New("unknown period reference")
)

// Parser converts raw match files to datasets. It is pure conversion with a
// logger as the only dependency.
type Parser struct {
	logger zerolog.Logger
}

// New creates a parser.
func New(logger zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseFile loads and parses a match file from disk.
func (p *Parser) ParseFile(path string) (*match.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading match file: %w", err)
	}
	return p.Parse(data)
}

// Parse converts raw match JSON into a dataset. Event datasets and tracking
// datasets come from the same file layout; a file carrying frames is a
// tracking dataset, otherwise an event dataset.
func (p *Parser) Parse(data []byte) (*match.Dataset, error) {
	var raw rawMatch
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error unmarshalling match data: %w", err)
	}

	md, lookup, err := p.parseMetadata(&raw)
	if err != nil {
		return nil, err
	}

	dsType := match.DatasetTypeEvent
	var records []match.Record
	if len(raw.Frames) > 0 {
		dsType = match.DatasetTypeTracking
		records = make([]match.Record, 0, len(raw.Frames))
		for i, rf := range raw.Frames {
			frame, err := p.parseFrame(&rf, lookup)
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
			records = append(records, frame)
		}
	} else {
		records = make([]match.Record, 0, len(raw.Events))
		for i, re := range raw.Events {
			ev, err := p.parseEvent(&re, lookup)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", i, err)
			}
			records = append(records, ev)
		}
	}

	ds, err := match.NewDataset(dsType, md, records)
	if err != nil {
		return nil, err
	}

	p.logger.Debug().
		Str("matchId", md.MatchID).
		Str("provider", string(md.Provider)).
		Stringer("type", dsType).
		Int("records", ds.Len()).
		Msg("Parsed match data")

	return ds, nil
}

// lookupContext resolves team/player/period references while parsing
// records.
type lookupContext struct {
	home    *match.Team
	away    *match.Team
	players map[string]*match.Player
	periods map[int]*match.Period
}

func (l *lookupContext) team(ref string) (*match.Team, error) {
	switch ref {
	case "":
		return nil, nil
	case "home":
		return l.home, nil
	case "away":
		return l.away, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeamRef, ref)
	}
}

func (l *lookupContext) player(id string) (*match.Player, error) {
	if id == "" {
		return nil, nil
	}
	pl, ok := l.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayerRef, id)
	}
	return pl, nil
}

func (l *lookupContext) period(id int) (*match.Period, error) {
	per, ok := l.periods[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPeriodRef, id)
	}
	return per, nil
}

// parseMetadata builds dataset metadata plus the reference lookup tables.
func (p *Parser) parseMetadata(raw *rawMatch) (match.Metadata, *lookupContext, error) {
	var md match.Metadata

	if raw.Home.TeamID == "" && len(raw.Home.Players) == 0 ||
		raw.Away.TeamID == "" && len(raw.Away.Players) == 0 {
		return md, nil, ErrNoTeams
	}

	provider, err := pitch.ParseProvider(raw.Provider)
	if err != nil {
		return md, nil, err
	}
	cs, err := pitch.ForProvider(provider)
	if err != nil {
		return md, nil, err
	}

	orientation := match.OrientationNotSet
	if raw.Orientation != "" {
		orientation, err = match.ParseOrientation(raw.Orientation)
		if err != nil {
			return md, nil, err
		}
	}

	lookup := &lookupContext{
		home:    parseTeam(&raw.Home, match.GroundHome),
		away:    parseTeam(&raw.Away, match.GroundAway),
		players: make(map[string]*match.Player),
		periods: make(map[int]*match.Period),
	}
	for _, team := range []*match.Team{lookup.home, lookup.away} {
		for _, pl := range team.Players {
			lookup.players[pl.PlayerID] = pl
		}
	}

	periods := make([]*match.Period, 0, len(raw.Periods))
	for _, rp := range raw.Periods {
		per := &match.Period{ID: rp.ID, Start: rp.Start, End: rp.End}
		periods = append(periods, per)
		lookup.periods[rp.ID] = per
	}

	md = match.Metadata{
		MatchID:          raw.MatchID,
		Home:             lookup.home,
		Away:             lookup.away,
		Periods:          periods,
		Provider:         provider,
		CoordinateSystem: cs,
		Orientation:      orientation,
		FrameRate:        raw.FrameRate,
	}
	if md.MatchID == "" {
		md.MatchID = uuid.NewString()
	}
	if raw.Venue != nil {
		md.Venue = &match.Venue{
			Name:      raw.Venue.Name,
			Latitude:  raw.Venue.Latitude,
			Longitude: raw.Venue.Longitude,
		}
	}

	return md, lookup, nil
}

func parseTeam(raw *rawTeam, ground match.Ground) *match.Team {
	team := &match.Team{
		TeamID:            raw.TeamID,
		Name:              raw.Name,
		Ground:            ground,
		StartingFormation: match.FormationType(raw.Formation),
	}
	if team.TeamID == "" {
		team.TeamID = uuid.NewString()
	}
	for _, rp := range raw.Players {
		team.Players = append(team.Players, &match.Player{
			PlayerID: rp.PlayerID,
			Team:     team,
			Name:     rp.Name,
			JerseyNo: rp.JerseyNo,
			Starting: rp.Starting,
		})
	}
	return team
}

// parsePoint converts an optional [x, y] pair. Nil stays nil: absent
// coordinates are a valid state, not an error.
func parsePoint(coords []float64) (*pitch.Point, error) {
	if coords == nil {
		return nil, nil
	}
	if len(coords) != 2 {
		return nil, fmt.Errorf("coordinates must be [x, y], got %d values", len(coords))
	}
	return &pitch.Point{X: coords[0], Y: coords[1]}, nil
}
