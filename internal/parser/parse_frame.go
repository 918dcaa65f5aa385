package parser

import (
	"fmt"

	"github.com/pitchkit/pitchkit/pkg/match"
)

// parseFrame converts one raw tracking frame.
func (p *Parser) parseFrame(raw *rawFrame, lookup *lookupContext) (*match.TrackingFrame, error) {
	period, err := lookup.period(raw.Period)
	if err != nil {
		return nil, err
	}
	owning, err := lookup.team(raw.BallOwningTeam)
	if err != nil {
		return nil, fmt.Errorf("ballOwningTeam: %w", err)
	}
	ball, err := parsePoint(raw.Ball)
	if err != nil {
		return nil, fmt.Errorf("ball coordinates: %w", err)
	}

	frame := &match.TrackingFrame{
		FrameID:         raw.FrameID,
		Period:          period,
		Timestamp:       raw.Timestamp,
		BallOwningTeam:  owning,
		BallCoordinates: ball,
	}
	for _, rp := range raw.Players {
		player, err := lookup.player(rp.Player)
		if err != nil {
			return nil, err
		}
		coords, err := parsePoint(rp.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("player %q coordinates: %w", rp.Player, err)
		}
		frame.Players = append(frame.Players, match.PlayerCoordinate{
			Player:      player,
			Coordinates: coords,
		})
	}

	return frame, nil
}
