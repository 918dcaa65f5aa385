package parser

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pitchkit/pitchkit/pkg/match"
)

// parseEvent converts one raw event into its concrete event type. The type
// name selects the concrete struct; kind-specific fields are only read for
// the matching type.
func (p *Parser) parseEvent(raw *rawEvent, lookup *lookupContext) (match.Event, error) {
	meta, err := p.parseEventMeta(raw, lookup)
	if err != nil {
		return nil, err
	}

	kind, known := match.ParseEventKind(raw.Type)
	if !known {
		// Unknown provider vocabulary lands in a generic event rather than
		// failing the whole file.
		return &match.GenericEvent{EventMeta: meta, Name: raw.Type}, nil
	}

	switch kind {
	case match.KindGeneric:
		return &match.GenericEvent{EventMeta: meta, Name: raw.Name}, nil

	case match.KindPass:
		receiver, err := lookup.player(raw.ReceiverPlayer)
		if err != nil {
			return nil, err
		}
		receiverCoords, err := parsePoint(raw.ReceiverCoordinates)
		if err != nil {
			return nil, fmt.Errorf("receiver coordinates: %w", err)
		}
		result, err := match.ParsePassResult(raw.Result)
		if err != nil {
			return nil, err
		}
		return &match.PassEvent{
			EventMeta:           meta,
			ReceiverPlayer:      receiver,
			ReceiverCoordinates: receiverCoords,
			ReceiveTimestamp:    raw.ReceiveTimestamp,
			Result:              result,
		}, nil

	case match.KindShot:
		resultCoords, err := parsePoint(raw.ResultCoordinates)
		if err != nil {
			return nil, fmt.Errorf("result coordinates: %w", err)
		}
		result, err := match.ParseShotResult(raw.Result)
		if err != nil {
			return nil, err
		}
		return &match.ShotEvent{
			EventMeta:         meta,
			ResultCoordinates: resultCoords,
			Result:            result,
		}, nil

	case match.KindCarry:
		endCoords, err := parsePoint(raw.EndCoordinates)
		if err != nil {
			return nil, fmt.Errorf("end coordinates: %w", err)
		}
		result, err := match.ParseCarryResult(raw.Result)
		if err != nil {
			return nil, err
		}
		return &match.CarryEvent{
			EventMeta:      meta,
			EndCoordinates: endCoords,
			EndTimestamp:   raw.EndTimestamp,
			Result:         result,
		}, nil

	case match.KindTakeOn:
		result, err := match.ParseTakeOnResult(raw.Result)
		if err != nil {
			return nil, err
		}
		return &match.TakeOnEvent{EventMeta: meta, Result: result}, nil

	case match.KindRecovery:
		return &match.RecoveryEvent{EventMeta: meta}, nil

	case match.KindBallOut:
		return &match.BallOutEvent{EventMeta: meta}, nil

	case match.KindFoulCommitted:
		return &match.FoulCommittedEvent{EventMeta: meta}, nil

	case match.KindSubstitution:
		replacement, err := lookup.player(raw.ReplacementPlayer)
		if err != nil {
			return nil, err
		}
		return &match.SubstitutionEvent{EventMeta: meta, ReplacementPlayer: replacement}, nil

	case match.KindCard:
		cardType, err := match.ParseCardType(raw.CardType)
		if err != nil {
			return nil, err
		}
		return &match.CardEvent{EventMeta: meta, CardType: cardType}, nil

	case match.KindPlayerOn:
		return &match.PlayerOnEvent{EventMeta: meta}, nil

	case match.KindPlayerOff:
		return &match.PlayerOffEvent{EventMeta: meta}, nil

	case match.KindFormationChange:
		return &match.FormationChangeEvent{
			EventMeta:     meta,
			FormationType: match.FormationType(raw.Formation),
		}, nil

	default:
		return &match.GenericEvent{EventMeta: meta, Name: raw.Type}, nil
	}
}

func (p *Parser) parseEventMeta(raw *rawEvent, lookup *lookupContext) (match.EventMeta, error) {
	var meta match.EventMeta

	team, err := lookup.team(raw.Team)
	if err != nil {
		return meta, err
	}
	player, err := lookup.player(raw.Player)
	if err != nil {
		return meta, err
	}
	period, err := lookup.period(raw.Period)
	if err != nil {
		return meta, err
	}
	owning, err := lookup.team(raw.BallOwningTeam)
	if err != nil {
		return meta, fmt.Errorf("ballOwningTeam: %w", err)
	}
	coords, err := parsePoint(raw.Coordinates)
	if err != nil {
		return meta, err
	}

	meta = match.EventMeta{
		EventID:         raw.EventID,
		Team:            team,
		Player:          player,
		Period:          period,
		Timestamp:       raw.Timestamp,
		BallOwningTeam:  owning,
		Coordinates:     coords,
		RelatedEventIDs: raw.Related,
	}
	if meta.EventID == "" {
		meta.EventID = uuid.NewString()
	}
	for _, rq := range raw.Qualifiers {
		q, err := match.ParseQualifier(rq.Kind, rq.Value, rq.Flag)
		if err != nil {
			return meta, err
		}
		meta.Qualifiers = append(meta.Qualifiers, q)
	}

	return meta, nil
}
