package state

import "github.com/pitchkit/pitchkit/pkg/match"

// ScoreBuilder maintains the running score. Only shot events change it: a
// goal credits the shooter's side, an own goal credits the opponent.
type ScoreBuilder struct{}

func (ScoreBuilder) InitialState(_ *match.Dataset) any {
	return match.Score{}
}

func (ScoreBuilder) Reduce(state any, rec match.Record) any {
	score := state.(match.Score)
	shot, ok := rec.(*match.ShotEvent)
	if !ok {
		return score
	}
	team := shot.RecordTeam()
	if team == nil {
		return score
	}

	credited := team.Ground
	switch shot.Result {
	case match.ShotGoal:
	case match.ShotOwnGoal:
		credited = opponent(team.Ground)
	default:
		return score
	}

	if credited == match.GroundHome {
		score.Home++
	} else {
		score.Away++
	}
	return score
}

func opponent(g match.Ground) match.Ground {
	if g == match.GroundHome {
		return match.GroundAway
	}
	return match.GroundHome
}
