package state

import "github.com/pitchkit/pitchkit/pkg/match"

// Lineup is the set of players on the pitch, keyed by player id. Snapshots
// share the underlying map; the builder copies it on every change.
type Lineup struct {
	players map[string]*match.Player
}

// Contains reports whether the player is currently on the pitch.
func (l Lineup) Contains(playerID string) bool {
	_, ok := l.players[playerID]
	return ok
}

// Players returns the players on the pitch in no particular order.
func (l Lineup) Players() []*match.Player {
	out := make([]*match.Player, 0, len(l.players))
	for _, p := range l.players {
		out = append(out, p)
	}
	return out
}

// Len returns the number of players on the pitch.
func (l Lineup) Len() int {
	return len(l.players)
}

func (l Lineup) with(p *match.Player) Lineup {
	if p == nil || l.Contains(p.PlayerID) {
		return l
	}
	next := l.clone()
	next.players[p.PlayerID] = p
	return next
}

func (l Lineup) without(p *match.Player) Lineup {
	if p == nil || !l.Contains(p.PlayerID) {
		return l
	}
	next := l.clone()
	delete(next.players, p.PlayerID)
	return next
}

func (l Lineup) clone() Lineup {
	players := make(map[string]*match.Player, len(l.players))
	for id, p := range l.players {
		players[id] = p
	}
	return Lineup{players: players}
}

// LineupBuilder tracks who is on the pitch. It starts from both teams'
// starting lineups and reacts to substitutions, players entering or leaving
// outside a substitution, and cards that send a player off.
type LineupBuilder struct{}

func (LineupBuilder) InitialState(ds *match.Dataset) any {
	players := make(map[string]*match.Player)
	for _, team := range []*match.Team{ds.Metadata.Home, ds.Metadata.Away} {
		if team == nil {
			continue
		}
		for _, p := range team.StartingPlayers() {
			players[p.PlayerID] = p
		}
	}
	return Lineup{players: players}
}

func (LineupBuilder) Reduce(state any, rec match.Record) any {
	lineup := state.(Lineup)
	switch ev := rec.(type) {
	case *match.SubstitutionEvent:
		return lineup.without(ev.Player).with(ev.ReplacementPlayer)
	case *match.PlayerOnEvent:
		return lineup.with(ev.Player)
	case *match.PlayerOffEvent:
		return lineup.without(ev.Player)
	case *match.CardEvent:
		if ev.CardType.SendsOff() {
			return lineup.without(ev.Player)
		}
	}
	return lineup
}
