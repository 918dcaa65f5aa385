// Package match holds the provider-independent representation of a match:
// teams, periods, events, tracking frames, and the dataset container that
// owns them.
package match

import "fmt"

// Ground distinguishes the home side from the away side.
type Ground uint8

const (
	GroundHome Ground = iota
	GroundAway
)

func (g Ground) String() string {
	if g == GroundHome {
		return "home"
	}
	return "away"
}

// FormationType is a formation label such as "4-4-2". Free-form because
// providers disagree on vocabulary.
type FormationType string

// Team is one of the two sides in a match.
type Team struct {
	TeamID            string
	Name              string
	Ground            Ground
	StartingFormation FormationType
	Players           []*Player
}

func (t *Team) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Ground)
}

// StartingPlayers returns the players in the starting lineup.
func (t *Team) StartingPlayers() []*Player {
	var out []*Player
	for _, p := range t.Players {
		if p.Starting {
			out = append(out, p)
		}
	}
	return out
}

// Player belongs to exactly one team for the duration of a dataset.
type Player struct {
	PlayerID string
	Team     *Team
	Name     string
	JerseyNo int
	Starting bool
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (#%d)", p.Name, p.JerseyNo)
}

// Score is a running or final score, home goals first.
type Score struct {
	Home int
	Away int
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// Venue describes where the match was played. Latitude and longitude are
// WGS84 degrees; storage backends project them as needed.
type Venue struct {
	Name      string
	Latitude  float64
	Longitude float64
}
