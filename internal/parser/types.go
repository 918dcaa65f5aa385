package parser

// Raw input structures mirroring the JSON match file layout. Coordinates are
// kept verbatim in the provider's own system; the metadata declares which
// system that is.

type rawMatch struct {
	MatchID     string      `json:"matchId"`
	Provider    string      `json:"provider"`
	Orientation string      `json:"orientation"`
	FrameRate   float64     `json:"frameRate,omitempty"`
	Home        rawTeam     `json:"home"`
	Away        rawTeam     `json:"away"`
	Periods     []rawPeriod `json:"periods"`
	Venue       *rawVenue   `json:"venue,omitempty"`
	Events      []rawEvent  `json:"events,omitempty"`
	Frames      []rawFrame  `json:"frames,omitempty"`
}

type rawTeam struct {
	TeamID    string      `json:"teamId"`
	Name      string      `json:"name"`
	Formation string      `json:"formation,omitempty"`
	Players   []rawPlayer `json:"players"`
}

type rawPlayer struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	JerseyNo int    `json:"jerseyNo"`
	Starting bool   `json:"starting"`
}

type rawPeriod struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type rawVenue struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type rawQualifier struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
	Flag  bool   `json:"flag,omitempty"`
}

// rawEvent is the union of all event kinds; kind-specific fields are only
// read for the matching type.
type rawEvent struct {
	EventID        string         `json:"eventId,omitempty"`
	Type           string         `json:"type"`
	Team           string         `json:"team,omitempty"` // "home" or "away"
	Player         string         `json:"player,omitempty"`
	Period         int            `json:"period"`
	Timestamp      float64        `json:"timestamp"`
	BallOwningTeam string         `json:"ballOwningTeam,omitempty"`
	Coordinates    []float64      `json:"coordinates,omitempty"`
	Qualifiers     []rawQualifier `json:"qualifiers,omitempty"`
	Related        []string       `json:"related,omitempty"`

	Name                string    `json:"name,omitempty"`   // generic
	Result              string    `json:"result,omitempty"` // pass/shot/carry/take_on
	ReceiverPlayer      string    `json:"receiverPlayer,omitempty"`
	ReceiverCoordinates []float64 `json:"receiverCoordinates,omitempty"`
	ReceiveTimestamp    float64   `json:"receiveTimestamp,omitempty"`
	ResultCoordinates   []float64 `json:"resultCoordinates,omitempty"`
	EndCoordinates      []float64 `json:"endCoordinates,omitempty"`
	EndTimestamp        float64   `json:"endTimestamp,omitempty"`
	ReplacementPlayer   string    `json:"replacementPlayer,omitempty"`
	CardType            string    `json:"cardType,omitempty"`
	Formation           string    `json:"formation,omitempty"`
}

type rawFrame struct {
	FrameID        int                 `json:"frameId"`
	Period         int                 `json:"period"`
	Timestamp      float64             `json:"timestamp"`
	BallOwningTeam string              `json:"ballOwningTeam,omitempty"`
	Ball           []float64           `json:"ball,omitempty"`
	Players        []rawPlayerPosition `json:"players,omitempty"`
}

type rawPlayerPosition struct {
	Player      string    `json:"player"`
	Coordinates []float64 `json:"coordinates"`
}
