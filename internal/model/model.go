// Package model holds the database row structures for persisted datasets.
// Geometry is stored as WKT text so SQLite, which has no spatial types, can
// round-trip it; qualifiers and state snapshots are JSON columns.
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels lists every struct representing a table in the schema.
var DatabaseModels = []interface{}{
	&Match{},
	&TeamRow{},
	&PlayerRow{},
	&PeriodRow{},
	&RecordRow{},
}

// Match is one persisted dataset.
type Match struct {
	gorm.Model
	MatchID     string    `json:"matchId" gorm:"size:127;uniqueIndex"`
	DatasetType string    `json:"datasetType" gorm:"size:15"`
	Provider    string    `json:"provider" gorm:"size:63"`
	Orientation string    `json:"orientation" gorm:"size:63"`
	FrameRate   float64   `json:"frameRate"`
	HomeScore   int       `json:"homeScore"`
	AwayScore   int       `json:"awayScore"`
	VenueName   string    `json:"venueName" gorm:"size:255"`
	// Venue location projected to 3857, WKT
	VenueLocation string    `json:"venueLocation" gorm:"size:255"`
	IngestedAt    time.Time `json:"ingestedAt" gorm:"type:timestamptz"`

	// Source and current coordinate conventions
	PitchMinX float64 `json:"pitchMinX"`
	PitchMaxX float64 `json:"pitchMaxX"`
	PitchMinY float64 `json:"pitchMinY"`
	PitchMaxY float64 `json:"pitchMaxY"`
	Vertical  string  `json:"vertical" gorm:"size:31"`
	Origin    string  `json:"origin" gorm:"size:31"`
}

func (*Match) TableName() string { return "matches" }

// TeamRow is one side of a persisted match.
type TeamRow struct {
	gorm.Model
	MatchRowID        uint   `json:"matchRowId" gorm:"index:idx_team_match"`
	TeamID            string `json:"teamId" gorm:"size:127"`
	Name              string `json:"name" gorm:"size:255"`
	Ground            string `json:"ground" gorm:"size:7"`
	StartingFormation string `json:"startingFormation" gorm:"size:31"`
}

func (*TeamRow) TableName() string { return "teams" }

// PlayerRow is one roster entry.
type PlayerRow struct {
	gorm.Model
	MatchRowID uint   `json:"matchRowId" gorm:"index:idx_player_match"`
	TeamRowID  uint   `json:"teamRowId" gorm:"index:idx_player_team"`
	PlayerID   string `json:"playerId" gorm:"size:127"`
	Name       string `json:"name" gorm:"size:255"`
	JerseyNo   int    `json:"jerseyNo"`
	Starting   bool   `json:"starting"`
}

func (*PlayerRow) TableName() string { return "players" }

// PeriodRow is one playing period.
type PeriodRow struct {
	gorm.Model
	MatchRowID uint    `json:"matchRowId" gorm:"index:idx_period_match"`
	PeriodID   int     `json:"periodId"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
}

func (*PeriodRow) TableName() string { return "periods" }

// RecordRow is one event or tracking frame. Spatial attributes are WKT in
// the dataset's current coordinate system; Qualifiers and State carry the
// record's qualifier list and state snapshot as JSON.
type RecordRow struct {
	gorm.Model
	MatchRowID     uint    `json:"matchRowId" gorm:"index:idx_record_match"`
	RecordID       string  `json:"recordId" gorm:"size:127;index:idx_record_id"`
	RecordType     string  `json:"recordType" gorm:"size:31"`
	Ordinal        int     `json:"ordinal" gorm:"index:idx_record_ordinal"`
	PeriodID       int     `json:"periodId"`
	Timestamp      float64 `json:"timestamp"`
	TeamID         string  `json:"teamId" gorm:"size:127"`
	PlayerID       string  `json:"playerId" gorm:"size:127"`
	BallOwningTeam string  `json:"ballOwningTeam" gorm:"size:127"`

	Coordinates    string `json:"coordinates" gorm:"size:127"`    // WKT point
	EndCoordinates string `json:"endCoordinates" gorm:"size:127"` // WKT point
	Trajectory     string `json:"trajectory"`                     // WKT line string

	Result     string         `json:"result" gorm:"size:31"`
	Qualifiers datatypes.JSON `json:"qualifiers"`
	State      datatypes.JSON `json:"state"`
	// Tracking frames: per-player positions as JSON {playerId: [x, y]}
	PlayerPositions datatypes.JSON `json:"playerPositions"`
}

func (*RecordRow) TableName() string { return "records" }
