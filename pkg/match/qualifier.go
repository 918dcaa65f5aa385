package match

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownQualifier is returned when a qualifier kind or card type name
// is not recognized.
var ErrUnknownQualifier = errors.New("unknown qualifier")

// QualifierKind tags the closed set of qualifier variants.
type QualifierKind uint8

const (
	// Enum-valued qualifiers.
	QualifierSetPiece QualifierKind = iota
	QualifierBodyPart
	QualifierCard
	QualifierPassType

	// Boolean-flag qualifiers.
	QualifierCounterAttack
)

var qualifierKindNames = map[QualifierKind]string{
	QualifierSetPiece:      "set_piece",
	QualifierBodyPart:      "body_part",
	QualifierCard:          "card",
	QualifierPassType:      "pass_type",
	QualifierCounterAttack: "counter_attack",
}

func (k QualifierKind) String() string {
	if name, ok := qualifierKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("qualifier(%d)", uint8(k))
}

// Qualifier annotates an event with extra provider detail. Enum-valued
// kinds carry Value; boolean kinds carry Flag.
type Qualifier struct {
	Kind  QualifierKind
	Value string
	Flag  bool
}

// Set piece types.
const (
	SetPieceGoalKick   = "GOAL_KICK"
	SetPieceFreeKick   = "FREE_KICK"
	SetPieceThrowIn    = "THROW_IN"
	SetPieceCornerKick = "CORNER_KICK"
	SetPiecePenalty    = "PENALTY"
	SetPieceKickOff    = "KICK_OFF"
)

// Body parts.
const (
	BodyPartRightFoot = "RIGHT_FOOT"
	BodyPartLeftFoot  = "LEFT_FOOT"
	BodyPartHead      = "HEAD"
	BodyPartOther     = "OTHER"
)

// CardType distinguishes disciplinary cards.
type CardType string

const (
	CardFirstYellow  CardType = "FIRST_YELLOW"
	CardSecondYellow CardType = "SECOND_YELLOW"
	CardRed          CardType = "RED"
)

// SendsOff reports whether the card removes the player from the pitch.
func (c CardType) SendsOff() bool {
	return c == CardSecondYellow || c == CardRed
}

// ParseCardType converts a provider card name.
func ParseCardType(s string) (CardType, error) {
	switch c := CardType(strings.ToUpper(s)); c {
	case CardFirstYellow, CardSecondYellow, CardRed:
		return c, nil
	default:
		return "", fmt.Errorf("%w: card type %q", ErrUnknownQualifier, s)
	}
}

// ParseQualifierKind converts a qualifier kind name.
func ParseQualifierKind(name string) (QualifierKind, error) {
	for k, n := range qualifierKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: kind %q", ErrUnknownQualifier, name)
}

// ParseQualifier builds a qualifier from its raw parts. Enum-valued kinds
// take their value from value; boolean kinds from flag.
func ParseQualifier(kind, value string, flag bool) (Qualifier, error) {
	k, err := ParseQualifierKind(kind)
	if err != nil {
		return Qualifier{}, err
	}
	if k == QualifierCounterAttack {
		return Qualifier{Kind: k, Flag: flag}, nil
	}
	return Qualifier{Kind: k, Value: strings.ToUpper(value)}, nil
}
