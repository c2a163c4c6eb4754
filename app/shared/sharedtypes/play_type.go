package sharedtypes

// PlayType is the closed scoring-mode enumeration. The score calculator
// dispatches on it exhaustively; any other value is rejected.
type PlayType string

const (
	PlayTypeMatch      PlayType = "match"
	PlayTypeStroke     PlayType = "stroke"
	PlayTypeTournament PlayType = "tournament"
)

func (p PlayType) String() string { return string(p) }

// Valid reports whether p is a member of the closed enumeration.
func (p PlayType) Valid() bool {
	switch p {
	case PlayTypeMatch, PlayTypeStroke, PlayTypeTournament:
		return true
	}
	return false
}

// PlayTypes lists every valid play type, in a stable order.
func PlayTypes() []PlayType {
	return []PlayType{PlayTypeMatch, PlayTypeStroke, PlayTypeTournament}
}
