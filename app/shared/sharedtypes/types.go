package sharedtypes

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// GolferID identifies a registered golfer.
type GolferID string

func (id GolferID) String() string { return string(id) }

// RoundID identifies one played outing, possibly spanning multiple courses.
type RoundID uuid.UUID

func (id RoundID) String() string { return uuid.UUID(id).String() }

func (id RoundID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText keeps the canonical string form on the wire; without it a
// defined uuid type would encode as a byte array.
func (id RoundID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *RoundID) UnmarshalText(b []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(b); err != nil {
		return err
	}
	*id = RoundID(u)
	return nil
}

func (id RoundID) Value() (driver.Value, error) { return uuid.UUID(id).Value() }

func (id *RoundID) Scan(src any) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return err
	}
	*id = RoundID(u)
	return nil
}

// ParseRoundID parses the canonical string form of a RoundID.
func ParseRoundID(s string) (RoundID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return RoundID{}, err
	}
	return RoundID(u), nil
}

// RoundCourseID identifies the association of a round with one course/tee
// selection (one segment of a multi-course round).
type RoundCourseID uuid.UUID

func (id RoundCourseID) String() string { return uuid.UUID(id).String() }

func (id RoundCourseID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id RoundCourseID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *RoundCourseID) UnmarshalText(b []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(b); err != nil {
		return err
	}
	*id = RoundCourseID(u)
	return nil
}

func (id RoundCourseID) Value() (driver.Value, error) { return uuid.UUID(id).Value() }

func (id *RoundCourseID) Scan(src any) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return err
	}
	*id = RoundCourseID(u)
	return nil
}

// ParseRoundCourseID parses the canonical string form of a RoundCourseID.
func ParseRoundCourseID(s string) (RoundCourseID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return RoundCourseID{}, err
	}
	return RoundCourseID(u), nil
}

// Score is a comparable leaderboard score. Higher always sorts better; each
// play type's calculator is responsible for emitting scores on that scale.
type Score int

// ScorecardEntry is one hole of a golfer's derived scorecard.
type ScorecardEntry struct {
	HoleNumber int  `json:"hole_number"`
	Strokes    int  `json:"strokes"`
	FairwayHit bool `json:"fairway_hit"`
	GreenInReg bool `json:"green_in_reg"`
	Putts      int  `json:"number_of_putts"`
	BunkerShot bool `json:"bunker_shot"`
}

// Scorecard is the derived per-golfer, per-round-course view of the stroke
// ledger. It is rebuilt on demand and never independently mutated.
type Scorecard struct {
	GolferID      GolferID         `json:"golfer_id"`
	RoundCourseID RoundCourseID    `json:"round_course_id"`
	Entries       []ScorecardEntry `json:"entries"`
	TotalStrokes  int              `json:"total_strokes"`
}

// GolferRoundAggregate is one golfer's totals for one segment of a round.
// HolesWon is bookkeeping supplied by whoever assembled the aggregate (the
// round module derives it from the ledger); the score calculator consumes it
// as-is and never re-derives it.
type GolferRoundAggregate struct {
	GolferID      GolferID      `json:"golfer_id"`
	RoundCourseID RoundCourseID `json:"round_course_id"`
	HolesPlayed   int           `json:"holes_played"`
	TotalStrokes  int           `json:"total_strokes"`
	HolesWon      int           `json:"holes_won"`
	Adjustment    int           `json:"adjustment,omitempty"`
}

// LeaderboardEntryView is one placed golfer in a leaderboard snapshot,
// consumable by any rendering layer without further computation.
type LeaderboardEntryView struct {
	GolferID GolferID `json:"golfer_id"`
	Score    Score    `json:"score"`
	Position int      `json:"position"`
}

// RoundInfo is the boundary view of a created round.
type RoundInfo struct {
	RoundID RoundID   `json:"round_id"`
	ClubID  int64     `json:"club_id"`
	Date    time.Time `json:"date_of_round"`
}
