package golferdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// Golfer is a registered player profile. The ID doubles as the GolferID used
// everywhere else; usernames are unique across the club.
type Golfer struct {
	bun.BaseModel `bun:"table:golfers,alias:g"`

	ID         sharedtypes.GolferID `bun:"id,pk"`
	Username   string               `bun:"username,notnull,unique"`
	FirstName  string               `bun:"first_name,notnull"`
	LastName   string               `bun:"last_name,notnull"`
	Email      string               `bun:"email,nullzero"`
	GHIN       string               `bun:"ghin,nullzero"`
	Handicap   float64              `bun:"handicap,notnull,default:0"`
	ClubID     int64                `bun:"club_id,notnull"`
	CreatedAt  time.Time            `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time            `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
