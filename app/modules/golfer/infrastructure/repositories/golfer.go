package golferdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

var (
	// ErrGolferNotFound means the golfer ID matched no stored profile.
	ErrGolferNotFound = errors.New("golfer not found")

	// ErrUsernameTaken means another profile already claims the username.
	ErrUsernameTaken = errors.New("username already taken")
)

// Repository is the golfer module's storage surface.
type Repository interface {
	CreateGolfer(ctx context.Context, db bun.IDB, golfer *Golfer) error
	GetGolfer(ctx context.Context, db bun.IDB, golferID sharedtypes.GolferID) (*Golfer, error)
	UpdateGolfer(ctx context.Context, db bun.IDB, golfer *Golfer) error
	DeleteGolfer(ctx context.Context, db bun.IDB, golferID sharedtypes.GolferID) error
	ListClubGolfers(ctx context.Context, db bun.IDB, clubID int64) ([]Golfer, error)
}

// GolferDBImpl implements Repository on Postgres via bun.
type GolferDBImpl struct {
	DB *bun.DB
}

func (r *GolferDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *GolferDBImpl) CreateGolfer(ctx context.Context, db bun.IDB, golfer *Golfer) error {
	if _, err := r.conn(db).NewInsert().Model(golfer).Exec(ctx); err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert golfer %s: %w", golfer.ID, err)
	}
	return nil
}

func (r *GolferDBImpl) GetGolfer(ctx context.Context, db bun.IDB, golferID sharedtypes.GolferID) (*Golfer, error) {
	golfer := new(Golfer)
	err := r.conn(db).NewSelect().
		Model(golfer).
		Where("g.id = ?", golferID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGolferNotFound
		}
		return nil, fmt.Errorf("failed to fetch golfer %s: %w", golferID, err)
	}
	return golfer, nil
}

func (r *GolferDBImpl) UpdateGolfer(ctx context.Context, db bun.IDB, golfer *Golfer) error {
	golfer.UpdatedAt = time.Now().UTC()
	res, err := r.conn(db).NewUpdate().
		Model(golfer).
		Column("username", "first_name", "last_name", "email", "ghin", "handicap", "updated_at").
		Where("id = ?", golfer.ID).
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to update golfer %s: %w", golfer.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for golfer %s: %w", golfer.ID, err)
	}
	if affected == 0 {
		return ErrGolferNotFound
	}
	return nil
}

func (r *GolferDBImpl) DeleteGolfer(ctx context.Context, db bun.IDB, golferID sharedtypes.GolferID) error {
	res, err := r.conn(db).NewDelete().
		Model((*Golfer)(nil)).
		Where("id = ?", golferID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete golfer %s: %w", golferID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for golfer %s: %w", golferID, err)
	}
	if affected == 0 {
		return ErrGolferNotFound
	}
	return nil
}

func (r *GolferDBImpl) ListClubGolfers(ctx context.Context, db bun.IDB, clubID int64) ([]Golfer, error) {
	var golfers []Golfer
	err := r.conn(db).NewSelect().
		Model(&golfers).
		Where("g.club_id = ?", clubID).
		Order("g.last_name ASC", "g.first_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list golfers for club %d: %w", clubID, err)
	}
	return golfers, nil
}

var _ Repository = (*GolferDBImpl)(nil)
