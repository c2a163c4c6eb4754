package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// RoundDBImpl implements Repository on Postgres via bun.
type RoundDBImpl struct {
	DB *bun.DB
}

func (r *RoundDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *RoundDBImpl) CreateRound(ctx context.Context, db bun.IDB, round *Round) error {
	if _, err := r.conn(db).NewInsert().Model(round).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert round %s: %w", round.ID, err)
	}
	return nil
}

func (r *RoundDBImpl) GetRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*Round, error) {
	round := new(Round)
	err := r.conn(db).NewSelect().
		Model(round).
		Where("r.id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to fetch round %s: %w", roundID, err)
	}
	return round, nil
}

// FinalizeRound flips the finalized flag exactly once. A second call reports
// ErrRoundFinalized; an unknown ID reports ErrRoundNotFound.
func (r *RoundDBImpl) FinalizeRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) error {
	res, err := r.conn(db).NewUpdate().
		Model((*Round)(nil)).
		Set("finalized = true").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", roundID).
		Where("finalized = false").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize round %s: %w", roundID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read finalize result for round %s: %w", roundID, err)
	}
	if affected == 0 {
		if _, err := r.GetRound(ctx, db, roundID); err != nil {
			return err
		}
		return ErrRoundFinalized
	}
	return nil
}

func (r *RoundDBImpl) AddRoundCourse(ctx context.Context, db bun.IDB, rc *RoundCourse) error {
	if _, err := r.conn(db).NewInsert().Model(rc).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert round course %s for round %s: %w", rc.ID, rc.RoundID, err)
	}
	return nil
}

func (r *RoundDBImpl) GetRoundCourse(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID) (*RoundCourse, error) {
	rc := new(RoundCourse)
	err := r.conn(db).NewSelect().
		Model(rc).
		Where("rc.id = ?", roundCourseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch round course %s: %w", roundCourseID, err)
	}
	return rc, nil
}

func (r *RoundDBImpl) ListRoundCourses(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]RoundCourse, error) {
	var courses []RoundCourse
	err := r.conn(db).NewSelect().
		Model(&courses).
		Where("rc.round_id = ?", roundID).
		Order("rc.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list round courses for round %s: %w", roundID, err)
	}
	return courses, nil
}

var _ Repository = (*RoundDBImpl)(nil)
