package rounddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// InsertStroke appends one ledger row. The unique constraint on
// (round_course_id, golfer_id, hole_number) is the arbiter under concurrency;
// a violation surfaces as ErrDuplicateHoleEntry.
func (r *RoundDBImpl) InsertStroke(ctx context.Context, db bun.IDB, entry *StrokeEntry) error {
	if _, err := r.conn(db).NewInsert().Model(entry).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateHoleEntry
		}
		return fmt.Errorf("failed to insert stroke for golfer %s hole %d: %w", entry.GolferID, entry.HoleNumber, err)
	}
	return nil
}

// ListStrokes returns the ledger for one round course ordered by hole. An
// empty golferID returns every golfer's entries.
func (r *RoundDBImpl) ListStrokes(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]StrokeEntry, error) {
	var entries []StrokeEntry
	q := r.conn(db).NewSelect().
		Model(&entries).
		Where("se.round_course_id = ?", roundCourseID)
	if golferID != "" {
		q = q.Where("se.golfer_id = ?", golferID)
	}

	if err := q.Order("se.golfer_id ASC", "se.hole_number ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list strokes for round course %s: %w", roundCourseID, err)
	}
	return entries, nil
}

// ListStrokesForRound returns every ledger row across all of a round's
// courses, joined through round_courses.
func (r *RoundDBImpl) ListStrokesForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]StrokeEntry, error) {
	var entries []StrokeEntry
	err := r.conn(db).NewSelect().
		Model(&entries).
		Join("JOIN round_courses AS rc ON rc.id = se.round_course_id").
		Where("rc.round_id = ?", roundID).
		Order("se.round_course_id ASC", "se.golfer_id ASC", "se.hole_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list strokes for round %s: %w", roundID, err)
	}
	return entries, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}
