package roundservice

import (
	"context"
	"errors"
	"fmt"

	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
)

// RecordStroke appends one hole's entry to a golfer's ledger. The hole must
// be within the segment's range, the round must still be open, and the
// (golfer, hole) pair must not already be recorded. Duplicate detection is
// left to the storage constraint so concurrent submitters race safely.
func (s *RoundService) RecordStroke(ctx context.Context, input RecordStrokeInput) (RecordStrokeResult, error) {
	rc, err := s.repo.GetRoundCourse(ctx, nil, input.RoundCourseID)
	if err != nil {
		if errors.Is(err, rounddb.ErrRoundCourseNotFound) {
			return failStroke(input, err.Error()), nil
		}
		return RecordStrokeResult{}, err
	}

	return withTelemetry(s, ctx, "RecordStroke", rc.RoundID, func(ctx context.Context) (RecordStrokeResult, error) {
		if reason := validateStroke(input, rc.HoleCount); reason != "" {
			return failStroke(input, reason), nil
		}

		round, err := s.repo.GetRound(ctx, nil, rc.RoundID)
		if err != nil {
			return RecordStrokeResult{}, err
		}
		if round.Finalized {
			return failStroke(input, rounddb.ErrRoundFinalized.Error()), nil
		}

		entry := &rounddb.StrokeEntry{
			RoundCourseID: input.RoundCourseID,
			GolferID:      input.GolferID,
			HoleNumber:    input.HoleNumber,
			Strokes:       input.Strokes,
			FairwayHit:    input.FairwayHit,
			GreenInReg:    input.GreenInReg,
			Putts:         input.Putts,
			BunkerShot:    input.BunkerShot,
		}
		if err := s.repo.InsertStroke(ctx, nil, entry); err != nil {
			if errors.Is(err, rounddb.ErrDuplicateHoleEntry) {
				return failStroke(input, err.Error()), nil
			}
			return RecordStrokeResult{}, err
		}

		return results.SuccessResult[RecordStrokeSuccessPayload, RecordStrokeFailurePayload](RecordStrokeSuccessPayload{
			RoundCourseID: input.RoundCourseID,
			GolferID:      input.GolferID,
			HoleNumber:    input.HoleNumber,
		}), nil
	})
}

func validateStroke(input RecordStrokeInput, holeCount int) string {
	if input.GolferID == "" {
		return "golfer_id is required"
	}
	if input.HoleNumber < 1 || input.HoleNumber > holeCount {
		return fmt.Sprintf("hole_number %d out of range 1..%d", input.HoleNumber, holeCount)
	}
	if input.Strokes < 1 {
		return "strokes must be at least 1"
	}
	if input.Putts < 0 {
		return "number_of_putts cannot be negative"
	}
	if input.Putts > input.Strokes {
		return "number_of_putts cannot exceed strokes"
	}
	return ""
}

func failStroke(input RecordStrokeInput, reason string) RecordStrokeResult {
	return results.FailureResult[RecordStrokeSuccessPayload](RecordStrokeFailurePayload{
		RoundCourseID: input.RoundCourseID,
		GolferID:      input.GolferID,
		HoleNumber:    input.HoleNumber,
		Reason:        reason,
	})
}
