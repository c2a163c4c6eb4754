package roundservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

// StartRound creates a round and its course segments in one transaction and
// announces it on the bus.
func (s *RoundService) StartRound(ctx context.Context, input StartRoundInput) (StartRoundResult, error) {
	roundID := sharedtypes.RoundID(uuid.New())

	return withTelemetry(s, ctx, "StartRound", roundID, func(ctx context.Context) (StartRoundResult, error) {
		if reason := validateStartRound(input); reason != "" {
			return results.FailureResult[StartRoundSuccessPayload](StartRoundFailurePayload{Reason: reason}), nil
		}

		var teeTime *time.Time
		if input.TeeTimeText != "" {
			t, err := s.teeTimes.Parse(input.TeeTimeText, input.Date)
			if err != nil {
				s.logger.WarnContext(ctx, "Rejecting unparseable tee time",
					attr.ExtractCorrelationID(ctx),
					attr.RoundID("round_id", roundID),
					attr.String("tee_time_text", input.TeeTimeText),
				)
				return results.FailureResult[StartRoundSuccessPayload](StartRoundFailurePayload{
					Reason: "unparseable tee time: " + input.TeeTimeText,
				}), nil
			}
			teeTime = &t
		}

		result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (StartRoundResult, error) {
			round := &rounddb.Round{
				ID:        roundID,
				ClubID:    input.ClubID,
				Date:      input.Date,
				PlayType:  input.PlayType,
				TeeTime:   teeTime,
				CreatedBy: input.CreatedBy,
			}
			if err := s.repo.CreateRound(ctx, db, round); err != nil {
				return StartRoundResult{}, err
			}

			courseIDs := make([]sharedtypes.RoundCourseID, 0, len(input.Courses))
			for _, c := range input.Courses {
				rc := &rounddb.RoundCourse{
					ID:        sharedtypes.RoundCourseID(uuid.New()),
					RoundID:   roundID,
					CourseID:  c.CourseID,
					TeeID:     c.TeeID,
					HoleCount: c.HoleCount,
				}
				if err := s.repo.AddRoundCourse(ctx, db, rc); err != nil {
					return StartRoundResult{}, err
				}
				courseIDs = append(courseIDs, rc.ID)
			}

			return results.SuccessResult[StartRoundSuccessPayload, StartRoundFailurePayload](StartRoundSuccessPayload{
				Round: sharedtypes.RoundInfo{
					RoundID: roundID,
					ClubID:  input.ClubID,
					Date:    input.Date,
				},
				PlayType:       input.PlayType,
				TeeTime:        teeTime,
				RoundCourseIDs: courseIDs,
			}), nil
		})
		if err != nil || result.IsFailure() {
			return result, err
		}

		if s.EventBus != nil {
			msg, err := utils.NewMessage(roundevents.RoundCreatedPayload{
				RoundID:  roundID,
				ClubID:   input.ClubID,
				PlayType: input.PlayType,
				Date:     input.Date,
				TeeTime:  teeTime,
			}, roundevents.RoundCreated)
			if err != nil {
				return StartRoundResult{}, err
			}
			if err := s.EventBus.Publish(roundevents.RoundCreated, msg); err != nil {
				// The round exists either way; publishing is best effort here.
				s.logger.ErrorContext(ctx, "Failed to publish round created event",
					attr.ExtractCorrelationID(ctx),
					attr.RoundID("round_id", roundID),
					attr.Error(err),
				)
			}
		}

		return result, nil
	})
}

func validateStartRound(input StartRoundInput) string {
	if !input.PlayType.Valid() {
		return "invalid play type: " + input.PlayType.String()
	}
	if input.ClubID == 0 {
		return "club_id is required"
	}
	if input.CreatedBy == "" {
		return "created_by is required"
	}
	if input.Date.IsZero() {
		return "date_of_round is required"
	}
	if len(input.Courses) == 0 {
		return "at least one course is required"
	}
	for _, c := range input.Courses {
		if c.CourseID == 0 {
			return "course_id is required for every course"
		}
		if c.HoleCount <= 0 {
			return "hole_count must be positive"
		}
	}
	return ""
}
