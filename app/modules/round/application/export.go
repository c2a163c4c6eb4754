package roundservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// ExportScorecard writes one golfer's scorecard into an XLSX workbook, one
// row per hole plus a totals row.
func (s *RoundService) ExportScorecard(ctx context.Context, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]byte, error) {
	result, err := s.GetScorecard(ctx, roundCourseID, golferID)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, fmt.Errorf("%w: round course %s", rounddb.ErrRoundCourseNotFound, roundCourseID)
	}
	card := result.Success

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scorecard"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []any{"Hole", "Strokes", "Fairway", "GIR", "Putts", "Bunker"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, e := range card.Entries {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{e.HoleNumber, e.Strokes, e.FairwayHit, e.GreenInReg, e.Putts, e.BunkerShot}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	totalCell := fmt.Sprintf("A%d", len(card.Entries)+2)
	totalRow := []any{"Total", card.TotalStrokes}
	if err := f.SetSheetRow(sheet, totalCell, &totalRow); err != nil {
		return nil, fmt.Errorf("failed to write totals row: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
