package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// ExportWorkbook writes the stored standings into an XLSX workbook, one row
// per placed golfer.
func (s *LeaderboardService) ExportWorkbook(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error) {
	result, err := s.GetLeaderboard(ctx, roundID, playType)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, fmt.Errorf("%w: round %s (%s)", ErrLeaderboardNotFound, roundID, playType)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leaderboard"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []any{"Position", "Golfer", "Score", "Play Type", "Round"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, e := range result.Success.Entries {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{e.Position, string(e.GolferID), int(e.Score), string(playType), roundID.String()}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
