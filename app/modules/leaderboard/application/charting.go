package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// RenderChart produces a PNG bar chart of the stored standings, best score
// first. A missing board surfaces as ErrLeaderboardNotFound.
func (s *LeaderboardService) RenderChart(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error) {
	result, err := s.GetLeaderboard(ctx, roundID, playType)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, fmt.Errorf("%w: round %s (%s)", ErrLeaderboardNotFound, roundID, playType)
	}
	return renderStandingsChart(result.Success.Entries, playType)
}

func renderStandingsChart(entries []sharedtypes.LeaderboardEntryView, playType sharedtypes.PlayType) ([]byte, error) {
	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%d. %s", e.Position, e.GolferID),
			Value: float64(e.Score),
		}
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Leaderboard (%s)", playType),
		Width:    max(640, 120*len(bars)),
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   chart.Box{Top: 40},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render leaderboard chart: %w", err)
	}
	return buffer.Bytes(), nil
}
