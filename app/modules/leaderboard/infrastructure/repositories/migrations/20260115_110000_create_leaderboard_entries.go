package leaderboardmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	leaderboarddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating leaderboard_entries table...")

		if _, err := db.NewCreateTable().Model((*leaderboarddb.LeaderboardEntry)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_round ON leaderboard_entries (round_id, play_type, position)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Leaderboard entries table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping leaderboard_entries table...")

		if _, err := db.NewDropTable().Model((*leaderboarddb.LeaderboardEntry)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Leaderboard entries table dropped successfully!")
		return nil
	})
}
