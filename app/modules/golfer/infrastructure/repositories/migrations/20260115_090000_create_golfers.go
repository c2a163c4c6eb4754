package golfermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	golferdb "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating golfers table...")

		if _, err := db.NewCreateTable().Model((*golferdb.Golfer)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_golfers_club_id ON golfers (club_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Golfers table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping golfers table...")

		if _, err := db.NewDropTable().Model((*golferdb.Golfer)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Golfers table dropped successfully!")
		return nil
	})
}
