package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds, round_courses, and stroke_entries tables...")

		if _, err := db.NewCreateTable().Model((*rounddb.Round)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*rounddb.RoundCourse)(nil)).IfNotExists().
			ForeignKey(`("round_id") REFERENCES "rounds" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*rounddb.StrokeEntry)(nil)).IfNotExists().
			ForeignKey(`("round_course_id") REFERENCES "round_courses" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_round_courses_round_id ON round_courses (round_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_stroke_entries_round_course ON stroke_entries (round_course_id, golfer_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Round tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping round tables...")

		if _, err := db.NewDropTable().Model((*rounddb.StrokeEntry)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*rounddb.RoundCourse)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*rounddb.Round)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Round tables dropped successfully!")
		return nil
	})
}
