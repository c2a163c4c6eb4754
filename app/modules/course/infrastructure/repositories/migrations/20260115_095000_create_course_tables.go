package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	coursedb "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating courses, course_holes, and tees tables...")

		if _, err := db.NewCreateTable().Model((*coursedb.Course)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*coursedb.CourseHole)(nil)).IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*coursedb.Tee)(nil)).IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_courses_club_name ON courses (club_id, name)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Course tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping course tables...")

		if _, err := db.NewDropTable().Model((*coursedb.Tee)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*coursedb.CourseHole)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*coursedb.Course)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Course tables dropped successfully!")
		return nil
	})
}
