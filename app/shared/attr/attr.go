// Package attr provides slog attribute helpers so log call sites stay terse
// and field names stay consistent across modules.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Time(key string, value time.Time) slog.Attr { return slog.Time(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

func RoundID(key string, id sharedtypes.RoundID) slog.Attr {
	return slog.String(key, id.String())
}

func RoundCourseID(key string, id sharedtypes.RoundCourseID) slog.Attr {
	return slog.String(key, id.String())
}

func GolferID(key string, id sharedtypes.GolferID) slog.Attr {
	return slog.String(key, id.String())
}

func PlayType(key string, pt sharedtypes.PlayType) slog.Attr {
	return slog.String(key, pt.String())
}

// ExtractCorrelationID pulls the correlation ID threaded through ctx by the
// router middleware. Missing IDs log as an empty field rather than being
// dropped, so log lines keep a stable shape.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	return slog.String("correlation_id", utils.CorrelationIDFromContext(ctx))
}

// CorrelationIDFromMsg reads the correlation ID directly off a message.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}
