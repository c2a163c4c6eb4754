package roundservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// ------------------------
// Fake Round Repo
// ------------------------

// FakeRoundRepository provides a programmable stub for the rounddb.Repository
// interface.
type FakeRoundRepository struct {
	trace []string

	CreateRoundFunc         func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
	GetRoundFunc            func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*rounddb.Round, error)
	FinalizeRoundFunc       func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) error
	AddRoundCourseFunc      func(ctx context.Context, db bun.IDB, rc *rounddb.RoundCourse) error
	GetRoundCourseFunc      func(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID) (*rounddb.RoundCourse, error)
	ListRoundCoursesFunc    func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]rounddb.RoundCourse, error)
	InsertStrokeFunc        func(ctx context.Context, db bun.IDB, entry *rounddb.StrokeEntry) error
	ListStrokesFunc         func(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]rounddb.StrokeEntry, error)
	ListStrokesForRoundFunc func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]rounddb.StrokeEntry, error)

	LastInsertedStroke *rounddb.StrokeEntry
}

// NewFakeRoundRepository initializes a new FakeRoundRepository with an empty trace.
func NewFakeRoundRepository() *FakeRoundRepository {
	return &FakeRoundRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRoundRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRoundRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRoundRepository) CreateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, db, round)
	}
	return nil
}

func (f *FakeRoundRepository) GetRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*rounddb.Round, error) {
	f.record("GetRound")
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, db, roundID)
	}
	return &rounddb.Round{ID: roundID, PlayType: sharedtypes.PlayTypeStroke}, nil
}

func (f *FakeRoundRepository) FinalizeRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) error {
	f.record("FinalizeRound")
	if f.FinalizeRoundFunc != nil {
		return f.FinalizeRoundFunc(ctx, db, roundID)
	}
	return nil
}

func (f *FakeRoundRepository) AddRoundCourse(ctx context.Context, db bun.IDB, rc *rounddb.RoundCourse) error {
	f.record("AddRoundCourse")
	if f.AddRoundCourseFunc != nil {
		return f.AddRoundCourseFunc(ctx, db, rc)
	}
	return nil
}

func (f *FakeRoundRepository) GetRoundCourse(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID) (*rounddb.RoundCourse, error) {
	f.record("GetRoundCourse")
	if f.GetRoundCourseFunc != nil {
		return f.GetRoundCourseFunc(ctx, db, roundCourseID)
	}
	return &rounddb.RoundCourse{ID: roundCourseID, HoleCount: 18}, nil
}

func (f *FakeRoundRepository) ListRoundCourses(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]rounddb.RoundCourse, error) {
	f.record("ListRoundCourses")
	if f.ListRoundCoursesFunc != nil {
		return f.ListRoundCoursesFunc(ctx, db, roundID)
	}
	return []rounddb.RoundCourse{}, nil
}

func (f *FakeRoundRepository) InsertStroke(ctx context.Context, db bun.IDB, entry *rounddb.StrokeEntry) error {
	f.record("InsertStroke")
	f.LastInsertedStroke = entry
	if f.InsertStrokeFunc != nil {
		return f.InsertStrokeFunc(ctx, db, entry)
	}
	return nil
}

func (f *FakeRoundRepository) ListStrokes(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]rounddb.StrokeEntry, error) {
	f.record("ListStrokes")
	if f.ListStrokesFunc != nil {
		return f.ListStrokesFunc(ctx, db, roundCourseID, golferID)
	}
	return []rounddb.StrokeEntry{}, nil
}

func (f *FakeRoundRepository) ListStrokesForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]rounddb.StrokeEntry, error) {
	f.record("ListStrokesForRound")
	if f.ListStrokesForRoundFunc != nil {
		return f.ListStrokesForRoundFunc(ctx, db, roundID)
	}
	return []rounddb.StrokeEntry{}, nil
}

var _ rounddb.Repository = (*FakeRoundRepository)(nil)

// ------------------------
// Fake Event Bus
// ------------------------

// FakeEventBus records published messages per topic.
type FakeEventBus struct {
	Published   map[string][]*message.Message
	PublishFunc func(topic string, messages ...*message.Message) error
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{Published: map[string][]*message.Message{}}
}

func (f *FakeEventBus) Publish(topic string, messages ...*message.Message) error {
	if f.PublishFunc != nil {
		if err := f.PublishFunc(topic, messages...); err != nil {
			return err
		}
	}
	f.Published[topic] = append(f.Published[topic], messages...)
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch := make(chan *message.Message)
	close(ch)
	return ch, nil
}

func (f *FakeEventBus) CreateStream(ctx context.Context, streamName string, subjects ...string) error {
	return nil
}

func (f *FakeEventBus) Close() error { return nil }
