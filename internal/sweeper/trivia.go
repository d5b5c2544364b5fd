package sweeper

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/metrics"
	"github.com/feral-file/ff-artbot/internal/selector"
)

// TriviaAsker opens a trivia question about a project
//
//go:generate mockgen -source=trivia.go -destination=../mocks/trivia_asker.go -package=mocks -mock_names=TriviaAsker=MockTriviaAsker
type TriviaAsker interface {
	Ask(ctx context.Context, project *domain.Project) (bool, error)
}

// NewTriviaSweeper offers a random selectable project to the asker every minute
func NewTriviaSweeper(snapshot SnapshotSource, asker TriviaAsker, random adapter.Random, clock adapter.Clock, m *metrics.Metrics) *Routine {
	return newRoutine("trivia", clock, m, nextMinute, func(ctx context.Context) error {
		current := snapshot.Snapshot()
		if current == nil {
			return domain.ErrDirectoryNotReady
		}

		project := selector.PickProject(current.Projects(), random)
		if project == nil {
			logger.DebugCtx(ctx, "No selectable project for trivia", zap.Int("projects", current.Len()))
			return nil
		}

		_, err := asker.Ask(ctx, project)
		return err
	})
}
