package sweeper

import (
	"context"
	"time"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/metrics"
)

// DefaultRefreshInterval is how often the directory is rebuilt from the catalog
const DefaultRefreshInterval = 60 * time.Minute

// Refresher rebuilds and publishes the directory snapshot
//
//go:generate mockgen -source=catalog_refresh.go -destination=../mocks/refresher.go -package=mocks -mock_names=Refresher=MockRefresher
type Refresher interface {
	Refresh(ctx context.Context) (*directory.Snapshot, error)
}

// NewCatalogRefreshSweeper rebuilds the directory every interval. A failed
// rebuild keeps the previous snapshot and is retried at the next interval.
func NewCatalogRefreshSweeper(refresher Refresher, clock adapter.Clock, m *metrics.Metrics, interval time.Duration) *Routine {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return newRoutine("catalog-refresh", clock, m, every(interval), func(ctx context.Context) error {
		snapshot, err := refresher.Refresh(ctx)
		if err != nil {
			m.ObserveRefresh(err, 0)
			return err
		}
		m.ObserveRefresh(nil, snapshot.Len())
		return nil
	})
}
