package directory

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
	"github.com/feral-file/ff-artbot/internal/logger"
)

// CatalogSource supplies the full project catalog
//
//go:generate mockgen -source=directory.go -destination=../mocks/directory.go -package=mocks -mock_names=CatalogSource=MockCatalogSource
type CatalogSource interface {
	// GetAllProjects returns every catalog entry
	GetAllProjects(ctx context.Context) ([]domain.CatalogEntry, error)
}

// Directory holds the current snapshot and rebuilds it from the catalog source
type Directory struct {
	source     CatalogSource
	normalizer *keys.Normalizer
	mappings   MappingProvider
	clock      adapter.Clock

	current atomic.Pointer[Snapshot]
}

// New creates an empty directory; call Refresh before serving lookups
func New(source CatalogSource, normalizer *keys.Normalizer, mappings MappingProvider, clock adapter.Clock) *Directory {
	return &Directory{
		source:     source,
		normalizer: normalizer,
		mappings:   mappings,
		clock:      clock,
	}
}

// Snapshot returns the current snapshot, or nil before the first successful refresh
func (d *Directory) Snapshot() *Snapshot {
	return d.current.Load()
}

// Ready reports whether a snapshot has been published
func (d *Directory) Ready() bool {
	return d.current.Load() != nil
}

// Normalizer returns the key normalizer used to build snapshots
func (d *Directory) Normalizer() *keys.Normalizer {
	return d.normalizer
}

// Refresh fetches the catalog and publishes a new snapshot.
// On any error the previous snapshot stays in place.
func (d *Directory) Refresh(ctx context.Context) (*Snapshot, error) {
	start := d.clock.Now()

	entries, err := d.source.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	snapshot, err := Build(entries, d.normalizer, d.mappings, d.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}

	d.current.Store(snapshot)

	logger.InfoCtx(ctx, "Directory refreshed",
		zap.Int("entries", len(entries)),
		zap.Int("projects", snapshot.Len()),
		zap.Duration("duration", d.clock.Since(start)),
	)

	return snapshot, nil
}

// WaitReady refreshes until the first snapshot is published, backing off
// between failed attempts. It returns early only when ctx is done.
func (d *Directory) WaitReady(ctx context.Context, initialInterval, maxInterval time.Duration) (*Snapshot, error) {
	if s := d.current.Load(); s != nil {
		return s, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval
	b.MaxInterval = maxInterval
	b.MaxElapsedTime = 0

	var snapshot *Snapshot
	attempt := 0
	operation := func() error {
		attempt++
		s, err := d.Refresh(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "Initial directory refresh failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		snapshot = s
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("directory never became ready: %w", err)
	}
	return snapshot, nil
}

// Lookup returns the current snapshot or domain.ErrDirectoryNotReady
func (d *Directory) Lookup() (*Snapshot, error) {
	s := d.current.Load()
	if s == nil {
		return nil, domain.ErrDirectoryNotReady
	}
	return s, nil
}
