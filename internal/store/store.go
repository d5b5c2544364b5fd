package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/feral-file/ff-artbot/internal/domain"
)

// Store defines the interface for the bot's persistent state
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// IsBirthdayAnnounced reports whether the birthday under key was already announced
	IsBirthdayAnnounced(ctx context.Context, key string) (bool, error)
	// MarkBirthdayAnnounced records the birthday under key as announced at the given time
	MarkBirthdayAnnounced(ctx context.Context, key string, at time.Time) error
}

// BirthdayKey returns the ledger key of a project's birthday. With
// reannounceYearly the key includes the year so the anniversary is announced
// again every year; otherwise a project is announced once per process ledger.
func BirthdayKey(project *domain.Project, now time.Time, reannounceYearly bool) string {
	key := fmt.Sprintf("birthday:%s", project.ID)
	if reannounceYearly {
		key += ":" + strconv.Itoa(now.UTC().Year())
	}
	return key
}
