package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/metrics"
	"github.com/feral-file/ff-artbot/internal/store"
)

// DefaultBirthdayHour is the UTC hour of the first daily birthday check.
// Checks also run 8 hours before and after it.
const DefaultBirthdayHour = 14

// SnapshotSource returns the published directory snapshot, nil before the first refresh
//
//go:generate mockgen -source=birthday.go -destination=../mocks/birthday.go -package=mocks -mock_names=SnapshotSource=MockSnapshotSource,BirthdayRenderer=MockBirthdayRenderer,ChannelRouter=MockChannelRouter
type SnapshotSource interface {
	Snapshot() *directory.Snapshot
}

// BirthdayRenderer builds the anniversary embed of a project, nil when it cannot be rendered
type BirthdayRenderer interface {
	BirthdayEmbed(ctx context.Context, project *domain.Project) (*messaging.Embed, error)
}

// ChannelRouter knows where announcements go
type ChannelRouter interface {
	BirthdayChannel() string
	ProjectChannel(projectNumber int64) (string, bool)
	IsCoreContract(address string) bool
}

// BirthdayConfig holds the birthday routine settings
type BirthdayConfig struct {
	// BaseHour is the UTC hour of the first check, 0-23
	BaseHour int
	// ReannounceYearly keys the ledger by year so anniversaries repeat every year
	ReannounceYearly bool
}

type birthdayRoutine struct {
	config   BirthdayConfig
	snapshot SnapshotSource
	renderer BirthdayRenderer
	router   ChannelRouter
	sender   messaging.Sender
	ledger   store.Store
	clock    adapter.Clock
	metrics  *metrics.Metrics
}

// NewBirthdaySweeper checks every minute and announces release anniversaries at the check hours
func NewBirthdaySweeper(
	config BirthdayConfig,
	snapshot SnapshotSource,
	renderer BirthdayRenderer,
	router ChannelRouter,
	sender messaging.Sender,
	ledger store.Store,
	clock adapter.Clock,
	m *metrics.Metrics,
) *Routine {
	if config.BaseHour < 0 || config.BaseHour > 23 {
		config.BaseHour = DefaultBirthdayHour
	}

	r := &birthdayRoutine{
		config:   config,
		snapshot: snapshot,
		renderer: renderer,
		router:   router,
		sender:   sender,
		ledger:   ledger,
		clock:    clock,
		metrics:  m,
	}

	return newRoutine("birthday", clock, m, nextMinute, func(ctx context.Context) error {
		return r.check(ctx, clock.Now())
	})
}

// IsBirthdayCheckTime reports whether now is minute 0 of a check hour
func IsBirthdayCheckTime(now time.Time, baseHour int) bool {
	now = now.UTC()
	if now.Minute() != 0 {
		return false
	}
	hour := now.Hour()
	return hour == baseHour || hour == (baseHour+8)%24 || hour == (baseHour+16)%24
}

// check announces every due birthday when now is a check time
func (r *birthdayRoutine) check(ctx context.Context, now time.Time) error {
	if !IsBirthdayCheckTime(now, r.config.BaseHour) {
		return nil
	}

	snapshot := r.snapshot.Snapshot()
	if snapshot == nil {
		return domain.ErrDirectoryNotReady
	}

	now = now.UTC()
	var errs []error
	for _, project := range snapshot.ByReleaseDate(now.Format("01-02")) {
		if project.StartTime == nil || project.StartTime.UTC().Year() == now.Year() {
			continue
		}
		if err := r.announce(ctx, project, now); err != nil {
			errs = append(errs, fmt.Errorf("project %s: %w", project.Name, err))
		}
	}

	return errors.Join(errs...)
}

func (r *birthdayRoutine) announce(ctx context.Context, project *domain.Project, now time.Time) error {
	key := store.BirthdayKey(project, now, r.config.ReannounceYearly)

	announced, err := r.ledger.IsBirthdayAnnounced(ctx, key)
	if err != nil {
		return err
	}
	if announced {
		return nil
	}

	// One attempt per birthday: a failed render or send is not retried at
	// the next check hour.
	if err := r.ledger.MarkBirthdayAnnounced(ctx, key, now); err != nil {
		return err
	}

	embed, err := r.renderer.BirthdayEmbed(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to render birthday: %w", err)
	}
	if embed == nil {
		logger.WarnCtx(ctx, "Skipping birthday with incomplete metadata", zap.String("project", project.Name))
		return nil
	}

	channels := make([]string, 0, 2)
	if channel := r.router.BirthdayChannel(); channel != "" {
		channels = append(channels, channel)
	}
	if r.router.IsCoreContract(project.ContractAddress) {
		if channel, ok := r.router.ProjectChannel(project.ProjectNumber); ok {
			channels = append(channels, channel)
		}
	}

	var errs []error
	sent := make([]string, 0, len(channels))
	for _, channel := range channels {
		if err := r.sender.Send(ctx, messaging.OutboundMessage{
			ChannelID: channel,
			Embeds:    []messaging.Embed{*embed},
		}); err != nil {
			errs = append(errs, fmt.Errorf("failed to send birthday to channel %s: %w", channel, err))
			continue
		}
		sent = append(sent, channel)
	}

	if len(sent) > 0 {
		r.metrics.BirthdayAnnounced()
		logger.InfoCtx(ctx, "Birthday announced",
			zap.String("project", project.Name),
			zap.Strings("channels", sent),
		)
	}

	return errors.Join(errs...)
}
