package sweeper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/mocks"
	"github.com/feral-file/ff-artbot/internal/sweeper"
)

func TestTriviaSweeper_AsksAboutSelectableProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshotSource := mocks.NewMockSnapshotSource(ctrl)
	asker := mocks.NewMockTriviaAsker(ctrl)
	random := mocks.NewMockRandom(ctrl)

	snapshot := testSnapshot(t,
		catalogEntry("1", "Single", "1", "", true),
		catalogEntry("78", "Fidenza", "999", "", true),
	)
	fidenza, _ := snapshot.Project("fidenza")

	snapshotSource.EXPECT().Snapshot().Return(snapshot)
	gomock.InOrder(
		random.EXPECT().IntN(2).Return(0),
		random.EXPECT().IntN(2).Return(1),
	)
	asker.EXPECT().Ask(gomock.Any(), fidenza).Return(true, nil)

	s := sweeper.NewTriviaSweeper(snapshotSource, asker, random, mocks.NewMockClock(ctrl), nil)
	assert.Equal(t, "trivia", s.Name())
	require.NoError(t, s.RunOnce(context.Background()))
}

func TestTriviaSweeper_NothingSelectable(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshotSource := mocks.NewMockSnapshotSource(ctrl)
	random := mocks.NewMockRandom(ctrl)

	snapshot := testSnapshot(t, catalogEntry("1", "Single", "1", "", true))

	snapshotSource.EXPECT().Snapshot().Return(snapshot)
	random.EXPECT().IntN(1).Return(0).Times(10)

	s := sweeper.NewTriviaSweeper(snapshotSource, mocks.NewMockTriviaAsker(ctrl), random, mocks.NewMockClock(ctrl), nil)
	require.NoError(t, s.RunOnce(context.Background()))
}

func TestTriviaSweeper_AskError(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshotSource := mocks.NewMockSnapshotSource(ctrl)
	asker := mocks.NewMockTriviaAsker(ctrl)
	random := mocks.NewMockRandom(ctrl)

	snapshot := testSnapshot(t, catalogEntry("78", "Fidenza", "999", "", true))

	snapshotSource.EXPECT().Snapshot().Return(snapshot)
	random.EXPECT().IntN(1).Return(0)
	asker.EXPECT().Ask(gomock.Any(), gomock.Any()).Return(false, errors.New("publish failed"))

	s := sweeper.NewTriviaSweeper(snapshotSource, asker, random, mocks.NewMockClock(ctrl), nil)
	assert.Error(t, s.RunOnce(context.Background()))
}

func TestTriviaSweeper_DirectoryNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshotSource := mocks.NewMockSnapshotSource(ctrl)
	snapshotSource.EXPECT().Snapshot().Return(nil)

	s := sweeper.NewTriviaSweeper(snapshotSource, mocks.NewMockTriviaAsker(ctrl), mocks.NewMockRandom(ctrl), mocks.NewMockClock(ctrl), nil)
	assert.ErrorIs(t, s.RunOnce(context.Background()), domain.ErrDirectoryNotReady)
}
