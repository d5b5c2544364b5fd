package resolver_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/mocks"
	"github.com/feral-file/ff-artbot/internal/resolver"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testResolverMocks struct {
	ctrl        *gomock.Controller
	invocations *mocks.MockInvocationSource
	floors      *mocks.MockFloorSource
	random      *mocks.MockRandom
	resolver    *resolver.Resolver
}

func setupTestResolver(t *testing.T) *testResolverMocks {
	ctrl := gomock.NewController(t)

	tm := &testResolverMocks{
		ctrl:        ctrl,
		invocations: mocks.NewMockInvocationSource(ctrl),
		floors:      mocks.NewMockFloorSource(ctrl),
		random:      mocks.NewMockRandom(ctrl),
	}
	tm.resolver = resolver.New(tm.invocations, tm.floors, tm.random)

	return tm
}

func minting(editionSize, maxEditionSize int64) *domain.Project {
	return domain.NewProject(domain.ProjectInfo{
		ID:             "0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270-78",
		ProjectNumber:  78,
		Name:           "Fidenza",
		MaxEditionSize: maxEditionSize,
		Active:         true,
	}, editionSize)
}

func int64Ptr(v int64) *int64 { return &v }

func TestResolve_LiteralNumber(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	p := minting(999, 999)

	res, err := tm.resolver.Resolve(context.Background(), p, "#42 fidenza")
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Invocation)
	assert.Equal(t, int64(78000042), res.TokenID)
	assert.False(t, res.Details)
	assert.Nil(t, res.Listing)
}

func TestResolve_DetailsFlag(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	res, err := tm.resolver.Resolve(context.Background(), minting(999, 999), "#7?details fidenza")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Invocation)
	assert.True(t, res.Details)
}

func TestResolve_Random(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	tm.random.EXPECT().Int64N(int64(999)).Return(int64(512))

	res, err := tm.resolver.Resolve(context.Background(), minting(999, 999), "#? fidenza")
	require.NoError(t, err)
	assert.Equal(t, int64(78000512), res.TokenID)
}

func TestResolve_RefreshesEditionSizeInMintingGap(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	p := minting(50, 200)
	tm.invocations.EXPECT().GetProjectInvocations(gomock.Any(), p.ID).Return(int64Ptr(130), nil)

	res, err := tm.resolver.Resolve(context.Background(), p, "#120")
	require.NoError(t, err)
	assert.Equal(t, int64(120), res.Invocation)
	assert.Equal(t, int64(130), p.EditionSize())

	// 135 is inside the gap again so the source is asked once more and still reports 130
	tm.invocations.EXPECT().GetProjectInvocations(gomock.Any(), p.ID).Return(int64Ptr(130), nil)

	_, err = tm.resolver.Resolve(context.Background(), p, "#135")
	var rangeErr *resolver.OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, int64(130), rangeErr.Minted)
	assert.Equal(t, "Fidenza", rangeErr.ProjectName)
}

func TestResolve_NoRefreshAtOrBeyondMax(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	p := minting(50, 200)

	_, err := tm.resolver.Resolve(context.Background(), p, "#200")
	var rangeErr *resolver.OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, int64(50), rangeErr.Minted)
}

func TestResolve_RefreshFailureKeepsStoredSize(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	p := minting(50, 200)
	tm.invocations.EXPECT().GetProjectInvocations(gomock.Any(), p.ID).Return(nil, errors.New("boom"))

	_, err := tm.resolver.Resolve(context.Background(), p, "#60")
	var rangeErr *resolver.OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, int64(50), p.EditionSize())
}

func TestResolve_Negative(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	_, err := tm.resolver.Resolve(context.Background(), minting(50, 50), "#-1")
	var rangeErr *resolver.OutOfRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestResolve_Malformed(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	p := minting(50, 50)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty", content: "", wantErr: domain.ErrInvalidFormat},
		{name: "hash only", content: "#", wantErr: domain.ErrInvalidFormat},
		{name: "not a number", content: "#abc", wantErr: domain.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.resolver.Resolve(context.Background(), p, tt.content)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_Floor(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	p := minting(999, 999)
	price := 95.5
	tm.floors.EXPECT().GetProjectFloor(gomock.Any(), p.ID).Return(&domain.FloorToken{Invocation: 313, ListEthPrice: &price}, nil)

	res, err := tm.resolver.Resolve(context.Background(), p, "#floor fidenza")
	require.NoError(t, err)
	assert.Equal(t, int64(313), res.Invocation)
}

func TestResolve_FloorNotListed(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	p := minting(999, 999)
	tm.floors.EXPECT().GetProjectFloor(gomock.Any(), p.ID).Return(&domain.FloorToken{Invocation: 1}, nil)

	_, err := tm.resolver.Resolve(context.Background(), p, "#floor fidenza")
	assert.ErrorIs(t, err, domain.ErrNoFloorListing)
}

func TestResolve_NamedListing(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	named := mocks.NewMockNamedMappings(tm.ctrl)
	listing := domain.NamedListing{Singles: []domain.NamedEntry{{Name: "Perfect Spiral", Value: "#7583"}}}
	named.EXPECT().List().Return(listing)

	p := domain.NewProject(domain.ProjectInfo{Name: "Chromie Squiggle", MaxEditionSize: 10000, NamedMappings: named}, 9000)

	res, err := tm.resolver.Resolve(context.Background(), p, "#named squiggle")
	require.NoError(t, err)
	require.NotNil(t, res.Listing)
	assert.Equal(t, listing, *res.Listing)
}

func TestResolve_NamedMappingTransform(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	named := mocks.NewMockNamedMappings(tm.ctrl)
	named.EXPECT().Transform("#perfectspiral squiggle").Return("#7583 squiggle")

	p := domain.NewProject(domain.ProjectInfo{Name: "Chromie Squiggle", MaxEditionSize: 10000, NamedMappings: named}, 9000)

	res, err := tm.resolver.Resolve(context.Background(), p, "#perfectspiral squiggle")
	require.NoError(t, err)
	assert.Equal(t, int64(7583), res.Invocation)
}

func TestOutOfRangeError_Message(t *testing.T) {
	err := &resolver.OutOfRangeError{Requested: 135, Minted: 130, ProjectName: "Fidenza"}
	assert.Contains(t, err.Error(), "only 130 pieces minted for Fidenza")
}
