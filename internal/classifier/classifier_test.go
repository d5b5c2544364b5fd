package classifier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/classifier"
	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
	"github.com/feral-file/ff-artbot/internal/registry"
)

func strPtr(s string) *string { return &s }

func entry(number, name, artist, category string, tags ...string) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:             "core-" + number,
		ProjectID:      number,
		Invocations:    "10",
		MaxInvocations: "100",
		Name:           strPtr(name),
		Active:         true,
		ArtistName:     strPtr(artist),
		CategoryName:   strPtr(category),
		Tags:           tags,
	}
}

func setup(t *testing.T) (*directory.Snapshot, registry.Registry) {
	t.Helper()

	entries := []domain.CatalogEntry{
		entry("0", "Chromie Squiggle", "Snowfro", "Curated"),
		entry("78", "Fidenza", "Tyler Hobbs", "Curated", "Flow Field"),
		// "Glitch" is both an artist and a tag
		entry("200", "Signal", "Glitch", "Factory", "Glitch"),
		// A project named like a vertical
		entry("300", "Presents", "Someone", "Factory"),
	}

	s, err := directory.Build(entries, keys.NewNormalizer(nil), nil, time.Now())
	require.NoError(t, err)

	reg, err := registry.New(registry.Data{})
	require.NoError(t, err)

	return s, reg
}

func TestClassify(t *testing.T) {
	s, reg := setup(t)

	wallet := "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

	tests := []struct {
		name      string
		key       string
		remainder string
		want      domain.Intent
	}{
		{name: "random", key: "#?", remainder: "#?", want: domain.IntentRandom},
		{name: "open", key: "open", remainder: "open", want: domain.IntentOpen},
		{name: "vertical", key: "curated", remainder: "curated", want: domain.IntentCollection},
		{name: "vertical alias", key: "collabs", remainder: "collabs", want: domain.IntentCollection},
		{name: "vertical beats project", key: "presents", remainder: "presents", want: domain.IntentCollection},
		{name: "tag", key: "flowfield", remainder: "flow field", want: domain.IntentTag},
		{name: "tag beats artist", key: "glitch", remainder: "glitch", want: domain.IntentTag},
		{name: "artist", key: "tylerhobbs", remainder: "tyler hobbs", want: domain.IntentArtist},
		{name: "wallet", key: "0x8ba1f109551bd432803012645ac136ddd64dba72", remainder: wallet, want: domain.IntentWallet},
		{name: "wallet with scope", key: "0x8ba1f109551bd432803012645ac136ddd64dba72curated", remainder: wallet + " curated", want: domain.IntentWallet},
		{name: "ens", key: "snowfroeth", remainder: "snowfro.eth fidenza", want: domain.IntentWallet},
		{name: "project", key: "fidenza", remainder: "fidenza", want: domain.IntentProject},
		{name: "project with wallet-like remainder", key: "fidenza", remainder: "fidenza.eth", want: domain.IntentProject},
		{name: "unknown", key: "nothing", remainder: "nothing", want: domain.IntentUnknown},
		{name: "short ens", key: "eth", remainder: ".eth", want: domain.IntentUnknown},
		{name: "bad address", key: "0x123", remainder: "0x123", want: domain.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(s, reg, tt.key, tt.remainder))
		})
	}
}

func TestClassify_TagAlwaysBeatsArtist(t *testing.T) {
	s, reg := setup(t)

	require.True(t, s.HasTag("glitch"))
	require.True(t, s.HasArtist("glitch"))

	for range 10 {
		assert.Equal(t, domain.IntentTag, classifier.Classify(s, reg, "glitch", "glitch"))
	}
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "", classifier.FirstToken("   "))
	assert.Equal(t, "0xabc", classifier.FirstToken("#0xabc curated"))
	assert.Equal(t, "snowfro.eth", classifier.FirstToken("  snowfro.eth  "))
}
