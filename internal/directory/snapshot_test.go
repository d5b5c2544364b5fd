package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
)

func strPtr(s string) *string { return &s }

func entry(id, number, name, artist, category, vertical, invocations, max string, tags ...string) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:              "0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270-" + number,
		ProjectID:       number,
		ContractAddress: "0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270",
		Invocations:     invocations,
		MaxInvocations:  max,
		Name:            strPtr(name),
		Active:          true,
		ArtistName:      strPtr(artist),
		CategoryName:    strPtr(category),
		VerticalName:    vertical,
		Tags:            tags,
	}
}

func testEntries() []domain.CatalogEntry {
	squiggle := entry("0", "0", "Chromie Squiggle", "Snowfro", "Collections", "curated", "9000", "10000", "Generative")
	squiggle.StartDatetime = strPtr("2020-11-27T18:00:00+00:00")

	fidenza := entry("78", "78", "Fidenza", "Tyler Hobbs", "Collections", "curated", "999", "999", "Flow Field", "Generative")
	fidenza.StartDatetime = strPtr("2021-06-11T17:00:00Z")

	return []domain.CatalogEntry{
		squiggle,
		fidenza,
		entry("1", "1", "Genesis", "DCA", "Playground", "", "512", "512"),
		entry("2", "2", "Unminted", "Nobody", "Presents", "", "0", "100", "Generative"),
		entry("3", "3", "Café Olé", "Snowfro", "Factory", "", "10", "100"),
	}
}

func build(t *testing.T, entries []domain.CatalogEntry) *directory.Snapshot {
	t.Helper()
	s, err := directory.Build(entries, keys.NewNormalizer(nil), nil, time.Now())
	require.NoError(t, err)
	return s
}

func TestBuild_IndexesByNormalizedName(t *testing.T) {
	s := build(t, testEntries())

	p, ok := s.Project("chromiesquiggle")
	require.True(t, ok)
	assert.Equal(t, "Chromie Squiggle", p.Name)
	assert.Equal(t, int64(9000), p.EditionSize())
	assert.Equal(t, int64(10000), p.MaxEditionSize)
	assert.Equal(t, int64(0), p.ProjectNumber)

	_, ok = s.Project("cafeole")
	assert.True(t, ok)

	assert.Equal(t, 4, s.Len())
	assert.Len(t, s.Projects(), 4)
	assert.Equal(t, "Chromie Squiggle", s.Projects()[0].Name)
}

func TestBuild_SkipsZeroInvocations(t *testing.T) {
	s := build(t, testEntries())

	assert.False(t, s.HasProject("unminted"))
	assert.False(t, s.HasArtist("nobody"))
	assert.Empty(t, s.ByCollection("presents"))
	for _, p := range s.ByTag("generative") {
		assert.NotEqual(t, "Unminted", p.Name)
	}
	for _, p := range s.Projects() {
		assert.NotEqual(t, "Unminted", p.Name)
	}
}

func TestBuild_CollectionRule(t *testing.T) {
	s := build(t, testEntries())

	curated := s.ByCollection("curated")
	require.Len(t, curated, 2)
	assert.Equal(t, "Chromie Squiggle", curated[0].Name)
	assert.Equal(t, "Fidenza", curated[1].Name)

	assert.Empty(t, s.ByCollection("collections"))
	assert.Len(t, s.ByCollection("playground"), 1)
	assert.Len(t, s.ByCollection("factory"), 1)
}

func TestBuild_ArtistsAndTags(t *testing.T) {
	s := build(t, testEntries())

	snowfro := s.ByArtist("snowfro")
	require.Len(t, snowfro, 2)
	assert.Equal(t, "Chromie Squiggle", snowfro[0].Name)
	assert.Equal(t, "Café Olé", snowfro[1].Name)

	assert.True(t, s.HasTag("flowfield"))
	assert.Len(t, s.ByTag("generative"), 2)

	fidenza, _ := s.Project("fidenza")
	assert.Equal(t, []string{"flowfield", "generative"}, fidenza.Tags)
}

func TestBuild_ReleaseDateUTC(t *testing.T) {
	entries := testEntries()
	late := entry("9", "9", "Late Night", "Owl", "Playground", "", "5", "5")
	late.StartDatetime = strPtr("2022-03-04T23:30:00-05:00")
	entries = append(entries, late)

	s := build(t, entries)

	require.Len(t, s.ByReleaseDate("11-27"), 1)
	require.Len(t, s.ByReleaseDate("06-11"), 1)
	require.Len(t, s.ByReleaseDate("03-05"), 1)
	assert.Equal(t, "Late Night", s.ByReleaseDate("03-05")[0].Name)
	assert.Empty(t, s.ByReleaseDate("03-04"))
}

func TestBuild_DuplicateNameLastWriteWins(t *testing.T) {
	entries := []domain.CatalogEntry{
		entry("1", "1", "Genesis", "DCA", "Playground", "", "512", "512", "Generative"),
		entry("400", "400", "GENESIS", "Someone Else", "Factory", "", "20", "100"),
	}

	s := build(t, entries)

	p, ok := s.Project("genesis")
	require.True(t, ok)
	assert.Equal(t, int64(400), p.ProjectNumber)

	// The shadowed record is unreachable from every index
	assert.False(t, s.HasArtist("dca"))
	assert.Empty(t, s.ByTag("generative"))
	assert.Empty(t, s.ByCollection("playground"))
	assert.Len(t, s.Projects(), 1)
}

func TestBuild_ReferentialConsistency(t *testing.T) {
	entries := append(testEntries(),
		entry("1", "500", "Genesis", "Other", "Presents", "", "3", "3", "Generative"),
	)
	s := build(t, entries)

	reachable := map[*domain.Project]bool{}
	for _, p := range s.Projects() {
		reachable[p] = true
	}
	for _, key := range []string{"snowfro", "tylerhobbs", "dca", "other"} {
		for _, p := range s.ByArtist(key) {
			assert.True(t, reachable[p], "artist %s", key)
		}
	}
	for _, key := range []string{"curated", "playground", "factory", "presents"} {
		for _, p := range s.ByCollection(key) {
			assert.True(t, reachable[p], "collection %s", key)
		}
	}
	for _, key := range []string{"generative", "flowfield"} {
		for _, p := range s.ByTag(key) {
			assert.True(t, reachable[p], "tag %s", key)
		}
	}
}

func TestBuild_AbortsOnMalformedEntry(t *testing.T) {
	entries := append(testEntries(), entry("x", "x", "Broken", "Nobody", "Factory", "", "12", "100"))

	_, err := directory.Build(entries, keys.NewNormalizer(nil), nil, time.Now())
	assert.Error(t, err)
}

func TestBuild_AbortsOnBadStartDatetime(t *testing.T) {
	entries := testEntries()
	entries[0].StartDatetime = strPtr("yesterday")

	_, err := directory.Build(entries, keys.NewNormalizer(nil), nil, time.Now())
	assert.Error(t, err)
}

func TestBuild_AliasedNames(t *testing.T) {
	normalizer := keys.NewNormalizer(map[string]string{"ringers": "Fidenza"})

	s, err := directory.Build(testEntries(), normalizer, nil, time.Now())
	require.NoError(t, err)

	assert.True(t, s.HasProject("fidenza"))
	assert.Equal(t, "fidenza", normalizer.Normalize("Ringers"))
}

func TestBuild_MissingOptionalFields(t *testing.T) {
	e := entry("7", "7", "", "", "", "", "3", "3")
	e.Name = nil
	e.ArtistName = nil
	e.CategoryName = nil

	s := build(t, []domain.CatalogEntry{e})

	p, ok := s.Project("unknownproject")
	require.True(t, ok)
	assert.Equal(t, "unknown", p.Name)
	assert.True(t, s.HasArtist("unknownartist"))
}

func TestBuild_UsesMappingProvider(t *testing.T) {
	var asked []string
	provider := func(key string) domain.NamedMappings {
		asked = append(asked, key)
		return nil
	}

	s, err := directory.Build(testEntries(), keys.NewNormalizer(nil), provider, time.Now())
	require.NoError(t, err)

	assert.Contains(t, asked, "chromiesquiggle")
	p, _ := s.Project("chromiesquiggle")
	assert.Equal(t, domain.NoNamedMappings, p.NamedMappings)
}
