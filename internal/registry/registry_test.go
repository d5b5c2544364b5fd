package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/registry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		expectedErr  string
		validateFunc func(t *testing.T, reg registry.Registry)
	}{
		{
			name: "yaml registry",
			file: "registry.yaml",
			content: `
aliases:
  squig: Chromie Squiggle
verticals:
  curated: curated
  Curated Collection: curated
birthday_channel: "100"
project_channels:
  0: "200"
core_contracts:
  - "0xABC"
named_mappings:
  Chromie Squiggle:
    singles:
      perfect spiral: 7583
    sets:
      hyper: [1, 2, 3]
`,
			validateFunc: func(t *testing.T, reg registry.Registry) {
				assert.Equal(t, "Chromie Squiggle", reg.Aliases()["squig"])
				assert.True(t, reg.IsVerticalName("curated"))
				assert.True(t, reg.IsVerticalName("curatedcollection"))
				assert.Equal(t, "curated", reg.VerticalName("curatedcollection"))
				assert.False(t, reg.IsVerticalName("presents"))
				assert.Equal(t, "100", reg.BirthdayChannel())

				channel, ok := reg.ProjectChannel(0)
				assert.True(t, ok)
				assert.Equal(t, "200", channel)
				_, ok = reg.ProjectChannel(1)
				assert.False(t, ok)

				assert.True(t, reg.IsCoreContract("0xabc"))
				assert.False(t, reg.IsCoreContract(registry.DefaultCoreContracts[0]))

				mapping, ok := reg.NamedMappings("chromiesquiggle")
				require.True(t, ok)
				assert.Equal(t, int64(7583), mapping.Singles["perfect spiral"])
				assert.Equal(t, []int64{1, 2, 3}, mapping.Sets["hyper"])
			},
		},
		{
			name:    "json registry with defaults",
			file:    "registry.json",
			content: `{"aliases": {"fido": "Fidenza"}, "project_channels": {"78": "300"}}`,
			validateFunc: func(t *testing.T, reg registry.Registry) {
				assert.Equal(t, "Fidenza", reg.Aliases()["fido"])
				assert.True(t, reg.IsVerticalName("curated"))
				assert.Equal(t, "collaborations", reg.VerticalName("collabs"))
				assert.True(t, reg.IsCoreContract("0xA7D8D9EF8D8CE8992DF33D8B8CF4AEBABD5BD270"))

				channel, ok := reg.ProjectChannel(78)
				assert.True(t, ok)
				assert.Equal(t, "300", channel)
			},
		},
		{
			name:        "alias cycle is rejected",
			file:        "registry.json",
			content:     `{"aliases": {"a": "b", "b": "a"}}`,
			expectedErr: "invalid aliases",
		},
		{
			name:        "malformed json",
			file:        "registry.json",
			content:     `{"aliases": `,
			expectedErr: "failed to parse registry JSON",
		},
		{
			name:        "malformed yaml",
			file:        "registry.yml",
			content:     "aliases: [unterminated",
			expectedErr: "failed to parse registry YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := registry.Load(writeFile(t, tt.file, tt.content))
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, reg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := registry.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read registry file")
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	reg, err := registry.Load("")
	require.NoError(t, err)
	assert.Empty(t, reg.Aliases())
	assert.True(t, reg.IsVerticalName("presents"))
	assert.True(t, reg.IsCoreContract(registry.DefaultCoreContracts[2]))
	assert.Equal(t, "", reg.BirthdayChannel())
}

func TestNew_AliasCycleError(t *testing.T) {
	_, err := registry.New(registry.Data{Aliases: map[string]string{"x": "x"}})
	assert.ErrorIs(t, err, domain.ErrAliasCycle)
}
