package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/feral-file/ff-artbot/internal/keys"
)

// Registry holds the static bot configuration that is edited by hand:
// command aliases, vertical names, channel routing and named tokens
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Aliases returns the alias table consumed by the key normalizer
	Aliases() map[string]string

	// IsVerticalName reports whether key names a curation vertical or category
	IsVerticalName(key string) bool

	// VerticalName returns the collection key a vertical alias stands for
	VerticalName(key string) string

	// BirthdayChannel returns the channel every birthday is announced in
	BirthdayChannel() string

	// ProjectChannel returns the dedicated channel of a project, if any
	ProjectChannel(projectNumber int64) (string, bool)

	// IsCoreContract reports whether the address is a flagship core contract
	IsCoreContract(address string) bool

	// NamedMappings returns the named tokens and sets of a project key
	NamedMappings(projectKey string) (NamedMappingData, bool)
}

// NamedMappingData lists named singles (name -> invocation) and sets (name -> invocations)
type NamedMappingData struct {
	Singles map[string]int64   `json:"singles" yaml:"singles"`
	Sets    map[string][]int64 `json:"sets"    yaml:"sets"`
}

// Data represents the structure of the registry file
type Data struct {
	Aliases         map[string]string           `json:"aliases"          yaml:"aliases"`
	Verticals       map[string]string           `json:"verticals"        yaml:"verticals"`
	BirthdayChannel string                      `json:"birthday_channel" yaml:"birthday_channel"`
	ProjectChannels map[int64]string            `json:"project_channels" yaml:"project_channels"`
	CoreContracts   []string                    `json:"core_contracts"   yaml:"core_contracts"`
	NamedMappings   map[string]NamedMappingData `json:"named_mappings"   yaml:"named_mappings"`
}

// DefaultVerticals are the curation verticals and categories recognized when the file names none
var DefaultVerticals = map[string]string{
	"curated":        "curated",
	"presents":       "presents",
	"heritage":       "heritage",
	"explorations":   "explorations",
	"playground":     "playground",
	"factory":        "factory",
	"fullyonchain":   "fullyonchain",
	"engine":         "engine",
	"collaborations": "collaborations",
	"collabs":        "collaborations",
}

// DefaultCoreContracts are the Art Blocks flagship contracts on mainnet
var DefaultCoreContracts = []string{
	"0x059edd72cd353df5106d2b9cc5ab83a52287ac3a",
	"0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270",
	"0x99a9b7c1116f9ceeb1652de04d5969cce509b069",
}

type registry struct {
	aliases         map[string]string
	verticals       map[string]string
	birthdayChannel string
	projectChannels map[int64]string
	coreContracts   map[string]bool
	namedMappings   map[string]NamedMappingData
}

// Load reads a registry file. The format follows the extension: .yaml/.yml or .json.
// An empty path yields the built-in defaults.
func Load(path string) (Registry, error) {
	if path == "" {
		return New(Data{})
	}

	raw, err := os.ReadFile(path) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var data Data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
		}
	}

	return New(data)
}

// New builds a registry from parsed data, filling defaults and validating aliases
func New(data Data) (Registry, error) {
	r := &registry{
		aliases:         make(map[string]string, len(data.Aliases)),
		verticals:       make(map[string]string),
		birthdayChannel: data.BirthdayChannel,
		projectChannels: make(map[int64]string, len(data.ProjectChannels)),
		coreContracts:   make(map[string]bool),
		namedMappings:   make(map[string]NamedMappingData, len(data.NamedMappings)),
	}

	for from, to := range data.Aliases {
		r.aliases[from] = to
	}
	if err := keys.NewNormalizer(r.aliases).Validate(); err != nil {
		return nil, fmt.Errorf("invalid aliases: %w", err)
	}
	// Aliases never apply to vertical or named-mapping keys so those use the bare normalizer
	bare := keys.NewNormalizer(nil)

	verticals := data.Verticals
	if len(verticals) == 0 {
		verticals = DefaultVerticals
	}
	for name, canonical := range verticals {
		r.verticals[bare.Normalize(name)] = bare.Normalize(canonical)
	}

	for number, channel := range data.ProjectChannels {
		r.projectChannels[number] = channel
	}

	contracts := data.CoreContracts
	if len(contracts) == 0 {
		contracts = DefaultCoreContracts
	}
	for _, addr := range contracts {
		r.coreContracts[strings.ToLower(addr)] = true
	}

	for projectKey, mapping := range data.NamedMappings {
		r.namedMappings[bare.Normalize(projectKey)] = mapping
	}

	return r, nil
}

func (r *registry) Aliases() map[string]string {
	return r.aliases
}

func (r *registry) IsVerticalName(key string) bool {
	_, ok := r.verticals[key]
	return ok
}

func (r *registry) VerticalName(key string) string {
	if canonical, ok := r.verticals[key]; ok {
		return canonical
	}
	return key
}

func (r *registry) BirthdayChannel() string {
	return r.birthdayChannel
}

func (r *registry) ProjectChannel(projectNumber int64) (string, bool) {
	channel, ok := r.projectChannels[projectNumber]
	return channel, ok && channel != ""
}

func (r *registry) IsCoreContract(address string) bool {
	return r.coreContracts[strings.ToLower(address)]
}

func (r *registry) NamedMappings(projectKey string) (NamedMappingData, bool) {
	mapping, ok := r.namedMappings[projectKey]
	return mapping, ok
}
