package namedmap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
	"github.com/feral-file/ff-artbot/internal/registry"
)

// Provider returns the named mappings of a project key
type Provider interface {
	For(projectKey string) domain.NamedMappings
}

type provider struct {
	registry   registry.Registry
	normalizer *keys.Normalizer
	random     adapter.Random
}

// NewProvider creates a provider backed by the registry's named_mappings section
func NewProvider(reg registry.Registry, random adapter.Random) Provider {
	return &provider{
		registry:   reg,
		normalizer: keys.NewNormalizer(nil),
		random:     random,
	}
}

// For returns domain.NoNamedMappings when the project has no entries
func (p *provider) For(projectKey string) domain.NamedMappings {
	data, ok := p.registry.NamedMappings(projectKey)
	if !ok || (len(data.Singles) == 0 && len(data.Sets) == 0) {
		return domain.NoNamedMappings
	}
	return New(data, p.normalizer, p.random)
}

// Mappings translates "#<single>" into "#<invocation>" and "#?<set>" into a random member of the set
type Mappings struct {
	singles    map[string]int64
	sets       map[string][]int64
	listing    domain.NamedListing
	normalizer *keys.Normalizer
	random     adapter.Random
}

// New creates mappings from registry data
func New(data registry.NamedMappingData, normalizer *keys.Normalizer, random adapter.Random) *Mappings {
	m := &Mappings{
		singles:    make(map[string]int64, len(data.Singles)),
		sets:       make(map[string][]int64, len(data.Sets)),
		normalizer: normalizer,
		random:     random,
	}

	for name, invocation := range data.Singles {
		m.singles[normalizer.Normalize(name)] = invocation
		m.listing.Singles = append(m.listing.Singles, domain.NamedEntry{Name: name, Value: fmt.Sprintf("#%d", invocation)})
	}
	for name, members := range data.Sets {
		if len(members) == 0 {
			continue
		}
		m.sets[normalizer.Normalize(name)] = members
		m.listing.Sets = append(m.listing.Sets, domain.NamedEntry{Name: name, Value: fmt.Sprintf("%d tokens", len(members))})
	}

	byName := func(a, b domain.NamedEntry) int { return strings.Compare(a.Name, b.Name) }
	slices.SortFunc(m.listing.Singles, byName)
	slices.SortFunc(m.listing.Sets, byName)

	return m
}

// Transform rewrites the first word of a command when it names a single or a set
func (m *Mappings) Transform(content string) string {
	if !strings.HasPrefix(content, "#") {
		return content
	}

	word, rest, _ := strings.Cut(content[1:], " ")
	if rest != "" {
		rest = " " + rest
	}

	if strings.HasPrefix(word, "?") {
		set, ok := m.sets[m.normalizer.Normalize(word[1:])]
		if !ok {
			return content
		}
		return fmt.Sprintf("#%d%s", set[m.random.IntN(len(set))], rest)
	}

	if invocation, ok := m.singles[m.normalizer.Normalize(word)]; ok {
		return fmt.Sprintf("#%d%s", invocation, rest)
	}
	return content
}

// List returns the singles and sets sorted by name
func (m *Mappings) List() domain.NamedListing {
	return m.listing
}
