package domain

import (
	"slices"
	"sync/atomic"
	"time"
)

// NamedEntry is one community-named token or set
type NamedEntry struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NamedListing lists the named tokens and sets of a project
type NamedListing struct {
	Singles []NamedEntry
	Sets    []NamedEntry
}

// Empty reports whether the listing has no entries
func (l NamedListing) Empty() bool {
	return len(l.Singles) == 0 && len(l.Sets) == 0
}

// NamedMappings translates community names into piece commands for a single project
//
//go:generate mockgen -source=project.go -destination=../mocks/named_mappings.go -package=mocks -mock_names=NamedMappings=MockNamedMappings
type NamedMappings interface {
	// Transform rewrites a command that references a named token or set, e.g. "#? glitch" -> "#123"
	Transform(content string) string
	// List returns every mapping known for the project
	List() NamedListing
}

type noNamedMappings struct{}

func (noNamedMappings) Transform(content string) string { return content }
func (noNamedMappings) List() NamedListing              { return NamedListing{} }

// NoNamedMappings is the mapping used by projects without named tokens
var NoNamedMappings NamedMappings = noNamedMappings{}

// ProjectInfo holds the immutable part of a project record
type ProjectInfo struct {
	ID              string
	ProjectNumber   int64
	ContractAddress string
	MaxEditionSize  int64
	Name            string
	ArtistName      string
	Description     string
	Active          bool
	StartTime       *time.Time
	Collection      string
	Tags            []string
	NamedMappings   NamedMappings
}

// Project is one catalog entry of a directory snapshot.
// Only the edition size changes after construction.
type Project struct {
	ProjectInfo

	editionSize atomic.Int64
}

// NewProject creates a project record with the given minted count,
// capped at MaxEditionSize when that is known
func NewProject(info ProjectInfo, editionSize int64) *Project {
	if info.NamedMappings == nil {
		info.NamedMappings = NoNamedMappings
	}
	p := &Project{ProjectInfo: info}
	p.editionSize.Store(p.capEditionSize(editionSize))
	return p
}

func (p *Project) capEditionSize(n int64) int64 {
	if p.MaxEditionSize > 0 && n > p.MaxEditionSize {
		return p.MaxEditionSize
	}
	return n
}

// EditionSize returns the number of pieces known to be minted
func (p *Project) EditionSize() int64 {
	return p.editionSize.Load()
}

// RaiseEditionSize raises the minted count to n, capped at MaxEditionSize.
// The count never decreases; the resulting value is returned.
func (p *Project) RaiseEditionSize(n int64) int64 {
	n = p.capEditionSize(n)
	for {
		current := p.editionSize.Load()
		if n <= current {
			return current
		}
		if p.editionSize.CompareAndSwap(current, n) {
			return n
		}
	}
}

// Selectable reports whether the project can serve a random piece
func (p *Project) Selectable() bool {
	return p.Active && p.EditionSize() > 1
}

// HasTag reports whether key is one of the project's tag keys
func (p *Project) HasTag(key string) bool {
	return slices.Contains(p.Tags, key)
}

// TokenID returns the global token id of a piece
func (p *Project) TokenID(invocation int64) int64 {
	return invocation + p.ProjectNumber*TokenIDMultiplier
}
