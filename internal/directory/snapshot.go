package directory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
)

const unknownArtist = "unknown artist"

// Snapshot is one immutable generation of the five lookup indices
type Snapshot struct {
	byKey         map[string]*domain.Project
	byArtist      map[string][]*domain.Project
	byCollection  map[string][]*domain.Project
	byTag         map[string][]*domain.Project
	byReleaseDate map[string][]*domain.Project

	// projects lists byKey values in first-seen catalog order
	projects []*domain.Project
	builtAt  time.Time
}

// MappingProvider supplies the named mappings of a project key
type MappingProvider func(projectKey string) domain.NamedMappings

// Build constructs a complete snapshot from catalog entries.
// Entries with zero invocations are skipped. Any malformed entry fails the whole build.
func Build(entries []domain.CatalogEntry, normalizer *keys.Normalizer, mappings MappingProvider, builtAt time.Time) (*Snapshot, error) {
	s := &Snapshot{
		byKey:         make(map[string]*domain.Project, len(entries)),
		byArtist:      make(map[string][]*domain.Project),
		byCollection:  make(map[string][]*domain.Project),
		byTag:         make(map[string][]*domain.Project),
		byReleaseDate: make(map[string][]*domain.Project),
		builtAt:       builtAt,
	}

	var order []string
	for i := range entries {
		entry := &entries[i]
		if entry.Invocations == "0" {
			continue
		}

		project, key, err := newProject(entry, normalizer, mappings)
		if err != nil {
			return nil, fmt.Errorf("failed to build project %s: %w", entry.ID, err)
		}

		if _, exists := s.byKey[key]; !exists {
			order = append(order, key)
		}
		s.byKey[key] = project

		if project.StartTime != nil {
			bday := project.StartTime.UTC().Format("01-02")
			s.byReleaseDate[bday] = append(s.byReleaseDate[bday], project)
		}

		artistKey := normalizer.Normalize(project.ArtistName)
		s.byArtist[artistKey] = append(s.byArtist[artistKey], project)

		s.byCollection[project.Collection] = append(s.byCollection[project.Collection], project)

		for _, tag := range project.Tags {
			s.byTag[tag] = append(s.byTag[tag], project)
		}
	}

	// Drop records shadowed by a later duplicate name so every bucket entry stays reachable from byKey
	s.prune()

	s.projects = make([]*domain.Project, 0, len(order))
	for _, key := range order {
		s.projects = append(s.projects, s.byKey[key])
	}

	return s, nil
}

func newProject(entry *domain.CatalogEntry, normalizer *keys.Normalizer, mappings MappingProvider) (*domain.Project, string, error) {
	editionSize, err := strconv.ParseInt(entry.Invocations, 10, 64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid invocations %q: %w", entry.Invocations, err)
	}
	maxEditionSize, err := strconv.ParseInt(entry.MaxInvocations, 10, 64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid max invocations %q: %w", entry.MaxInvocations, err)
	}
	projectNumber, err := strconv.ParseInt(entry.ProjectID, 10, 64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid project id %q: %w", entry.ProjectID, err)
	}

	var startTime *time.Time
	if entry.StartDatetime != nil && *entry.StartDatetime != "" {
		parsed, err := parseStartTime(*entry.StartDatetime)
		if err != nil {
			return nil, "", err
		}
		startTime = &parsed
	}

	tags := make([]string, 0, len(entry.Tags))
	for _, tag := range entry.Tags {
		tags = append(tags, normalizer.Normalize(tag))
	}

	name := valueOr(entry.Name, "unknown")
	key := normalizer.Normalize(valueOr(entry.Name, "unknown project"))

	var mapped domain.NamedMappings
	if mappings != nil {
		mapped = mappings(key)
	}

	project := domain.NewProject(domain.ProjectInfo{
		ID:              entry.ID,
		ProjectNumber:   projectNumber,
		ContractAddress: entry.ContractAddress,
		MaxEditionSize:  maxEditionSize,
		Name:            name,
		ArtistName:      valueOr(entry.ArtistName, unknownArtist),
		Description:     valueOr(entry.Description, ""),
		Active:          entry.Active,
		StartTime:       startTime,
		Collection:      normalizer.Normalize(collectionName(entry)),
		Tags:            tags,
		NamedMappings:   mapped,
	}, editionSize)

	return project, key, nil
}

// collectionName uses the category name, except for the Collections category
// whose projects are grouped by their finer-grained vertical
func collectionName(entry *domain.CatalogEntry) string {
	category := valueOr(entry.CategoryName, "")
	if strings.ToLower(category) != domain.CollectionsCategory {
		return category
	}
	return entry.VerticalName
}

func parseStartTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start datetime %q", value)
}

func (s *Snapshot) prune() {
	live := make(map[*domain.Project]bool, len(s.byKey))
	for _, p := range s.byKey {
		live[p] = true
	}

	filter := func(index map[string][]*domain.Project) {
		for k, list := range index {
			kept := list[:0]
			for _, p := range list {
				if live[p] {
					kept = append(kept, p)
				}
			}
			if len(kept) == 0 {
				delete(index, k)
				continue
			}
			index[k] = kept
		}
	}
	filter(s.byArtist)
	filter(s.byCollection)
	filter(s.byTag)
	filter(s.byReleaseDate)
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// Project returns the project indexed under key
func (s *Snapshot) Project(key string) (*domain.Project, bool) {
	p, ok := s.byKey[key]
	return p, ok
}

// HasProject reports whether key is a project key
func (s *Snapshot) HasProject(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

// ByArtist returns the projects of an artist key in catalog order
func (s *Snapshot) ByArtist(key string) []*domain.Project {
	return s.byArtist[key]
}

// HasArtist reports whether key is an artist key
func (s *Snapshot) HasArtist(key string) bool {
	_, ok := s.byArtist[key]
	return ok
}

// ByCollection returns the projects of a collection key in catalog order
func (s *Snapshot) ByCollection(key string) []*domain.Project {
	return s.byCollection[key]
}

// ByTag returns the projects carrying a tag key in catalog order
func (s *Snapshot) ByTag(key string) []*domain.Project {
	return s.byTag[key]
}

// HasTag reports whether key is a tag key
func (s *Snapshot) HasTag(key string) bool {
	_, ok := s.byTag[key]
	return ok
}

// ByReleaseDate returns the projects released on a "MM-DD" day
func (s *Snapshot) ByReleaseDate(monthDay string) []*domain.Project {
	return s.byReleaseDate[monthDay]
}

// Projects returns every indexed project
func (s *Snapshot) Projects() []*domain.Project {
	return s.projects
}

// Len returns the number of indexed projects
func (s *Snapshot) Len() int {
	return len(s.byKey)
}

// BuiltAt returns when the snapshot was built
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}
