package selector

import (
	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
)

// MaxAttempts is the number of draws before giving up
const MaxAttempts = 10

// PickProject draws uniformly from candidates until it finds an active
// multi-edition project. It returns nil after MaxAttempts failed draws,
// which callers treat as nothing to send.
func PickProject(candidates []*domain.Project, random adapter.Random) *domain.Project {
	if len(candidates) == 0 {
		return nil
	}

	for range MaxAttempts {
		if p := candidates[random.IntN(len(candidates))]; p != nil && p.Selectable() {
			return p
		}
	}

	return nil
}

// PickFrom is PickProject over a fresh candidate list per draw, for sources
// that are re-queried on each attempt
func PickFrom(draw func(attempt int) *domain.Project) *domain.Project {
	for attempt := range MaxAttempts {
		if p := draw(attempt); p != nil && p.Selectable() {
			return p
		}
	}
	return nil
}
