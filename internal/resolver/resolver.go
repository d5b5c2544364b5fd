package resolver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
)

// InvocationSource returns the live minted count of a project
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=InvocationSource=MockInvocationSource,FloorSource=MockFloorSource
type InvocationSource interface {
	// GetProjectInvocations returns nil when the count is unknown
	GetProjectInvocations(ctx context.Context, projectID string) (*int64, error)
}

// FloorSource returns the lowest listed token of a project
type FloorSource interface {
	// GetProjectFloor returns nil when nothing is listed
	GetProjectFloor(ctx context.Context, projectID string) (*domain.FloorToken, error)
}

// OutOfRangeError reports a piece number outside the minted range
type OutOfRangeError struct {
	Requested   int64
	Minted      int64
	ProjectName string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("piece %d out of range: only %d pieces minted for %s", e.Requested, e.Minted, e.ProjectName)
}

// Resolution is the outcome of resolving a command against one project
type Resolution struct {
	Project *domain.Project
	// Listing is set when the command asked for the named tokens of the project
	Listing *domain.NamedListing
	// Invocation is the piece number within the project
	Invocation int64
	// TokenID is the global token id
	TokenID int64
	// Details is set when full metadata was requested
	Details bool
}

// Resolver turns a piece command into a validated token id
type Resolver struct {
	invocations InvocationSource
	floors      FloorSource
	random      adapter.Random
}

// New creates a resolver
func New(invocations InvocationSource, floors FloorSource, random adapter.Random) *Resolver {
	return &Resolver{
		invocations: invocations,
		floors:      floors,
		random:      random,
	}
}

// Resolve parses content ("#42", "#?", "#floor", "#<named token>", ...) against the project
func (r *Resolver) Resolve(ctx context.Context, project *domain.Project, content string) (*Resolution, error) {
	if len(content) <= 1 {
		return nil, domain.ErrInvalidFormat
	}

	lowered := strings.ToLower(content)

	if strings.Contains(lowered, "named") {
		listing := project.NamedMappings.List()
		return &Resolution{Project: project, Listing: &listing}, nil
	}

	if strings.Contains(lowered, "#floor") {
		floor, err := r.floors.GetProjectFloor(ctx, project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get floor of %s: %w", project.Name, err)
		}
		if floor == nil || floor.ListEthPrice == nil {
			return nil, domain.ErrNoFloorListing
		}
		content = fmt.Sprintf("#%d", floor.Invocation)
	}

	content = project.NamedMappings.Transform(content)

	details := strings.Contains(strings.ToLower(content), "detail")

	n, err := r.pieceNumber(project, content)
	if err != nil {
		return nil, err
	}

	if n >= project.EditionSize() && n < project.MaxEditionSize {
		r.refreshEditionSize(ctx, project)
	}

	if minted := project.EditionSize(); n >= minted || n < 0 {
		return nil, &OutOfRangeError{Requested: n, Minted: minted, ProjectName: project.Name}
	}

	return &Resolution{
		Project:    project,
		Invocation: n,
		TokenID:    project.TokenID(n),
		Details:    details,
	}, nil
}

func (r *Resolver) pieceNumber(project *domain.Project, content string) (int64, error) {
	afterTheHash := content[1:]

	if strings.HasPrefix(afterTheHash, "?") {
		minted := project.EditionSize()
		if minted <= 0 {
			return 0, &OutOfRangeError{Minted: minted, ProjectName: project.Name}
		}
		return r.random.Int64N(minted), nil
	}

	digits := leadingInteger(afterTheHash)
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, afterTheHash)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, afterTheHash)
	}

	return n, nil
}

// refreshEditionSize asks the live source for the minted count.
// A failed query leaves the stored count in place.
func (r *Resolver) refreshEditionSize(ctx context.Context, project *domain.Project) {
	invocations, err := r.invocations.GetProjectInvocations(ctx, project.ID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.WarnCtx(ctx, "Failed to refresh edition size",
				zap.String("project", project.Name),
				zap.Error(err),
			)
		}
		return
	}
	if invocations == nil || *invocations == 0 {
		return
	}

	previous := project.EditionSize()
	current := project.RaiseEditionSize(*invocations)
	if current != previous {
		logger.InfoCtx(ctx, "Edition size raised",
			zap.String("project", project.Name),
			zap.Int64("from", previous),
			zap.Int64("to", current),
		)
	}
}

// leadingInteger returns the optional sign and digits at the start of s, skipping leading spaces
func leadingInteger(s string) string {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return ""
	}
	return s[:end]
}
