package trivia

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
)

// EventType distinguishes trivia events
type EventType string

const (
	EventTypeAsk    EventType = "ask"
	EventTypeAnswer EventType = "answer"
)

// DefaultQuestionTimeout is how long a question stays open before a new one may be asked
const DefaultQuestionTimeout = 10 * time.Minute

// Event is published to the trivia subject for the chat front end
type Event struct {
	Type          EventType `json:"type"`
	QuestionID    string    `json:"question_id"`
	ProjectID     string    `json:"project_id"`
	ProjectNumber int64     `json:"project_number"`
	ProjectName   string    `json:"project_name"`
	ArtistName    string    `json:"artist_name"`
	AskedAt       time.Time `json:"asked_at"`
	AnsweredBy    string    `json:"answered_by,omitempty"`
	ChannelID     string    `json:"channel_id,omitempty"`
}

// Publisher delivers trivia events
//
//go:generate mockgen -source=trivia.go -destination=../mocks/trivia.go -package=mocks -mock_names=Publisher=MockTriviaPublisher
type Publisher interface {
	PublishTrivia(ctx context.Context, event Event) error
}

type question struct {
	id      string
	project *domain.Project
	askedAt time.Time
}

// Game keeps the open trivia question. The answer is a project and the
// first user to look up that project answers it.
type Game struct {
	publisher Publisher
	clock     adapter.Clock
	timeout   time.Duration

	mu     sync.Mutex
	active *question
}

// NewGame creates a trivia game; timeout 0 uses DefaultQuestionTimeout
func NewGame(publisher Publisher, clock adapter.Clock, timeout time.Duration) *Game {
	if timeout <= 0 {
		timeout = DefaultQuestionTimeout
	}
	return &Game{
		publisher: publisher,
		clock:     clock,
		timeout:   timeout,
	}
}

// Ask opens a question about project unless one is still open.
// It reports whether a question was asked.
func (g *Game) Ask(ctx context.Context, project *domain.Project) (bool, error) {
	g.mu.Lock()
	now := g.clock.Now()
	if g.active != nil && now.Sub(g.active.askedAt) < g.timeout {
		g.mu.Unlock()
		return false, nil
	}
	q := &question{id: ulid.Make().String(), project: project, askedAt: now}
	g.active = q
	g.mu.Unlock()

	if err := g.publisher.PublishTrivia(ctx, newEvent(EventTypeAsk, q)); err != nil {
		g.mu.Lock()
		if g.active == q {
			g.active = nil
		}
		g.mu.Unlock()
		return false, fmt.Errorf("failed to publish trivia question: %w", err)
	}

	logger.InfoCtx(ctx, "Trivia question asked",
		zap.String("question_id", q.id),
		zap.String("project", project.Name),
	)

	return true, nil
}

// Tally credits the author of msg when project answers the open question and closes it
func (g *Game) Tally(ctx context.Context, msg messaging.InboundMessage, project *domain.Project) error {
	g.mu.Lock()
	q := g.active
	if q == nil || q.project.ID != project.ID {
		g.mu.Unlock()
		return nil
	}
	g.active = nil
	g.mu.Unlock()

	event := newEvent(EventTypeAnswer, q)
	event.AnsweredBy = msg.AuthorID
	event.ChannelID = msg.ChannelID

	if err := g.publisher.PublishTrivia(ctx, event); err != nil {
		return fmt.Errorf("failed to publish trivia answer: %w", err)
	}

	logger.InfoCtx(ctx, "Trivia question answered",
		zap.String("question_id", q.id),
		zap.String("author_id", msg.AuthorID),
	)

	return nil
}

func newEvent(eventType EventType, q *question) Event {
	return Event{
		Type:          eventType,
		QuestionID:    q.id,
		ProjectID:     q.project.ID,
		ProjectNumber: q.project.ProjectNumber,
		ProjectName:   q.project.Name,
		ArtistName:    q.project.ArtistName,
		AskedAt:       q.askedAt,
	}
}
