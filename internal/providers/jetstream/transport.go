package jetstream

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/trivia"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL                   string
	StreamName            string
	ConsumerName          string
	CommandSubject        string
	OutboundSubjectPrefix string
	TriviaSubject         string
	MaxReconnects         int
	ReconnectWait         time.Duration
	ConnectionName        string
	AckWait               time.Duration
	MaxDeliver            int
}

// Transport carries chat messages over NATS JetStream. Inbound commands are
// consumed from CommandSubject, replies are published to
// OutboundSubjectPrefix.<channel> and trivia events to TriviaSubject.
type Transport struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	cfg  Config
	json adapter.JSON
	jcs  adapter.JCS

	mu         sync.Mutex
	consumeCtx adapter.ConsumeContext
}

// NewTransport connects to NATS and makes sure the stream exists
func NewTransport(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) (*Transport, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	streamCfg := jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: streamSubjects(cfg),
		MaxAge:   24 * time.Hour,
	}
	if err := js.EnsureStream(ctx, streamCfg); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &Transport{
		nc:   nc,
		js:   js,
		cfg:  cfg,
		json: jsonAdapter,
		jcs:  jcsAdapter,
	}, nil
}

func streamSubjects(cfg Config) []string {
	subjects := []string{cfg.CommandSubject, cfg.OutboundSubjectPrefix + ".>"}
	if cfg.TriviaSubject != "" {
		subjects = append(subjects, cfg.TriviaSubject)
	}
	return subjects
}

// Subscribe consumes inbound commands with a durable consumer.
// Malformed payloads are terminated; handler errors are redelivered up to MaxDeliver.
func (t *Transport) Subscribe(ctx context.Context, handler messaging.Handler) error {
	consumer, err := t.js.CreateOrUpdateConsumer(ctx, t.cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       t.cfg.ConsumerName,
		FilterSubject: t.cfg.CommandSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       t.cfg.AckWait,
		MaxDeliver:    t.cfg.MaxDeliver,
		DeliverPolicy: jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", t.cfg.ConsumerName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg adapter.Message) {
		t.handle(ctx, handler, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	t.mu.Lock()
	t.consumeCtx = consumeCtx
	t.mu.Unlock()

	logger.InfoCtx(ctx, "Consuming chat commands",
		zap.String("stream", t.cfg.StreamName),
		zap.String("subject", t.cfg.CommandSubject),
	)

	return nil
}

func (t *Transport) handle(ctx context.Context, handler messaging.Handler, msg adapter.Message) {
	var inbound messaging.InboundMessage
	if err := t.json.Unmarshal(msg.Data(), &inbound); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to unmarshal inbound message: %w", err), zap.String("subject", msg.Subject()))
		if err := msg.Term(); err != nil {
			logger.WarnCtx(ctx, "Failed to terminate message", zap.Error(err))
		}
		return
	}

	if err := handler(ctx, inbound); err != nil {
		logger.WarnCtx(ctx, "Inbound message handler failed, requesting redelivery",
			zap.String("message_id", inbound.ID),
			zap.Error(err),
		)
		if err := msg.Nak(); err != nil {
			logger.WarnCtx(ctx, "Failed to nak message", zap.Error(err))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.WarnCtx(ctx, "Failed to ack message", zap.Error(err))
	}
}

// Send publishes a reply to the channel's outbound subject
func (t *Transport) Send(ctx context.Context, out messaging.OutboundMessage) error {
	if out.ChannelID == "" {
		return errors.New("outbound message has no channel")
	}

	data, err := t.json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	msgID, err := MessageID(t.jcs, data)
	if err != nil {
		return err
	}

	subject := t.outboundSubject(out.ChannelID)
	if _, err := t.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID)); err != nil {
		return fmt.Errorf("failed to publish outbound message: %w", err)
	}

	logger.DebugCtx(ctx, "Published outbound message", zap.String("subject", subject), zap.String("msg_id", msgID))

	return nil
}

// MessageID derives the JetStream message id of an outbound payload from its
// canonical JSON form. The stream drops a second publish of the same reply to
// the same command, or the same announcement, within its duplicate window.
func MessageID(jcsAdapter adapter.JCS, data []byte) (string, error) {
	canonical, err := jcsAdapter.Transform(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize outbound message: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// PublishTrivia publishes a trivia event
func (t *Transport) PublishTrivia(ctx context.Context, event trivia.Event) error {
	if t.cfg.TriviaSubject == "" {
		return errors.New("trivia subject is not configured")
	}

	data, err := t.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal trivia event: %w", err)
	}

	if _, err := t.js.Publish(ctx, t.cfg.TriviaSubject, data, jetstream.WithMsgID(ulid.Make().String())); err != nil {
		return fmt.Errorf("failed to publish trivia event: %w", err)
	}

	return nil
}

// outboundSubject builds the subject of a channel, e.g. artbot.outbound.123456
func (t *Transport) outboundSubject(channelID string) string {
	// Subject tokens cannot contain separators or wildcards
	channel := strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ':
			return '_'
		}
		return r
	}, channelID)

	return fmt.Sprintf("%s.%s", t.cfg.OutboundSubjectPrefix, channel)
}

// Close drains the consumer and closes the NATS connection
func (t *Transport) Close() {
	t.mu.Lock()
	consumeCtx := t.consumeCtx
	t.consumeCtx = nil
	t.mu.Unlock()

	if consumeCtx != nil {
		consumeCtx.Drain()
	}

	if t.nc == nil {
		return
	}

	t.nc.Close()
}
