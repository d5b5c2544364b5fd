package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/mocks"
	artbotjs "github.com/feral-file/ff-artbot/internal/providers/jetstream"
	"github.com/feral-file/ff-artbot/internal/trivia"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testConfig() artbotjs.Config {
	return artbotjs.Config{
		URL:                   "nats://localhost:4222",
		StreamName:            "ARTBOT",
		ConsumerName:          "artbot-commands",
		CommandSubject:        "artbot.commands",
		OutboundSubjectPrefix: "artbot.outbound",
		TriviaSubject:         "artbot.trivia",
		MaxReconnects:         -1,
		ReconnectWait:         time.Second,
		ConnectionName:        "artbot-test",
		AckWait:               30 * time.Second,
		MaxDeliver:            3,
	}
}

type testTransportMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mocks.MockNatsJetStream
	conn      *mocks.MockNatsConn
	js        *mocks.MockJetStream
	transport *artbotjs.Transport
}

func setupTestTransport(t *testing.T) *testTransportMocks {
	ctrl := gomock.NewController(t)

	tm := &testTransportMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}

	tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) error {
		assert.Equal(t, "ARTBOT", cfg.Name)
		assert.Equal(t, []string{"artbot.commands", "artbot.outbound.>", "artbot.trivia"}, cfg.Subjects)
		return nil
	})

	transport, err := artbotjs.NewTransport(context.Background(), testConfig(), tm.natsJS, adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, err)
	tm.transport = transport

	return tm
}

func TestNewTransport_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("connection refused"))

	_, err := artbotjs.NewTransport(context.Background(), testConfig(), natsJS, adapter.NewJSON(), adapter.NewJCS())
	assert.ErrorContains(t, err, "failed to connect to NATS")
}

func TestNewTransport_StreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
	conn.EXPECT().Close()

	_, err := artbotjs.NewTransport(context.Background(), testConfig(), natsJS, adapter.NewJSON(), adapter.NewJCS())
	assert.ErrorContains(t, err, "failed to ensure stream")
}

func TestTransport_Send(t *testing.T) {
	tm := setupTestTransport(t)
	defer tm.ctrl.Finish()

	out := messaging.OutboundMessage{
		ChannelID: "1234.5678",
		Content:   "Invalid format, enter # followed by the piece number of interest.",
	}

	tm.js.EXPECT().
		Publish(gomock.Any(), "artbot.outbound.1234_5678", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var decoded messaging.OutboundMessage
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, out, decoded)
			return &jetstream.PubAck{Stream: "ARTBOT", Sequence: 1}, nil
		})

	require.NoError(t, tm.transport.Send(context.Background(), out))
}

func TestTransport_SendWithoutChannel(t *testing.T) {
	tm := setupTestTransport(t)
	defer tm.ctrl.Finish()

	assert.Error(t, tm.transport.Send(context.Background(), messaging.OutboundMessage{Content: "hi"}))
}

func TestTransport_SendPublishError(t *testing.T) {
	tm := setupTestTransport(t)
	defer tm.ctrl.Finish()

	tm.js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("no responders"))

	err := tm.transport.Send(context.Background(), messaging.OutboundMessage{ChannelID: "c"})
	assert.ErrorContains(t, err, "failed to publish outbound message")
}

func TestTransport_PublishTrivia(t *testing.T) {
	tm := setupTestTransport(t)
	defer tm.ctrl.Finish()

	tm.js.EXPECT().
		Publish(gomock.Any(), "artbot.trivia", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var event trivia.Event
			require.NoError(t, json.Unmarshal(data, &event))
			assert.Equal(t, trivia.EventTypeAsk, event.Type)
			assert.Equal(t, "Fidenza", event.ProjectName)
			return &jetstream.PubAck{}, nil
		})

	require.NoError(t, tm.transport.PublishTrivia(context.Background(), trivia.Event{Type: trivia.EventTypeAsk, ProjectName: "Fidenza"}))
}

func TestTransport_SubscribeDeliversAndAcks(t *testing.T) {
	tm := setupTestTransport(t)
	defer tm.ctrl.Finish()

	consumer := mocks.NewMockNatsConsumer(tm.ctrl)
	consumeCtx := mocks.NewMockConsumeContext(tm.ctrl)

	var deliver adapter.MessageHandler
	tm.js.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "ARTBOT", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cfg jetstream.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, "artbot-commands", cfg.Durable)
			assert.Equal(t, "artbot.commands", cfg.FilterSubject)
			assert.Equal(t, jetstream.AckExplicitPolicy, cfg.AckPolicy)
			assert.Equal(t, 3, cfg.MaxDeliver)
			return consumer, nil
		})
	consumer.EXPECT().Consume(gomock.Any()).DoAndReturn(func(handler adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
		deliver = handler
		return consumeCtx, nil
	})

	var received []messaging.InboundMessage
	handler := func(_ context.Context, msg messaging.InboundMessage) error {
		received = append(received, msg)
		if msg.Content == "#fail" {
			return errors.New("temporary")
		}
		return nil
	}

	require.NoError(t, tm.transport.Subscribe(context.Background(), handler))
	require.NotNil(t, deliver)

	ok := mocks.NewMockJetStreamMessage(tm.ctrl)
	ok.EXPECT().Data().Return([]byte(`{"id":"m1","channel_id":"c1","author_id":"a1","content":"#42 fidenza"}`))
	ok.EXPECT().Ack().Return(nil)
	deliver(ok)

	failing := mocks.NewMockJetStreamMessage(tm.ctrl)
	failing.EXPECT().Data().Return([]byte(`{"id":"m2","channel_id":"c1","content":"#fail"}`))
	failing.EXPECT().Nak().Return(nil)
	deliver(failing)

	garbage := mocks.NewMockJetStreamMessage(tm.ctrl)
	garbage.EXPECT().Data().Return([]byte(`not json`))
	garbage.EXPECT().Subject().Return("artbot.commands")
	garbage.EXPECT().Term().Return(nil)
	deliver(garbage)

	require.Len(t, received, 2)
	assert.Equal(t, "#42 fidenza", received[0].Content)
	assert.Equal(t, "a1", received[0].AuthorID)

	consumeCtx.EXPECT().Drain()
	tm.conn.EXPECT().Close()
	tm.transport.Close()
}

func TestTransport_SubscribeConsumerError(t *testing.T) {
	tm := setupTestTransport(t)
	defer tm.ctrl.Finish()

	tm.js.EXPECT().CreateOrUpdateConsumer(gomock.Any(), "ARTBOT", gomock.Any()).Return(nil, errors.New("stream not found"))

	err := tm.transport.Subscribe(context.Background(), func(context.Context, messaging.InboundMessage) error { return nil })
	assert.ErrorContains(t, err, "failed to create consumer")
}

func TestTransport_CloseWithoutSubscription(t *testing.T) {
	tm := setupTestTransport(t)
	defer tm.ctrl.Finish()

	tm.conn.EXPECT().Close()
	tm.transport.Close()
}

func TestMessageID(t *testing.T) {
	jcs := adapter.NewJCS()

	a, err := artbotjs.MessageID(jcs, []byte(`{"channel_id":"c1","reply_to":"m1","content":"Fidenza #12"}`))
	require.NoError(t, err)
	b, err := artbotjs.MessageID(jcs, []byte(`{ "content": "Fidenza #12", "reply_to": "m1", "channel_id": "c1" }`))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	other, err := artbotjs.MessageID(jcs, []byte(`{"channel_id":"c1","reply_to":"m2","content":"Fidenza #12"}`))
	require.NoError(t, err)
	assert.NotEqual(t, a, other)

	_, err = artbotjs.MessageID(jcs, []byte(`not json`))
	assert.Error(t, err)
}

func TestTransport_SendCanonicalizeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jcs := mocks.NewMockJCS(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	jcs.EXPECT().Transform(gomock.Any()).Return(nil, errors.New("invalid json"))

	transport, err := artbotjs.NewTransport(context.Background(), testConfig(), natsJS, adapter.NewJSON(), jcs)
	require.NoError(t, err)

	err = transport.Send(context.Background(), messaging.OutboundMessage{ChannelID: "c"})
	assert.ErrorContains(t, err, "failed to canonicalize")
}
