package messaging

import (
	"context"
	"time"
)

// InboundMessage is a chat message addressed to the bot
type InboundMessage struct {
	ID         string    `json:"id"`
	ChannelID  string    `json:"channel_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

// EmbedField is one name/value cell of an embed
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed is a rich message card
type Embed struct {
	Title        string       `json:"title,omitempty"`
	URL          string       `json:"url,omitempty"`
	Description  string       `json:"description,omitempty"`
	Color        int          `json:"color,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty"`
	Footer       string       `json:"footer,omitempty"`
	Fields       []EmbedField `json:"fields,omitempty"`
}

// AddField appends a field and returns the embed for chaining
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return e
}

// OutboundMessage is a message the bot sends to a channel
type OutboundMessage struct {
	ChannelID string  `json:"channel_id"`
	ReplyTo   string  `json:"reply_to,omitempty"`
	Content   string  `json:"content,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
}

// Sender delivers outbound messages to the chat platform
//
//go:generate mockgen -source=message.go -destination=../mocks/messaging.go -package=mocks -mock_names=Sender=MockSender,Subscriber=MockSubscriber
type Sender interface {
	Send(ctx context.Context, msg OutboundMessage) error
}

// Handler processes one inbound message; an error asks for redelivery
type Handler func(ctx context.Context, msg InboundMessage) error

// Subscriber delivers inbound messages to a handler until Close
type Subscriber interface {
	// Subscribe starts delivering messages; it returns once the subscription is set up
	Subscribe(ctx context.Context, handler Handler) error

	// Close stops delivery and closes the connection
	Close()
}
