package pubsub

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Reserved watermill metadata keys. Message.Metadata may not override them.
const (
	metaKeyPageID      = "page_id"
	metaKeyTopic       = "topic"
	metaKeyPublishedAt = "published_at"
)

// busBuffer is the per-subscriber queue of the in-process channel.
const busBuffer = 64

// WatermillBridge carries site events between components over an in-process
// watermill GoChannel. Messages never leave the process.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
}

// NewWatermillBridge returns a bridge whose watermill internals log through
// logger, or through the default logger when logger is nil.
func NewWatermillBridge(logger *slog.Logger) *WatermillBridge {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "bus")
	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: busBuffer},
			watermill.NewSlogLogger(logger),
		),
		logger: logger,
	}
}

func encode(msg Message) *message.Message {
	out := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		out.Metadata.Set(k, v)
	}
	out.Metadata.Set(metaKeyPageID, msg.PageID)
	out.Metadata.Set(metaKeyTopic, msg.Topic)
	if out.Metadata.Get(metaKeyPublishedAt) == "" {
		out.Metadata.Set(metaKeyPublishedAt, time.Now().UTC().Format(time.RFC3339Nano))
	}
	return out
}

func decode(in *message.Message) Message {
	msg := Message{
		Topic:    in.Metadata.Get(metaKeyTopic),
		PageID:   in.Metadata.Get(metaKeyPageID),
		Payload:  in.Payload,
		Metadata: make(map[string]string, len(in.Metadata)),
	}
	for k, v := range in.Metadata {
		if k != metaKeyPageID && k != metaKeyTopic {
			msg.Metadata[k] = v
		}
	}
	return msg
}

// Publish sends msg on the watermill topic named by msg.Topic.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	out := encode(msg)
	out.SetContext(ctx)
	return wb.channel.Publish(msg.Topic, out)
}

// Subscribe consumes topic on its own goroutine. A handler error is logged
// and the message is still acked, since gochannel would redeliver a nacked
// message immediately and forever.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	incoming, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for in := range incoming {
			if err := handler(ctx, decode(in)); err != nil {
				wb.logger.Error("Failed to handle event", "topic", topic, "msg_id", in.UUID, "error", err)
			}
			in.Ack()
		}
		wb.logger.Debug("Subscription ended", "topic", topic)
	}()
	return nil
}

// Close stops every subscription.
func (wb *WatermillBridge) Close() error {
	return wb.channel.Close()
}
