// Package eventbus provides the watermill publisher/subscriber pair used to
// carry domain events between modules, backed by NATS or by an in-process
// channel when no broker is configured.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

// EventBus publishes and subscribes to topics.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

// Config selects and configures the transport.
type Config struct {
	// URL of the NATS server. Empty selects the in-process transport.
	URL string
	// JetStream enables persisted streams on the NATS transport.
	JetStream  bool
	QueueGroup string
	// Stream and Subjects describe the JetStream stream to provision.
	// Empty values use DefaultStream and DefaultSubjects.
	Stream   string
	Subjects []string
}

type natsBus struct {
	publisher  *nats.Publisher
	subscriber *nats.Subscriber
	logger     *slog.Logger
}

// New returns a NATS-backed bus when cfg.URL is set, otherwise an in-process bus.
func New(cfg Config, logger *slog.Logger) (EventBus, error) {
	if cfg.URL == "" {
		logger.Info("No NATS URL configured, using in-process event bus")
		return NewInMemory(logger), nil
	}
	return NewNATS(cfg, logger)
}

// NewNATS connects a watermill publisher and subscriber to NATS.
func NewNATS(cfg Config, logger *slog.Logger) (EventBus, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
		nc.ErrorHandler(func(_ *nc.Conn, s *nc.Subscription, err error) {
			if s != nil {
				logger.Error("Error in NATS subscription", attr.String("subject", s.Subject), attr.Error(err))
				return
			}
			logger.Error("Error in NATS connection", attr.Error(err))
		}),
	}

	if cfg.JetStream {
		if err := provisionStream(cfg, logger); err != nil {
			return nil, err
		}
	}

	jsConfig := nats.JetStreamConfig{
		Disabled:      !cfg.JetStream,
		AutoProvision: false,
		DurablePrefix: cfg.QueueGroup,
	}

	publisher, err := nats.NewPublisher(nats.PublisherConfig{
		URL:               cfg.URL,
		NatsOptions:       options,
		Marshaler:         &nats.NATSMarshaler{},
		JetStream:         jsConfig,
		SubjectCalculator: nats.DefaultSubjectCalculator,
	}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(nats.SubscriberConfig{
		URL:               cfg.URL,
		QueueGroupPrefix:  cfg.QueueGroup,
		SubscribersCount:  1,
		AckWaitTimeout:    30 * time.Second,
		CloseTimeout:      30 * time.Second,
		NatsOptions:       options,
		Unmarshaler:       &nats.NATSMarshaler{},
		JetStream:         jsConfig,
		SubjectCalculator: nats.DefaultSubjectCalculator,
	}, wmLogger)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	logger.Info("Connected event bus to NATS", attr.String("url", cfg.URL), attr.Bool("jetstream", cfg.JetStream))

	return &natsBus{publisher: publisher, subscriber: subscriber, logger: logger}, nil
}

func provisionStream(cfg Config, logger *slog.Logger) error {
	stream, subjects := cfg.Stream, cfg.Subjects
	if stream == "" {
		stream = DefaultStream
	}
	if len(subjects) == 0 {
		subjects = DefaultSubjects
	}

	sc, err := NewStreamCreator(cfg.URL, logger)
	if err != nil {
		return err
	}
	defer sc.Close()
	return sc.CreateStream(stream, subjects)
}

func (b *natsBus) Publish(topic string, messages ...*message.Message) error {
	return b.publisher.Publish(topic, messages...)
}

func (b *natsBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

func (b *natsBus) Close() error {
	var firstErr error
	if err := b.subscriber.Close(); err != nil {
		firstErr = fmt.Errorf("failed to close subscriber: %w", err)
	}
	if err := b.publisher.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close publisher: %w", err)
	}
	return firstErr
}

// NewInMemory returns a bus that delivers messages within the process.
func NewInMemory(logger *slog.Logger) EventBus {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            64,
		BlockPublishUntilSubscriberAck: false,
	}, watermill.NewSlogLogger(logger))
}

// NewMessage encodes payload as JSON and stamps the correlation ID from ctx.
func NewMessage(ctx context.Context, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	correlationID := attr.CorrelationID(ctx)
	if correlationID == "" {
		correlationID = watermill.NewUUID()
	}
	msg.Metadata.Set("correlation_id", correlationID)
	msg.SetContext(ctx)
	return msg, nil
}

// Publish encodes payload and publishes it on topic.
func Publish(ctx context.Context, pub message.Publisher, topic string, payload any) error {
	msg, err := NewMessage(ctx, payload)
	if err != nil {
		return err
	}
	msg.Metadata.Set("topic", topic)
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Decode unmarshals a JSON message payload into T.
func Decode[T any](msg *message.Message) (*T, error) {
	payload := new(T)
	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return payload, nil
}

// ContextFromMessage returns the message context carrying its correlation ID.
func ContextFromMessage(msg *message.Message) context.Context {
	return attr.WithCorrelationID(msg.Context(), msg.Metadata.Get("correlation_id"))
}
