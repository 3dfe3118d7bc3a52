package eventbus

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	nc "github.com/nats-io/nats.go"
)

// DefaultStream holds every tournament subject when JetStream is enabled.
const DefaultStream = "anleague"

// DefaultSubjects are captured by DefaultStream.
var DefaultSubjects = []string{"tournament.>"}

// StreamCreator provisions the JetStream stream backing the bus.
type StreamCreator struct {
	logger *slog.Logger
	conn   *nc.Conn
	js     nc.JetStreamContext
}

// NewStreamCreator connects to NATS and opens a JetStream context.
func NewStreamCreator(natsURL string, logger *slog.Logger) (*StreamCreator, error) {
	conn, err := nc.Connect(natsURL,
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30*time.Second),
		nc.ReconnectWait(1*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &StreamCreator{logger: logger, conn: conn, js: js}, nil
}

// CreateStream creates streamName over subjects unless it already exists.
func (sc *StreamCreator) CreateStream(streamName string, subjects []string) error {
	if !isValidStreamName(streamName) {
		return fmt.Errorf("invalid stream name: %s", streamName)
	}

	info, err := sc.js.StreamInfo(streamName)
	if err != nil && !errors.Is(err, nc.ErrStreamNotFound) {
		return fmt.Errorf("failed to get stream info: %w", err)
	}
	if info != nil {
		sc.logger.Info("Stream already exists", attr.String("stream", streamName))
		return nil
	}

	if _, err := sc.js.AddStream(&nc.StreamConfig{
		Name:     streamName,
		Subjects: subjects,
	}); err != nil {
		return fmt.Errorf("failed to add stream: %w", err)
	}

	sc.logger.Info("Stream created", attr.String("stream", streamName), attr.Any("subjects", subjects))
	return nil
}

// Close closes the NATS connection.
func (sc *StreamCreator) Close() {
	sc.conn.Close()
}

// isValidStreamName accepts alphanumerics, hyphens and underscores, not
// starting or ending with a hyphen.
func isValidStreamName(name string) bool {
	for _, r := range name {
		if !isValidRune(r) {
			return false
		}
	}
	return name != "" && name[0] != '-' && name[len(name)-1] != '-'
}

func isValidRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}
