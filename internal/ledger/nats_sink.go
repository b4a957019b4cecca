package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"doblink/internal/logger"
)

// NatsPublisher is the subset of *nats.Conn used by NatsSink.
type NatsPublisher interface {
	Publish(subj string, data []byte) error
}

// NatsSink publishes each event on <prefix>.<topic>.
type NatsSink struct {
	conn   NatsPublisher
	prefix string
}

// NewNatsSink creates a NatsSink on an existing connection.
func NewNatsSink(conn NatsPublisher, prefix string) *NatsSink {
	return &NatsSink{conn: conn, prefix: prefix}
}

// ConnectNats dials the NATS server with reconnect handling suitable for a
// long-running service.
func ConnectNats(url string) (*nats.Conn, error) {
	log := logger.Get()
	nc, err := nats.Connect(url,
		nats.Name("doblink-registry"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warnw("disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infow("reconnected to NATS", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

func (s *NatsSink) subject(topic string) string {
	return s.prefix + "." + strings.ToLower(topic)
}

func (s *NatsSink) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Topic, err)
	}
	if err := s.conn.Publish(s.subject(event.Topic), data); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Topic, err)
	}
	return nil
}
