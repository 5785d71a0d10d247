package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// ErrNotConnected is returned when the NATS connection is down.
var ErrNotConnected = errors.New("nats: not connected")

// NATSConfig - connection settings for NATSPublisher.
type NATSConfig struct {
	URL           string
	Name          string
	SubjectPrefix string
	Timeout       time.Duration
	MaxReconnects int
	ReconnectWait time.Duration
}

// NATSPublisher publishes events as core NATS messages. The event ID is set
// as Nats-Msg-Id so a JetStream stream on the subject can deduplicate.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

// NewNATSPublisher connects to cfg.URL. The connection reconnects on its own
// afterwards; only the first dial has to succeed.
func NewNATSPublisher(cfg NATSConfig, logger *slog.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.Timeout(cfg.Timeout),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", cfg.URL, err)
	}

	logger.Info("connected to nats",
		slog.String("url", conn.ConnectedUrl()),
		slog.String("subject_prefix", cfg.SubjectPrefix),
	)

	return &NATSPublisher{
		conn:   conn,
		prefix: cfg.SubjectPrefix,
		logger: logger,
	}, nil
}

// Publish implements ports.EventPublisher.
func (p *NATSPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.conn.IsConnected() && !p.conn.IsReconnecting() {
		return ErrNotConnected
	}

	data, err := Encode(event)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(Subject(p.prefix, event))
	msg.Header.Set(nats.MsgIdHdr, event.EventID().String())
	msg.Header.Set("Content-Type", "application/json")
	msg.Data = data

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", msg.Subject, err)
	}
	return nil
}

// Ping round-trips to the server.
func (p *NATSPublisher) Ping(ctx context.Context) error {
	if !p.conn.IsConnected() {
		return ErrNotConnected
	}
	return p.conn.FlushWithContext(ctx)
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if p.conn.IsClosed() {
		return nil
	}
	return p.conn.Drain()
}
