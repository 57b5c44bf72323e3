package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/katsuchip/functions/internal/model"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	PaymentUpdatedSubject = "order.payment.updated"

	connectAttempts = 3
	connectDelay    = 2 * time.Second
	flushTimeout    = 2 * time.Second
)

type conn interface {
	Publish(subject string, data []byte) error
	FlushTimeout(timeout time.Duration) error
	Close()
}

type Publisher struct {
	nc conn
	lg *zap.SugaredLogger
}

func NewNatsPublisher(url string, lg *zap.SugaredLogger) (*Publisher, error) {
	var err error

	for i := 0; i < connectAttempts; i++ {
		var nc *nats.Conn
		nc, err = nats.Connect(url,
			nats.Name("KatsuChip Functions"),
			nats.MaxReconnects(5),
			nats.ReconnectWait(connectDelay),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				lg.Warnw("NATS disconnected", "error", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				lg.Infow("NATS reconnected", "url", nc.ConnectedUrl())
			}),
		)
		if err == nil {
			lg.Infow("connected to NATS", "url", url)
			return &Publisher{nc: nc, lg: lg}, nil
		}

		lg.Warnw("failed to connect to NATS", "attempt", i+1, "error", err)
		if i < connectAttempts-1 {
			time.Sleep(connectDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts: %w", connectAttempts, err)
}

func (p *Publisher) PublishPaymentUpdated(ctx context.Context, event model.PaymentEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.nc.Publish(PaymentUpdatedSubject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	if err := p.nc.FlushTimeout(flushTimeout); err != nil {
		return fmt.Errorf("failed to flush NATS connection: %w", err)
	}

	return nil
}

func (p *Publisher) Close() {
	p.nc.Close()
	p.lg.Info("NATS connection closed")
}
