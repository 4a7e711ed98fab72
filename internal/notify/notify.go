// Package notify forwards document changes to a message broker so other
// devices or tools can react to them. Publishing is best effort.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/config"
	"github.com/ukydev/trip-planner/internal/store"
)

// Publisher delivers one message to a broker.
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
	Close()
}

// Notifier is a store.Subscriber that publishes every change.
type Notifier struct {
	pub Publisher
}

// NewNotifier wraps pub.
func NewNotifier(pub Publisher) *Notifier {
	return &Notifier{pub: pub}
}

// DocumentChanged publishes change as JSON. Failures are logged only.
func (n *Notifier) DocumentChanged(ctx context.Context, change store.Change) {
	payload, err := json.Marshal(change)
	if err != nil {
		log.WithError(err).Error("Failed to marshal change notice")
		return
	}
	if err := n.pub.Publish(ctx, payload); err != nil {
		log.WithError(err).WithField("reason", change.Reason).Warn("Failed to publish change notice")
		return
	}
	log.WithField("reason", change.Reason).Debug("Change notice published")
}

// Close releases the broker connection.
func (n *Notifier) Close() {
	n.pub.Close()
}

// New connects the publisher selected by cfg.Backend. It returns nil without
// error when notifications are disabled.
func New(ctx context.Context, cfg config.NotifyConfig) (*Notifier, error) {
	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "mqtt":
		pub, err := NewMQTT(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopic)
		if err != nil {
			return nil, err
		}
		return NewNotifier(pub), nil
	case "amqp":
		pub, err := NewAMQP(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			return nil, err
		}
		return NewNotifier(pub), nil
	default:
		return nil, fmt.Errorf("unknown notify backend %q", cfg.Backend)
	}
}
