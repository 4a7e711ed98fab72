package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const mqttTimeout = 5 * time.Second

// MQTT publishes to a topic with QoS 1.
type MQTT struct {
	client mqtt.Client
	topic  string
}

// NewMQTT connects to broker.
func NewMQTT(broker, clientID, topic string) (*MQTT, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(mqttTimeout).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(mqttTimeout) {
		return nil, fmt.Errorf("connect to mqtt broker %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to mqtt broker %s: %w", broker, err)
	}
	return &MQTT{client: client, topic: topic}, nil
}

// Publish sends payload to the configured topic.
func (m *MQTT) Publish(ctx context.Context, payload []byte) error {
	token := m.client.Publish(m.topic, 1, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(mqttTimeout):
		return errors.New("mqtt publish timed out")
	}
	return token.Error()
}

// Close disconnects, giving in-flight messages 250ms.
func (m *MQTT) Close() {
	m.client.Disconnect(250)
}
