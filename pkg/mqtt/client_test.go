package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_Validation(t *testing.T) {
	_, err := Connect(Config{})
	assert.ErrorIs(t, err, ErrMissingHost)

	_, err = Connect(Config{Host: "127.0.0.1", Port: 1883, QoS: 3})
	assert.ErrorIs(t, err, ErrInvalidQoS)
}

func TestConnect_RefusedBroker(t *testing.T) {
	// nothing listens on port 1 on the loopback interface
	_, err := Connect(Config{Host: "127.0.0.1", Port: 1, ClientID: "ha-ai-bridge-test"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnectionFailed))
}

func TestPublish_Validation(t *testing.T) {
	c := &Client{cfg: Config{QoS: 1}}
	ctx := context.Background()

	assert.ErrorIs(t, c.Publish(ctx, "", []byte("x"), 1, false), ErrInvalidTopic)
	assert.ErrorIs(t, c.Publish(ctx, "t", []byte("x"), 3, false), ErrInvalidQoS)
	assert.ErrorIs(t, c.Publish(ctx, "t", make([]byte, maxPayloadSize+1), 1, false), ErrPublishFailed)
	assert.ErrorIs(t, c.Publish(ctx, "t", []byte("x"), 1, false), ErrNotConnected)
	assert.ErrorIs(t, c.HealthCheck(ctx), ErrNotConnected)
	assert.NoError(t, c.Close())
}

// stalledToken is never acknowledged.
type stalledToken struct {
	pahomqtt.Token
	done chan struct{}
}

func (t stalledToken) Done() <-chan struct{} { return t.done }
func (t stalledToken) Error() error          { return nil }

// stalledBroker accepts publishes but never acknowledges them.
type stalledBroker struct {
	pahomqtt.Client
	done chan struct{}
}

func (b stalledBroker) IsConnected() bool { return true }

func (b stalledBroker) Publish(string, byte, bool, interface{}) pahomqtt.Token {
	return stalledToken{done: b.done}
}

func TestPublish_UnacknowledgedTimesOut(t *testing.T) {
	broker := stalledBroker{done: make(chan struct{})}
	c := &Client{
		client:    broker,
		cfg:       Config{QoS: 1, PublishTimeout: 30 * time.Millisecond},
		connected: true,
	}

	start := time.Now()
	err := c.Publish(context.Background(), "ha-ai-bridge/commands", []byte("{}"), 1, false)
	assert.ErrorIs(t, err, ErrPublishFailed)
	assert.Less(t, time.Since(start), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = c.Publish(ctx, "ha-ai-bridge/commands", []byte("{}"), 1, false)
	assert.ErrorIs(t, err, ErrPublishFailed)
	assert.ErrorIs(t, err, context.Canceled)

	close(broker.done)
	assert.NoError(t, c.Publish(context.Background(), "ha-ai-bridge/commands", []byte("{}"), 1, false))
}

func TestBuildClientOptions(t *testing.T) {
	opts := buildClientOptions(Config{
		Host:        "broker.local",
		Port:        8883,
		TLS:         true,
		ClientID:    "bridge",
		Username:    "u",
		Password:    "p",
		StatusTopic: "ha-ai-bridge/status",
	})

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "ssl://broker.local:8883", opts.Servers[0].String())
	assert.Equal(t, "bridge", opts.ClientID)
	assert.Equal(t, "u", opts.Username)
	assert.True(t, opts.CleanSession)
	assert.True(t, opts.AutoReconnect)
	require.NotNil(t, opts.TLSConfig)
	assert.True(t, opts.WillEnabled)
	assert.Equal(t, "ha-ai-bridge/status", opts.WillTopic)
	assert.True(t, opts.WillRetained)

	plain := buildClientOptions(Config{Host: "h", Port: 1883})
	assert.Equal(t, "tcp://h:1883", plain.Servers[0].String())
	assert.False(t, plain.WillEnabled)
}

func TestStatusPayload(t *testing.T) {
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(statusPayload("bridge", "offline", "graceful_shutdown")), &got))
	assert.Equal(t, "offline", got["status"])
	assert.Equal(t, "bridge", got["client_id"])
	assert.Equal(t, "graceful_shutdown", got["reason"])
	assert.NotEmpty(t, got["timestamp"])

	got = nil
	require.NoError(t, json.Unmarshal([]byte(statusPayload("bridge", "online", "")), &got))
	_, hasReason := got["reason"]
	assert.False(t, hasReason)
}
