package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/assistant"
	pkgLog "ha-ai-bridge/pkg/log"
)

const (
	commandResultTopic = "command/result"
	defaultPrefix      = "ha-ai-bridge"
)

// Broker is the subset of the MQTT client used for publishing.
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte, qos byte, retained bool) error
	QoS() byte
}

// commandResultEvent is the JSON body published for every completed command.
type commandResultEvent struct {
	Command   string           `json:"command"`
	SessionID string           `json:"session_id"`
	Reply     string           `json:"reply,omitempty"`
	Results   []action.Outcome `json:"results"`
	Failed    int              `json:"failed"`
	Timestamp string           `json:"timestamp"`
}

type mqttPublisher struct {
	l      pkgLog.Logger
	broker Broker
	prefix string
}

// NewMQTTPublisher publishes command results to <prefix>/command/result.
func NewMQTTPublisher(l pkgLog.Logger, broker Broker, prefix string) assistant.ResultPublisher {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &mqttPublisher{l: l, broker: broker, prefix: prefix}
}

func (p *mqttPublisher) PublishCommandResult(ctx context.Context, result assistant.CommandResult) error {
	failed := 0
	for _, o := range result.Outcomes {
		if !o.Success {
			failed++
		}
	}
	results := result.Outcomes
	if results == nil {
		results = []action.Outcome{}
	}

	payload, err := json.Marshal(commandResultEvent{
		Command:   result.Command,
		SessionID: result.SessionID,
		Reply:     result.Reply,
		Results:   results,
		Failed:    failed,
		Timestamp: result.Timestamp.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal command result: %w", err)
	}

	topic := p.prefix + "/" + commandResultTopic
	if err := p.broker.Publish(ctx, topic, payload, p.broker.QoS(), false); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	p.l.Debugf(ctx, "events.Publish: %s (%d bytes)", topic, len(payload))
	return nil
}

type nopPublisher struct{}

// NewNop returns a publisher that drops every result.
func NewNop() assistant.ResultPublisher { return nopPublisher{} }

func (nopPublisher) PublishCommandResult(context.Context, assistant.CommandResult) error { return nil }
