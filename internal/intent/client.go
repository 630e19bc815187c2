package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/pkg/llmprovider"
	"ha-ai-bridge/pkg/log"
)

type client struct {
	gen     llmprovider.Generator
	l       log.Logger
	timeout time.Duration
	limiter *rate.Limiter
	schemas schemas
}

// InterpretCommand asks for the actions implied by an utterance.
func (c *client) InterpretCommand(ctx context.Context, in InterpretInput) (Interpretation, error) {
	messages := historyMessages(in.History)
	messages = append(messages, llmprovider.UserText(renderDevices(in.Devices)+"\nCommand: "+in.Utterance))

	text, err := c.generate(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemText(promptInterpretSystem),
		Messages:          messages,
		Temperature:       interpretTemperature,
		JSONResponse:      true,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", logPrefixInterpret, err)
		return Interpretation{}, err
	}

	var payload interpretationPayload
	if err := decodeValidated(text, c.schemas.interpretation, &payload); err != nil {
		c.l.Warnf(ctx, "%s: %v", logPrefixInterpret, err)
		return Interpretation{}, err
	}

	out := Interpretation{Actions: payload.Actions, Reply: payload.Reply}
	if out.Actions == nil {
		out.Actions = []action.Intent{}
	}
	c.l.Infof(ctx, "%s: %d action(s)", logPrefixInterpret, len(out.Actions))
	return out, nil
}

// Converse returns a free-text reply.
func (c *client) Converse(ctx context.Context, utterance string, history []conversation.Turn) (string, error) {
	messages := historyMessages(history)
	messages = append(messages, llmprovider.UserText(utterance))

	text, err := c.generate(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemText(promptConverseSystem),
		Messages:          messages,
		Temperature:       converseTemperature,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", logPrefixConverse, err)
		return "", err
	}
	return text, nil
}

// AnalyzeImage returns a free-text analysis of one image.
func (c *client) AnalyzeImage(ctx context.Context, entityID, prompt string, img Image) (string, error) {
	if len(img.Data) == 0 {
		return "", ErrEmptyImage
	}
	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	text, err := c.generate(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemText(promptAnalyzeSystem),
		Messages: []llmprovider.Message{{
			Role: "user",
			Parts: []llmprovider.Part{
				{Text: fmt.Sprintf(promptAnalyzeTemplate, entityID, prompt)},
				{InlineData: &llmprovider.Blob{MIMEType: mimeType, Data: img.Data}},
			},
		}},
		Temperature: analyzeTemperature,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", logPrefixAnalyze, err)
		return "", err
	}
	return text, nil
}

// SuggestAutomation asks for an automation and renders it as YAML.
func (c *client) SuggestAutomation(ctx context.Context, trigger, actionDesc string) (Suggestion, error) {
	text, err := c.generate(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemText(promptSuggestSystem),
		Messages:          []llmprovider.Message{llmprovider.UserText(fmt.Sprintf(promptSuggestTemplate, trigger, actionDesc))},
		Temperature:       suggestTemperature,
		JSONResponse:      true,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", logPrefixSuggest, err)
		return Suggestion{}, err
	}

	var payload suggestionPayload
	if err := decodeValidated(text, c.schemas.suggestion, &payload); err != nil {
		c.l.Warnf(ctx, "%s: %v", logPrefixSuggest, err)
		return Suggestion{}, err
	}

	s := Suggestion{
		Name:        payload.Name,
		Description: payload.Description,
		Trigger:     payload.Trigger,
		Conditions:  payload.Condition,
		Actions:     payload.Action,
	}
	if s.AutomationYAML, err = renderAutomationYAML(s); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
	}
	return s, nil
}

// generate paces, bounds and classifies one upstream call.
func (c *client) generate(ctx context.Context, req *llmprovider.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limit wait: %v", ErrUpstreamUnavailable, err)
		}
	}

	resp, err := c.gen.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(err, llmprovider.ErrMalformedResponse) {
			return "", fmt.Errorf("%w: %w", ErrUpstreamMalformed, err)
		}
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	text, err := resp.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamMalformed, err)
	}
	return text, nil
}

func historyMessages(history []conversation.Turn) []llmprovider.Message {
	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, t := range history {
		role := "user"
		if t.Role == conversation.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, llmprovider.Message{Role: role, Parts: []llmprovider.Part{{Text: t.Text}}})
	}
	return messages
}

func renderAutomationYAML(s Suggestion) (string, error) {
	doc := automationDoc{
		Alias:       s.Name,
		Description: s.Description,
		Mode:        "single",
		Trigger:     s.Trigger,
		Condition:   s.Conditions,
		Action:      s.Actions,
	}
	if doc.Condition == nil {
		doc.Condition = []map[string]any{}
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\n") + "\n", nil
}
