package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"ha-ai-bridge/pkg/gemini"
	"ha-ai-bridge/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:     convertToGeminiContents(req.Messages),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		JSONResponse: req.JSONResponse,
	}
	if req.SystemInstruction != nil {
		sys := convertToGeminiContent(*req.SystemInstruction)
		geminiReq.SystemInstruction = &sys
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		if errors.Is(err, gemini.ErrDecodeResponse) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg Message) gemini.Content {
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.InlineData != nil {
			parts[i].InlineData = &gemini.Blob{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data}
		}
	}
	return gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = convertToGeminiContent(msg)
	}
	return contents
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// The same adapter serves every OpenAI-compatible vendor; name tells them apart in logs.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter for an OpenAI-compatible client
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    make([]openai.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONResponse {
		oaReq.ResponseFormat = &openai.ResponseFormat{Type: "json_object"}
	}

	// System instruction goes first as a system message
	if req.SystemInstruction != nil {
		oaReq.Messages = append(oaReq.Messages, convertToOpenAIMessage(*req.SystemInstruction, "system"))
	}
	for _, msg := range req.Messages {
		oaReq.Messages = append(oaReq.Messages, convertToOpenAIMessage(msg, msg.Role))
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		if errors.Is(err, openai.ErrDecodeResponse) {
			return nil, fmt.Errorf("%s: %w: %w", a.name, ErrMalformedResponse, err)
		}
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: resp.Choices[0].Message.Content})
	}
	return out, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// convertToOpenAIMessage keeps plain-text messages as strings and switches to
// multi-part content only when an image is attached.
func convertToOpenAIMessage(msg Message, role string) openai.Message {
	if role == "model" {
		role = "assistant"
	}

	hasImage := false
	for _, p := range msg.Parts {
		if p.InlineData != nil {
			hasImage = true
			break
		}
	}

	if !hasImage {
		text := ""
		for _, p := range msg.Parts {
			text += p.Text
		}
		return openai.Message{Role: role, Content: text}
	}

	parts := make([]openai.ContentPart, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		if p.InlineData != nil {
			parts = append(parts, openai.ImagePart(p.InlineData.MIMEType, p.InlineData.Data))
			continue
		}
		if p.Text != "" {
			parts = append(parts, openai.TextPart(p.Text))
		}
	}
	return openai.Message{Role: role, Content: parts}
}
