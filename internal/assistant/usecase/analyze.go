package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/intent"
	"ha-ai-bridge/internal/model"
)

// AnalyzeImage analyses the supplied image, or a fresh camera snapshot of the entity.
func (uc *implUseCase) AnalyzeImage(ctx context.Context, sc model.Scope, input assistant.AnalyzeInput) (assistant.AnalyzeOutput, error) {
	entityID := strings.TrimSpace(input.EntityID)
	prompt := strings.TrimSpace(input.Prompt)
	if entityID == "" || prompt == "" {
		return assistant.AnalyzeOutput{}, fmt.Errorf("%w: entity_id and prompt are required", assistant.ErrMissingField)
	}
	if !uc.cfg.Features.ImageRecognition {
		return assistant.AnalyzeOutput{}, fmt.Errorf("%w: image recognition", assistant.ErrFeatureDisabled)
	}

	img, err := uc.resolveImage(ctx, entityID, input)
	if err != nil {
		return assistant.AnalyzeOutput{}, err
	}

	analysis, err := uc.intents.AnalyzeImage(ctx, entityID, prompt, img)
	if err != nil {
		return assistant.AnalyzeOutput{}, fmt.Errorf("analyze image: %w", err)
	}

	now := uc.now()
	uc.conversations.Append(sc.SessionID,
		conversation.Turn{Role: conversation.RoleUser, Text: fmt.Sprintf("[image %s] %s", entityID, prompt), Timestamp: now},
		conversation.Turn{Role: conversation.RoleAssistant, Text: analysis, Timestamp: now},
	)

	return assistant.AnalyzeOutput{EntityID: entityID, Prompt: prompt, Analysis: analysis}, nil
}

func (uc *implUseCase) resolveImage(ctx context.Context, entityID string, input assistant.AnalyzeInput) (intent.Image, error) {
	if len(input.Image) > 0 {
		mimeType := input.MIMEType
		if mimeType == "" {
			mimeType = http.DetectContentType(input.Image)
		}
		if !strings.HasPrefix(mimeType, "image/") {
			return intent.Image{}, fmt.Errorf("%w: unsupported content type %s", assistant.ErrInvalidImage, mimeType)
		}
		return intent.Image{Data: input.Image, MIMEType: mimeType}, nil
	}

	if uc.cameras == nil {
		return intent.Image{}, fmt.Errorf("%w: image_base64 is required", assistant.ErrMissingField)
	}
	snap, err := uc.cameras.CameraSnapshot(ctx, entityID)
	if err != nil {
		return intent.Image{}, fmt.Errorf("camera snapshot: %w", err)
	}
	return intent.Image{Data: snap.Data, MIMEType: snap.MIMEType}, nil
}
