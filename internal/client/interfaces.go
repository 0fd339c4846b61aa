package client

import (
	"context"

	"github.com/screencraft/screencraft-studio/internal/model"
)

// ScriptGenerator defines the interface for the screenplay generation service.
type ScriptGenerator interface {
	GenerateFromText(ctx context.Context, draftText, genre string) (*model.ScriptResult, error)
	GenerateFromDocument(ctx context.Context, path, genre string) (*model.ScriptResult, error)
}

// EmotionAnalyzer defines the interface for the emotion analysis service.
type EmotionAnalyzer interface {
	Analyze(ctx context.Context, path, userEmotion string) (*model.EmotionResult, error)
}
