package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/screencraft/screencraft-studio/internal/model"
)

// Emotion analysis endpoint
const (
	emotionAnalyzePath = "/analyze_emotion"
)

// EmotionClient talks to the remote emotion classification service
type EmotionClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewEmotionClient creates a client for the service at baseURL
func NewEmotionClient(baseURL string) *EmotionClient {
	return &EmotionClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Analyze uploads the video at path together with the user's intended
// emotion label and returns the prediction
func (c *EmotionClient) Analyze(ctx context.Context, path, userEmotion string) (*model.EmotionResult, error) {
	fields := map[string]string{
		"user_emotion": userEmotion,
	}

	resp, err := postFile(ctx, c.httpClient, c.baseURL+emotionAnalyzePath, path, fields)
	if err != nil {
		return nil, fmt.Errorf("emotion analysis request failed: %w", err)
	}

	if !isSuccess(resp) {
		return nil, detailErrorMessage(resp)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}

	result, err := model.DecodeEmotionResult(body)
	if err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}
	return result, nil
}
