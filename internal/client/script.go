package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/screencraft/screencraft-studio/internal/config"
	"github.com/screencraft/screencraft-studio/internal/model"
)

// Script generation endpoints
const (
	scriptTextPath     = "/generate_script"
	scriptDocumentPath = "/generate_script_file"
)

// scriptTextRequest is the JSON body for text-based generation
type scriptTextRequest struct {
	OriginalScript string `json:"original_script"`
	Genre          string `json:"genre"`
}

// ScriptClient talks to the remote screenplay generation service
type ScriptClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewScriptClient creates a client for the service at baseURL
func NewScriptClient(baseURL string) *ScriptClient {
	return &ScriptClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// GenerateFromText submits draft text and returns the structured script.
// A blank genre is replaced by the fixed fallback label before encoding.
func (c *ScriptClient) GenerateFromText(ctx context.Context, draftText, genre string) (*model.ScriptResult, error) {
	payload := scriptTextRequest{
		OriginalScript: draftText,
		Genre:          normalizeGenre(genre),
	}

	resp, err := postJSON(ctx, c.httpClient, c.baseURL+scriptTextPath, payload)
	if err != nil {
		return nil, fmt.Errorf("script generation request failed: %w", err)
	}

	if !isSuccess(resp) {
		return nil, textErrorMessage(resp)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}

	result, err := model.DecodeScriptResult(body)
	if err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}
	return result, nil
}

// GenerateFromDocument uploads a draft document plus the genre field and
// returns the structured script
func (c *ScriptClient) GenerateFromDocument(ctx context.Context, path, genre string) (*model.ScriptResult, error) {
	fields := map[string]string{
		"genre": normalizeGenre(genre),
	}

	resp, err := postFile(ctx, c.httpClient, c.baseURL+scriptDocumentPath, path, fields)
	if err != nil {
		return nil, fmt.Errorf("script upload request failed: %w", err)
	}

	if !isSuccess(resp) {
		return nil, detailErrorMessage(resp)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}

	result, err := model.DecodeScriptResult(body)
	if err != nil {
		return nil, fmt.Errorf("%s", GenericFailureMessage)
	}
	return result, nil
}

// normalizeGenre replaces a blank genre with the fixed fallback label
func normalizeGenre(genre string) string {
	if strings.TrimSpace(genre) == "" {
		return config.DefaultGenre
	}
	return genre
}
