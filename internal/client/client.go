package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// GenericFailureMessage is surfaced when the server gives no usable error
const GenericFailureMessage = "The service request failed. Please try again."

// Multipart field names expected by both services
const (
	fileFieldName = "file"
)

// postJSON issues a single JSON POST and returns the raw response
func postJSON(ctx context.Context, httpClient *http.Client, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return httpClient.Do(req)
}

// postFile issues a single multipart POST carrying the file at path plus the
// given form fields, and returns the raw response
func postFile(ctx context.Context, httpClient *http.Client, url, path string, fields map[string]string) (*http.Response, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(fileFieldName, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to write upload body: %w", err)
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return httpClient.Do(req)
}

// readBody drains and closes the response body
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// textErrorMessage turns a non-2xx response into an error carrying the plain
// text body, falling back to the generic message when the body is empty
func textErrorMessage(resp *http.Response) error {
	body, err := readBody(resp)
	message := strings.TrimSpace(string(body))
	if err != nil || message == "" {
		message = GenericFailureMessage
	}
	return fmt.Errorf("%s", message)
}

// detailErrorMessage turns a non-2xx response into an error carrying the
// JSON detail field, falling back to the generic message when the body is
// absent or unparseable
func detailErrorMessage(resp *http.Response) error {
	body, err := readBody(resp)
	if err == nil && len(body) > 0 {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			return fmt.Errorf("%s", payload.Detail)
		}
	}
	return fmt.Errorf("%s", GenericFailureMessage)
}

// isSuccess reports whether the response carries a 2xx status
func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
