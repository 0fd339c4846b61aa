package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeClip(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("fake video bytes"), 0644); err != nil {
		t.Fatalf("Failed to write test clip: %v", err)
	}
	return path
}

func TestEmotionClient_Analyze(t *testing.T) {
	dir := t.TempDir()
	clipPath := writeClip(t, dir)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != emotionAnalyzePath {
			t.Errorf("Expected path %s, got %s", emotionAnalyzePath, r.URL.Path)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}

		if emotion := r.FormValue("user_emotion"); emotion != "Joy" {
			t.Errorf("user_emotion field = %q, expected 'Joy'", emotion)
		}

		file, header, err := r.FormFile(fileFieldName)
		if err != nil {
			t.Fatalf("Missing file part: %v", err)
		}
		defer file.Close()

		if header.Filename != "clip.mp4" {
			t.Errorf("Uploaded filename = %q, expected 'clip.mp4'", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predicted_emotion":"Joy","confidence":0.87,"match":true}`))
	}))
	defer server.Close()

	emotionClient := NewEmotionClient(server.URL)
	result, err := emotionClient.Analyze(context.Background(), clipPath, "Joy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.PredictedEmotion != "Joy" {
		t.Errorf("Predicted emotion = %q, expected 'Joy'", result.PredictedEmotion)
	}

	if result.ConfidencePercent() != "87%" {
		t.Errorf("Confidence display = %q, expected '87%%'", result.ConfidencePercent())
	}

	if !result.Match {
		t.Error("Expected match to be true")
	}

	if calls != 1 {
		t.Errorf("Expected exactly one request, got %d", calls)
	}
}

func TestEmotionClient_DetailError(t *testing.T) {
	dir := t.TempDir()
	clipPath := writeClip(t, dir)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"video could not be processed"}`))
	}))
	defer server.Close()

	emotionClient := NewEmotionClient(server.URL)
	_, err := emotionClient.Analyze(context.Background(), clipPath, "Joy")
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}

	if err.Error() != "video could not be processed" {
		t.Errorf("Error message = %q, expected the detail field", err.Error())
	}
}

func TestEmotionClient_UnparseableErrorFallsBack(t *testing.T) {
	dir := t.TempDir()
	clipPath := writeClip(t, dir)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	emotionClient := NewEmotionClient(server.URL)
	_, err := emotionClient.Analyze(context.Background(), clipPath, "Joy")
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}

	if err.Error() != GenericFailureMessage {
		t.Errorf("Error message = %q, expected generic fallback", err.Error())
	}
}

func TestEmotionClient_TransportFailure(t *testing.T) {
	dir := t.TempDir()
	clipPath := writeClip(t, dir)

	// Closed server: the request itself fails
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	emotionClient := NewEmotionClient(server.URL)
	if _, err := emotionClient.Analyze(context.Background(), clipPath, "Joy"); err == nil {
		t.Fatal("Expected transport failure to surface as an error")
	}
}
