package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/screencraft/screencraft-studio/internal/config"
)

func TestScriptClient_GenerateFromText(t *testing.T) {
	var gotBody map[string]string
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != scriptTextPath {
			t.Errorf("Expected path %s, got %s", scriptTextPath, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"structured_script":"INT. CAFE - DAY\n..."}`))
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	result, err := scriptClient.GenerateFromText(context.Background(), "John sits at the cafe.", "Noir")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotBody["original_script"] != "John sits at the cafe." {
		t.Errorf("original_script = %q, expected the draft text", gotBody["original_script"])
	}

	if gotBody["genre"] != "Noir" {
		t.Errorf("genre = %q, expected 'Noir'", gotBody["genre"])
	}

	if result.Text() != "INT. CAFE - DAY\n..." {
		t.Errorf("Rendered script = %q, expected the structured script", result.Text())
	}

	if calls != 1 {
		t.Errorf("Expected exactly one request, got %d", calls)
	}
}

func TestScriptClient_BlankGenreFallsBack(t *testing.T) {
	var gotGenre string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotGenre = body["genre"]
		w.Write([]byte(`{"final_script":"FADE IN:"}`))
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	if _, err := scriptClient.GenerateFromText(context.Background(), "A draft.", "   "); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotGenre != config.DefaultGenre {
		t.Errorf("genre = %q, expected fallback %q", gotGenre, config.DefaultGenre)
	}
}

func TestScriptClient_TextErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("draft text is required"))
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	_, err := scriptClient.GenerateFromText(context.Background(), "A draft.", "Noir")
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}

	if err.Error() != "draft text is required" {
		t.Errorf("Error message = %q, expected the server's text body", err.Error())
	}
}

func TestScriptClient_EmptyErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	_, err := scriptClient.GenerateFromText(context.Background(), "A draft.", "Noir")
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}

	if err.Error() != GenericFailureMessage {
		t.Errorf("Error message = %q, expected generic fallback", err.Error())
	}
}

func TestScriptClient_UndecodableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>surprise</html>"))
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	_, err := scriptClient.GenerateFromText(context.Background(), "A draft.", "Noir")
	if err == nil {
		t.Fatal("Expected parse failure to surface as an error")
	}

	if err.Error() != GenericFailureMessage {
		t.Errorf("Error message = %q, expected generic fallback", err.Error())
	}
}

func TestScriptClient_GenerateFromDocument(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "draft.txt")
	if err := os.WriteFile(docPath, []byte("John sits at the cafe."), 0644); err != nil {
		t.Fatalf("Failed to write test document: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != scriptDocumentPath {
			t.Errorf("Expected path %s, got %s", scriptDocumentPath, r.URL.Path)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}

		if genre := r.FormValue("genre"); genre != "Drama" {
			t.Errorf("genre field = %q, expected 'Drama'", genre)
		}

		file, header, err := r.FormFile(fileFieldName)
		if err != nil {
			t.Fatalf("Missing file part: %v", err)
		}
		defer file.Close()

		if header.Filename != "draft.txt" {
			t.Errorf("Uploaded filename = %q, expected 'draft.txt'", header.Filename)
		}

		w.Write([]byte(`{"structured_script":"INT. CAFE - DAY"}`))
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	result, err := scriptClient.GenerateFromDocument(context.Background(), docPath, "Drama")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Text() != "INT. CAFE - DAY" {
		t.Errorf("Rendered script = %q, expected structured script", result.Text())
	}
}

func TestScriptClient_DocumentDetailError(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "draft.txt")
	if err := os.WriteFile(docPath, []byte("text"), 0644); err != nil {
		t.Fatalf("Failed to write test document: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"unsupported document format"}`))
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	_, err := scriptClient.GenerateFromDocument(context.Background(), docPath, "Drama")
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}

	if err.Error() != "unsupported document format" {
		t.Errorf("Error message = %q, expected the detail field", err.Error())
	}
}

func TestScriptClient_MissingDocument(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	scriptClient := NewScriptClient(server.URL)
	_, err := scriptClient.GenerateFromDocument(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), "Drama")
	if err == nil {
		t.Fatal("Expected error for missing upload file")
	}

	if calls != 0 {
		t.Errorf("Expected no network call for a missing file, got %d", calls)
	}
}
