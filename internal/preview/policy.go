package preview

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/screencraft/screencraft-studio/internal/platform"
)

// Policy validates a candidate file before it is staged. A non-nil error
// rejects the selection without touching controller state.
type Policy func(path string, size int64, mimeType string) error

// MIME prefixes and types accepted by the built-in policies
const (
	videoMIMEPrefix = "video/"

	mimePlainText  = "text/plain"
	mimePDF        = "application/pdf"
	mimeWordLegacy = "application/msword"
	mimeWordModern = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DetectMIME sniffs the media type from file contents, falling back to
// application/octet-stream when the file cannot be read.
func DetectMIME(path string) string {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	return detected.String()
}

// VideoPolicy accepts video files up to maxBytes. Anything without a video
// media type, or over the ceiling, is rejected with a user-facing message.
func VideoPolicy(maxBytes int64) Policy {
	return func(path string, size int64, mimeType string) error {
		if !strings.HasPrefix(mimeType, videoMIMEPrefix) {
			return fmt.Errorf("selected file is not a video (detected %s)", mimeType)
		}
		if size > maxBytes {
			return fmt.Errorf("video is too large: %s exceeds the %s limit",
				platform.FormatFileSize(size), platform.FormatFileSize(maxBytes))
		}
		return nil
	}
}

// DocumentPolicy accepts plain text, PDF and Word documents up to maxBytes
func DocumentPolicy(maxBytes int64) Policy {
	return func(path string, size int64, mimeType string) error {
		base := mimeType
		if idx := strings.Index(base, ";"); idx >= 0 {
			base = strings.TrimSpace(base[:idx])
		}
		switch base {
		case mimePlainText, mimePDF, mimeWordLegacy, mimeWordModern:
		default:
			return fmt.Errorf("unsupported document type: %s", base)
		}
		if size > maxBytes {
			return fmt.Errorf("document is too large: %s exceeds the %s limit",
				platform.FormatFileSize(size), platform.FormatFileSize(maxBytes))
		}
		return nil
	}
}
