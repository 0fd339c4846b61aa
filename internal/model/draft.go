package model

import "strings"

// DraftInput holds user-authored text or a staged document awaiting
// submission to the script generation service. The owning view creates it on
// edit and clears it on reset.
type DraftInput struct {
	Text         string
	DocumentPath string // empty when no document is staged
	DocumentSize int64  // bytes, valid only when DocumentPath is set
	DocumentMIME string
	Genre        string
}

// HasDocument returns whether a document is staged for upload
func (d *DraftInput) HasDocument() bool {
	return d.DocumentPath != ""
}

// HasText returns whether the draft carries non-blank text
func (d *DraftInput) HasText() bool {
	return strings.TrimSpace(d.Text) != ""
}

// IsSubmittable returns whether the draft satisfies the script flow
// precondition: a staged document, or non-blank text.
func (d *DraftInput) IsSubmittable() bool {
	return d.HasDocument() || d.HasText()
}

// Reset returns the draft to its initial empty value
func (d *DraftInput) Reset() {
	*d = DraftInput{}
}
