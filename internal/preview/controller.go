package preview

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/screencraft/screencraft-studio/internal/platform"
)

// Resource is a locally staged, releasable copy of a selected file. The
// staged copy lives in the controller's cache directory and is removed
// exactly once when the resource is released.
type Resource struct {
	ID         string
	SourcePath string
	StagedPath string
	Name       string
	Size       int64
	MIME       string

	released bool
}

// Controller owns the staged resource for one upload slot. All methods are
// safe for use from UI callbacks; the zero value is not usable, construct
// via NewController.
type Controller struct {
	mu       sync.Mutex
	cacheDir string
	policy   Policy
	current  *Resource
	closed   bool
}

// NewController creates a controller staging files into cacheDir. The policy
// validates candidate files before any state changes; a nil policy accepts
// everything.
func NewController(cacheDir string, policy Policy) *Controller {
	return &Controller{
		cacheDir: cacheDir,
		policy:   policy,
	}
}

// Select validates and stages the file at path. On success any previously
// staged resource is released before the new one is created, keeping at most
// one live resource per controller. On validation or staging failure the
// previous selection is left unchanged.
func (c *Controller) Select(path string) (*Resource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("preview controller is closed")
	}

	size, err := platform.FileSize(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read selected file: %w", err)
	}

	mimeType := DetectMIME(path)

	if c.policy != nil {
		if err := c.policy(path, size, mimeType); err != nil {
			return nil, err
		}
	}

	staged := filepath.Join(c.cacheDir, uuid.NewString()+filepath.Ext(path))
	if err := platform.CopyFile(path, staged); err != nil {
		return nil, fmt.Errorf("failed to stage file: %w", err)
	}

	// Release the previous resource only after the replacement exists
	c.releaseLocked()

	c.current = &Resource{
		ID:         uuid.NewString(),
		SourcePath: path,
		StagedPath: staged,
		Name:       filepath.Base(path),
		Size:       size,
		MIME:       mimeType,
	}

	return c.current, nil
}

// Current returns the staged resource, or nil when nothing is staged
func (c *Controller) Current() *Resource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Clear releases the staged resource if any. Calling Clear with nothing
// staged is a no-op.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
}

// Close releases the staged resource unconditionally and rejects further
// selections. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
	c.closed = true
}

// releaseLocked removes the staged copy exactly once. Callers hold c.mu.
func (c *Controller) releaseLocked() {
	if c.current == nil {
		return
	}
	if !c.current.released {
		c.current.released = true
		if err := os.Remove(c.current.StagedPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove staged file %s: %v", c.current.StagedPath, err)
		}
	}
	c.current = nil
}
