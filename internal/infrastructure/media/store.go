// Package media stores uploaded evidence images (stock transfer slips, SIVs,
// GRNs, bank slips) on local disk and returns the reference kept on the
// movement record.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-api/internal/application/inventory"
)

var _ inventory.EvidenceStore = (*LocalStore)(nil)

// LocalStore writes files under a base directory. File names are prefixed
// with a UUID so repeated uploads of the same name never collide.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save persists the content and returns the stored reference (relative file
// name). The original name is sanitized to its base component.
func (s *LocalStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	ref := uuid.NewString() + "_" + name

	f, err := os.Create(filepath.Join(s.baseDir, ref))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}
	return ref, nil
}

// Path resolves a stored reference to the on-disk path.
func (s *LocalStore) Path(ref string) string {
	return filepath.Join(s.baseDir, filepath.Base(ref))
}
