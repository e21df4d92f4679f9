package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Local keeps blobs on disk under baseDir/bucket/path. Used for local
// development and tests; content types are re-detected on download
// since the filesystem records none.
type Local struct {
	baseDir    string
	staticBase string
}

func NewLocal(baseDir, staticBase string) *Local {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &Local{baseDir: baseDir, staticBase: staticBase}
}

func (l *Local) Upload(_ context.Context, bucket, path string, data []byte, _ string) error {
	abs := l.absPath(bucket, path)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0644); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

func (l *Local) Download(_ context.Context, bucket, path string) ([]byte, string, error) {
	data, err := os.ReadFile(l.absPath(bucket, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrObjectNotFound
		}
		return nil, "", err
	}

	contentType := http.DetectContentType(data)
	contentType = strings.Split(contentType, ";")[0]
	return data, contentType, nil
}

func (l *Local) PublicURL(bucket, path string) string {
	return l.staticBase + "/" + bucket + "/" + strings.ReplaceAll(path, "\\", "/")
}

func (l *Local) Exists(_ context.Context, bucket, path string) bool {
	_, err := os.Stat(l.absPath(bucket, path))
	return err == nil
}

func (l *Local) absPath(bucket, path string) string {
	return filepath.Join(l.baseDir, bucket, filepath.FromSlash(path))
}
