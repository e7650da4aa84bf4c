package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalFileHelper reads and writes whole text files on the local filesystem.
type LocalFileHelper struct{}

func InitializeLocalFileHelper() (*LocalFileHelper, error) {
	return &LocalFileHelper{}, nil
}

func (*LocalFileHelper) GetTextFile(ctx context.Context, path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("error on reading file path='%s': %w", path, fs.ErrNotExist)
		}
		return "", fmt.Errorf("error on reading file path='%s': %w", path, err)
	}
	return string(contents), nil
}

// PutTextFile replaces the file at path, creating missing parent directories.
func (*LocalFileHelper) PutTextFile(ctx context.Context, path string, body io.Reader) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error on creating directory='%s': %w", dir, err)
		}
	}
	contents, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("error on reading body for path='%s': %w", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return fmt.Errorf("error on writing file path='%s': %w", path, err)
	}
	return nil
}
