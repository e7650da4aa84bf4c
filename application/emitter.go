package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"nhrsa/core"
)

// EncodeArtifact renders the artifact as two-space indented JSON with sorted keys
// and no trailing newline.
func EncodeArtifact(artifact core.MappingArtifact) ([]byte, error) {
	if artifact.ChapterToTitle == nil {
		artifact.ChapterToTitle = core.ChapterFolderMap{}
	}
	if artifact.TitleRanges == nil {
		artifact.TitleRanges = []core.TitleRange{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(artifact); err != nil {
		return nil, fmt.Errorf("error on encoding artifact: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func EmitArtifact(ctx context.Context, artifact core.MappingArtifact, outPath string, fileStore core.RawDataStore) error {
	data, err := EncodeArtifact(artifact)
	if err != nil {
		return err
	}
	if err := fileStore.PutTextFile(ctx, outPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("error on writing artifact: %w", err)
	}
	return nil
}
