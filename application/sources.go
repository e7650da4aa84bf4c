package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"nhrsa/core"
	"nhrsa/helpers"
)

// ReadDocument returns the TOC text from the local fixture or from one GET against tocURL.
// Invalid UTF-8 is replaced with U+FFFD in both modes.
func ReadDocument(ctx context.Context, mode core.SourceMode, fixturePath, tocURL string, fileStore core.TextFileStore, webClient core.WebClient) (string, error) {
	switch mode {
	case core.SourceFixture:
		contents, err := fileStore.GetTextFile(ctx, fixturePath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w at %s. Upload the TOC as %s", core.ErrFixtureNotFound, fixturePath, fixturePath)
			}
			return "", fmt.Errorf("error on reading fixture: %w", err)
		}
		return helpers.DecodeReplacingInvalid([]byte(contents)), nil
	case core.SourceLive:
		data, err := webClient.GetHTML(ctx, tocURL)
		if err != nil {
			return "", fmt.Errorf("error on fetching toc: %w", err)
		}
		return helpers.DecodeReplacingInvalid(data), nil
	default:
		return "", fmt.Errorf("%w, got '%s'", core.ErrInvalidSourceMode, mode)
	}
}
