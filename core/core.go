package core

import (
	"context"
	"errors"
	"fmt"
	"io"
)

type SourceMode string

const (
	SourceLive    SourceMode = "live"
	SourceFixture SourceMode = "fixture"
)

var (
	ErrFixtureNotFound   = errors.New("fixture not found")
	ErrInvalidSourceMode = errors.New("source must be 'live' or 'fixture'")
)

func ParseSourceMode(value string) (SourceMode, error) {
	switch mode := SourceMode(value); mode {
	case SourceLive, SourceFixture:
		return mode, nil
	default:
		return "", fmt.Errorf("%w, got '%s'", ErrInvalidSourceMode, value)
	}
}

// ParseError reports a chapter identifier that is not digits optionally followed by "-letters".
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad chapter token: '%s'", e.Token)
}

// TitleRange is the inclusive chapter span owned by one statutory Title.
type TitleRange struct {
	End      string `json:"end"`
	Folder   string `json:"folder"`
	Start    string `json:"start"`
	TitleKey string `json:"title_key"`
}

// ChapterFolderMap maps a lowercased chapter id ("225-a") to its lowercased folder ("xix-a").
type ChapterFolderMap map[string]string

// MappingArtifact is the JSON document written by the emitter. Fields are declared in
// key order so the encoded output has sorted keys.
type MappingArtifact struct {
	ChapterToTitle ChapterFolderMap `json:"chapter_to_title"`
	GeneratedFrom  SourceMode       `json:"generated_from"`
	TitleRanges    []TitleRange     `json:"title_ranges"`
	TOCURL         string           `json:"toc_url"`
}

type DocumentSummary struct {
	Title              string
	AnchorCount        int
	ChapterAnchorCount int
}

type Logger interface {
	Info(string, ...any)
	Warn(string, ...any)
	Debug(string, ...any)
	Error(string, ...any)
	Fatal(string, ...any)
}

type WebClient interface {
	GetHTML(context.Context, string) ([]byte, error)
}

type RawDataStore interface {
	PutTextFile(context.Context, string, io.Reader) error
}

type TextFileStore interface {
	GetTextFile(context.Context, string) (string, error)
	RawDataStore
}

type NHTOCScraper interface {
	DescribeDocument(io.Reader) (DocumentSummary, error)
	ExtractTitleRanges(string) []TitleRange
	ExtractChapterFolders(string) ChapterFolderMap
}
