package application

import (
	"context"
	"fmt"
	"strings"

	"nhrsa/core"
	"nhrsa/helpers"
)

type RebuildRequest struct {
	Mode         core.SourceMode
	TOCURL       string
	FixturePath  string
	OutPath      string
	SmokeChapter string
	Citation     string
}

type RebuildResult struct {
	Artifact    core.MappingArtifact
	SmokeFolder string
	SmokeFound  bool

	// CitationLink is empty when Citation was not set or did not resolve.
	CitationLink string
}

// RebuildMapping reads the TOC, extracts title ranges and chapter links, writes the
// artifact to request.OutPath and resolves request.SmokeChapter against it.
// rawArchive may be nil; it is only used in live mode.
func RebuildMapping(ctx context.Context, request RebuildRequest, fileStore core.TextFileStore, webClient core.WebClient, rawArchive core.RawDataStore, scraper core.NHTOCScraper, logger core.Logger) (RebuildResult, error) {
	logger.Info("reading toc document, source=%s", request.Mode)
	document, err := ReadDocument(ctx, request.Mode, request.FixturePath, request.TOCURL, fileStore, webClient)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("error on read document: %w", err)
	}

	if request.Mode == core.SourceLive && rawArchive != nil {
		fileName := getURLFileName(request.TOCURL)
		logger.Info("archiving toc document as '%s'", fileName)
		if err := rawArchive.PutTextFile(ctx, fileName, strings.NewReader(document)); err != nil {
			logger.Error("error on archiving toc document: %v", err)
		}
	}

	summary, err := scraper.DescribeDocument(strings.NewReader(document))
	if err != nil {
		logger.Warn("could not parse toc as html: %v", err)
	} else {
		logger.Debug("toc title='%s', links=%d, chapter links=%d", summary.Title, summary.AnchorCount, summary.ChapterAnchorCount)
	}

	logger.Info("extracting title ranges")
	titleRanges := scraper.ExtractTitleRanges(document)
	logger.Info("extracting chapter links")
	chapterFolders := scraper.ExtractChapterFolders(document)
	logger.Info("found %d title ranges and %d chapter links", len(titleRanges), len(chapterFolders))
	if err == nil {
		checkChapterAnchors(summary, chapterFolders, logger)
	}

	artifact := core.MappingArtifact{
		ChapterToTitle: chapterFolders,
		GeneratedFrom:  request.Mode,
		TitleRanges:    titleRanges,
		TOCURL:         request.TOCURL,
	}
	logger.Info("writing artifact to '%s'", request.OutPath)
	if err := EmitArtifact(ctx, artifact, request.OutPath, fileStore); err != nil {
		return RebuildResult{}, fmt.Errorf("error on emit artifact: %w", err)
	}

	result := RebuildResult{Artifact: artifact}
	if len(request.SmokeChapter) > 0 {
		folder, found, err := NewResolverFromArtifact(artifact).ResolveFolder(request.SmokeChapter)
		if err != nil {
			return result, fmt.Errorf("error on resolving chapter='%s': %w", request.SmokeChapter, err)
		}
		result.SmokeFolder, result.SmokeFound = folder, found
		if found {
			link := helpers.SectionURL(helpers.RSABaseURL(request.TOCURL), folder, request.SmokeChapter, "1")
			logger.Info("example deep link %s", link)
		}
	}

	if len(request.Citation) > 0 {
		link, found, err := NewResolverFromArtifact(artifact).SectionLink(request.TOCURL, request.Citation)
		if err != nil {
			return result, fmt.Errorf("error on resolving citation='%s': %w", request.Citation, err)
		}
		if found {
			result.CitationLink = link
		} else {
			logger.Warn("citation='%s' did not resolve to a folder", request.Citation)
		}
	}

	if len(titleRanges) == 0 {
		logger.Warn("no title ranges found. The TOC format may have changed.")
	}
	return result, nil
}

// checkChapterAnchors compares the links found in <a href> elements with the
// chapter links matched in the raw text.
func checkChapterAnchors(summary core.DocumentSummary, chapterFolders core.ChapterFolderMap, logger core.Logger) {
	switch {
	case len(chapterFolders) == 0 && summary.AnchorCount > 0:
		logger.Info("no chapter links among %d anchors; chapters resolve through title ranges", summary.AnchorCount)
	case len(chapterFolders) > 0 && summary.ChapterAnchorCount == 0:
		logger.Warn("found %d chapter links but none of them in an <a href> anchor", len(chapterFolders))
	}
}
